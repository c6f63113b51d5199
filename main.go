package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/go-playground/validator/v10"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"budgetbot/internal/config"
	"budgetbot/internal/consumer"
	"budgetbot/internal/dialog"
	"budgetbot/internal/repository"
	"budgetbot/internal/service"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found")
	}

	cfg := config.Config{}
	if err := env.Parse(&cfg); err != nil {
		logrus.Fatalf("couldn't parse config: %v", err)
	}

	if err := repository.Migrate(cfg.PostgresEndpoint); err != nil {
		logrus.Fatal(err)
	}

	pool, err := pgxpool.Connect(ctx, cfg.PostgresEndpoint)
	if err != nil {
		logrus.Fatalf("couldn't connect to postgres: %v", err)
	}
	defer pool.Close()

	ledgerRepo := repository.NewLedgerPostgres(pool)
	categoriesRepo := repository.NewCategoriesPostgres(pool)
	usersRepo := repository.NewUsersPostgres(pool)

	dialogs := dialog.NewManager(validator.New(),
		service.NewLedger(ledgerRepo, usersRepo),
		service.NewRegistry(categoriesRepo),
		service.NewStatistics(ledgerRepo))

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		logrus.Fatal(err)
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = cfg.Telegram.Timeout

	tgBot := consumer.NewBot(bot, bot.GetUpdatesChan(u), dialogs)
	go tgBot.Consume(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, os.Interrupt)
	<-quit
	cancel()
	<-time.After(2 * time.Second)
}
