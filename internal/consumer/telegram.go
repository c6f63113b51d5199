// Package consumer
package consumer

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"budgetbot/internal/dialog"
)

const handleTimeout = 10 * time.Second

// Bot polls the telegram server and feeds every incoming message to the
// dialog manager, rendering its reply and keyboard back to the chat
type Bot struct {
	bot         *tgbotapi.BotAPI
	updatesChan tgbotapi.UpdatesChannel
	dialogs     *dialog.Manager
}

func NewBot(bot *tgbotapi.BotAPI, updatesChan tgbotapi.UpdatesChannel, dialogs *dialog.Manager) *Bot {
	return &Bot{
		bot:         bot,
		updatesChan: updatesChan,
		dialogs:     dialogs,
	}
}

func (b *Bot) Consume(ctx context.Context) {
	logrus.Infof("telegram bot %s started consuming", b.bot.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			logrus.Infof("bot consumer stopped: %v", ctx.Err())
			return

		case update := <-b.updatesChan:
			if update.Message == nil || update.Message.From == nil {
				continue
			}
			logrus.Infof("received message from user %d", update.Message.From.ID)

			newCtx, cancel := context.WithTimeout(ctx, handleTimeout)
			reply := b.dialogs.Handle(newCtx, update.Message.From.ID, update.Message.Text)
			cancel()

			if err := b.send(update.Message, reply); err != nil {
				logrus.Errorf("bot consumer error: %v", err)
			}
		}
	}
}

func (b *Bot) send(message *tgbotapi.Message, reply dialog.Reply) error {
	msg := tgbotapi.NewMessage(message.Chat.ID, reply.Text)
	if len(reply.Keyboard) > 0 {
		rows := make([][]tgbotapi.KeyboardButton, 0, len(reply.Keyboard))
		for _, row := range reply.Keyboard {
			buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
			for _, label := range row {
				buttons = append(buttons, tgbotapi.NewKeyboardButton(label))
			}
			rows = append(rows, buttons)
		}
		msg.ReplyMarkup = tgbotapi.NewReplyKeyboard(rows...)
	}

	_, err := b.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("send, telegram bot couldn't send message: %v", err)
	}
	return nil
}
