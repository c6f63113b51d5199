package service

import (
	"context"
	"time"

	"budgetbot/internal/model"
	"budgetbot/internal/repository"
)

//go:generate mockery --name=Statistics

// Statistics is a thin composition over the ledger store, every call
// re-queries storage
type Statistics interface {
	Balance(ctx context.Context, userID int64) (float64, error)
	// MonthlyStats defaults zero year/month to the current calendar date
	MonthlyStats(ctx context.Context, userID int64, year, month int) (*model.MonthlyStat, error)
	CategoryStats(ctx context.Context, userID int64, year, month int) (*model.CategoryStats, error)
	TransactionsByCategory(ctx context.Context, userID int64, category string, kind model.Kind) ([]model.Transaction, error)
}

type statistics struct {
	repo repository.Ledger
}

func NewStatistics(repo repository.Ledger) *statistics {
	return &statistics{
		repo: repo,
	}
}

func (s *statistics) Balance(ctx context.Context, userID int64) (float64, error) {
	return s.repo.Balance(ctx, userID)
}

func (s *statistics) MonthlyStats(ctx context.Context, userID int64, year, month int) (*model.MonthlyStat, error) {
	year, month = defaultPeriod(year, month)
	return s.repo.MonthlyStat(ctx, userID, year, month)
}

func (s *statistics) CategoryStats(ctx context.Context, userID int64, year, month int) (*model.CategoryStats, error) {
	year, month = defaultPeriod(year, month)
	return s.repo.CategoryStats(ctx, userID, year, month)
}

func (s *statistics) TransactionsByCategory(ctx context.Context, userID int64, category string, kind model.Kind) ([]model.Transaction, error) {
	return s.repo.ByCategory(ctx, userID, category, kind)
}

func defaultPeriod(year, month int) (int, int) {
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	return year, month
}
