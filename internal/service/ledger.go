package service

import (
	"context"
	"errors"
	"time"

	"budgetbot/internal/model"
	"budgetbot/internal/repository"
)

// ErrInvalidAmount is recovered locally by the dialog with a re-prompt,
// it never reaches the user as a system error
var ErrInvalidAmount = errors.New("amount must be greater than zero")

//go:generate mockery --name=Ledger

type Ledger interface {
	AddTransaction(ctx context.Context, userID int64, kind model.Kind, amount float64, category, description string, date time.Time) (*model.Transaction, error)
	ClearTransactions(ctx context.Context, userID int64, kind model.Kind) error
}

type ledger struct {
	repo  repository.Ledger
	users repository.Users
}

func NewLedger(repo repository.Ledger, users repository.Users) *ledger {
	return &ledger{
		repo:  repo,
		users: users,
	}
}

// AddTransaction defaults a zero date to now and persists the record
// together with its monthly aggregate. The user row is created on first
// contact
func (l *ledger) AddTransaction(ctx context.Context, userID int64, kind model.Kind, amount float64, category, description string, date time.Time) (*model.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if date.IsZero() {
		date = time.Now()
	}

	if err := l.users.Ensure(ctx, &model.User{ID: userID}); err != nil {
		return nil, err
	}

	transaction := &model.Transaction{
		UserID:      userID,
		Kind:        kind,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	}
	if err := l.repo.Add(ctx, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

func (l *ledger) ClearTransactions(ctx context.Context, userID int64, kind model.Kind) error {
	return l.repo.Clear(ctx, userID, kind)
}
