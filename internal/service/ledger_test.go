package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"budgetbot/internal/model"
	"budgetbot/internal/repository/mocks"
)

func TestLedger_AddTransactionRejectsNonPositiveAmount(t *testing.T) {
	ledgerRepo := mocks.NewLedger(t)
	usersRepo := mocks.NewUsers(t)
	serv := NewLedger(ledgerRepo, usersRepo)

	_, err := serv.AddTransaction(context.Background(), 1, model.Expense, 0, "Food", "", time.Time{})
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = serv.AddTransaction(context.Background(), 1, model.Income, -5, "", "", time.Time{})
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestLedger_AddTransactionDefaultsDate(t *testing.T) {
	ledgerRepo := mocks.NewLedger(t)
	usersRepo := mocks.NewUsers(t)
	usersRepo.On("Ensure", mock.Anything, &model.User{ID: 1}).Return(nil)
	ledgerRepo.On("Add", mock.Anything, mock.AnythingOfType("*model.Transaction")).Return(nil)
	serv := NewLedger(ledgerRepo, usersRepo)

	before := time.Now()
	transaction, err := serv.AddTransaction(context.Background(), 1, model.Income, 100, "Salary", "", time.Time{})
	require.NoError(t, err)
	require.False(t, transaction.Date.IsZero())
	require.False(t, transaction.Date.Before(before))
}

func TestLedger_AddTransactionKeepsGivenDate(t *testing.T) {
	ledgerRepo := mocks.NewLedger(t)
	usersRepo := mocks.NewUsers(t)
	usersRepo.On("Ensure", mock.Anything, &model.User{ID: 1}).Return(nil)
	ledgerRepo.On("Add", mock.Anything, mock.AnythingOfType("*model.Transaction")).Return(nil)
	serv := NewLedger(ledgerRepo, usersRepo)

	date := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	transaction, err := serv.AddTransaction(context.Background(), 1, model.Expense, 30, "Food", "lunch", date)
	require.NoError(t, err)
	require.Equal(t, date, transaction.Date)
	require.Equal(t, "lunch", transaction.Description)
}
