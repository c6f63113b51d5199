package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"budgetbot/internal/model"
)

func TestCategories_DuplicatesListedAndDeletedTogether(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })
	ctx := context.Background()

	require.NoError(t, categoryRepo.Add(ctx, 1, "Bonus", model.Income))
	require.NoError(t, categoryRepo.Add(ctx, 1, "Bonus", model.Income))

	names, err := categoryRepo.List(ctx, 1, model.Income)
	require.NoError(t, err)
	require.Equal(t, []string{"Bonus", "Bonus"}, names)

	deleted, err := categoryRepo.Delete(ctx, 1, "Bonus", model.Income)
	require.NoError(t, err)
	require.True(t, deleted)

	names, err = categoryRepo.List(ctx, 1, model.Income)
	require.NoError(t, err)
	require.Empty(t, names)
}

func TestCategories_DeleteMissingReturnsFalse(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })

	deleted, err := categoryRepo.Delete(context.Background(), 1, "Ghost", model.Expense)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestCategories_KindsAreIsolated(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })
	ctx := context.Background()

	require.NoError(t, categoryRepo.Add(ctx, 1, "Salary", model.Income))
	require.NoError(t, categoryRepo.Add(ctx, 1, "Food", model.Expense))

	income, err := categoryRepo.List(ctx, 1, model.Income)
	require.NoError(t, err)
	require.Equal(t, []string{"Salary"}, income)

	expense, err := categoryRepo.List(ctx, 1, model.Expense)
	require.NoError(t, err)
	require.Equal(t, []string{"Food"}, expense)

	// deleting from the wrong kind must not touch the other table
	deleted, err := categoryRepo.Delete(ctx, 1, "Salary", model.Expense)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestCategories_UsersAreIsolated(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })
	ctx := context.Background()

	require.NoError(t, categoryRepo.Add(ctx, 1, "Food", model.Expense))
	require.NoError(t, categoryRepo.Add(ctx, 2, "Food", model.Expense))

	deleted, err := categoryRepo.Delete(ctx, 1, "Food", model.Expense)
	require.NoError(t, err)
	require.True(t, deleted)

	names, err := categoryRepo.List(ctx, 2, model.Expense)
	require.NoError(t, err)
	require.Equal(t, []string{"Food"}, names)
}

func TestCategories_Clear(t *testing.T) {
	t.Cleanup(func() { truncateAll(t) })
	ctx := context.Background()

	require.NoError(t, categoryRepo.Add(ctx, 1, "Salary", model.Income))
	require.NoError(t, categoryRepo.Add(ctx, 1, "Food", model.Expense))
	require.NoError(t, categoryRepo.Add(ctx, 1, "Rent", model.Expense))

	require.NoError(t, categoryRepo.Clear(ctx, 1, model.Expense))

	expense, err := categoryRepo.List(ctx, 1, model.Expense)
	require.NoError(t, err)
	require.Empty(t, expense)

	income, err := categoryRepo.List(ctx, 1, model.Income)
	require.NoError(t, err)
	require.Equal(t, []string{"Salary"}, income)

	require.NoError(t, categoryRepo.Clear(ctx, 1, ""))

	income, err = categoryRepo.List(ctx, 1, model.Income)
	require.NoError(t, err)
	require.Empty(t, income)
}
