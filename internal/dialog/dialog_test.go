package dialog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"budgetbot/internal/model"
	"budgetbot/internal/service/mocks"
)

func newTestManager(t *testing.T) (*Manager, *mocks.Ledger, *mocks.Registry, *mocks.Statistics) {
	ledger := mocks.NewLedger(t)
	registry := mocks.NewRegistry(t)
	stats := mocks.NewStatistics(t)
	return NewManager(validator.New(), ledger, registry, stats), ledger, registry, stats
}

func TestManager_AddIncomeFlow(t *testing.T) {
	m, ledger, registry, _ := newTestManager(t)
	ctx := context.Background()

	reply := m.Handle(ctx, 1, BtnAddIncome)
	require.Equal(t, "Enter the income amount:", reply.Text)
	require.Equal(t, cancelKeyboard(), reply.Keyboard)

	registry.On("Categories", mock.Anything, int64(1), model.Income).Return([]string{"Salary"}, nil).Once()
	reply = m.Handle(ctx, 1, "1000")
	require.Equal(t, "Choose a category or create a new one:", reply.Text)
	require.Contains(t, reply.Keyboard, []string{"Salary"})
	require.Contains(t, reply.Keyboard, []string{BtnNewCategory})
	require.Contains(t, reply.Keyboard, []string{BtnCancel})

	ledger.On("AddTransaction", mock.Anything, int64(1), model.Income, 1000.0, "Salary", "", time.Time{}).
		Return(&model.Transaction{UserID: 1, Kind: model.Income, Amount: 1000, Category: "Salary"}, nil).Once()
	reply = m.Handle(ctx, 1, "Salary")
	require.Equal(t, "✅ Income of 1000.00 added! (category: Salary)", reply.Text)
	require.Equal(t, mainMenuKeyboard(), reply.Keyboard)
}

func TestManager_InvalidAmountReprompts(t *testing.T) {
	m, _, registry, _ := newTestManager(t)
	ctx := context.Background()

	m.Handle(ctx, 1, BtnAddExpense)

	reply := m.Handle(ctx, 1, "abc")
	require.Equal(t, "Please enter a valid amount!", reply.Text)

	reply = m.Handle(ctx, 1, "-3")
	require.Equal(t, "The amount must be greater than zero!", reply.Text)

	reply = m.Handle(ctx, 1, "0")
	require.Equal(t, "The amount must be greater than zero!", reply.Text)

	// the state survived every re-prompt
	registry.On("Categories", mock.Anything, int64(1), model.Expense).Return(nil, nil).Once()
	reply = m.Handle(ctx, 1, "12.5")
	require.Equal(t, "Choose a category or create a new one:", reply.Text)
}

// Any text that is not the create-new affordance is accepted literally
// as the category, without a registry membership check
func TestManager_ArbitraryCategoryAccepted(t *testing.T) {
	m, ledger, registry, _ := newTestManager(t)
	ctx := context.Background()

	m.Handle(ctx, 1, BtnAddExpense)
	registry.On("Categories", mock.Anything, int64(1), model.Expense).Return([]string{"Food"}, nil).Once()
	m.Handle(ctx, 1, "40")

	ledger.On("AddTransaction", mock.Anything, int64(1), model.Expense, 40.0, "Beer with friends", "", time.Time{}).
		Return(&model.Transaction{UserID: 1, Kind: model.Expense, Amount: 40, Category: "Beer with friends"}, nil).Once()
	reply := m.Handle(ctx, 1, "Beer with friends")
	require.Equal(t, "✅ Expense of 40.00 added! (category: Beer with friends)", reply.Text)
}

func TestManager_NewCategoryWithPendingAmount(t *testing.T) {
	m, ledger, registry, _ := newTestManager(t)
	ctx := context.Background()

	m.Handle(ctx, 1, BtnAddIncome)
	registry.On("Categories", mock.Anything, int64(1), model.Income).Return(nil, nil).Once()
	m.Handle(ctx, 1, "250.5")

	reply := m.Handle(ctx, 1, BtnNewCategory)
	require.Equal(t, "Enter the name of the new income category:", reply.Text)

	registry.On("AddCategory", mock.Anything, int64(1), "Bonus", model.Income).
		Return(&model.Category{UserID: 1, Name: "Bonus", Kind: model.Income}, nil).Once()
	ledger.On("AddTransaction", mock.Anything, int64(1), model.Income, 250.5, "Bonus", "", time.Time{}).
		Return(&model.Transaction{UserID: 1, Kind: model.Income, Amount: 250.5, Category: "Bonus"}, nil).Once()
	reply = m.Handle(ctx, 1, "Bonus")
	require.Equal(t, "✅ Income category 'Bonus' created!\nIncome of 250.50 added!", reply.Text)
	require.Equal(t, mainMenuKeyboard(), reply.Keyboard)
}

func TestManager_StandaloneCategoryCreation(t *testing.T) {
	m, _, registry, _ := newTestManager(t)
	ctx := context.Background()

	reply := m.Handle(ctx, 1, BtnAddExpenseCategory)
	require.Equal(t, "Enter the name of the new expense category:", reply.Text)

	// no pending amount: the category is registered standalone, no
	// transaction is committed
	registry.On("AddCategory", mock.Anything, int64(1), "Food", model.Expense).
		Return(&model.Category{UserID: 1, Name: "Food", Kind: model.Expense}, nil).Once()
	reply = m.Handle(ctx, 1, "Food")
	require.Equal(t, "✅ Expense category 'Food' added!", reply.Text)
	require.Equal(t, categoriesMenuKeyboard(), reply.Keyboard)
}

func TestManager_CancelDiscardsScratch(t *testing.T) {
	m, _, registry, _ := newTestManager(t)
	ctx := context.Background()

	m.Handle(ctx, 1, BtnAddExpense)
	registry.On("Categories", mock.Anything, int64(1), model.Expense).Return(nil, nil).Once()
	m.Handle(ctx, 1, "40")

	reply := m.Handle(ctx, 1, BtnCancel)
	require.Equal(t, "Action cancelled", reply.Text)
	require.Equal(t, mainMenuKeyboard(), reply.Keyboard)

	// back in Idle: free text is no longer treated as a category
	reply = m.Handle(ctx, 1, "Food")
	require.Equal(t, mainMenuKeyboard(), reply.Keyboard)
}

func TestManager_CancelFromCategoryDeletionReturnsToIdle(t *testing.T) {
	m, _, registry, _ := newTestManager(t)
	ctx := context.Background()

	m.Handle(ctx, 1, BtnSettings)
	registry.On("Categories", mock.Anything, int64(1), model.Income).Return([]string{"Bonus"}, nil).Once()
	m.Handle(ctx, 1, BtnDeleteIncomeCategories)

	reply := m.Handle(ctx, 1, BtnCancel)
	require.Equal(t, "Action cancelled", reply.Text)
	require.Equal(t, mainMenuKeyboard(), reply.Keyboard)

	// settings actions no longer apply, the conversation is Idle
	reply = m.Handle(ctx, 1, BtnClearIncome)
	require.Equal(t, mainMenuKeyboard(), reply.Keyboard)
}

func TestManager_SettingsClears(t *testing.T) {
	m, ledger, _, _ := newTestManager(t)
	ctx := context.Background()

	reply := m.Handle(ctx, 1, BtnSettings)
	require.Equal(t, settingsKeyboard(), reply.Keyboard)

	ledger.On("ClearTransactions", mock.Anything, int64(1), model.Income).Return(nil).Once()
	reply = m.Handle(ctx, 1, BtnClearIncome)
	require.Equal(t, "✅ All income deleted!", reply.Text)
	require.Equal(t, settingsKeyboard(), reply.Keyboard)

	// clearing is a terminal action, the menu is still active
	ledger.On("ClearTransactions", mock.Anything, int64(1), model.Expense).Return(nil).Once()
	reply = m.Handle(ctx, 1, BtnClearExpenses)
	require.Equal(t, "✅ All expenses deleted!", reply.Text)
}

func TestManager_DeleteCategory(t *testing.T) {
	m, _, registry, _ := newTestManager(t)
	ctx := context.Background()

	m.Handle(ctx, 1, BtnSettings)

	registry.On("Categories", mock.Anything, int64(1), model.Income).Return([]string{"Bonus", "Bonus"}, nil).Once()
	reply := m.Handle(ctx, 1, BtnDeleteIncomeCategories)
	require.Equal(t, "Choose a category to delete:", reply.Text)
	require.Contains(t, reply.Keyboard, []string{"Bonus"})
	require.NotContains(t, reply.Keyboard, []string{BtnNewCategory})

	registry.On("DeleteCategory", mock.Anything, int64(1), "Bonus", model.Income).Return(true, nil).Once()
	reply = m.Handle(ctx, 1, "Bonus")
	require.Equal(t, "✅ Category 'Bonus' deleted!", reply.Text)
	require.Equal(t, settingsKeyboard(), reply.Keyboard)

	registry.On("Categories", mock.Anything, int64(1), model.Expense).Return([]string{"Food"}, nil).Once()
	m.Handle(ctx, 1, BtnDeleteExpenseCategories)

	registry.On("DeleteCategory", mock.Anything, int64(1), "Ghost", model.Expense).Return(false, nil).Once()
	reply = m.Handle(ctx, 1, "Ghost")
	require.Equal(t, "❌ Couldn't delete category 'Ghost'.", reply.Text)
}

func TestManager_DeleteCategoriesEmptyNotice(t *testing.T) {
	m, ledger, registry, _ := newTestManager(t)
	ctx := context.Background()

	m.Handle(ctx, 1, BtnSettings)

	registry.On("Categories", mock.Anything, int64(1), model.Income).Return(nil, nil).Once()
	reply := m.Handle(ctx, 1, BtnDeleteIncomeCategories)
	require.Equal(t, "You have no income categories to delete.", reply.Text)
	require.Equal(t, settingsKeyboard(), reply.Keyboard)

	// still in the settings menu
	ledger.On("ClearTransactions", mock.Anything, int64(1), model.Income).Return(nil).Once()
	reply = m.Handle(ctx, 1, BtnClearIncome)
	require.Equal(t, "✅ All income deleted!", reply.Text)
}

func TestManager_BalanceCommand(t *testing.T) {
	m, _, _, stats := newTestManager(t)

	stats.On("Balance", mock.Anything, int64(1)).Return(700.0, nil).Once()
	reply := m.Handle(context.Background(), 1, BtnBalance)
	require.Equal(t, "Your current balance: 700.00", reply.Text)
	require.Equal(t, mainMenuKeyboard(), reply.Keyboard)
}

func TestManager_StatsReport(t *testing.T) {
	m, _, _, stats := newTestManager(t)

	stats.On("MonthlyStats", mock.Anything, int64(1), 0, 0).
		Return(&model.MonthlyStat{UserID: 1, TotalIncome: 1000, TotalExpense: 300}, nil).Once()
	stats.On("CategoryStats", mock.Anything, int64(1), 0, 0).
		Return(&model.CategoryStats{
			IncomeByCategory:  map[string]float64{"Salary": 1000},
			ExpenseByCategory: map[string]float64{"Food": 200, "Beer": 100},
		}, nil).Once()

	reply := m.Handle(context.Background(), 1, BtnStats)
	require.Equal(t,
		"📊 Stats for the current month\n\n"+
			"Income: 1000.00\n"+
			"Expenses: 300.00\n"+
			"Balance: 700.00\n"+
			"\nIncome by category:\n"+
			"• Salary: 1000.00\n"+
			"\nExpenses by category:\n"+
			"• Beer: 100.00\n"+
			"• Food: 200.00\n",
		reply.Text)
}

func TestManager_ShowAllCategories(t *testing.T) {
	m, _, registry, _ := newTestManager(t)
	ctx := context.Background()

	registry.On("Categories", mock.Anything, int64(1), model.Income).Return(nil, nil).Once()
	registry.On("Categories", mock.Anything, int64(1), model.Expense).Return(nil, nil).Once()
	reply := m.Handle(ctx, 1, BtnShowCategories)
	require.Equal(t, "You have no categories yet. Add them through the categories menu.", reply.Text)

	registry.On("Categories", mock.Anything, int64(1), model.Income).Return([]string{"Salary"}, nil).Once()
	registry.On("Categories", mock.Anything, int64(1), model.Expense).Return([]string{"Food"}, nil).Once()
	reply = m.Handle(ctx, 1, BtnShowCategories)
	require.Equal(t, "📋 Your categories:\n\nIncome:\n• Salary\n\nExpenses:\n• Food\n", reply.Text)
}

func TestManager_ScratchIsolatedBetweenUsers(t *testing.T) {
	m, _, registry, _ := newTestManager(t)
	ctx := context.Background()

	m.Handle(ctx, 1, BtnAddIncome)

	// another user's message lands in their own Idle session
	reply := m.Handle(ctx, 2, "hello")
	require.Equal(t, mainMenuKeyboard(), reply.Keyboard)

	// the first user is still awaiting an amount
	registry.On("Categories", mock.Anything, int64(1), model.Income).Return(nil, nil).Once()
	reply = m.Handle(ctx, 1, "500")
	require.Equal(t, "Choose a category or create a new one:", reply.Text)
}

// A storage failure answers with a generic error and leaves the
// conversation in its pre-failure state, so the same input can be
// retried
func TestManager_ErrorKeepsState(t *testing.T) {
	m, ledger, registry, _ := newTestManager(t)
	ctx := context.Background()

	m.Handle(ctx, 1, BtnAddExpense)
	registry.On("Categories", mock.Anything, int64(1), model.Expense).Return(nil, nil).Once()
	m.Handle(ctx, 1, "40")

	ledger.On("AddTransaction", mock.Anything, int64(1), model.Expense, 40.0, "Food", "", time.Time{}).
		Return(nil, errors.New("connection refused")).Once()
	reply := m.Handle(ctx, 1, "Food")
	require.Equal(t, msgError, reply.Text)
	require.Equal(t, cancelKeyboard(), reply.Keyboard)

	ledger.On("AddTransaction", mock.Anything, int64(1), model.Expense, 40.0, "Food", "", time.Time{}).
		Return(&model.Transaction{UserID: 1, Kind: model.Expense, Amount: 40, Category: "Food"}, nil).Once()
	reply = m.Handle(ctx, 1, "Food")
	require.Equal(t, "✅ Expense of 40.00 added! (category: Food)", reply.Text)
}
