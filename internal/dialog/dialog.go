// Package dialog drives the multi-turn conversations: it receives one
// (user, raw text) pair per turn, consults the user's scratch state and
// answers with a reply text plus keyboard options. It performs no
// network I/O, the transport layer lives in consumer
package dialog

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"budgetbot/internal/model"
	"budgetbot/internal/service"
)

const msgError = "An error occurred, please try again"

// Reply is what the transport renders back: text plus reply-keyboard
// button labels
type Reply struct {
	Text     string
	Keyboard [][]string
}

type Manager struct {
	sessions  *sessions
	validator *validator.Validate
	ledger    service.Ledger
	registry  service.Registry
	stats     service.Statistics
}

func NewManager(validator *validator.Validate, ledger service.Ledger, registry service.Registry, stats service.Statistics) *Manager {
	return &Manager{
		sessions:  newSessions(),
		validator: validator,
		ledger:    ledger,
		registry:  registry,
		stats:     stats,
	}
}

// Handle processes one message. Any failure below is logged and turned
// into a generic reply, the conversation keeps its pre-failure state so
// the user can retry or cancel
func (m *Manager) Handle(ctx context.Context, userID int64, text string) Reply {
	sess := m.sessions.get(userID)
	reply, err := m.handle(ctx, sess, userID, strings.TrimSpace(text))
	if err != nil {
		logrus.Errorf("dialog: handling message from user %d failed: %v", userID, err)
		return Reply{Text: msgError, Keyboard: keyboardFor(sess.state)}
	}
	return reply
}

func (m *Manager) handle(ctx context.Context, sess *session, userID int64, text string) (Reply, error) {
	// global cancel works from every non-Idle state and discards all
	// scratch state without persisting anything
	if text == BtnCancel && sess.state != StateIdle {
		sess.reset()
		return Reply{Text: "Action cancelled", Keyboard: mainMenuKeyboard()}, nil
	}

	switch sess.state {
	case StateAwaitingAmount:
		return m.handleAmount(ctx, sess, userID, text)
	case StateAwaitingCategory:
		return m.handleCategory(ctx, sess, userID, text)
	case StateAwaitingNewIncomeCategory:
		return m.handleNewCategory(ctx, sess, userID, text, model.Income)
	case StateAwaitingNewExpenseCategory:
		return m.handleNewCategory(ctx, sess, userID, text, model.Expense)
	case StateSettingsMenu:
		return m.handleSettings(ctx, sess, userID, text)
	case StateAwaitingCategoryToDelete:
		return m.handleCategoryDeletion(ctx, sess, userID, text)
	default:
		return m.handleIdle(ctx, sess, userID, text)
	}
}

func (m *Manager) handleIdle(ctx context.Context, sess *session, userID int64, text string) (Reply, error) {
	switch text {
	case BtnAddIncome:
		sess.state = StateAwaitingAmount
		sess.kind = model.Income
		return Reply{Text: "Enter the income amount:", Keyboard: cancelKeyboard()}, nil

	case BtnAddExpense:
		sess.state = StateAwaitingAmount
		sess.kind = model.Expense
		return Reply{Text: "Enter the expense amount:", Keyboard: cancelKeyboard()}, nil

	case BtnBalance:
		balance, err := m.stats.Balance(ctx, userID)
		if err != nil {
			return Reply{}, err
		}
		return Reply{Text: fmt.Sprintf("Your current balance: %.2f", balance), Keyboard: mainMenuKeyboard()}, nil

	case BtnStats:
		return m.monthlyReport(ctx, userID)

	case BtnCategories:
		return Reply{Text: "📋 Category management", Keyboard: categoriesMenuKeyboard()}, nil

	case BtnAddIncomeCategory:
		sess.state = StateAwaitingNewIncomeCategory
		return Reply{Text: "Enter the name of the new income category:", Keyboard: cancelKeyboard()}, nil

	case BtnAddExpenseCategory:
		sess.state = StateAwaitingNewExpenseCategory
		return Reply{Text: "Enter the name of the new expense category:", Keyboard: cancelKeyboard()}, nil

	case BtnShowCategories:
		return m.allCategories(ctx, userID)

	case BtnSettings:
		sess.state = StateSettingsMenu
		return Reply{Text: "⚙ Settings\n\nChoose an action:", Keyboard: settingsKeyboard()}, nil

	default:
		return Reply{Text: "💰 Personal finance tracker\n\nChoose an action:", Keyboard: mainMenuKeyboard()}, nil
	}
}

// handleAmount parses a positive decimal. Anything else re-enters the
// same state with a corrective prompt, nothing is persisted yet
func (m *Manager) handleAmount(ctx context.Context, sess *session, userID int64, text string) (Reply, error) {
	amount, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Reply{Text: "Please enter a valid amount!", Keyboard: cancelKeyboard()}, nil
	}
	if err = m.validator.Var(amount, "gt=0"); err != nil {
		return Reply{Text: "The amount must be greater than zero!", Keyboard: cancelKeyboard()}, nil
	}

	names, err := m.registry.Categories(ctx, userID, sess.kind)
	if err != nil {
		return Reply{}, err
	}

	sess.amount = amount
	sess.hasAmount = true
	sess.state = StateAwaitingCategory
	return Reply{Text: "Choose a category or create a new one:", Keyboard: categoryKeyboard(names, true)}, nil
}

// handleCategory treats any input that is not the create-new affordance
// as the chosen category, with no registry membership check
func (m *Manager) handleCategory(ctx context.Context, sess *session, userID int64, text string) (Reply, error) {
	if text == BtnNewCategory {
		if sess.kind == model.Income {
			sess.state = StateAwaitingNewIncomeCategory
			return Reply{Text: "Enter the name of the new income category:", Keyboard: cancelKeyboard()}, nil
		}
		sess.state = StateAwaitingNewExpenseCategory
		return Reply{Text: "Enter the name of the new expense category:", Keyboard: cancelKeyboard()}, nil
	}

	transaction, err := m.ledger.AddTransaction(ctx, userID, sess.kind, sess.amount, text, "", time.Time{})
	if err != nil {
		return Reply{}, err
	}
	sess.reset()
	return Reply{
		Text:     fmt.Sprintf("✅ %s of %.2f added! (category: %s)", kindLabel(transaction.Kind), transaction.Amount, transaction.Category),
		Keyboard: mainMenuKeyboard(),
	}, nil
}

// handleNewCategory registers the entered name unconditionally; a
// pending amount additionally commits a transaction with the new
// category
func (m *Manager) handleNewCategory(ctx context.Context, sess *session, userID int64, text string, kind model.Kind) (Reply, error) {
	if err := m.validator.Var(text, "required,max=64"); err != nil {
		return Reply{Text: "Please enter a category name!", Keyboard: cancelKeyboard()}, nil
	}

	category, err := m.registry.AddCategory(ctx, userID, text, kind)
	if err != nil {
		return Reply{}, err
	}

	if sess.hasAmount {
		transaction, err := m.ledger.AddTransaction(ctx, userID, kind, sess.amount, category.Name, "", time.Time{})
		if err != nil {
			return Reply{}, err
		}
		sess.reset()
		return Reply{
			Text: fmt.Sprintf("✅ %s category '%s' created!\n%s of %.2f added!",
				kindLabel(kind), category.Name, kindLabel(kind), transaction.Amount),
			Keyboard: mainMenuKeyboard(),
		}, nil
	}

	sess.reset()
	return Reply{
		Text:     fmt.Sprintf("✅ %s category '%s' added!", kindLabel(kind), category.Name),
		Keyboard: categoriesMenuKeyboard(),
	}, nil
}

func (m *Manager) handleSettings(ctx context.Context, sess *session, userID int64, text string) (Reply, error) {
	switch text {
	case BtnClearIncome:
		if err := m.ledger.ClearTransactions(ctx, userID, model.Income); err != nil {
			return Reply{}, err
		}
		return Reply{Text: "✅ All income deleted!", Keyboard: settingsKeyboard()}, nil

	case BtnClearExpenses:
		if err := m.ledger.ClearTransactions(ctx, userID, model.Expense); err != nil {
			return Reply{}, err
		}
		return Reply{Text: "✅ All expenses deleted!", Keyboard: settingsKeyboard()}, nil

	case BtnDeleteIncomeCategories:
		return m.startCategoryDeletion(ctx, sess, userID, model.Income)

	case BtnDeleteExpenseCategories:
		return m.startCategoryDeletion(ctx, sess, userID, model.Expense)

	case BtnBackToMenu:
		sess.reset()
		return Reply{Text: "Back to main menu", Keyboard: mainMenuKeyboard()}, nil

	default:
		return Reply{Text: "Choose an action:", Keyboard: settingsKeyboard()}, nil
	}
}

func (m *Manager) startCategoryDeletion(ctx context.Context, sess *session, userID int64, kind model.Kind) (Reply, error) {
	names, err := m.registry.Categories(ctx, userID, kind)
	if err != nil {
		return Reply{}, err
	}
	if len(names) == 0 {
		return Reply{
			Text:     fmt.Sprintf("You have no %s categories to delete.", strings.ToLower(kindLabel(kind))),
			Keyboard: settingsKeyboard(),
		}, nil
	}
	sess.deleteKind = kind
	sess.state = StateAwaitingCategoryToDelete
	return Reply{Text: "Choose a category to delete:", Keyboard: categoryKeyboard(names, false)}, nil
}

func (m *Manager) handleCategoryDeletion(ctx context.Context, sess *session, userID int64, text string) (Reply, error) {
	deleted, err := m.registry.DeleteCategory(ctx, userID, text, sess.deleteKind)
	if err != nil {
		return Reply{}, err
	}
	sess.deleteKind = ""
	sess.state = StateSettingsMenu
	if deleted {
		return Reply{Text: fmt.Sprintf("✅ Category '%s' deleted!", text), Keyboard: settingsKeyboard()}, nil
	}
	return Reply{Text: fmt.Sprintf("❌ Couldn't delete category '%s'.", text), Keyboard: settingsKeyboard()}, nil
}

func (m *Manager) monthlyReport(ctx context.Context, userID int64) (Reply, error) {
	stat, err := m.stats.MonthlyStats(ctx, userID, 0, 0)
	if err != nil {
		return Reply{}, err
	}
	categoryStats, err := m.stats.CategoryStats(ctx, userID, 0, 0)
	if err != nil {
		return Reply{}, err
	}

	var b strings.Builder
	b.WriteString("📊 Stats for the current month\n\n")
	fmt.Fprintf(&b, "Income: %.2f\n", stat.TotalIncome)
	fmt.Fprintf(&b, "Expenses: %.2f\n", stat.TotalExpense)
	fmt.Fprintf(&b, "Balance: %.2f\n", stat.Balance())

	if len(categoryStats.IncomeByCategory) > 0 {
		b.WriteString("\nIncome by category:\n")
		writeSums(&b, categoryStats.IncomeByCategory)
	}
	if len(categoryStats.ExpenseByCategory) > 0 {
		b.WriteString("\nExpenses by category:\n")
		writeSums(&b, categoryStats.ExpenseByCategory)
	}
	return Reply{Text: b.String(), Keyboard: mainMenuKeyboard()}, nil
}

func (m *Manager) allCategories(ctx context.Context, userID int64) (Reply, error) {
	income, err := m.registry.Categories(ctx, userID, model.Income)
	if err != nil {
		return Reply{}, err
	}
	expense, err := m.registry.Categories(ctx, userID, model.Expense)
	if err != nil {
		return Reply{}, err
	}

	if len(income) == 0 && len(expense) == 0 {
		return Reply{
			Text:     "You have no categories yet. Add them through the categories menu.",
			Keyboard: categoriesMenuKeyboard(),
		}, nil
	}

	var b strings.Builder
	b.WriteString("📋 Your categories:\n")
	if len(income) > 0 {
		b.WriteString("\nIncome:\n")
		for _, name := range income {
			fmt.Fprintf(&b, "• %s\n", name)
		}
	}
	if len(expense) > 0 {
		b.WriteString("\nExpenses:\n")
		for _, name := range expense {
			fmt.Fprintf(&b, "• %s\n", name)
		}
	}
	return Reply{Text: b.String(), Keyboard: categoriesMenuKeyboard()}, nil
}

func writeSums(b *strings.Builder, sums map[string]float64) {
	categories := make([]string, 0, len(sums))
	for category := range sums {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		fmt.Fprintf(b, "• %s: %.2f\n", category, sums[category])
	}
}

func kindLabel(kind model.Kind) string {
	if kind == model.Income {
		return "Income"
	}
	return "Expense"
}

func keyboardFor(state State) [][]string {
	switch state {
	case StateIdle:
		return mainMenuKeyboard()
	case StateSettingsMenu:
		return settingsKeyboard()
	default:
		return cancelKeyboard()
	}
}
