package dialog

// Button labels are the fixed command vocabulary the state machine
// matches raw text against
const (
	BtnAddIncome  = "➕ Income"
	BtnAddExpense = "➖ Expense"
	BtnBalance    = "💰 Balance"
	BtnStats      = "📊 Stats"
	BtnCategories = "📋 Categories"
	BtnSettings   = "⚙ Settings"

	BtnCancel      = "❌ Cancel"
	BtnNewCategory = "➕ Create new category"

	BtnAddIncomeCategory  = "➕ Add income category"
	BtnAddExpenseCategory = "➕ Add expense category"
	BtnShowCategories     = "📋 Show all categories"
	BtnBack               = "🔙 Back"

	BtnClearIncome             = "🗑 Clear all income"
	BtnClearExpenses           = "🗑 Clear all expenses"
	BtnDeleteIncomeCategories  = "❌ Delete income categories"
	BtnDeleteExpenseCategories = "❌ Delete expense categories"
	BtnBackToMenu              = "🔙 Back to main menu"
)

func mainMenuKeyboard() [][]string {
	return [][]string{
		{BtnAddIncome, BtnAddExpense},
		{BtnBalance, BtnStats},
		{BtnCategories, BtnSettings},
	}
}

func cancelKeyboard() [][]string {
	return [][]string{
		{BtnCancel},
	}
}

func categoriesMenuKeyboard() [][]string {
	return [][]string{
		{BtnAddIncomeCategory},
		{BtnAddExpenseCategory},
		{BtnShowCategories},
		{BtnBack},
	}
}

func settingsKeyboard() [][]string {
	return [][]string{
		{BtnClearIncome},
		{BtnClearExpenses},
		{BtnDeleteIncomeCategories},
		{BtnDeleteExpenseCategories},
		{BtnBackToMenu},
	}
}

// categoryKeyboard lists the user's categories one per row, optionally
// with the create-new affordance, always with cancel at the bottom
func categoryKeyboard(names []string, withNew bool) [][]string {
	keyboard := make([][]string, 0, len(names)+2)
	for _, name := range names {
		keyboard = append(keyboard, []string{name})
	}
	if withNew {
		keyboard = append(keyboard, []string{BtnNewCategory})
	}
	return append(keyboard, []string{BtnCancel})
}
