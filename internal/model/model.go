package model

import "time"

// Kind says whether a record moves money in or out
type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// Transaction is one record of income or expenses
type Transaction struct {
	ID          int64
	UserID      int64
	Kind        Kind
	Amount      float64
	Category    string // empty means uncategorized, kept as free text
	Description string
	Date        time.Time
}

type Category struct {
	ID     int64
	UserID int64
	Name   string
	Kind   Kind
}

// MonthlyStat is the precomputed per-month aggregate, maintained
// incrementally on every write
type MonthlyStat struct {
	UserID       int64
	Year         int
	Month        int
	TotalIncome  float64
	TotalExpense float64
}

func (s *MonthlyStat) Balance() float64 {
	return s.TotalIncome - s.TotalExpense
}

// CategoryStats holds one month's sums grouped by category name.
// Uncategorized transactions are not represented here
type CategoryStats struct {
	IncomeByCategory  map[string]float64
	ExpenseByCategory map[string]float64
}

type User struct {
	ID         int64
	Name       string
	BudgetType string
	FamilyID   int64
}
