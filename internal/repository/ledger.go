package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"budgetbot/internal/model"
)

// DateLayout is how transaction dates are persisted: a sortable string,
// so month filters are plain prefix comparisons
const DateLayout = "2006-01-02 15:04:05"

//go:generate mockery --name=Ledger

type Ledger interface {
	Add(ctx context.Context, transaction *model.Transaction) error
	Balance(ctx context.Context, userID int64) (float64, error)
	MonthlyStat(ctx context.Context, userID int64, year, month int) (*model.MonthlyStat, error)
	ByCategory(ctx context.Context, userID int64, category string, kind model.Kind) ([]model.Transaction, error)
	CategoryStats(ctx context.Context, userID int64, year, month int) (*model.CategoryStats, error)
	// Clear deletes the user's transactions, all of them when kind is
	// empty, and always drops every monthly_stats row of the user
	Clear(ctx context.Context, userID int64, kind model.Kind) error
}

type LedgerPostgres struct {
	conn *pgxpool.Pool
}

func NewLedgerPostgres(conn *pgxpool.Pool) *LedgerPostgres {
	return &LedgerPostgres{
		conn: conn,
	}
}

// Add inserts the transaction and bumps the matching monthly aggregate
// in one database transaction, so the ledger and monthly_stats never
// diverge on a crash between the two writes
func (l *LedgerPostgres) Add(ctx context.Context, transaction *model.Transaction) error {
	tx, err := l.conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository.Ledger, begin error: %v", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	query := `INSERT INTO transactions (user_id, type, amount, category, description, date)
	          VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6) RETURNING id`
	err = tx.QueryRow(ctx, query,
		transaction.UserID, string(transaction.Kind), transaction.Amount,
		transaction.Category, transaction.Description,
		transaction.Date.Format(DateLayout)).Scan(&transaction.ID)
	if err != nil {
		return fmt.Errorf("repository.Ledger, insert transaction error: %v", err)
	}

	year, month := transaction.Date.Year(), int(transaction.Date.Month())

	query = `INSERT INTO monthly_stats (user_id, year, month, total_income, total_expense)
	         VALUES ($1, $2, $3, 0, 0) ON CONFLICT (user_id, year, month) DO NOTHING`
	if _, err = tx.Exec(ctx, query, transaction.UserID, year, month); err != nil {
		return fmt.Errorf("repository.Ledger, init monthly stat error: %v", err)
	}

	if transaction.Kind == model.Income {
		query = `UPDATE monthly_stats SET total_income = total_income + $4
		         WHERE user_id = $1 AND year = $2 AND month = $3`
	} else {
		query = `UPDATE monthly_stats SET total_expense = total_expense + $4
		         WHERE user_id = $1 AND year = $2 AND month = $3`
	}
	if _, err = tx.Exec(ctx, query, transaction.UserID, year, month, transaction.Amount); err != nil {
		return fmt.Errorf("repository.Ledger, update monthly stat error: %v", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository.Ledger, commit error: %v", err)
	}
	return nil
}

func (l *LedgerPostgres) Balance(ctx context.Context, userID int64) (float64, error) {
	query := `SELECT COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE -amount END), 0)
	          FROM transactions WHERE user_id = $1`
	var balance float64
	if err := l.conn.QueryRow(ctx, query, userID).Scan(&balance); err != nil {
		return 0, fmt.Errorf("repository.Ledger, get balance error: %v", err)
	}
	return balance, nil
}

// MonthlyStat returns a zero-valued stat when the period has no row
func (l *LedgerPostgres) MonthlyStat(ctx context.Context, userID int64, year, month int) (*model.MonthlyStat, error) {
	stat := model.MonthlyStat{
		UserID: userID,
		Year:   year,
		Month:  month,
	}
	query := `SELECT total_income, total_expense FROM monthly_stats
	          WHERE user_id = $1 AND year = $2 AND month = $3`
	err := l.conn.QueryRow(ctx, query, userID, year, month).Scan(&stat.TotalIncome, &stat.TotalExpense)
	if err != nil && err != pgx.ErrNoRows {
		return nil, fmt.Errorf("repository.Ledger, get monthly stat error: %v", err)
	}
	return &stat, nil
}

func (l *LedgerPostgres) ByCategory(ctx context.Context, userID int64, category string, kind model.Kind) ([]model.Transaction, error) {
	query := `SELECT id, user_id, type, amount, category, description, date
	          FROM transactions WHERE user_id = $1 AND category = $2 AND type = $3`
	rows, err := l.conn.Query(ctx, query, userID, category, string(kind))
	if err != nil {
		return nil, fmt.Errorf("repository.Ledger, get by category error: %v", err)
	}
	defer rows.Close()

	var transactions []model.Transaction
	for rows.Next() {
		var (
			t           model.Transaction
			tKind, date string
			cat, desc   *string
		)
		if err = rows.Scan(&t.ID, &t.UserID, &tKind, &t.Amount, &cat, &desc, &date); err != nil {
			return nil, fmt.Errorf("repository.Ledger, scan transaction error: %v", err)
		}
		t.Kind = model.Kind(tKind)
		if cat != nil {
			t.Category = *cat
		}
		if desc != nil {
			t.Description = *desc
		}
		t.Date, err = time.Parse(DateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("repository.Ledger, parse date error: %v", err)
		}
		transactions = append(transactions, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.Ledger, rows error in ByCategory: %v", err)
	}
	return transactions, nil
}

// CategoryStats groups one month's sums by category name. Uncategorized
// transactions are left out, they still count toward monthly totals
func (l *LedgerPostgres) CategoryStats(ctx context.Context, userID int64, year, month int) (*model.CategoryStats, error) {
	monthKey := fmt.Sprintf("%04d-%02d", year, month)
	query := `SELECT type, category, SUM(amount) FROM transactions
	          WHERE user_id = $1 AND category IS NOT NULL AND left(date, 7) = $2
	          GROUP BY type, category`
	rows, err := l.conn.Query(ctx, query, userID, monthKey)
	if err != nil {
		return nil, fmt.Errorf("repository.Ledger, get category stats error: %v", err)
	}
	defer rows.Close()

	stats := model.CategoryStats{
		IncomeByCategory:  make(map[string]float64),
		ExpenseByCategory: make(map[string]float64),
	}
	for rows.Next() {
		var (
			kind, category string
			sum            float64
		)
		if err = rows.Scan(&kind, &category, &sum); err != nil {
			return nil, fmt.Errorf("repository.Ledger, scan category stats error: %v", err)
		}
		if model.Kind(kind) == model.Income {
			stats.IncomeByCategory[category] = sum
		} else {
			stats.ExpenseByCategory[category] = sum
		}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.Ledger, rows error in CategoryStats: %v", err)
	}
	return &stats, nil
}

// Clear drops monthly_stats unconditionally, even when kind narrows the
// transaction deletion. Callers clearing a single kind are left with
// zeroed aggregates until the remaining kind is replayed
func (l *LedgerPostgres) Clear(ctx context.Context, userID int64, kind model.Kind) error {
	tx, err := l.conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository.Ledger, begin error: %v", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if kind == "" {
		_, err = tx.Exec(ctx, `DELETE FROM transactions WHERE user_id = $1`, userID)
	} else {
		_, err = tx.Exec(ctx, `DELETE FROM transactions WHERE user_id = $1 AND type = $2`, userID, string(kind))
	}
	if err != nil {
		return fmt.Errorf("repository.Ledger, clear transactions error: %v", err)
	}

	if _, err = tx.Exec(ctx, `DELETE FROM monthly_stats WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("repository.Ledger, clear monthly stats error: %v", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository.Ledger, commit error: %v", err)
	}
	return nil
}
