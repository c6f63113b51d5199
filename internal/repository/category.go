package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"budgetbot/internal/model"
)

//go:generate mockery --name=Categories

type Categories interface {
	Add(ctx context.Context, userID int64, name string, kind model.Kind) error
	List(ctx context.Context, userID int64, kind model.Kind) ([]string, error)
	// Delete removes every row matching (user, name), duplicates go
	// together; reports whether anything was removed
	Delete(ctx context.Context, userID int64, name string, kind model.Kind) (bool, error)
	// Clear wipes the user's categories, both kinds when kind is empty
	Clear(ctx context.Context, userID int64, kind model.Kind) error
}

// categoryStore is one kind's table. Income and expense categories live
// in separate tables behind separate concrete types with constant SQL,
// instead of interpolating a table name from the kind
type categoryStore interface {
	add(ctx context.Context, userID int64, name string) error
	list(ctx context.Context, userID int64) ([]string, error)
	delete(ctx context.Context, userID int64, name string) (bool, error)
	clear(ctx context.Context, userID int64) error
}

type CategoriesPostgres struct {
	income  categoryStore
	expense categoryStore
}

func NewCategoriesPostgres(conn *pgxpool.Pool) *CategoriesPostgres {
	return &CategoriesPostgres{
		income:  &incomeCategories{conn: conn},
		expense: &expenseCategories{conn: conn},
	}
}

func (c *CategoriesPostgres) store(kind model.Kind) categoryStore {
	if kind == model.Income {
		return c.income
	}
	return c.expense
}

// Add appends a row without a uniqueness check, duplicates are allowed
func (c *CategoriesPostgres) Add(ctx context.Context, userID int64, name string, kind model.Kind) error {
	return c.store(kind).add(ctx, userID, name)
}

// List returns the category names in storage order, callers must not
// rely on it
func (c *CategoriesPostgres) List(ctx context.Context, userID int64, kind model.Kind) ([]string, error) {
	return c.store(kind).list(ctx, userID)
}

func (c *CategoriesPostgres) Delete(ctx context.Context, userID int64, name string, kind model.Kind) (bool, error) {
	return c.store(kind).delete(ctx, userID, name)
}

func (c *CategoriesPostgres) Clear(ctx context.Context, userID int64, kind model.Kind) error {
	if kind != "" {
		return c.store(kind).clear(ctx, userID)
	}
	if err := c.income.clear(ctx, userID); err != nil {
		return err
	}
	return c.expense.clear(ctx, userID)
}

type incomeCategories struct {
	conn *pgxpool.Pool
}

func (s *incomeCategories) add(ctx context.Context, userID int64, name string) error {
	query := `INSERT INTO income_categories (user_id, name) VALUES ($1, $2)`
	if _, err := s.conn.Exec(ctx, query, userID, name); err != nil {
		return fmt.Errorf("repository.Categories, add income category error: %v", err)
	}
	return nil
}

func (s *incomeCategories) list(ctx context.Context, userID int64) ([]string, error) {
	query := `SELECT name FROM income_categories WHERE user_id = $1`
	names, err := scanNames(ctx, s.conn, query, userID)
	if err != nil {
		return nil, fmt.Errorf("repository.Categories, list income categories error: %v", err)
	}
	return names, nil
}

func (s *incomeCategories) delete(ctx context.Context, userID int64, name string) (bool, error) {
	query := `DELETE FROM income_categories WHERE user_id = $1 AND name = $2`
	tag, err := s.conn.Exec(ctx, query, userID, name)
	if err != nil {
		return false, fmt.Errorf("repository.Categories, delete income category error: %v", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *incomeCategories) clear(ctx context.Context, userID int64) error {
	query := `DELETE FROM income_categories WHERE user_id = $1`
	if _, err := s.conn.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("repository.Categories, clear income categories error: %v", err)
	}
	return nil
}

type expenseCategories struct {
	conn *pgxpool.Pool
}

func (s *expenseCategories) add(ctx context.Context, userID int64, name string) error {
	query := `INSERT INTO expense_categories (user_id, name) VALUES ($1, $2)`
	if _, err := s.conn.Exec(ctx, query, userID, name); err != nil {
		return fmt.Errorf("repository.Categories, add expense category error: %v", err)
	}
	return nil
}

func (s *expenseCategories) list(ctx context.Context, userID int64) ([]string, error) {
	query := `SELECT name FROM expense_categories WHERE user_id = $1`
	names, err := scanNames(ctx, s.conn, query, userID)
	if err != nil {
		return nil, fmt.Errorf("repository.Categories, list expense categories error: %v", err)
	}
	return names, nil
}

func (s *expenseCategories) delete(ctx context.Context, userID int64, name string) (bool, error) {
	query := `DELETE FROM expense_categories WHERE user_id = $1 AND name = $2`
	tag, err := s.conn.Exec(ctx, query, userID, name)
	if err != nil {
		return false, fmt.Errorf("repository.Categories, delete expense category error: %v", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *expenseCategories) clear(ctx context.Context, userID int64) error {
	query := `DELETE FROM expense_categories WHERE user_id = $1`
	if _, err := s.conn.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("repository.Categories, clear expense categories error: %v", err)
	}
	return nil
}

func scanNames(ctx context.Context, conn *pgxpool.Pool, query string, userID int64) ([]string, error) {
	rows, err := conn.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
