package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"budgetbot/internal/model"
)

//go:generate mockery --name=Users

type Users interface {
	// Ensure creates the user's row on first contact and is a no-op
	// afterwards; users are never deleted
	Ensure(ctx context.Context, user *model.User) error
}

type UsersPostgres struct {
	conn *pgxpool.Pool
}

func NewUsersPostgres(conn *pgxpool.Pool) *UsersPostgres {
	return &UsersPostgres{
		conn: conn,
	}
}

func (u *UsersPostgres) Ensure(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (user_id, name) VALUES ($1, NULLIF($2, '')) ON CONFLICT DO NOTHING`
	if _, err := u.conn.Exec(ctx, query, user.ID, user.Name); err != nil {
		return fmt.Errorf("repository.Users, ensure user error: %v", err)
	}
	return nil
}
