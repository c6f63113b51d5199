package service

import (
	"context"

	"budgetbot/internal/model"
	"budgetbot/internal/repository"
)

//go:generate mockery --name=Registry

type Registry interface {
	AddCategory(ctx context.Context, userID int64, name string, kind model.Kind) (*model.Category, error)
	Categories(ctx context.Context, userID int64, kind model.Kind) ([]string, error)
	DeleteCategory(ctx context.Context, userID int64, name string, kind model.Kind) (bool, error)
	ClearCategories(ctx context.Context, userID int64, kind model.Kind) error
}

type registry struct {
	repo repository.Categories
}

func NewRegistry(repo repository.Categories) *registry {
	return &registry{
		repo: repo,
	}
}

func (r *registry) AddCategory(ctx context.Context, userID int64, name string, kind model.Kind) (*model.Category, error) {
	if err := r.repo.Add(ctx, userID, name, kind); err != nil {
		return nil, err
	}
	return &model.Category{
		UserID: userID,
		Name:   name,
		Kind:   kind,
	}, nil
}

func (r *registry) Categories(ctx context.Context, userID int64, kind model.Kind) ([]string, error) {
	return r.repo.List(ctx, userID, kind)
}

// DeleteCategory reports false when nothing matched, a plain outcome
// rather than an error
func (r *registry) DeleteCategory(ctx context.Context, userID int64, name string, kind model.Kind) (bool, error) {
	return r.repo.Delete(ctx, userID, name, kind)
}

func (r *registry) ClearCategories(ctx context.Context, userID int64, kind model.Kind) error {
	return r.repo.Clear(ctx, userID, kind)
}
