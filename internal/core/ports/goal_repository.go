package ports

import (
	"context"

	"github.com/moneyvault/vault-api/internal/core/domain"
)

// GoalRepository defines persistence operations for goal records.
type GoalRepository interface {
	Insert(ctx context.Context, goal *domain.Goal) error
	// ListByUser returns all goals for the user, newest first.
	ListByUser(ctx context.Context, username string) ([]domain.Goal, error)
}
