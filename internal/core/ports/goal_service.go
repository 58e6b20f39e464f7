package ports

import (
	"context"

	"github.com/moneyvault/vault-api/internal/core/domain"
)

// SaveGoalInput carries a new goal record. None of the fields are
// required; an all-defaults goal is accepted and stored.
type SaveGoalInput struct {
	Username   string
	Target     float64
	Strategies any
}

// GoalService defines use-case operations for savings goals.
type GoalService interface {
	SaveGoal(ctx context.Context, input SaveGoalInput) error
	Goals(ctx context.Context, username string) ([]domain.Goal, error)
}
