package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/moneyvault/vault-api/internal/api/metrics"
	"github.com/moneyvault/vault-api/internal/core/domain"
	"github.com/moneyvault/vault-api/internal/core/ports"
)

// GoalService implements savings-goal use cases. Saves are intentionally
// unvalidated: a goal with no username, a zero target, or absent
// strategies is stored as-is, matching what the client has always sent.
type GoalService struct {
	repo ports.GoalRepository
	log  zerolog.Logger

	now func() time.Time
}

func NewGoalService(repo ports.GoalRepository, log zerolog.Logger) *GoalService {
	return &GoalService{repo: repo, log: log, now: time.Now}
}

func (s *GoalService) SaveGoal(ctx context.Context, in ports.SaveGoalInput) error {
	goal := &domain.Goal{
		Username:   in.Username,
		Target:     in.Target,
		Strategies: in.Strategies,
		Timestamp:  epochSeconds(s.now()),
	}

	if err := s.repo.Insert(ctx, goal); err != nil {
		return err
	}

	metrics.GoalsSavedTotal.Inc()
	s.log.Info().Str("username", in.Username).Float64("target", in.Target).Msg("goal saved")
	return nil
}

// Goals returns all goal records for the user, newest first.
func (s *GoalService) Goals(ctx context.Context, username string) ([]domain.Goal, error) {
	return s.repo.ListByUser(ctx, username)
}
