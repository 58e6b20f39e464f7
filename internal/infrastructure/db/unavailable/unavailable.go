// Package unavailable provides repository implementations wired in when
// the document store could not be reached at startup. Instead of failing
// open into a nil-pointer fault on the first data request, every
// operation reports domain.ErrStoreUnavailable, which the API surfaces
// as 503. Probes and the client page keep working.
package unavailable

import (
	"context"

	"github.com/moneyvault/vault-api/internal/core/domain"
)

type AuthRepository struct{}

func (AuthRepository) FindByUsername(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrStoreUnavailable
}

func (AuthRepository) Create(context.Context, *domain.User) (*domain.User, error) {
	return nil, domain.ErrStoreUnavailable
}

type LedgerRepository struct{}

func (LedgerRepository) Insert(context.Context, *domain.LedgerEntry) error {
	return domain.ErrStoreUnavailable
}

func (LedgerRepository) SumBalance(context.Context, string) (float64, error) {
	return 0, domain.ErrStoreUnavailable
}

func (LedgerRepository) ListByUser(context.Context, string) ([]domain.LedgerEntry, error) {
	return nil, domain.ErrStoreUnavailable
}

func (LedgerRepository) SumByTypeSince(context.Context, string, float64) (map[string]float64, error) {
	return nil, domain.ErrStoreUnavailable
}

type GoalRepository struct{}

func (GoalRepository) Insert(context.Context, *domain.Goal) error {
	return domain.ErrStoreUnavailable
}

func (GoalRepository) ListByUser(context.Context, string) ([]domain.Goal, error) {
	return nil, domain.ErrStoreUnavailable
}
