package ports

import (
	"context"

	"github.com/moneyvault/vault-api/internal/core/domain"
)

// LedgerRepository defines persistence operations for ledger entries.
// Balance and the analytics sums are derived values: both are computed
// by aggregation on every call and never persisted.
type LedgerRepository interface {
	Insert(ctx context.Context, entry *domain.LedgerEntry) error
	// SumBalance returns sum(amount where type=="Credit") minus
	// sum(amount for every other type) for the user. 0 with no entries.
	SumBalance(ctx context.Context, username string) (float64, error)
	// ListByUser returns all entries for the user, newest first.
	ListByUser(ctx context.Context, username string) ([]domain.LedgerEntry, error)
	// SumByTypeSince groups entries with timestamp >= since by their type
	// string and returns the per-type amount sums.
	SumByTypeSince(ctx context.Context, username string, since float64) (map[string]float64, error)
}
