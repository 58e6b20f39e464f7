package ports

import (
	"context"

	"github.com/moneyvault/vault-api/internal/core/domain"
)

// RecordTransactionInput is the DTO passed from the transport layer to
// LedgerService. Type is stored verbatim; it is not validated against
// the Credit/Debit convention.
type RecordTransactionInput struct {
	Username string
	Amount   float64
	Type     string
	Note     string
	// IdempotencyKey, when non-empty, dedupes repeated submissions of the
	// same transaction (Idempotency-Key header).
	IdempotencyKey string
}

// WindowStats holds the credit/debit sums for one analytics window.
type WindowStats struct {
	Gains  float64
	Spends float64
}

// AnalyticsResult carries the three independently computed windows,
// each anchored to the moment of the request.
type AnalyticsResult struct {
	Daily   WindowStats
	Monthly WindowStats
	Yearly  WindowStats
}

// LedgerService defines use-case operations for the transaction ledger.
type LedgerService interface {
	RecordTransaction(ctx context.Context, input RecordTransactionInput) error
	Balance(ctx context.Context, username string) (float64, error)
	Entries(ctx context.Context, username string) ([]domain.LedgerEntry, error)
	Analytics(ctx context.Context, username string) (*AnalyticsResult, error)
}
