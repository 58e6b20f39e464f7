package service

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/moneyvault/vault-api/internal/api/metrics"
	"github.com/moneyvault/vault-api/internal/core/domain"
	"github.com/moneyvault/vault-api/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis). A nil checker
// disables deduplication entirely.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, username, key string) (bool, error)
	Mark(ctx context.Context, username, key string) error
}

// LedgerService implements the transaction ledger use cases: append-only
// inserts, the derived running balance, and the three analytics windows.
type LedgerService struct {
	repo  ports.LedgerRepository
	dedup DedupChecker
	log   zerolog.Logger

	now func() time.Time
}

func NewLedgerService(repo ports.LedgerRepository, dedup DedupChecker, log zerolog.Logger) *LedgerService {
	return &LedgerService{repo: repo, dedup: dedup, log: log, now: time.Now}
}

// RecordTransaction appends a new ledger entry. A zero amount is
// rejected by the same check as a missing one; the upstream client has
// always relied on that, so it stays. The type string is stored as
// received, recognized by downstream aggregation or not.
func (s *LedgerService) RecordTransaction(ctx context.Context, in ports.RecordTransactionInput) error {
	if in.Username == "" || in.Amount == 0 {
		return domain.ErrMissingFields
	}

	if in.IdempotencyKey != "" && s.dedup != nil {
		dup, err := s.dedup.IsDuplicate(ctx, in.Username, in.IdempotencyKey)
		if err != nil {
			s.log.Warn().Err(err).Str("username", in.Username).Msg("dedup check failed, recording anyway")
		} else if dup {
			metrics.TransactionsDedupTotal.WithLabelValues("hit").Inc()
			s.log.Debug().Str("username", in.Username).Str("key", in.IdempotencyKey).Msg("duplicate transaction skipped")
			return nil
		} else {
			metrics.TransactionsDedupTotal.WithLabelValues("miss").Inc()
		}
	}

	note := in.Note
	if note == "" {
		note = domain.DefaultNote
	}

	entry := &domain.LedgerEntry{
		Username:  in.Username,
		Amount:    in.Amount,
		Type:      in.Type,
		Note:      note,
		Timestamp: epochSeconds(s.now()),
	}

	if err := s.repo.Insert(ctx, entry); err != nil {
		return err
	}

	if in.IdempotencyKey != "" && s.dedup != nil {
		if err := s.dedup.Mark(ctx, in.Username, in.IdempotencyKey); err != nil {
			s.log.Warn().Err(err).Str("username", in.Username).Msg("failed to set dedup key")
		}
	}

	metrics.TransactionsRecordedTotal.WithLabelValues(entry.Type).Inc()
	s.log.Info().
		Str("username", in.Username).
		Float64("amount", in.Amount).
		Str("type", in.Type).
		Msg("transaction recorded")

	return nil
}

// Balance returns the derived running balance for the user. Every entry
// whose type is not exactly "Credit" counts as a debit.
func (s *LedgerService) Balance(ctx context.Context, username string) (float64, error) {
	if username == "" {
		return 0, domain.ErrMissingFields
	}

	timer := prometheus.NewTimer(metrics.AggregationDuration.WithLabelValues("balance"))
	defer timer.ObserveDuration()

	return s.repo.SumBalance(ctx, username)
}

// Entries returns the user's full ledger, newest first. An empty
// username matches no stored entries and yields an empty result.
func (s *LedgerService) Entries(ctx context.Context, username string) ([]domain.LedgerEntry, error) {
	return s.repo.ListByUser(ctx, username)
}

// Analytics computes gains (Credit sum) and spends (Debit sum) for the
// current day, calendar month, and calendar year. The three windows are
// scanned independently; entries with unrecognized types fall into
// neither bucket.
func (s *LedgerService) Analytics(ctx context.Context, username string) (*ports.AnalyticsResult, error) {
	if username == "" {
		return nil, domain.ErrMissingFields
	}

	day, month, year := windowStarts(s.now())

	daily, err := s.windowStats(ctx, username, "daily", day)
	if err != nil {
		return nil, err
	}
	monthly, err := s.windowStats(ctx, username, "monthly", month)
	if err != nil {
		return nil, err
	}
	yearly, err := s.windowStats(ctx, username, "yearly", year)
	if err != nil {
		return nil, err
	}

	return &ports.AnalyticsResult{Daily: daily, Monthly: monthly, Yearly: yearly}, nil
}

func (s *LedgerService) windowStats(ctx context.Context, username, window string, since float64) (ports.WindowStats, error) {
	timer := prometheus.NewTimer(metrics.AggregationDuration.WithLabelValues(window))
	defer timer.ObserveDuration()

	sums, err := s.repo.SumByTypeSince(ctx, username, since)
	if err != nil {
		return ports.WindowStats{}, err
	}
	return ports.WindowStats{
		Gains:  sums[domain.TypeCredit],
		Spends: sums[domain.TypeDebit],
	}, nil
}

// windowStarts returns the epoch-second thresholds for the start of
// today, the current calendar month, and the current calendar year, all
// in the server's local time zone.
func windowStarts(now time.Time) (day, month, year float64) {
	loc := now.Location()
	day = epochSeconds(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc))
	month = epochSeconds(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc))
	year = epochSeconds(time.Date(now.Year(), 1, 1, 0, 0, 0, 0, loc))
	return day, month, year
}

// epochSeconds keeps the fractional part so same-second inserts sort
// deterministically and stay wire compatible with existing documents.
func epochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
