package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/moneyvault/vault-api/internal/core/domain"
	"github.com/moneyvault/vault-api/internal/core/ports"
)

type stubLedgerService struct {
	recordFn    func(ctx context.Context, in ports.RecordTransactionInput) error
	balanceFn   func(ctx context.Context, username string) (float64, error)
	entriesFn   func(ctx context.Context, username string) ([]domain.LedgerEntry, error)
	analyticsFn func(ctx context.Context, username string) (*ports.AnalyticsResult, error)
}

func (s *stubLedgerService) RecordTransaction(ctx context.Context, in ports.RecordTransactionInput) error {
	return s.recordFn(ctx, in)
}

func (s *stubLedgerService) Balance(ctx context.Context, username string) (float64, error) {
	return s.balanceFn(ctx, username)
}

func (s *stubLedgerService) Entries(ctx context.Context, username string) ([]domain.LedgerEntry, error) {
	return s.entriesFn(ctx, username)
}

func (s *stubLedgerService) Analytics(ctx context.Context, username string) (*ports.AnalyticsResult, error) {
	return s.analyticsFn(ctx, username)
}

func newLedgerContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLedgerHandler_Upload_Success(t *testing.T) {
	var got ports.RecordTransactionInput
	stub := &stubLedgerService{
		recordFn: func(ctx context.Context, in ports.RecordTransactionInput) error {
			got = in
			return nil
		},
	}
	h := NewLedgerHandler(stub)

	c, rec := newLedgerContext(t, http.MethodPost, "/transaction",
		`{"name":"alice","amount":100,"type":"Credit","note":"salary"}`)
	c.Request().Header.Set("Idempotency-Key", "req-7")

	if err := h.Upload(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Username != "alice" || got.Amount != 100 || got.Type != "Credit" || got.Note != "salary" {
		t.Fatalf("unexpected input: %+v", got)
	}
	if got.IdempotencyKey != "req-7" {
		t.Fatalf("expected idempotency key to pass through, got %q", got.IdempotencyKey)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "success" || resp["message"] != "Transaction saved" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestLedgerHandler_Upload_Validation(t *testing.T) {
	stub := &stubLedgerService{
		recordFn: func(ctx context.Context, in ports.RecordTransactionInput) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := NewLedgerHandler(stub)

	bodies := []string{
		`{"amount":100,"type":"Credit"}`,             // missing name
		`{"name":"alice","type":"Credit"}`,           // missing amount
		`{"name":"alice","amount":0,"type":"Debit"}`, // zero rejected like missing
	}
	for _, body := range bodies {
		c, _ := newLedgerContext(t, http.MethodPost, "/transaction", body)
		err := h.Upload(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %v", body, err)
		}
	}
}

func TestLedgerHandler_Balance_MissingName(t *testing.T) {
	h := NewLedgerHandler(&stubLedgerService{})

	c, _ := newLedgerContext(t, http.MethodGet, "/get_balance", "")
	err := h.Balance(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestLedgerHandler_Balance_Success(t *testing.T) {
	stub := &stubLedgerService{
		balanceFn: func(ctx context.Context, username string) (float64, error) {
			if username != "alice" {
				t.Fatalf("unexpected username %q", username)
			}
			return 70.0, nil
		},
	}
	h := NewLedgerHandler(stub)

	c, rec := newLedgerContext(t, http.MethodGet, "/get_balance?name=alice", "")
	if err := h.Balance(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "success" || resp["balance"] != 70.0 {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestLedgerHandler_Analytics_Success(t *testing.T) {
	stub := &stubLedgerService{
		analyticsFn: func(ctx context.Context, username string) (*ports.AnalyticsResult, error) {
			return &ports.AnalyticsResult{
				Daily:   ports.WindowStats{Gains: 10, Spends: 4},
				Monthly: ports.WindowStats{Gains: 30, Spends: 10},
				Yearly:  ports.WindowStats{Gains: 60, Spends: 10},
			}, nil
		},
	}
	h := NewLedgerHandler(stub)

	c, rec := newLedgerContext(t, http.MethodGet, "/analytics?name=alice", "")
	if err := h.Analytics(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Status  string         `json:"status"`
		Daily   map[string]any `json:"daily"`
		Monthly map[string]any `json:"monthly"`
		Yearly  map[string]any `json:"yearly"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "success" {
		t.Fatalf("unexpected status %q", resp.Status)
	}
	if resp.Daily["gains"] != 10.0 || resp.Daily["spends"] != 4.0 {
		t.Fatalf("unexpected daily window: %+v", resp.Daily)
	}
	if resp.Yearly["gains"] != 60.0 {
		t.Fatalf("unexpected yearly window: %+v", resp.Yearly)
	}
}

// A missing name is not an error for the full listing: it matches no
// entries and returns an empty JSON array, never null.
func TestLedgerHandler_Ledger_EmptyArray(t *testing.T) {
	stub := &stubLedgerService{
		entriesFn: func(ctx context.Context, username string) ([]domain.LedgerEntry, error) {
			return nil, nil
		},
	}
	h := NewLedgerHandler(stub)

	c, rec := newLedgerContext(t, http.MethodGet, "/get_ledger", "")
	if err := h.Ledger(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("expected empty array, got %s", got)
	}
}

func TestLedgerHandler_Ledger_Entries(t *testing.T) {
	stub := &stubLedgerService{
		entriesFn: func(ctx context.Context, username string) ([]domain.LedgerEntry, error) {
			return []domain.LedgerEntry{
				{ID: "65f1", Username: "alice", Amount: 30, Type: "Debit", Note: "groceries", Timestamp: 200},
				{ID: "65f0", Username: "alice", Amount: 100, Type: "Credit", Note: "No reason", Timestamp: 100},
			}, nil
		},
	}
	h := NewLedgerHandler(stub)

	c, rec := newLedgerContext(t, http.MethodGet, "/get_ledger?name=alice", "")
	if err := h.Ledger(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var entries []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0]["_id"] != "65f1" || entries[0]["amount"] != 30.0 {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
}
