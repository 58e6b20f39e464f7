package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moneyvault/vault-api/internal/core/domain"
	"github.com/moneyvault/vault-api/internal/core/ports"
)

// LedgerHandler handles HTTP requests for transactions, balance, and
// analytics.
type LedgerHandler struct {
	service ports.LedgerService
}

func NewLedgerHandler(service ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{service: service}
}

type transactionRequest struct {
	Name   string      `json:"name"   validate:"required"`
	Amount looseNumber `json:"amount" validate:"required"`
	Type   string      `json:"type"`
	Note   string      `json:"note"`
}

// Upload records a new transaction.
//
// The `required` tag on Amount rejects zero with the same 400 as an
// absent field. The type string is not checked against Credit/Debit.
//
// @Summary      Record a transaction
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string              false  "Dedupes repeated submissions"
// @Param        body             body      transactionRequest  true   "Transaction details"
// @Success      200              {object}  statusResponse
// @Failure      400              {object}  map[string]string
// @Router       /transaction [post]
func (h *LedgerHandler) Upload(c echo.Context) error {
	var req transactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Data missing")
	}

	err := h.service.RecordTransaction(c.Request().Context(), ports.RecordTransactionInput{
		Username:       req.Name,
		Amount:         float64(req.Amount),
		Type:           req.Type,
		Note:           req.Note,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{
		Status:  "success",
		Message: "Transaction saved",
	})
}

// Balance returns the derived running balance for a user.
//
// @Summary      Get the running balance
// @Tags         ledger
// @Produce      json
// @Param        name  query     string  true  "Username"
// @Success      200   {object}  balanceResponse
// @Failure      400   {object}  map[string]string
// @Router       /get_balance [get]
func (h *LedgerHandler) Balance(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Username required")
	}

	balance, err := h.service.Balance(c.Request().Context(), name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, balanceResponse{Status: "success", Balance: balance})
}

// Analytics returns gains and spends for the daily, monthly, and yearly
// windows.
//
// @Summary      Get windowed gain/spend analytics
// @Tags         ledger
// @Produce      json
// @Param        name  query     string  true  "Username"
// @Success      200   {object}  analyticsResponse
// @Failure      400   {object}  map[string]string
// @Router       /analytics [get]
func (h *LedgerHandler) Analytics(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Username required")
	}

	result, err := h.service.Analytics(c.Request().Context(), name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, analyticsResponse{
		Status:  "success",
		Daily:   windowResponse(result.Daily),
		Monthly: windowResponse(result.Monthly),
		Yearly:  windowResponse(result.Yearly),
	})
}

// Ledger returns the user's full transaction history, newest first.
// There is deliberately no name validation: a missing name matches no
// entries and yields an empty array.
//
// @Summary      List all transactions
// @Tags         ledger
// @Produce      json
// @Param        name  query  string  false  "Username"
// @Success      200   {array}  domain.LedgerEntry
// @Router       /get_ledger [get]
func (h *LedgerHandler) Ledger(c echo.Context) error {
	entries, err := h.service.Entries(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}
	return c.JSON(http.StatusOK, entries)
}
