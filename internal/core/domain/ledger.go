package domain

// Entry types. Conventional only: uploads are stored with whatever type
// string the client sent, and the balance pipeline treats everything
// that is not TypeCredit as a debit.
const (
	TypeCredit = "Credit"
	TypeDebit  = "Debit"
)

// DefaultNote is stored when a transaction arrives without a note.
const DefaultNote = "No reason"

// LedgerEntry is one recorded transaction for a user. Entries are
// append-only; they are never updated or deleted. Timestamp is epoch
// seconds with a fractional part, so same-second inserts keep a stable
// newest-first ordering.
type LedgerEntry struct {
	ID        string  `json:"_id"`
	Username  string  `json:"username"`
	Amount    float64 `json:"amount"`
	Type      string  `json:"type"`
	Note      string  `json:"note"`
	Timestamp float64 `json:"timestamp"`
}
