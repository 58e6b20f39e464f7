package domain

// Goal is a saved savings target with free-form strategy notes.
// Strategies is kept as an arbitrary JSON value: clients send anything
// from a plain string to a structured checklist, and it round-trips
// verbatim. Goals are append-only and unbounded per user.
type Goal struct {
	ID         string  `json:"_id"`
	Username   string  `json:"username"`
	Target     float64 `json:"target"`
	Strategies any     `json:"strategies"`
	Timestamp  float64 `json:"timestamp"`
}
