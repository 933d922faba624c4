package models

// BookStat is derived from rating facts on demand; it is never stored.
// A book with no ratings has the zero value (average 0), not a missing entry.
type BookStat struct {
	Sum     int     `json:"sum"`
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
}
