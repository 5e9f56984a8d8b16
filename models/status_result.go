package models

// StatusResult is the transient outcome of one open/closed evaluation.
// ClosesIn is a formatted countdown ("1h 15m"), present only while the
// location is open and a closing boundary exists; always-open locations
// and every failure path leave it empty.
type StatusResult struct {
	IsOpen   bool   `json:"is_open"`
	ClosesIn string `json:"closes_in,omitempty"`
}
