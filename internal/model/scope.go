package model

// Scope carries the per-request caller identity through use cases.
type Scope struct {
	UserID    string
	SessionID string
}
