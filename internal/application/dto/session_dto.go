// Package dto contains data transfer objects.
package dto

import "github.com/burakkgenccc/package-express/internal/domain/valueobject"

// SessionStatus describes how a session ended.
type SessionStatus string

const (
	StatusCompleted    SessionStatus = "completed"     // A quote was printed
	StatusInvalidInput SessionStatus = "invalid_input" // A value could not be parsed
	StatusTooHeavy     SessionStatus = "too_heavy"     // Weight rule rejected the package
	StatusTooBig       SessionStatus = "too_big"       // Size rule rejected the package
	StatusFailed       SessionStatus = "failed"        // Unexpected failure
)

// SessionResult represents the outcome of one console session.
type SessionResult struct {
	// SessionID is the unique identifier of the session.
	SessionID string `json:"session_id"`

	// Status indicates how the session ended.
	Status SessionStatus `json:"status"`

	// Field is the field whose input was malformed, if any.
	Field string `json:"field,omitempty"`

	// Total is the unrounded shipping cost when the session completed.
	Total float64 `json:"total"`

	// Cost is Total in whole cents, set only when it fits in cents.
	Cost *valueobject.Money `json:"cost,omitempty"`

	// Err is the error that ended the session early, if any.
	Err error `json:"-"`
}

// Completed reports whether the session produced a quote.
func (r SessionResult) Completed() bool {
	return r.Status == StatusCompleted
}
