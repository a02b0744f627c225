package domain

import "errors"

// Closed error taxonomy for expected outcomes. Services return these as
// values; the HTTP layer is the only place they are mapped to status codes.
var (
	// ErrNotFound covers a missing enrollment, ticket or hotel record, and
	// an empty hotel catalog.
	ErrNotFound = errors.New("not found")

	// ErrPaymentRequired means a ticket exists but fails the eligibility
	// conjunction (unpaid, remote, or without hotel accommodation).
	ErrPaymentRequired = errors.New("payment required")

	// ErrValidation marks a malformed input identifier.
	ErrValidation = errors.New("invalid input")
)
