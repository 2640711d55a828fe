package leads

import "errors"

var (
	// ErrPersistFailed is returned when the lead document could not be written.
	ErrPersistFailed = errors.New("leads: persist failed")

	// ErrLeadNotFound is returned when a lead is not found.
	ErrLeadNotFound = errors.New("leads: lead not found")
)
