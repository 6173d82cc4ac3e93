package usecase

import "errors"

var (
	// ErrInvalidInput marks caller mistakes such as an unknown view name.
	ErrInvalidInput = errors.New("invalid input")
	// ErrSourceUnavailable marks a missing or unreadable open-data tree. A
	// build failing with it leaves the previous warehouse in place.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrAuditFailed is returned alongside a report with failing checks.
	ErrAuditFailed = errors.New("audit failed")
)
