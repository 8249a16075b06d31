package site

import "errors"

var (
	// ErrInitFailed indicates the module could not start; the view was
	// replaced with a static fallback message.
	ErrInitFailed = errors.New("site initialization failed")

	// ErrValidationFailed indicates per-field validation errors,
	// readable via FieldErrors.
	ErrValidationFailed = errors.New("validation failed")

	// ErrRateLimited indicates the submission window is exhausted.
	ErrRateLimited = errors.New("submission rate limit exceeded")

	// ErrSuspiciousInput indicates the submission was hard-rejected by
	// the input screen. The user-facing message stays deliberately
	// generic so detection rules are not revealed.
	ErrSuspiciousInput = errors.New("suspicious input rejected")

	// ErrSubmitFailed indicates the backend reported a failure; the
	// rejected input is preserved for retry.
	ErrSubmitFailed = errors.New("submission failed")
)
