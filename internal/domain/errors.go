package domain

import (
	"errors"
	"fmt"
)

// Failure taxonomy. Handlers map each sentinel onto a distinct user-facing
// message; remote failures on frame routes are always caught and rendered,
// never surfaced as a server error.
var (
	ErrValidation           = errors.New("invalid input")
	ErrCurrencyNotSupported = errors.New("currency not supported on chain")
	ErrUserNotFound         = errors.New("user not found")
	ErrSessionNotFound      = errors.New("payment session not found")
	ErrRemoteUnavailable    = errors.New("remote service unavailable")
	ErrRetriesExhausted     = errors.New("retries exhausted")
	ErrMalformedResponse    = errors.New("malformed remote response")
)

// HTTPStatusError carries the status code of a failed remote call. It
// unwraps to ErrRemoteUnavailable so callers can match on the sentinel.
type HTTPStatusError struct {
	Status int
	Body   string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("remote returned status %d: %s", e.Status, e.Body)
}

func (e *HTTPStatusError) Unwrap() error {
	return ErrRemoteUnavailable
}
