package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrTransport indicates the quote source could not be reached at all
// (network, DNS, timeout).
var ErrTransport = errors.New("quote source unreachable")

// ErrUpstreamRejected indicates the quote source responded but did not
// report success, or the payload was unusable.
var ErrUpstreamRejected = errors.New("quote source rejected request")

// ErrConfiguration indicates the quote source settings are missing or
// unusable. It surfaces to the user exactly like a transport failure.
var ErrConfiguration = errors.New("quote source not configured")

// IsFetchError reports whether err belongs to the rate-fetch taxonomy.
func IsFetchError(err error) bool {
	return errors.Is(err, ErrTransport) || errors.Is(err, ErrUpstreamRejected) || errors.Is(err, ErrConfiguration)
}
