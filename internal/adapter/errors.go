package adapter

import "errors"

// Errors returned by [HolidayProvider] implementations. Every non-2xx
// provider response wraps [ErrUnexpectedStatus] and, for the statuses listed
// below, additionally one of the more specific values.
var (
	ErrUnexpectedStatus    = errors.New("unexpected provider response status")
	ErrBadRequest          = errors.New("provider rejected the request")
	ErrNotFound            = errors.New("provider resource not found")
	ErrTooManyRequests     = errors.New("provider rate limit exceeded")
	ErrInternalServerError = errors.New("provider internal error")
	ErrBadGateway          = errors.New("provider unavailable")

	// ErrMalformedResponse is wrapped when a 2xx body cannot be decoded.
	ErrMalformedResponse = errors.New("malformed provider response")
)
