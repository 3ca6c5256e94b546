package domain

import "errors"

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingNotPending = errors.New("booking not found or already processed")
)

var (
	ErrProviderNotSupported = errors.New("provider not supported")
	ErrProviderRequest      = errors.New("provider request failed")
)

var (
	ErrAuthRequired     = errors.New("authentication required")
	ErrValidation       = errors.New("validation error")
	ErrStoreUnavailable = errors.New("booking store unavailable")
)
