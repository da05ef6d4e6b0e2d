package admin

import "errors"

var (
	ErrBadAccessCode   = errors.New("invalid access code")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUpdateFailed    = errors.New("booking status update failed")
)
