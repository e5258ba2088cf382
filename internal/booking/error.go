package booking

import "errors"

var (
	ErrNameRequired  = errors.New("booking name is required")
	ErrPhoneRequired = errors.New("booking phone is required")
	ErrDateRequired  = errors.New("booking date is required")
	ErrTimeRequired  = errors.New("booking time is required")
	ErrPartyTooSmall = errors.New("party size must be at least 1")
)
