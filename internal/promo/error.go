package promo

import "errors"

var (
	ErrCodeNotFound = errors.New("promo code not found")
	ErrCodeEmpty    = errors.New("promo code is empty")
)
