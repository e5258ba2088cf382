package menu

import "errors"

var (
	ErrCategoryNotFound   = errors.New("menu category not found")
	ErrSubsectionNotFound = errors.New("menu subsection not found")
	ErrItemNotFound       = errors.New("menu item not found")
	ErrVariantNotFound    = errors.New("menu item variant not found")
	ErrPriceUnavailable   = errors.New("menu item has no usable price")
)
