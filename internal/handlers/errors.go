package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pubhouse-be/internal/auth"
	"pubhouse-be/internal/booking"
	"pubhouse-be/internal/cart"
	"pubhouse-be/internal/checkout"
	"pubhouse-be/internal/menu"
	"pubhouse-be/internal/promo"
)

// respondError maps domain errors onto HTTP statuses with a JSON body. A
// checkout validation error additionally names the offending field.
func respondError(c *gin.Context, err error) {
	var verr *checkout.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
		return
	}

	switch {
	case errors.Is(err, menu.ErrCategoryNotFound),
		errors.Is(err, menu.ErrSubsectionNotFound),
		errors.Is(err, menu.ErrItemNotFound),
		errors.Is(err, menu.ErrVariantNotFound),
		errors.Is(err, menu.ErrPriceUnavailable),
		errors.Is(err, cart.ErrLineNotFound),
		errors.Is(err, promo.ErrCodeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrNameRequired),
		errors.Is(err, booking.ErrPhoneRequired),
		errors.Is(err, booking.ErrDateRequired),
		errors.Is(err, booking.ErrTimeRequired),
		errors.Is(err, booking.ErrPartyTooSmall),
		errors.Is(err, auth.ErrPasswordTooShort),
		errors.Is(err, auth.ErrPasswordMismatch),
		errors.Is(err, promo.ErrCodeEmpty):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
