package order

import (
	"time"

	"pubhouse-be/internal/cart"
)

// Record is the immutable snapshot written once per checkout. Every pricing
// field is captured as computed at order time and never recomputed later.
type Record struct {
	ID        string
	CreatedAt time.Time
	IP        string
	UserAgent string

	Name    string
	Phone   string
	Address string
	Comment string

	Lines []cart.Line

	Subtotal      float64
	Discount      float64
	SubtotalAfter float64

	DeliveryMethod      string
	DeliveryFee         float64
	PickupDiscountPct   float64
	PickupDiscountValue float64
	Total               float64

	PromoCode   string
	PromoStatus string

	PaymentMethod string
	ChangeFrom    float64
}
