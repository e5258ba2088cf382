package checkout

import "pubhouse-be/internal/site"

type DeliveryMethod string

const (
	DeliveryCourier DeliveryMethod = "delivery"
	DeliveryPickup  DeliveryMethod = "pickup"
)

// ParseDeliveryMethod coerces anything outside the enumerated set to the
// default delivery method.
func ParseDeliveryMethod(s string) DeliveryMethod {
	if DeliveryMethod(s) == DeliveryPickup {
		return DeliveryPickup
	}
	return DeliveryCourier
}

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

// ParsePaymentMethod coerces anything outside the enumerated set to card.
func ParsePaymentMethod(s string) PaymentMethod {
	if PaymentMethod(s) == PaymentCash {
		return PaymentCash
	}
	return PaymentCard
}

// Quote is the full pricing breakdown for a cart.
type Quote struct {
	DeliveryMethod      DeliveryMethod `json:"delivery_method"`
	Subtotal            float64        `json:"subtotal"`
	Discount            float64        `json:"discount"`
	SubtotalAfter       float64        `json:"subtotal_after"`
	DeliveryFee         float64        `json:"delivery_fee"`
	PickupDiscountPct   float64        `json:"pickup_discount_pct"`
	PickupDiscountValue float64        `json:"pickup_discount_value"`
	Total               float64        `json:"total"`
}

// Price combines subtotal, promo discount and the site delivery rules into
// a final total. The free-delivery threshold is checked against the
// discounted subtotal on every path.
func Price(subtotal, discount float64, cfg site.CartConfig, method DeliveryMethod) Quote {
	q := Quote{DeliveryMethod: method, Subtotal: subtotal, Discount: discount}

	q.SubtotalAfter = subtotal - discount
	if q.SubtotalAfter < 0 {
		q.SubtotalAfter = 0
	}

	switch method {
	case DeliveryPickup:
		q.PickupDiscountPct = cfg.PickupDiscount
		q.PickupDiscountValue = q.SubtotalAfter * cfg.PickupDiscount / 100
		if q.PickupDiscountValue < 0 {
			q.PickupDiscountValue = 0
		}
		q.Total = q.SubtotalAfter - q.PickupDiscountValue
		if q.Total < 0 {
			q.Total = 0
		}
	default:
		if q.SubtotalAfter > 0 && q.SubtotalAfter >= cfg.FreeFrom {
			q.DeliveryFee = 0
		} else {
			q.DeliveryFee = cfg.DeliveryPrice
		}
		q.Total = q.SubtotalAfter + q.DeliveryFee
	}
	return q
}

// Input is the checkout form plus request metadata.
type Input struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Comment string `json:"comment"`

	DeliveryMethod string `json:"delivery_method"`
	PaymentMethod  string `json:"payment_method"`
	ChangeFrom     string `json:"change_from"`

	IP        string `json:"-"`
	UserAgent string `json:"-"`
}
