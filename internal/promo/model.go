package promo

import (
	"strings"
	"time"
)

type Type string

const (
	TypePercent Type = "percent"
	TypeFixed   Type = "fixed"
)

// Status is the outcome of checking a stored code against the current cart.
type Status string

const (
	StatusNone     Status = "none"
	StatusInvalid  Status = "invalid"
	StatusInactive Status = "inactive"
	StatusExpired  Status = "expired"
	StatusLimit    Status = "limit"
	StatusPending  Status = "pending"
	StatusOK       Status = "ok"
)

// Retained reports whether the session should keep offering the code.
// Pending codes stay stored so they re-check as the cart grows; dead codes
// are evicted immediately.
func (s Status) Retained() bool {
	return s == StatusPending || s == StatusOK
}

// expiresAtLayout is the calendar-date format of the expires_at field.
const expiresAtLayout = "2006-01-02"

type Code struct {
	Code        string  `json:"code"`
	Type        Type    `json:"type"`
	Value       float64 `json:"value"`
	MinSubtotal float64 `json:"min_subtotal"`
	ExpiresAt   string  `json:"expires_at,omitempty"`
	MaxUses     int     `json:"max_uses"`
	Used        int     `json:"used"`
	Active      bool    `json:"active"`
	Comment     string  `json:"comment,omitempty"`
}

// Application is the derived state of a code against a subtotal. It is
// recomputed on every cart view and never persisted.
type Application struct {
	Code     string  `json:"code"`
	Promo    *Code   `json:"promo,omitempty"`
	Discount float64 `json:"discount"`
	Status   Status  `json:"status"`
	Message  string  `json:"message,omitempty"`
}

// Normalize uppercases the stored code and removes surrounding whitespace.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// StatusOf evaluates the validation chain in strict precedence order:
// inactive, expired, usage limit, minimum subtotal, ok. First match wins.
func StatusOf(p Code, now time.Time, subtotal float64) Status {
	if !p.Active {
		return StatusInactive
	}
	if p.ExpiresAt != "" {
		if _, err := time.Parse(expiresAtLayout, p.ExpiresAt); err == nil {
			// Calendar-date comparison: the code is good through the whole
			// expiry day. ISO dates compare correctly as strings.
			if now.Format(expiresAtLayout) > p.ExpiresAt {
				return StatusExpired
			}
		}
	}
	if p.MaxUses > 0 && p.Used >= p.MaxUses {
		return StatusLimit
	}
	if subtotal < p.MinSubtotal {
		return StatusPending
	}
	return StatusOK
}

// DiscountFor computes the discount an ok-status code grants. The result is
// floored at zero and capped at the subtotal.
func DiscountFor(p Code, subtotal float64) float64 {
	var d float64
	switch p.Type {
	case TypePercent:
		d = subtotal * p.Value / 100
	case TypeFixed:
		d = p.Value
	}
	if d < 0 {
		return 0
	}
	if d > subtotal {
		return subtotal
	}
	return d
}
