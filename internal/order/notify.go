package order

import (
	"fmt"
	"html"
	"strings"
)

// FormatNotification renders the human-readable order message sent to the
// notification channel (Telegram HTML parse mode).
func FormatNotification(r *Record) string {
	esc := html.EscapeString

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line("<b>\U0001F9FE New order</b>")
	line("%s", r.CreatedAt.Format("2006-01-02 15:04"))
	line("────────────")

	line("\U0001F464 <b>Customer:</b> %s", esc(r.Name))
	line("\U0001F4DE <b>Phone:</b> %s", esc(r.Phone))
	if r.DeliveryMethod == "pickup" {
		line("\U0001F3EA <b>Pickup</b>")
	} else {
		line("\U0001F4CD <b>Address:</b> %s", esc(r.Address))
	}
	if r.Comment != "" {
		line("\U0001F4DD <b>Comment:</b> %s", esc(r.Comment))
	}

	line("────────────")
	line("<b>Items:</b>")
	for _, l := range r.Lines {
		variant := ""
		if l.Variant != "" {
			variant = fmt.Sprintf(" <i>(%s)</i>", esc(l.Variant))
		}
		line("• %s%s — %d × %s = <b>%s</b>",
			esc(l.Name), variant, l.Qty, money(l.UnitPrice), money(l.UnitPrice*float64(l.Qty)))
	}

	line("────────────")
	line("Subtotal: <b>%s</b>", money(r.Subtotal))
	if r.Discount > 0 {
		line("Promo %s: <b>-%s</b>", esc(r.PromoCode), money(r.Discount))
	}
	if r.DeliveryMethod == "pickup" {
		if r.PickupDiscountValue > 0 {
			line("Pickup discount (%.0f%%): <b>-%s</b>", r.PickupDiscountPct, money(r.PickupDiscountValue))
		}
	} else {
		line("Delivery: <b>%s</b>", money(r.DeliveryFee))
	}
	if r.PaymentMethod == "cash" {
		line("Payment: cash, change from <b>%s</b>", money(r.ChangeFrom))
	} else {
		line("Payment: card")
	}
	b.WriteString(fmt.Sprintf("Total: <b>%s</b>", money(r.Total)))

	return b.String()
}
