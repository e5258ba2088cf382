package order

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pubhouse-be/internal/storage"
)

// orderColumns is the preferred column order for the order log. The CSV log
// migrates older files in place when new columns appear, so the schema may
// grow without breaking previously written rows.
var orderColumns = []string{
	"created_at", "id", "ip", "ua",
	"customer", "cart",
	"subtotal", "discount", "subtotal_after",
	"delivery_method", "delivery_fee",
	"pickup_discount_pct", "pickup_discount_value",
	"total",
	"promo_code", "promo_status",
	"payment_method", "change_from",
}

// Repository appends finalized orders to the persistent log.
type Repository interface {
	Append(ctx context.Context, r *Record) error
}

type csvRepository struct {
	log *storage.CSVLog
}

func NewRepository(path string) Repository {
	return &csvRepository{log: storage.NewCSVLog(path)}
}

func (repo *csvRepository) Append(_ context.Context, r *Record) error {
	customer, err := json.Marshal(map[string]string{
		"name":    r.Name,
		"phone":   r.Phone,
		"address": r.Address,
		"comment": r.Comment,
	})
	if err != nil {
		return fmt.Errorf("encode customer: %w", err)
	}
	lines, err := json.Marshal(r.Lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}

	row := map[string]string{
		"created_at":            r.CreatedAt.Format(time.RFC3339),
		"id":                    r.ID,
		"ip":                    r.IP,
		"ua":                    r.UserAgent,
		"customer":              string(customer),
		"cart":                  string(lines),
		"subtotal":              money(r.Subtotal),
		"discount":              money(r.Discount),
		"subtotal_after":        money(r.SubtotalAfter),
		"delivery_method":       r.DeliveryMethod,
		"delivery_fee":          money(r.DeliveryFee),
		"pickup_discount_pct":   money(r.PickupDiscountPct),
		"pickup_discount_value": money(r.PickupDiscountValue),
		"total":                 money(r.Total),
		"promo_code":            r.PromoCode,
		"promo_status":          r.PromoStatus,
		"payment_method":        r.PaymentMethod,
		"change_from":           money(r.ChangeFrom),
	}
	return repo.log.Append(row, orderColumns)
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
