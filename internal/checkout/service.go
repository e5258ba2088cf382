package checkout

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pubhouse-be/internal/cart"
	"pubhouse-be/internal/logger"
	"pubhouse-be/internal/notify"
	"pubhouse-be/internal/order"
	"pubhouse-be/internal/promo"
	"pubhouse-be/internal/site"
)

// Service turns a session cart into a finalized, persisted order.
type Service interface {
	Quote(ctx context.Context, sessionID, deliveryMethod string) (*Quote, error)
	Submit(ctx context.Context, sessionID string, in Input) (*order.Record, error)
}

type service struct {
	store    cart.Store
	promos   promo.Service
	site     site.Repository
	orders   order.Repository
	notifier notify.Notifier
}

func NewService(
	store cart.Store,
	promos promo.Service,
	siteRepo site.Repository,
	orders order.Repository,
	notifier notify.Notifier,
) Service {
	return &service{
		store:    store,
		promos:   promos,
		site:     siteRepo,
		orders:   orders,
		notifier: notifier,
	}
}

// Quote prices the current cart for the chosen delivery method without any
// side effects.
func (s *service) Quote(ctx context.Context, sessionID, deliveryMethod string) (*Quote, error) {
	st, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	subtotal := st.Subtotal()
	var discount float64
	if app := s.promos.Evaluate(ctx, st.PromoCode, subtotal); app.Status == promo.StatusOK {
		discount = app.Discount
	}

	q := Price(subtotal, discount, s.site.CartConfig(ctx), ParseDeliveryMethod(deliveryMethod))
	return &q, nil
}

// Submit validates the checkout form, prices the cart, records the order,
// bumps promo usage when a discount was granted, clears the session and
// fires the notification. Notification failure never rolls the order back.
func (s *service) Submit(ctx context.Context, sessionID string, in Input) (*order.Record, error) {
	st, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if st.Empty() {
		return nil, invalid("cart", "cart is empty")
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	in.Comment = strings.TrimSpace(in.Comment)

	if in.Name == "" {
		return nil, invalid("name", "name is required")
	}
	if in.Phone == "" {
		return nil, invalid("phone", "phone is required")
	}

	deliveryMethod := ParseDeliveryMethod(in.DeliveryMethod)
	paymentMethod := ParsePaymentMethod(in.PaymentMethod)

	switch deliveryMethod {
	case DeliveryPickup:
		// Address is meaningless for pickup and is not recorded.
		in.Address = ""
	default:
		if in.Address == "" {
			return nil, invalid("address", "delivery address is required")
		}
	}

	subtotal := st.Subtotal()
	app := s.promos.Evaluate(ctx, st.PromoCode, subtotal)
	var discount float64
	if app.Status == promo.StatusOK {
		discount = app.Discount
	}

	q := Price(subtotal, discount, s.site.CartConfig(ctx), deliveryMethod)

	var changeFrom float64
	if paymentMethod == PaymentCash {
		changeFrom, err = strconv.ParseFloat(strings.TrimSpace(in.ChangeFrom), 64)
		if err != nil {
			return nil, invalid("change_from", "change amount must be a number")
		}
		if changeFrom < q.Total {
			return nil, invalid("change_from", "change amount is less than the order total")
		}
	}

	rec := &order.Record{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		IP:        in.IP,
		UserAgent: in.UserAgent,

		Name:    in.Name,
		Phone:   in.Phone,
		Address: in.Address,
		Comment: in.Comment,

		Lines: st.Lines,

		Subtotal:      q.Subtotal,
		Discount:      q.Discount,
		SubtotalAfter: q.SubtotalAfter,

		DeliveryMethod:      string(deliveryMethod),
		DeliveryFee:         q.DeliveryFee,
		PickupDiscountPct:   q.PickupDiscountPct,
		PickupDiscountValue: q.PickupDiscountValue,
		Total:               q.Total,

		PromoCode:   app.Code,
		PromoStatus: string(app.Status),

		PaymentMethod: string(paymentMethod),
		ChangeFrom:    changeFrom,
	}

	if err := s.orders.Append(ctx, rec); err != nil {
		return nil, err
	}

	log := logger.FromCtx(ctx)

	if app.Status == promo.StatusOK && app.Discount > 0 {
		if err := s.promos.IncrementUsage(ctx, app.Code); err != nil {
			log.Error("promo usage increment failed",
				zap.String("code", app.Code), zap.Error(err))
		}
	}

	if err := s.store.Delete(ctx, sessionID); err != nil {
		log.Warn("session clear failed", zap.Error(err))
	}

	if err := s.notifier.Send(ctx, order.FormatNotification(rec)); err != nil {
		if errors.Is(err, notify.ErrNotConfigured) {
			log.Debug("order notification skipped, channel not configured")
		} else {
			log.Warn("order notification failed", zap.String("order_id", rec.ID), zap.Error(err))
		}
	}

	return rec, nil
}
