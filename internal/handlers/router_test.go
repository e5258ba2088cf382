package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"pubhouse-be/internal/auth"
	"pubhouse-be/internal/booking"
	"pubhouse-be/internal/cart"
	"pubhouse-be/internal/checkout"
	"pubhouse-be/internal/menu"
	"pubhouse-be/internal/notify"
	"pubhouse-be/internal/order"
	"pubhouse-be/internal/promo"
	"pubhouse-be/internal/session"
	"pubhouse-be/internal/site"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter assembles the full application against a temp data dir, an
// in-memory session store and an unconfigured notification channel.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	dir := t.TempDir()

	siteRepo := site.NewRepository(filepath.Join(dir, "site.json"))
	menuSvc := menu.NewService(menu.NewRepository(filepath.Join(dir, "menu.json")))
	promoSvc := promo.NewService(promo.NewRepository(filepath.Join(dir, "promos.json")))
	orderRepo := order.NewRepository(filepath.Join(dir, "orders.csv"))
	bookingSvc := booking.NewService(booking.NewRepository(filepath.Join(dir, "bookings.csv")))
	store := session.NewMemoryStore(time.Hour)
	notifier := notify.NewTelegram(siteRepo, "", "")

	ctx := context.Background()
	assert.NoError(t, promoSvc.Upsert(ctx, promo.Code{
		Code: "SAVE10", Type: promo.TypePercent, Value: 10, Active: true,
	}))

	credsRepo := auth.NewCredentialsRepository(filepath.Join(dir, "admin.json"))
	hash, err := auth.HashPassword("hunter99")
	assert.NoError(t, err)
	assert.NoError(t, credsRepo.Save(ctx, auth.Credentials{Username: "admin", PasswordHash: hash}))
	authSvc := auth.NewService(credsRepo, testSecret)

	cartSvc := cart.NewService(store, menuSvc, promoSvc)
	checkoutSvc := checkout.NewService(store, promoSvc, siteRepo, orderRepo, notifier)

	public := NewPublicHandler(menuSvc, siteRepo, bookingSvc)
	carts := NewCartHandler(cartSvc, checkoutSvc)
	admin := NewAdminHandler(authSvc, siteRepo, menuSvc, promoSvc)

	return SetupRouter(RouterConfig{JWTSecret: testSecret, SessionTTL: 3600}, public, carts, admin)
}

func doJSON(r *gin.Engine, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestPublicEndpoints(t *testing.T) {
	r := newTestRouter(t)

	t.Run("health", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/healthz", nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("menu", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/menu", nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, decode(t, w), "Beer")
	})

	t.Run("site settings are public without credentials", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/site", nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, "The Pub House", body["name"])
	})
}

func TestCartFlow(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/cart/add",
		gin.H{"category": "Beer", "item_idx": 0, "qty": 2}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Reuse the issued session cookie for the rest of the flow.
	cookies := w.Result().Cookies()
	assert.NotEmpty(t, cookies)

	body := decode(t, w)
	assert.Equal(t, 2.0, body["count"])
	assert.Equal(t, 36.0, body["subtotal"])

	t.Run("count follows the session", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/cart/count", nil, cookies)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 2.0, decode(t, w)["count"])
	})

	t.Run("a fresh session sees an empty cart", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/cart/count", nil, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0.0, decode(t, w)["count"])
	})

	t.Run("promo applies against the session cart", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/cart/promo", gin.H{"code": "save10"}, cookies)
		assert.Equal(t, http.StatusOK, w.Code)

		promoBody := decode(t, w)["promo"].(map[string]any)
		assert.Equal(t, "ok", promoBody["status"])
		assert.InDelta(t, 3.6, promoBody["discount"], 0.001)
	})

	t.Run("cart view includes a quote", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/api/cart", nil, cookies)
		assert.Equal(t, http.StatusOK, w.Code)

		quote := decode(t, w)["quote"].(map[string]any)
		assert.InDelta(t, 32.4, quote["subtotal_after"], 0.001)
		assert.Equal(t, 200.0, quote["delivery_fee"])
	})

	t.Run("adding an unknown item fails", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/cart/add",
			gin.H{"category": "Wine", "item_idx": 0}, cookies)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("submitting the order clears the cart", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/order", gin.H{
			"name":            "Ann",
			"phone":           "+1234567",
			"address":         "Main st 1",
			"delivery_method": "delivery",
			"payment_method":  "card",
		}, cookies)
		assert.Equal(t, http.StatusOK, w.Code)

		body := decode(t, w)
		assert.Equal(t, "accepted", body["status"])
		assert.NotEmpty(t, body["order_id"])
		assert.InDelta(t, 232.4, body["total"], 0.001)

		after := doJSON(r, http.MethodGet, "/api/cart/count", nil, cookies)
		assert.Equal(t, 0.0, decode(t, after)["count"])
	})
}

func TestBookingEndpoint(t *testing.T) {
	r := newTestRouter(t)

	t.Run("valid booking is accepted", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/booking", gin.H{
			"name": "Ann", "phone": "+1234567",
			"date": "2025-06-01", "time": "19:00", "size": 4,
		}, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing phone is rejected", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/booking", gin.H{
			"name": "Ann", "date": "2025-06-01", "time": "19:00", "size": 4,
		}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminAuth(t *testing.T) {
	r := newTestRouter(t)

	t.Run("guard rejects anonymous requests", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/admin/settings", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("bad credentials", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/admin/login",
			gin.H{"username": "admin", "password": "wrong"}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("login then access", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/admin/login",
			gin.H{"username": "admin", "password": "hunter99"}, nil)
		assert.Equal(t, http.StatusOK, w.Code)

		token, _ := decode(t, w)["token"].(string)
		assert.NotEmpty(t, token)

		req := httptest.NewRequest(http.MethodGet, "/admin/settings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "no-store, no-cache, must-revalidate, max-age=0",
			rec.Header().Get("Cache-Control"))
	})
}
