package site

import (
	"context"
	"errors"
	"os"
	"sync"

	"go.uber.org/zap"

	"pubhouse-be/internal/logger"
	"pubhouse-be/internal/storage"
)

// Repository loads and saves the site settings document.
type Repository interface {
	Load(ctx context.Context) (Settings, error)
	Save(ctx context.Context, s Settings) error
	CartConfig(ctx context.Context) CartConfig
}

type fileRepository struct {
	path string
	mu   sync.Mutex
}

func NewRepository(path string) Repository {
	return &fileRepository{path: path}
}

// Load decodes site.json over the defaults, so absent fields keep their
// default values. Missing or malformed documents degrade to defaults.
func (r *fileRepository) Load(ctx context.Context) (Settings, error) {
	s := DefaultSettings()
	if err := storage.ReadJSON(r.path, &s); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.FromCtx(ctx).Warn("site settings unreadable, using defaults", zap.Error(err))
		}
		return DefaultSettings(), nil
	}
	s.Cart = clampCart(s.Cart)
	return s, nil
}

func (r *fileRepository) Save(_ context.Context, s Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.Cart = clampCart(s.Cart)
	return storage.WriteJSONAtomic(r.path, s)
}

// CartConfig is a convenience accessor used on every cart view.
func (r *fileRepository) CartConfig(ctx context.Context) CartConfig {
	s, _ := r.Load(ctx)
	return s.Cart
}

func clampCart(c CartConfig) CartConfig {
	if c.DeliveryPrice < 0 {
		c.DeliveryPrice = 0
	}
	if c.FreeFrom < 0 {
		c.FreeFrom = 0
	}
	if c.PickupDiscount < 0 {
		c.PickupDiscount = 0
	}
	return c
}
