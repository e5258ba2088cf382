package promo

import (
	"context"
	"errors"
	"os"
	"sync"

	"go.uber.org/zap"

	"pubhouse-be/internal/logger"
	"pubhouse-be/internal/storage"
)

// Repository loads and saves the promo catalog as a whole document.
type Repository interface {
	Load(ctx context.Context) ([]Code, error)
	Save(ctx context.Context, codes []Code) error
}

type fileRepository struct {
	path string
	mu   sync.Mutex
}

func NewRepository(path string) Repository {
	return &fileRepository{path: path}
}

// Load reads promos.json. Missing or malformed documents degrade to an empty
// catalog. The result is normalized: upper-cased unique codes, non-negative
// numeric fields.
func (r *fileRepository) Load(ctx context.Context) ([]Code, error) {
	var codes []Code
	if err := storage.ReadJSON(r.path, &codes); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.FromCtx(ctx).Warn("promo document unreadable, treating as empty", zap.Error(err))
		}
		return nil, nil
	}
	return normalize(codes), nil
}

func (r *fileRepository) Save(_ context.Context, codes []Code) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return storage.WriteJSONAtomic(r.path, normalize(codes))
}

// normalize collapses duplicate codes (last one wins), drops entries without
// a code, and clamps negative numeric fields to zero.
func normalize(codes []Code) []Code {
	out := make([]Code, 0, len(codes))
	index := make(map[string]int, len(codes))

	for _, c := range codes {
		c.Code = Normalize(c.Code)
		if c.Code == "" {
			continue
		}
		if c.Value < 0 {
			c.Value = 0
		}
		if c.MinSubtotal < 0 {
			c.MinSubtotal = 0
		}
		if c.MaxUses < 0 {
			c.MaxUses = 0
		}
		if c.Used < 0 {
			c.Used = 0
		}

		if i, ok := index[c.Code]; ok {
			out[i] = c
			continue
		}
		index[c.Code] = len(out)
		out = append(out, c)
	}
	return out
}
