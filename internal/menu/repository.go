package menu

import (
	"context"
	"errors"
	"os"
	"sync"

	"go.uber.org/zap"

	"pubhouse-be/internal/logger"
	"pubhouse-be/internal/storage"
)

// Repository loads and saves the whole menu document.
type Repository interface {
	Load(ctx context.Context) (Menu, error)
	Save(ctx context.Context, m Menu) error
}

type fileRepository struct {
	path string
	mu   sync.Mutex
}

func NewRepository(path string) Repository {
	return &fileRepository{path: path}
}

// Load reads menu.json. A missing or malformed document degrades to the demo
// menu rather than failing the request.
func (r *fileRepository) Load(ctx context.Context) (Menu, error) {
	var m Menu
	if err := storage.ReadJSON(r.path, &m); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.FromCtx(ctx).Warn("menu document unreadable, using demo menu", zap.Error(err))
		}
		return demoMenu(), nil
	}
	return m, nil
}

func (r *fileRepository) Save(_ context.Context, m Menu) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return storage.WriteJSONAtomic(r.path, m)
}

func demoMenu() Menu {
	price := 18.0
	return Menu{
		"Beer": {Items: []Item{
			{Name: "Pale Ale", Desc: "citrus, 5.2%", Price: &price},
		}},
	}
}
