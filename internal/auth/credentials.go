package auth

import (
	"context"
	"sync"

	"pubhouse-be/internal/storage"
)

// Credentials is the admin login document (admin.json). Only the hash is
// ever stored.
type Credentials struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}

type CredentialsRepository interface {
	Load(ctx context.Context) (Credentials, error)
	Save(ctx context.Context, c Credentials) error
}

type fileRepository struct {
	path string
	mu   sync.Mutex
}

func NewCredentialsRepository(path string) CredentialsRepository {
	return &fileRepository{path: path}
}

func (r *fileRepository) Load(_ context.Context) (Credentials, error) {
	var c Credentials
	if err := storage.ReadJSON(r.path, &c); err != nil {
		// No admin file means no admin login, not a server failure.
		return Credentials{}, nil
	}
	return c, nil
}

func (r *fileRepository) Save(_ context.Context, c Credentials) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return storage.WriteJSONAtomic(r.path, c)
}
