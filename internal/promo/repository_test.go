package promo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepository_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file is an empty catalog", func(t *testing.T) {
		repo := NewRepository(filepath.Join(t.TempDir(), "promos.json"))
		codes, err := repo.Load(ctx)
		assert.NoError(t, err)
		assert.Empty(t, codes)
	})

	t.Run("malformed file degrades to empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "promos.json")
		assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		codes, err := NewRepository(path).Load(ctx)
		assert.NoError(t, err)
		assert.Empty(t, codes)
	})
}

func TestRepository_Normalization(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(filepath.Join(t.TempDir(), "promos.json"))

	err := repo.Save(ctx, []Code{
		{Code: " save10 ", Type: TypePercent, Value: 10, Active: true},
		{Code: "OTHER", Type: TypeFixed, Value: -5, MinSubtotal: -100, MaxUses: -1, Used: -2, Active: true},
		{Code: "SAVE10", Type: TypePercent, Value: 15, Active: false},
		{Code: "", Type: TypeFixed, Value: 1},
	})
	assert.NoError(t, err)

	codes, err := repo.Load(ctx)
	assert.NoError(t, err)
	assert.Len(t, codes, 2)

	// Duplicate SAVE10: the last record wins, at the first position.
	assert.Equal(t, "SAVE10", codes[0].Code)
	assert.Equal(t, 15.0, codes[0].Value)
	assert.False(t, codes[0].Active)

	// Negative numeric fields are clamped to zero.
	other := codes[1]
	assert.Equal(t, "OTHER", other.Code)
	assert.Zero(t, other.Value)
	assert.Zero(t, other.MinSubtotal)
	assert.Zero(t, other.MaxUses)
	assert.Zero(t, other.Used)
}
