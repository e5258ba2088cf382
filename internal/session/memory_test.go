package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pubhouse-be/internal/cart"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown session reads as an empty cart", func(t *testing.T) {
		store := NewMemoryStore(time.Hour)

		st, err := store.Get(ctx, "nope")

		assert.NoError(t, err)
		assert.True(t, st.Empty())
	})

	t.Run("put then get round trips", func(t *testing.T) {
		store := NewMemoryStore(time.Hour)
		in := cart.State{
			Lines:     []cart.Line{{Category: "Beer", Name: "Pale Ale", UnitPrice: 18, Qty: 2}},
			PromoCode: "SAVE10",
		}

		assert.NoError(t, store.Put(ctx, "s1", in))

		out, err := store.Get(ctx, "s1")
		assert.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("sessions do not leak into each other", func(t *testing.T) {
		store := NewMemoryStore(time.Hour)
		assert.NoError(t, store.Put(ctx, "s1", cart.State{PromoCode: "SAVE10"}))

		out, err := store.Get(ctx, "s2")
		assert.NoError(t, err)
		assert.True(t, out.Empty())
		assert.Empty(t, out.PromoCode)
	})

	t.Run("delete clears the session", func(t *testing.T) {
		store := NewMemoryStore(time.Hour)
		assert.NoError(t, store.Put(ctx, "s1", cart.State{PromoCode: "SAVE10"}))
		assert.NoError(t, store.Delete(ctx, "s1"))

		out, err := store.Get(ctx, "s1")
		assert.NoError(t, err)
		assert.Empty(t, out.PromoCode)
	})

	t.Run("expired sessions read as empty", func(t *testing.T) {
		store := NewMemoryStore(time.Millisecond)
		assert.NoError(t, store.Put(ctx, "s1", cart.State{PromoCode: "SAVE10"}))

		time.Sleep(5 * time.Millisecond)

		out, err := store.Get(ctx, "s1")
		assert.NoError(t, err)
		assert.True(t, out.Empty())
	})
}
