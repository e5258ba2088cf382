package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Run("generate then parse", func(t *testing.T) {
		token, err := GenerateToken(testSecret, "admin")
		assert.NoError(t, err)

		claims, err := ParseToken(testSecret, token)
		assert.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("wrong secret fails", func(t *testing.T) {
		token, err := GenerateToken(testSecret, "admin")
		assert.NoError(t, err)

		_, err = ParseToken("other-secret", token)
		assert.Error(t, err)
	})

	t.Run("garbage token fails", func(t *testing.T) {
		_, err := ParseToken(testSecret, "not.a.token")
		assert.Error(t, err)
	})

	t.Run("empty secret is refused", func(t *testing.T) {
		_, err := GenerateToken("", "admin")
		assert.Error(t, err)

		_, err = ParseToken("", "whatever")
		assert.Error(t, err)
	})
}

func TestExtractAccessToken(t *testing.T) {
	t.Run("cookie wins", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/admin/settings", nil)
		r.AddCookie(&http.Cookie{Name: "access_token", Value: "from-cookie"})
		r.Header.Set("Authorization", "Bearer from-header")

		assert.Equal(t, "from-cookie", ExtractAccessToken(r))
	})

	t.Run("falls back to the bearer header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/admin/settings", nil)
		r.Header.Set("Authorization", "Bearer from-header")

		assert.Equal(t, "from-header", ExtractAccessToken(r))
	})

	t.Run("nothing set", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/admin/settings", nil)
		assert.Empty(t, ExtractAccessToken(r))
	})
}
