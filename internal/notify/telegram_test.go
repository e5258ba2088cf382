package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"pubhouse-be/internal/site"
)

type staticSettings struct {
	s site.Settings
}

func (f staticSettings) Load(context.Context) (site.Settings, error) {
	return f.s, nil
}

func settingsWithTelegram(token, chatID string, enabled bool) SettingsSource {
	s := site.DefaultSettings()
	s.Notifications.Telegram = site.TelegramConfig{
		Enabled:  enabled,
		BotToken: token,
		ChatID:   chatID,
	}
	return staticSettings{s: s}
}

func TestTelegram_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("posts the message to the bot endpoint", func(t *testing.T) {
		var gotPath, gotChatID, gotText, gotMode string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			assert.NoError(t, r.ParseForm())
			gotChatID = r.PostFormValue("chat_id")
			gotText = r.PostFormValue("text")
			gotMode = r.PostFormValue("parse_mode")
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		tg := NewTelegram(settingsWithTelegram("token123", "42", true), "", "")
		tg.apiBase = srv.URL

		err := tg.Send(ctx, "<b>order</b>")

		assert.NoError(t, err)
		assert.Equal(t, "/bottoken123/sendMessage", gotPath)
		assert.Equal(t, "42", gotChatID)
		assert.Equal(t, "<b>order</b>", gotText)
		assert.Equal(t, "HTML", gotMode)
	})

	t.Run("environment overrides win over stored settings", func(t *testing.T) {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		tg := NewTelegram(settingsWithTelegram("stored", "1", true), "env-token", "99")
		tg.apiBase = srv.URL

		assert.NoError(t, tg.Send(ctx, "hi"))
		assert.Equal(t, "/botenv-token/sendMessage", gotPath)
	})

	t.Run("non-2xx status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		tg := NewTelegram(settingsWithTelegram("token123", "42", true), "", "")
		tg.apiBase = srv.URL

		err := tg.Send(ctx, "hi")
		assert.ErrorContains(t, err, "403")
	})

	t.Run("unconfigured channel reports ErrNotConfigured", func(t *testing.T) {
		tg := NewTelegram(settingsWithTelegram("", "", false), "", "")

		err := tg.Send(ctx, "hi")
		assert.ErrorIs(t, err, ErrNotConfigured)
	})

	t.Run("disabled flag is overruled by full credentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		tg := NewTelegram(settingsWithTelegram("token123", "42", false), "", "")
		tg.apiBase = srv.URL

		assert.NoError(t, tg.Send(ctx, "hi"))
	})

	t.Run("enabled without a chat id reports ErrNotConfigured", func(t *testing.T) {
		tg := NewTelegram(settingsWithTelegram("token123", "", true), "", "")

		err := tg.Send(ctx, "hi")
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}
