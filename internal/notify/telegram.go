package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pubhouse-be/internal/site"
)

const defaultAPIBase = "https://api.telegram.org"

// SettingsSource yields the current site settings, so credential changes in
// the admin panel apply without a restart.
type SettingsSource interface {
	Load(ctx context.Context) (site.Settings, error)
}

// Telegram sends order notifications through the Bot API. Environment
// overrides win over the stored settings.
type Telegram struct {
	settings SettingsSource
	client   *http.Client
	apiBase  string

	tokenOverride string
	chatOverride  string
}

func NewTelegram(settings SettingsSource, tokenOverride, chatOverride string) *Telegram {
	return &Telegram{
		settings: settings,
		// The notification dispatch is the only bounded external call;
		// keep it short so checkout latency stays predictable.
		client:        &http.Client{Timeout: 6 * time.Second},
		apiBase:       defaultAPIBase,
		tokenOverride: tokenOverride,
		chatOverride:  chatOverride,
	}
}

func (t *Telegram) Send(ctx context.Context, text string) error {
	token, chatID, err := t.credentials(ctx)
	if err != nil {
		return err
	}

	form := url.Values{
		"chat_id":                  {chatID},
		"text":                     {text},
		"parse_mode":               {"HTML"},
		"disable_web_page_preview": {"true"},
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("telegram api status %d", resp.StatusCode)
	}
	return nil
}

func (t *Telegram) credentials(ctx context.Context) (token, chatID string, err error) {
	token = strings.TrimSpace(t.tokenOverride)
	chatID = strings.TrimSpace(t.chatOverride)
	if token != "" && chatID != "" {
		return token, chatID, nil
	}

	settings, err := t.settings.Load(ctx)
	if err != nil {
		return "", "", err
	}
	tg := settings.Notifications.Telegram
	if token == "" {
		token = strings.TrimSpace(tg.BotToken)
	}
	if chatID == "" {
		chatID = strings.TrimSpace(tg.ChatID)
	}

	enabled := tg.Enabled || (token != "" && chatID != "")
	if !enabled || token == "" || chatID == "" {
		return "", "", ErrNotConfigured
	}
	return token, chatID, nil
}
