package translate

import (
	"context"
	"strings"
	"time"

	"google.golang.org/api/option"
	translatev2 "google.golang.org/api/translate/v2"

	"github.com/bloomandblossom/florist-backend/pkg/config"
	"github.com/bloomandblossom/florist-backend/pkg/enums"
	"github.com/bloomandblossom/florist-backend/pkg/logger"
)

// Provider translates a single text into the target language. The second
// return reports degraded output: true means the provider was skipped or
// failed and the caller received the deterministic fallback instead.
// Implementations never return an error; content writes must not fail on
// translation trouble.
type Provider interface {
	Translate(ctx context.Context, text string, lang enums.Language) (string, bool)
}

// Client calls the Google Translate v2 API with a fixed source language.
type Client struct {
	svc     *translatev2.Service
	timeout time.Duration
	logg    *logger.Logger
}

// New builds a Client. With no API key configured the client stays in
// fallback mode and never makes network calls.
func New(ctx context.Context, cfg config.TranslateConfig, logg *logger.Logger) (*Client, error) {
	client := &Client{
		timeout: cfg.CallTimeout,
		logg:    logg,
	}
	if cfg.APIKey == "" {
		if logg != nil {
			logg.Warn(ctx, "translate api key not configured, using fallback translations")
		}
		return client, nil
	}

	svc, err := translatev2.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, err
	}
	client.svc = svc
	return client, nil
}

// Translate returns the text in the target language. Whitespace-only input is
// returned unchanged without a provider call. Any provider error yields the
// fallback suffix form instead of an error.
func (c *Client) Translate(ctx context.Context, text string, lang enums.Language) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return text, false
	}
	if c.svc == nil {
		return Fallback(text, lang), true
	}

	callCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.svc.Translations.List([]string{text}, lang.String()).
		Source(enums.SourceLanguage).
		Format("text").
		Context(callCtx).
		Do()
	if err != nil {
		if c.logg != nil {
			warnCtx := c.logg.WithFields(ctx, map[string]any{
				"language": lang.String(),
				"error":    err.Error(),
			})
			c.logg.Warn(warnCtx, "translate call failed, using fallback")
		}
		return Fallback(text, lang), true
	}
	if len(resp.Translations) == 0 || resp.Translations[0].TranslatedText == "" {
		return Fallback(text, lang), true
	}
	return resp.Translations[0].TranslatedText, false
}

// Fallback is the deterministic degraded translation: the original text with
// an upper-cased language suffix.
func Fallback(text string, lang enums.Language) string {
	return text + " (" + strings.ToUpper(lang.String()) + ")"
}
