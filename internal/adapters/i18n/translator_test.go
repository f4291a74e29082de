package i18n

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTranslator(t *testing.T) *Translator {
	t.Helper()
	tr, err := NewTranslator("en", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return tr
}

func TestTranslator_ShareCopy(t *testing.T) {
	tr := newTestTranslator(t)

	tests := []struct {
		key  string
		data map[string]any
		want string
	}{
		{key: "share.header", data: map[string]any{"SiteName": "NFA Kuwait"}, want: "📢 *NFA Kuwait Event Announcement*"},
		{key: "share.event", data: map[string]any{"Title": "Pongal & Friends"}, want: "*Event:* Pongal & Friends"},
		{key: "share.date", data: map[string]any{"Date": "14 Jan 2026"}, want: "*Date:* 14 Jan 2026"},
		{key: "share.visit", data: map[string]any{"SiteURL": "https://example.org"}, want: "🌐 Visit Our Website:\nhttps://example.org"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.T("en", tt.key, tt.data))
		})
	}
}

func TestTranslator_FallsBackToDefaultLocale(t *testing.T) {
	tr := newTestTranslator(t)
	assert.Equal(t, "*Date:* TBA", tr.T("ta", "share.date", map[string]any{"Date": "TBA"}))
}

func TestTranslator_UnknownKeyReturnsKey(t *testing.T) {
	tr := newTestTranslator(t)
	assert.Equal(t, "share.missing", tr.T("en", "share.missing", nil))
	assert.Equal(t, "", tr.T("en", "", nil))
}

func TestNewTranslator_InvalidLocaleDefaultsToEnglish(t *testing.T) {
	tr, err := NewTranslator("not a locale!", nil)
	require.NoError(t, err)
	assert.Equal(t, "en", tr.defaultLanguage.String())
}
