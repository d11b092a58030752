package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNegotiate(t *testing.T) {
	tests := []struct {
		name           string
		preference     string
		acceptLanguage string
		want           Locale
	}{
		{"explicit spanish preference", "es", "", LocaleSpanish},
		{"preference wins over header", "es", "en-US,en;q=0.9", LocaleSpanish},
		{"spanish header", "", "es-MX,es;q=0.9", LocaleSpanish},
		{"english header", "", "en-US,en;q=0.9", LocaleEnglish},
		{"unsupported falls back to english", "", "fr-FR", LocaleEnglish},
		{"empty falls back to english", "", "", LocaleEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Negotiate(tt.preference, tt.acceptLanguage))
		})
	}
}

func TestPick(t *testing.T) {
	assert.Equal(t, "hola", LocaleSpanish.Pick("hello", "hola"))
	assert.Equal(t, "hello", LocaleSpanish.Pick("hello", ""))
	assert.Equal(t, "hello", LocaleEnglish.Pick("hello", "hola"))
}
