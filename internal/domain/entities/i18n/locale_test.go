package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLocaleIsTotal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Locale
	}{
		{"exact english", "en", LocaleEN},
		{"exact indonesian", "id", LocaleID},
		{"empty input", "", LocaleEN},
		{"whitespace only", "   ", LocaleEN},
		{"mixed case", "EN", LocaleEN},
		{"regional variant", "id-ID", LocaleID},
		{"accept-language style", "en-US,en;q=0.9", LocaleEN},
		{"unrelated text", "fr", LocaleEN},
		{"garbage", "!!not-a-locale!!", LocaleEN},
		{"leading whitespace", "  id", LocaleID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeLocale(tt.input)
			assert.Equal(t, tt.want, got)

			// The result is always a member of the supported set.
			assert.True(t, IsSupported(string(got)))
		})
	}
}

func TestIsSupportedRequiresExactToken(t *testing.T) {
	assert.True(t, IsSupported("en"))
	assert.True(t, IsSupported("id"))

	// Detection normalizes these; routing must not.
	assert.False(t, IsSupported("EN"))
	assert.False(t, IsSupported("en-US"))
	assert.False(t, IsSupported("fr"))
	assert.False(t, IsSupported(""))
}
