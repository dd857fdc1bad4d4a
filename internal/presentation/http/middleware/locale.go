// Package middleware provides HTTP middleware for the presentation layer.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/i18n"
)

const localeContextKey = "locale"

// LocaleMiddleware resolves the request locale. For routes carrying a
// :locale path param the token must be an exact supported code: an invalid
// prefix is a 404, not a silent fallback. Detection from the query string
// or Accept-Language instead normalizes, defaulting rather than failing.
func LocaleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := c.Param("locale"); token != "" {
			if !i18n.IsSupported(token) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown locale"})
				return
			}
			c.Set(localeContextKey, i18n.Locale(token))
			c.Next()
			return
		}

		raw := c.Query("locale")
		if raw == "" {
			raw = c.GetHeader("Accept-Language")
		}
		c.Set(localeContextKey, i18n.NormalizeLocale(raw))
		c.Next()
	}
}

// GetLocale returns the resolved locale for the request. Handlers behind
// LocaleMiddleware always get a supported value; elsewhere the default
// locale is returned.
func GetLocale(c *gin.Context) i18n.Locale {
	if value, exists := c.Get(localeContextKey); exists {
		if locale, ok := value.(i18n.Locale); ok {
			return locale
		}
	}
	return i18n.DefaultLocale
}
