package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/i18n"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func localeEchoRouter() *gin.Engine {
	r := gin.New()

	detect := r.Group("/api")
	detect.Use(LocaleMiddleware())
	detect.GET("/echo", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"locale": string(GetLocale(c))})
	})

	strict := r.Group("/pages/:locale")
	strict.Use(LocaleMiddleware())
	strict.GET("/echo", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"locale": string(GetLocale(c))})
	})

	return r
}

func TestLocaleDetection(t *testing.T) {
	r := localeEchoRouter()

	tests := []struct {
		name           string
		url            string
		acceptLanguage string
		want           string
	}{
		{"no signal defaults to english", "/api/echo", "", `{"locale":"en"}`},
		{"query param wins", "/api/echo?locale=id", "en", `{"locale":"id"}`},
		{"query param normalizes", "/api/echo?locale=ID-id", "", `{"locale":"id"}`},
		{"accept-language fallback", "/api/echo", "id-ID,id;q=0.9", `{"locale":"id"}`},
		{"unsupported input defaults", "/api/echo?locale=fr", "", `{"locale":"en"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, tt.want, w.Body.String())
		})
	}
}

func TestLocalePathParamIsStrict(t *testing.T) {
	r := localeEchoRouter()

	t.Run("supported code resolves", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/pages/id/echo", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"locale":"id"}`, w.Body.String())
	})

	for _, token := range []string{"fr", "EN", "id-ID", "xx"} {
		t.Run("rejects "+token, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/pages/"+token+"/echo", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.JSONEq(t, `{"error":"unknown locale"}`, w.Body.String())
		})
	}
}

func TestGetLocaleOutsideMiddlewareReturnsDefault(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, i18n.DefaultLocale, GetLocale(c))
}
