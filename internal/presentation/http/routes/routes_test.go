package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcontainer "github.com/rikzacraft11-art/alfabeauty-go/internal/application/container"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/domain/entities/i18n"
	store "github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/content"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/observability/logging"
	"github.com/rikzacraft11-art/alfabeauty-go/internal/infrastructure/persistence/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	logger, err := logging.NewChanneledLogger(logging.DefaultLoggerConfig())
	require.NoError(t, err)

	contentStore, err := store.Load("")
	require.NoError(t, err)

	db, err := database.NewConnection("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.EnsureSchema(db))

	return SetupRoutes(appcontainer.NewContainer(contentStore, db, logger))
}

func get(r *gin.Engine, url string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	w := get(newTestRouter(t), "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProductEndpoints(t *testing.T) {
	r := newTestRouter(t)

	t.Run("list", func(t *testing.T) {
		w := get(r, "/api/v1/products", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Count    int `json:"count"`
			Products []struct {
				Slug string `json:"slug"`
			} `json:"products"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotZero(t, resp.Count)
		assert.Len(t, resp.Products, resp.Count)
	})

	t.Run("filtered list", func(t *testing.T) {
		w := get(r, "/api/v1/products?audience=BARBER", nil)
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("detail by slug", func(t *testing.T) {
		list := get(r, "/api/v1/products", nil)
		var resp struct {
			Products []struct {
				Slug string `json:"slug"`
			} `json:"products"`
		}
		require.NoError(t, json.Unmarshal(list.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Products)

		w := get(r, "/api/v1/products/"+resp.Products[0].Slug, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown slug 404s", func(t *testing.T) {
		w := get(r, "/api/v1/products/no-such-product", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"product not found"}`, w.Body.String())
	})

	t.Run("brands", func(t *testing.T) {
		w := get(r, "/api/v1/brands", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestMetadataEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := get(r, "/api/v1/meta/products?locale=id", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Metadata struct {
			CanonicalURL   string            `json:"canonicalUrl"`
			AlternateLinks map[string]string `json:"alternateLinks"`
		} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, strings.HasSuffix(resp.Metadata.CanonicalURL, "/id/products"))
	assert.Len(t, resp.Metadata.AlternateLinks, 2)
	assert.Equal(t, resp.Metadata.AlternateLinks["id"], resp.Metadata.CanonicalURL)
}

func TestMetadataBreadcrumbsAreLocalized(t *testing.T) {
	r := newTestRouter(t)

	contentStore, err := store.Load("")
	require.NoError(t, err)
	product := contentStore.Products()[0]

	for _, locale := range []string{"en", "id"} {
		w := get(r, "/api/v1/meta/products/"+product.Slug+"?locale="+locale, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Breadcrumbs struct {
				Elements []struct {
					Position int    `json:"position"`
					Name     string `json:"name"`
				} `json:"itemListElement"`
			} `json:"breadcrumbs"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Breadcrumbs.Elements, 3)

		dict := contentStore.Translations(i18n.Locale(locale))
		assert.Equal(t, dict["nav.home"], resp.Breadcrumbs.Elements[0].Name)
		assert.Equal(t, dict["nav.products"], resp.Breadcrumbs.Elements[1].Name)
		assert.Equal(t, product.Name, resp.Breadcrumbs.Elements[2].Name)

		for i, item := range resp.Breadcrumbs.Elements {
			assert.Equal(t, i+1, item.Position)
		}
	}
}

func TestLocalizedPagesSurface(t *testing.T) {
	r := newTestRouter(t)

	t.Run("sections for supported locale", func(t *testing.T) {
		w := get(r, "/api/v1/pages/id/sections", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("translations for supported locale", func(t *testing.T) {
		w := get(r, "/api/v1/pages/en/translations", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown locale 404s", func(t *testing.T) {
		w := get(r, "/api/v1/pages/fr/sections", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"unknown locale"}`, w.Body.String())
	})
}

func TestContentDetectionSurface(t *testing.T) {
	r := newTestRouter(t)

	w := get(r, "/api/v1/content/translations", map[string]string{"Accept-Language": "id-ID"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Locale string `json:"locale"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "id", resp.Locale)
}

func TestCrawlerDescriptors(t *testing.T) {
	r := newTestRouter(t)

	t.Run("sitemap", func(t *testing.T) {
		w := get(r, "/sitemap.xml", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
		assert.Contains(t, w.Body.String(), "<urlset")
	})

	t.Run("robots", func(t *testing.T) {
		w := get(r, "/robots.txt", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Sitemap:")
	})
}

func TestTelemetryIngestion(t *testing.T) {
	r := newTestRouter(t)

	t.Run("accepts a named event", func(t *testing.T) {
		body := strings.NewReader(`{"event_name":"page_view","page_url":"/id/products"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/telemetry", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.JSONEq(t, `{"accepted":true}`, w.Body.String())
	})

	t.Run("rejects a nameless event", func(t *testing.T) {
		body := strings.NewReader(`{"page_url":"/id/products"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/telemetry", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminSurfaceRequiresAuth(t *testing.T) {
	r := newTestRouter(t)

	t.Run("no token", func(t *testing.T) {
		w := get(r, "/api/v1/admin/leads", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := get(r, "/api/v1/admin/leads", map[string]string{"Authorization": "Bearer nonsense"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("metrics endpoint is guarded too", func(t *testing.T) {
		w := get(r, "/api/v1/admin/leads/metrics", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
