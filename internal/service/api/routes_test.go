package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/grocery-price-server/internal/config"
	"github.com/darkkaiser/grocery-price-server/internal/pkg/version"
	"github.com/darkkaiser/grocery-price-server/internal/pricing"
	producthandler "github.com/darkkaiser/grocery-price-server/internal/service/api/handler/product"
	systemhandler "github.com/darkkaiser/grocery-price-server/internal/service/api/handler/system"
	"github.com/darkkaiser/grocery-price-server/internal/service/api/httputil"
	"github.com/darkkaiser/grocery-price-server/internal/service/api/model/system"
	productsvc "github.com/darkkaiser/grocery-price-server/internal/service/product"
	"github.com/darkkaiser/grocery-price-server/internal/store"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Helper Functions
// =============================================================================

func setupTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = httputil.ErrorHandler
	return e
}

func setupTestStores() *store.Registry {
	registry := store.NewRegistry()
	registry.Add(config.RetailerATB, store.NewMemoryStore([]store.RawProduct{
		{ID: "1", Name: "Молоко 900г", Category: "Молочні продукти", Price: "45", Unit: "г", Quantity: decimal.NewNullDecimal(decimal.NewFromInt(900))},
	}))
	registry.Add(config.RetailerSilpo, store.NewMemoryStore([]store.RawProduct{
		{ID: "s1", Name: "Молоко 1л", Category: "Молочні продукти", Price: "50", Unit: "л", Quantity: decimal.NewNullDecimal(decimal.NewFromInt(1))},
	}))
	return registry
}

func setupTestHandlers(t *testing.T) (*systemhandler.Handler, *producthandler.Handler) {
	t.Helper()

	stores := setupTestStores()

	products, err := productsvc.New(100,
		productsvc.Retailer{Name: config.RetailerATB, Vocabulary: pricing.VocabularyA, Store: mustGet(t, stores, config.RetailerATB)},
		productsvc.Retailer{Name: config.RetailerSilpo, Vocabulary: pricing.VocabularyB, Store: mustGet(t, stores, config.RetailerSilpo)},
	)
	require.NoError(t, err)

	buildInfo := version.Info{
		Version:     "test-version",
		BuildDate:   "2026-09-01",
		BuildNumber: "1",
	}

	return systemhandler.NewHandler(stores, buildInfo), producthandler.NewHandler(products)
}

func mustGet(t *testing.T, stores *store.Registry, name string) store.Store {
	t.Helper()

	s, ok := stores.Get(name)
	require.True(t, ok)
	return s
}

func hasRoute(e *echo.Echo, method, path string) bool {
	for _, r := range e.Routes() {
		if r.Path == path && r.Method == method {
			return true
		}
	}
	return false
}

// =============================================================================
// Unit Tests: Individual Route Registration Functions
// =============================================================================

func TestRegisterSystemRoutes(t *testing.T) {
	t.Parallel()

	e := setupTestEcho()
	h, _ := setupTestHandlers(t)

	registerSystemRoutes(e, h)

	assert.True(t, hasRoute(e, http.MethodGet, "/health"))
	assert.True(t, hasRoute(e, http.MethodGet, "/version"))
}

func TestRegisterProductRoutes(t *testing.T) {
	t.Parallel()

	e := setupTestEcho()
	_, h := setupTestHandlers(t)

	registerProductRoutes(e, h)

	for _, path := range []string{"/products/atb", "/products/silpo", "/products/compare", "/products/:retailer/sorted"} {
		assert.True(t, hasRoute(e, http.MethodGet, path), "라우트 GET %s가 등록되어야 합니다", path)
	}
}

func TestRegisterSwaggerRoutes(t *testing.T) {
	t.Parallel()

	t.Run("Swagger 라우트 등록 확인", func(t *testing.T) {
		t.Parallel()

		e := setupTestEcho()
		registerSwaggerRoutes(e)

		assert.True(t, hasRoute(e, http.MethodGet, "/swagger/*"))
	})

	t.Run("Swagger UI 접근 가능 확인", func(t *testing.T) {
		t.Parallel()

		e := setupTestEcho()
		registerSwaggerRoutes(e)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	})
}

// =============================================================================
// Integration Tests: Complete Route Setup
// =============================================================================

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	e := setupTestEcho()
	systemHandler, productHandler := setupTestHandlers(t)
	RegisterRoutes(e, systemHandler, productHandler)

	decodeArray := func(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
		var out []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
		return out
	}

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		verifyResponse func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:           "Health 체크",
			method:         http.MethodGet,
			path:           "/health",
			expectedStatus: http.StatusOK,
			verifyResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp system.HealthResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "healthy", resp.Status)
				assert.Contains(t, resp.Dependencies, "store.atb")
				assert.Contains(t, resp.Dependencies, "store.silpo")
			},
		},
		{
			name:           "Version 정보",
			method:         http.MethodGet,
			path:           "/version",
			expectedStatus: http.StatusOK,
			verifyResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp system.VersionResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "test-version", resp.Version)
				assert.Equal(t, "2026-09-01", resp.BuildDate)
				assert.NotEmpty(t, resp.GoVersion)
			},
		},
		{
			name:           "ATB 기본 목표 중량",
			method:         http.MethodGet,
			path:           "/products/atb",
			expectedStatus: http.StatusOK,
			verifyResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				got := decodeArray(t, rec)
				require.Len(t, got, 1)
				assert.Equal(t, 5.0, got[0]["priceforx"])
				assert.Equal(t, 100.0, got[0]["x"])
				assert.Equal(t, "ATB", got[0]["store"])
			},
		},
		{
			name:           "Silpo 목표 중량 지정",
			method:         http.MethodGet,
			path:           "/products/silpo?grams=500",
			expectedStatus: http.StatusOK,
			verifyResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				got := decodeArray(t, rec)
				require.Len(t, got, 1)
				assert.Equal(t, 25.0, got[0]["priceforx"])
				assert.Equal(t, 500.0, got[0]["x"])
				assert.Equal(t, "Silpo", got[0]["store"])
			},
		},
		{
			name:           "판매처 간 비교",
			method:         http.MethodGet,
			path:           "/products/compare",
			expectedStatus: http.StatusOK,
			verifyResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				got := decodeArray(t, rec)
				require.Len(t, got, 2)
				assert.Equal(t, "ATB", got[0]["store"])
				assert.Equal(t, "Silpo", got[1]["store"])
				assert.Equal(t, 0.05, got[0]["pricePerUnit"])
				assert.Equal(t, 0.05, got[1]["pricePerUnit"])
			},
		},
		{
			name:           "판매처별 정렬",
			method:         http.MethodGet,
			path:           "/products/atb/sorted",
			expectedStatus: http.StatusOK,
			verifyResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				got := decodeArray(t, rec)
				require.Len(t, got, 1)
				priceData, ok := got[0]["priceData"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "45", priceData["originalPrice"])
				assert.Equal(t, 45.0, priceData["numericPrice"])
				assert.Equal(t, 5.0, priceData["pricePer100g"])
			},
		},
		{
			name:           "전체 판매처 정렬",
			method:         http.MethodGet,
			path:           "/products/all/sorted",
			expectedStatus: http.StatusOK,
			verifyResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var got map[string][]map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Len(t, got, 2)
				assert.Len(t, got["atb"], 1)
				assert.Len(t, got["silpo"], 1)
			},
		},
		{
			name:           "등록되지 않은 판매처 (404)",
			method:         http.MethodGet,
			path:           "/products/novus/sorted",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Swagger UI",
			method:         http.MethodGet,
			path:           "/swagger/index.html",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "잘못된 HTTP 메서드 (405)",
			method:         http.MethodPost,
			path:           "/products/atb",
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name:           "존재하지 않는 경로 (404)",
			method:         http.MethodGet,
			path:           "/nonexistent",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, tc.expectedStatus, rec.Code, rec.Body.String())

			if tc.verifyResponse != nil {
				tc.verifyResponse(t, rec)
			}
		})
	}
}
