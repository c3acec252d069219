package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"go.uber.org/zap"

	"formmaker-api/internal/metrics"
)

func setupTestRouter(mws ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mws...)
	return router
}

func counterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := counter.Write(&m); err != nil {
		t.Fatalf("failed to read counter: %v", err)
	}
	return m.GetCounter().GetValue()
}

func TestMetricsMiddleware_RecordsRequests(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), nil)
	router := setupTestRouter(Metrics(m))
	router.GET("/api/forms/:formId", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/forms/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// Recorded under the route pattern, not the raw path
	counter, err := m.HTTPRequestsTotal.GetMetricWithLabelValues("GET", "/api/forms/:formId", "2xx")
	if err != nil {
		t.Fatalf("failed to get counter: %v", err)
	}
	if v := counterValue(t, counter); v != 1 {
		t.Errorf("expected 1 recorded request, got %f", v)
	}
}

func TestMetricsMiddleware_SkipsProbeEndpoints(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), nil)
	router := setupTestRouter(Metrics(m))
	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	counter, err := m.HTTPRequestsTotal.GetMetricWithLabelValues("GET", "/health", "2xx")
	if err != nil {
		t.Fatalf("failed to get counter: %v", err)
	}
	if v := counterValue(t, counter); v != 0 {
		t.Errorf("expected probe endpoint to be skipped, got %f", v)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	router := setupTestRouter(Recovery(zap.NewNop()))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 after panic, got %d", w.Code)
	}
}

func TestCORSMiddleware(t *testing.T) {
	t.Run("empty allowlist reflects any origin", func(t *testing.T) {
		router := setupTestRouter(CORS(nil))
		router.GET("/api/forms", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/api/forms", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
			t.Errorf("expected origin reflected, got %q", got)
		}
	})

	t.Run("allowlist rejects unknown origin", func(t *testing.T) {
		router := setupTestRouter(CORS([]string{"https://app.example.com"}))
		router.GET("/api/forms", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/api/forms", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("expected no CORS header, got %q", got)
		}
	})

	t.Run("preflight answers 204", func(t *testing.T) {
		router := setupTestRouter(CORS(nil))
		router.POST("/api/forms/submit", func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})

		req := httptest.NewRequest(http.MethodOptions, "/api/forms/submit", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("expected 204 for preflight, got %d", w.Code)
		}
	})
}

func TestAdminAuthMiddleware(t *testing.T) {
	const secret = "test-secret"

	newRouter := func(guardSecret string) *gin.Engine {
		router := setupTestRouter(AdminAuth(guardSecret))
		router.GET("/api/admin/stats", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return router
	}

	signToken := func(t *testing.T, signingSecret string) string {
		t.Helper()
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "admin",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte(signingSecret))
		if err != nil {
			t.Fatalf("failed to sign token: %v", err)
		}
		return signed
	}

	t.Run("empty secret disables the guard", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		w := httptest.NewRecorder()
		newRouter("").ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected pass-through, got %d", w.Code)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		w := httptest.NewRecorder()
		newRouter(secret).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		newRouter(secret).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("wrong signing secret", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret"))
		w := httptest.NewRecorder()
		newRouter(secret).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, secret))
		w := httptest.NewRecorder()
		newRouter(secret).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})
}
