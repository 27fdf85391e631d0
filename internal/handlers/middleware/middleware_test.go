package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafabene/sunmile-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/sunmile-backend/internal/domain/errors"
	"github.com/rafabene/sunmile-backend/internal/infrastructure/logging"
	"github.com/rafabene/sunmile-backend/internal/infrastructure/metrics"
)

type stubAuthenticator struct {
	token    string
	identity entities.Identity
}

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (*entities.Identity, error) {
	if token == "" || token != s.token {
		return nil, domainerrors.Unauthenticated(domainerrors.ErrUnauthorized)
	}
	identity := s.identity
	return &identity, nil
}

type stubInitializer struct {
	err   error
	calls int
}

func (s *stubInitializer) EnsureInitialized(context.Context) error {
	s.calls++
	return s.err
}

func newContext(req *http.Request) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func lastKind(t *testing.T, c *gin.Context) domainerrors.Kind {
	t.Helper()
	require.NotEmpty(t, c.Errors)
	return domainerrors.KindOf(c.Errors.Last().Err)
}

func TestRequireAuth(t *testing.T) {
	auth := stubAuthenticator{
		token:    "valid",
		identity: entities.Identity{UserID: "u1", Role: entities.RoleUser, TokenID: "jti"},
	}

	tests := []struct {
		name   string
		header string
		ok     bool
	}{
		{"bearer válido", "Bearer valid", true},
		{"esquema sem diferenciar maiúsculas", "bearer valid", true},
		{"sem header", "", false},
		{"token errado", "Bearer other", false},
		{"outro esquema", "Basic valid", false},
		{"só o esquema", "Bearer", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			c, _ := newContext(req)

			RequireAuth(auth)(c)

			identity, found := IdentityFrom(c)
			if tt.ok {
				assert.False(t, c.IsAborted())
				require.True(t, found)
				assert.Equal(t, "u1", identity.UserID)
				return
			}
			assert.True(t, c.IsAborted())
			assert.False(t, found)
			assert.Equal(t, domainerrors.KindAuthentication, lastKind(t, c))
		})
	}
}

func TestRequireDatastore(t *testing.T) {
	t.Run("segue quando o banco está pronto", func(t *testing.T) {
		ds := &stubInitializer{}
		c, _ := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

		RequireDatastore(ds, logging.NewNop())(c)

		assert.False(t, c.IsAborted())
		assert.Equal(t, 1, ds.calls)
	})

	t.Run("503 enquanto o banco não responde", func(t *testing.T) {
		ds := &stubInitializer{err: errors.New("connection refused")}
		c, _ := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

		RequireDatastore(ds, logging.NewNop())(c)

		assert.True(t, c.IsAborted())
		assert.Equal(t, domainerrors.KindUnavailable, lastKind(t, c))
	})
}

func TestIPRateLimiter(t *testing.T) {
	limiter := NewIPRateLimiter(1, 2)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"), "rajada esgotada")
	assert.True(t, limiter.Allow("10.0.0.2"), "outro IP tem o próprio balde")

	now = now.Add(time.Second)
	assert.True(t, limiter.Allow("10.0.0.1"), "um token reposto por segundo")
}

func TestIPRateLimiter_EvictsIdleVisitors(t *testing.T) {
	limiter := NewIPRateLimiter(1, 1)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	limiter.Allow("10.0.0.1")
	now = now.Add(limiterIdleTTL + time.Second)
	limiter.Allow("10.0.0.2")

	assert.Len(t, limiter.visitors, 1)
	assert.Contains(t, limiter.visitors, "10.0.0.2")
}

func TestIPRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := NewIPRateLimiter(1, 1)

	var kinds []domainerrors.Kind
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Next()
		for _, e := range c.Errors {
			kinds = append(kinds, domainerrors.KindOf(e.Err))
		}
	})
	r.POST("/login", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
	assert.Equal(t, []domainerrors.Kind{domainerrors.KindRateLimited}, kinds)
}

func TestRequestID(t *testing.T) {
	t.Run("gera quando ausente", func(t *testing.T) {
		c, w := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
		RequestID()(c)

		rid := c.GetString(RequestIDContextKey)
		assert.Len(t, rid, 36)
		assert.Equal(t, rid, w.Header().Get(RequestIDHeader))
	})

	t.Run("reaproveita o recebido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		c, _ := newContext(req)
		RequestID()(c)

		assert.Equal(t, "abc-123", c.GetString(RequestIDContextKey))
	})
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.New()

	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/users/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, id := range []string{"a", "b"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/"+id, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/users/:id", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("unmatched", "GET", "404")))
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS("https://sunmile.vercel.app"))
	r.GET("/users", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("preflight da origem configurada", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/users", nil)
		req.Header.Set("Origin", "https://sunmile.vercel.app")
		req.Header.Set("Access-Control-Request-Method", "PUT")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://sunmile.vercel.app", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")
	})

	t.Run("outra origem é recusada", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
