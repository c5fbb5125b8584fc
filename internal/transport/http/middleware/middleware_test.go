package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/time/rate"

	"inventory-api/internal/core/auth"
	"inventory-api/internal/domain"
	resp "inventory-api/internal/transport/http/response"
)

func init() { gin.SetMode(gin.TestMode) }

func serve(e *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) resp.Resp {
	t.Helper()
	var r resp.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r), w.Body.String())
	return r
}

func TestRequestID(t *testing.T) {
	e := gin.New()
	e.Use(RequestID())
	e.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(KeyRequestID)) })

	w := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	rid := w.Header().Get(KeyRequestID)
	assert.NotEmpty(t, rid)
	assert.Equal(t, rid, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(KeyRequestID, "abc-123")
	w = serve(e, req)
	assert.Equal(t, "abc-123", w.Header().Get(KeyRequestID))
}

func TestRateLimitPerIP(t *testing.T) {
	e := gin.New()
	e.Use(RateLimitPerIP(rate.Limit(0.001), 1))
	e.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	from := func(ip string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = ip + ":1234"
		return r
	}
	assert.Equal(t, http.StatusNoContent, serve(e, from("10.0.0.1")).Code)
	w := serve(e, from("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.False(t, decode(t, w).Success)

	// other clients keep their own bucket
	assert.Equal(t, http.StatusNoContent, serve(e, from("10.0.0.2")).Code)
}

func TestRateLimit_Global(t *testing.T) {
	e := gin.New()
	e.Use(RateLimit(rate.Limit(0.001), 2))
	e.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, serve(e, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	e := gin.New()
	e.Use(Recovery(zap.New(core)))
	e.GET("/boom", func(*gin.Context) { panic("kaboom") })

	w := serve(e, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, domain.MsgInternal, decode(t, w).Message)
	assert.NotZero(t, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestAuthJWT(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("mw-secret"), Issuer: "inventory-api", TTL: auth.TokenTTL}
	gate := auth.NewGate(auth.Admin{Username: "admin", Password: "admin123"}, j, nil)
	tok, err := gate.IssueToken(domain.Identity{Username: "admin", Role: domain.RoleAdmin})
	require.NoError(t, err)

	e := gin.New()
	e.Use(AuthJWT(gate))
	e.GET("/me", func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		require.True(t, ok)
		c.String(http.StatusOK, id.Username)
	})

	w := serve(e, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, domain.MsgUnauthorized, decode(t, w).Message)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w = serve(e, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin", w.Body.String())
}

func TestIdentityFrom_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := IdentityFrom(c)
	assert.False(t, ok)
}

func TestTimeout(t *testing.T) {
	e := gin.New()
	e.Use(Timeout(20 * time.Millisecond))
	e.GET("/slow", func(c *gin.Context) { <-c.Request.Context().Done() })
	e.GET("/fast", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	assert.Equal(t, http.StatusGatewayTimeout, serve(e, httptest.NewRequest(http.MethodGet, "/slow", nil)).Code)
	assert.Equal(t, http.StatusNoContent, serve(e, httptest.NewRequest(http.MethodGet, "/fast", nil)).Code)
}

func TestConcurrencyLimit_PassesThrough(t *testing.T) {
	e := gin.New()
	e.Use(ConcurrencyLimit(1))
	e.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusNoContent, serve(e, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	}
}

func TestMaskQuery(t *testing.T) {
	got := maskQuery(map[string][]string{
		"Password": {"admin123"},
		"token":    {"abc"},
		"q":        {"laptop"},
	})
	assert.Equal(t, []string{"****"}, got["Password"])
	assert.Equal(t, []string{"****"}, got["token"])
	assert.Equal(t, []string{"laptop"}, got["q"])
}

func TestAccessLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	e := gin.New()
	e.Use(RequestID(), AccessLog(zap.New(core)))
	e.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	e.GET("/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	serve(e, httptest.NewRequest(http.MethodGet, "/ok?password=x", nil))
	serve(e, httptest.NewRequest(http.MethodGet, "/fail", nil))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)

	fields := entries[0].ContextMap()
	assert.NotEmpty(t, fields["rid"])
	assert.Equal(t, "/ok", fields["path"])
	assert.NotContains(t, entries[0].ContextMap(), "user")
}

func TestMaxBodyBytes(t *testing.T) {
	e := gin.New()
	e.Use(MaxBodyBytes(8))
	e.POST("/", func(c *gin.Context) {
		var v map[string]any
		if err := c.ShouldBindJSON(&v); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusNoContent)
	})

	small := httptest.NewRequest(http.MethodPost, "/", jsonBody(`{}`))
	assert.Equal(t, http.StatusNoContent, serve(e, small).Code)
	big := httptest.NewRequest(http.MethodPost, "/", jsonBody(`{"name":"far too long"}`))
	assert.Equal(t, http.StatusBadRequest, serve(e, big).Code)
}

func jsonBody(s string) *strings.Reader { return strings.NewReader(s) }
