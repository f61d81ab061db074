package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fleet-maintenance-api-server/internal/apperr"
	"fleet-maintenance-api-server/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct {
	users map[string]models.PublicUser
	err   error
}

func (s stubAuth) Authenticate(_ context.Context, token string) (models.PublicUser, error) {
	if s.err != nil {
		return models.PublicUser{}, s.err
	}
	u, ok := s.users[token]
	if !ok {
		return models.PublicUser{}, apperr.Unauthorized("unknown session")
	}
	return u, nil
}

func newAuthRouter(auth Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Authenticate(auth), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": CurrentUser(c), "token": CurrentToken(c)})
	})
	return r
}

func get(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	r := newAuthRouter(stubAuth{users: map[string]models.PublicUser{
		"good": {ID: 1, Email: "admin@example.com", Name: "Admin"},
	}})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"no bearer prefix", "good", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"unknown session", "Bearer bad", http.StatusUnauthorized},
		{"valid", "Bearer good", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, get(r, tt.header).Code)
		})
	}

	w := get(r, "Bearer good")
	assert.JSONEq(t, `{"user":{"id":1,"email":"admin@example.com","name":"Admin"},"token":"good"}`, w.Body.String())
}

func TestAuthenticateStoreFailure(t *testing.T) {
	r := newAuthRouter(stubAuth{err: errors.New("store down")})

	w := get(r, "Bearer good")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "store down")
}

func TestRateLimiterPerClient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, hook := test.NewNullLogger()
	limiter := NewRateLimiter(0.001, 1, logrus.NewEntry(logger))

	r := gin.New()
	r.POST("/login", limiter.Handler(), func(c *gin.Context) { c.Status(http.StatusOK) })

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1000"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1001"))
	assert.Equal(t, http.StatusOK, send("10.0.0.2:1000"))

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "Rate limit exceeded", hook.LastEntry().Message)
	assert.Equal(t, "10.0.0.1", hook.LastEntry().Data["client"])
}
