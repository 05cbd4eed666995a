package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"billing/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRequestID(t *testing.T) {
	e := echo.New()

	t.Run("echo context wins", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		SetRequestID(c, "from-echo")

		assert.Equal(t, "from-echo", GetRequestID(c))
	})

	t.Run("falls back to request context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithRequestID(req.Context(), "from-ctx"))
		c := e.NewContext(req, httptest.NewRecorder())

		assert.Equal(t, "from-ctx", GetRequestID(c))
	})

	t.Run("generates when absent", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		_, err := uuid.Parse(GetRequestID(c))
		assert.NoError(t, err)
	})
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "r1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
	assert.Same(t, fallback, GetLoggerOrDefault(WithLogger(context.Background(), nil), fallback))
}

func TestPrincipalFromContext(t *testing.T) {
	_, ok := PrincipalFromContext(context.Background())
	assert.False(t, ok)

	payload := &entity.TokenPayload{Subject: uuid.New(), Role: entity.RoleNameAdmin}
	got, ok := PrincipalFromContext(WithPrincipal(context.Background(), payload))
	require.True(t, ok)
	assert.Same(t, payload, got)

	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}
