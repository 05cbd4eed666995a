package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "billing/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "client id kept", incoming: "req-abc_123", keep: true},
		{name: "missing id generated", incoming: ""},
		{name: "oversized id replaced", incoming: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "id with spaces replaced", incoming: "req id"},
		{name: "non ascii id replaced", incoming: "req-é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seenInContext string
			m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
			err := m.Process(func(c echo.Context) error {
				seenInContext = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return c.NoContent(http.StatusNoContent)
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, seenInContext)
			assert.Equal(t, got, deliverycontext.GetRequestID(c))
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, parseErr := uuid.Parse(got)
				assert.NoError(t, parseErr)
			}
		})
	}
}
