package middleware

import (
	"log/slog"
	"strings"

	"billing/internal/delivery/api/response"
	deliverycontext "billing/internal/delivery/context"
	"billing/internal/domain/entity"
	domainerrors "billing/internal/domain/errors"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Authenticate validates the bearer access token. The payload becomes the request principal
// and the request logger gains the caller's user_id.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		ctx := c.Request().Context()
		payload, err := m.authUC.ValidateAccess(ctx, tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user_id", payload.Subject.String()))
		ctx = deliverycontext.WithPrincipal(ctx, payload)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole checks the role of the authenticated user.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := GetRole(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if role != requiredRole {
				return response.HandleAppError(c, domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

// GetUserID returns the subject of the validated access token.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	payload, ok := GetTokenPayload(c)
	if !ok || payload.Subject == uuid.Nil {
		return uuid.Nil, false
	}

	return payload.Subject, true
}

// GetRole returns the role claim of the validated access token.
func GetRole(c echo.Context) (string, bool) {
	payload, ok := GetTokenPayload(c)
	if !ok || payload.Role == "" {
		return "", false
	}

	return payload.Role, true
}

// GetTokenPayload returns the whole validated access token payload.
func GetTokenPayload(c echo.Context) (*entity.TokenPayload, bool) {
	return deliverycontext.PrincipalFromContext(c.Request().Context())
}
