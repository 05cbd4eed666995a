package handler

import (
	"io"
	"log/slog"
	"net/http"

	"billing/internal/delivery/api/response"
	"billing/internal/domain/constants"
	"billing/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	WebhookUC usecase.WebhookUsecase
	Logger    *slog.Logger
}

// WebhookHandler receives payment processor events.
type WebhookHandler struct {
	webhookUC usecase.WebhookUsecase
	logger    *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		webhookUC: params.WebhookUC,
		logger:    params.Logger,
	}
}

// WebhookAck is the body the processor expects. It is not wrapped in the API envelope.
type WebhookAck struct {
	Received  bool   `json:"received"`
	Duplicate bool   `json:"duplicate,omitempty"`
	Error     string `json:"error,omitempty"`
}

// HandleStripeWebhook verifies the raw body against the signature header.
// Only authentication failures are rejected; everything else is acknowledged.
func (h *WebhookHandler) HandleStripeWebhook(c echo.Context) error {
	rawBody, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unable to read request body")
	}

	result, err := h.webhookUC.HandleWebhook(c.Request().Context(), rawBody, c.Request().Header.Get(constants.HeaderStripeSignature))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, &WebhookAck{
		Received:  result.Received,
		Duplicate: result.Duplicate,
		Error:     result.Error,
	})
}
