package handler

import (
	"log/slog"
	"net/http"
	"time"

	"billing/internal/delivery/api/middleware"
	"billing/internal/delivery/api/response"
	"billing/internal/domain/entity"
	"billing/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// SubscriptionHandler serves checkout and the user's payment record.
type SubscriptionHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// CheckoutRequest represents the request body for starting a checkout
type CheckoutRequest struct {
	PriceID string `json:"priceId" validate:"required"`
}

// CheckoutResponse points the client to the hosted checkout page
type CheckoutResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// PaymentResponse is the public view of a ledger record
type PaymentResponse struct {
	ID                uuid.UUID         `json:"id"`
	UserID            uuid.UUID         `json:"userId"`
	PlanID            string            `json:"planId"`
	PriceID           string            `json:"priceId"`
	ExternalPaymentID string            `json:"externalPaymentId"`
	Status            string            `json:"status"`
	Amount            int64             `json:"amount"`
	Currency          string            `json:"currency"`
	PaidAt            *time.Time        `json:"paidAt"`
	CancelledAt       *time.Time        `json:"cancelledAt"`
	Metadata          map[string]string `json:"metadata,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

func newPaymentResponse(payment *entity.Payment) *PaymentResponse {
	if payment == nil {
		return nil
	}

	return &PaymentResponse{
		ID:                payment.ID,
		UserID:            payment.UserID,
		PlanID:            payment.PlanID,
		PriceID:           payment.PriceID,
		ExternalPaymentID: payment.ExternalPaymentID,
		Status:            payment.Status.String(),
		Amount:            payment.Amount,
		Currency:          payment.Currency,
		PaidAt:            payment.PaidAt,
		CancelledAt:       payment.CancelledAt,
		Metadata:          payment.Metadata,
		CreatedAt:         payment.CreatedAt,
		UpdatedAt:         payment.UpdatedAt,
	}
}

// CreateCheckout opens a hosted checkout session for the authenticated user
func (h *SubscriptionHandler) CreateCheckout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid checkout input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	output, err := h.paymentUC.CreateCheckout(c.Request().Context(), &usecase.CheckoutInput{
		UserID:  userID,
		PriceID: req.PriceID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &CheckoutResponse{SessionID: output.SessionID, URL: output.URL})
}

// GetSubscription returns the latest completed payment, or null
func (h *SubscriptionHandler) GetSubscription(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	payment, err := h.paymentUC.GetActivePayment(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPaymentResponse(payment))
}

// CancelSubscription cancels the user's completed payment
func (h *SubscriptionHandler) CancelSubscription(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if _, err := h.paymentUC.CancelActivePayment(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Payment cancelled successfully"})
}

// CheckoutSuccess is the landing page the processor redirects to after payment.
func (h *SubscriptionHandler) CheckoutSuccess(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Payment completed successfully!",
		"sessionId": c.QueryParam("session_id"),
		"note":      "Your payment has been processed. The webhook will update your subscription status shortly.",
	})
}

// CheckoutCancel is the landing page for an abandoned checkout.
func (h *SubscriptionHandler) CheckoutCancel(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"success": false,
		"message": "Payment was cancelled",
		"note":    "You can try again by creating a new checkout session.",
	})
}
