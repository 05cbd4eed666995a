package handler

import (
	"net/http"

	"billing/internal/delivery/api/response"
	"billing/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
}

// AdminHandler lists accounts and ledger records.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{adminUC: params.AdminUC}
}

// ListUsers returns every user with its role
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminUC.ListUsers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// ListPayments returns every ledger record
func (h *AdminHandler) ListPayments(c echo.Context) error {
	payments, err := h.adminUC.ListPayments(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]*PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		views = append(views, newPaymentResponse(payment))
	}

	return response.Success(c, http.StatusOK, views)
}
