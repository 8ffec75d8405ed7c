package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"manufacturer-api/internal/dto"
	"manufacturer-api/internal/service"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreatePaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.Price <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "price must be positive")
	}

	clientSecret, err := h.paymentService.CreateIntent(ctx, req.Price)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.CreatePaymentIntentResponse{
		ClientSecret: clientSecret,
	})
}
