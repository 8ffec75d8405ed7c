package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"manufacturer-api/internal/dto"
	"manufacturer-api/internal/middleware"
	"manufacturer-api/internal/model"
	"manufacturer-api/internal/service"
)

type OrderHandler struct {
	orderService   service.OrderService
	paymentService service.PaymentService
}

func NewOrderHandler(orderService service.OrderService, paymentService service.PaymentService) *OrderHandler {
	return &OrderHandler{
		orderService:   orderService,
		paymentService: paymentService,
	}
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderService.Get(ctx, id)
	if err != nil {
		return mapStoreErr(err)
	}

	return c.JSON(http.StatusOK, order)
}

// GetOrdersByEmail only serves the caller's own orders: the email claim from
// the verified token must match the email query parameter.
func (h *OrderHandler) GetOrdersByEmail(c echo.Context) error {
	ctx := c.Request().Context()

	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing email query parameter")
	}

	claimEmail, _ := c.Get(middleware.ContextKeyEmail).(string)
	if claimEmail != email {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}

	orders, err := h.orderService.ListByEmail(ctx, email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var order model.Order
	if err := c.Bind(&order); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.orderService.Create(ctx, &order)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *OrderHandler) ConfirmOrderPayment(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.ConfirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.TransactionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing transactionId")
	}

	result, err := h.paymentService.ConfirmOrderPayment(ctx, id, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *OrderHandler) DeleteOrderByEmail(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.orderService.DeleteByEmail(ctx, c.Param("email"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
