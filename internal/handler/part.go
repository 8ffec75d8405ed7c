package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"manufacturer-api/internal/dto"
	"manufacturer-api/internal/model"
	"manufacturer-api/internal/service"
)

type PartHandler struct {
	partService service.PartService
}

func NewPartHandler(partService service.PartService) *PartHandler {
	return &PartHandler{
		partService: partService,
	}
}

func (h *PartHandler) GetParts(c echo.Context) error {
	ctx := c.Request().Context()

	parts, err := h.partService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, parts)
}

func (h *PartHandler) GetPart(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}

	part, err := h.partService.Get(ctx, id)
	if err != nil {
		return mapStoreErr(err)
	}

	return c.JSON(http.StatusOK, part)
}

func (h *PartHandler) CreatePart(c echo.Context) error {
	ctx := c.Request().Context()

	var part model.Part
	if err := c.Bind(&part); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.partService.Create(ctx, &part)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *PartHandler) UpdatePartQuantity(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.partService.UpdateQuantity(ctx, id, req.Quantity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *PartHandler) DeletePart(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := objectIDParam(c, "id")
	if err != nil {
		return err
	}

	result, err := h.partService.Delete(ctx, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
