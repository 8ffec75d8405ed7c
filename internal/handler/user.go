package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"manufacturer-api/internal/dto"
	"manufacturer-api/internal/model"
	"manufacturer-api/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.userService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetAdminStatus(c echo.Context) error {
	ctx := c.Request().Context()

	isAdmin, err := h.userService.IsAdmin(ctx, c.Param("email"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &dto.AdminStatusResponse{Admin: isAdmin})
}

func (h *UserHandler) PromoteToAdmin(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.userService.Promote(ctx, c.Param("email"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// UpsertUser doubles as login: the user document is saved and a fresh token
// for the path email comes back with the write result.
func (h *UserHandler) UpsertUser(c echo.Context) error {
	ctx := c.Request().Context()

	var user model.User
	if err := c.Bind(&user); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	resp, err := h.userService.Upsert(ctx, c.Param("email"), &user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}
