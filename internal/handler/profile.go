package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"manufacturer-api/internal/model"
	"manufacturer-api/internal/service"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()

	profile, err := h.profileService.Get(ctx, c.Param("email"))
	if err != nil {
		return mapStoreErr(err)
	}

	return c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	var profile model.Profile
	if err := c.Bind(&profile); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.profileService.Create(ctx, &profile)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *ProfileHandler) UpsertProfile(c echo.Context) error {
	ctx := c.Request().Context()

	var profile model.Profile
	if err := c.Bind(&profile); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if profile.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing email")
	}

	result, err := h.profileService.Upsert(ctx, &profile)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
