package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"manufacturer-api/internal/model"
	"manufacturer-api/internal/service"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) GetReviews(c echo.Context) error {
	ctx := c.Request().Context()

	reviews, err := h.reviewService.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	ctx := c.Request().Context()

	var review model.Review
	if err := c.Bind(&review); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.reviewService.Create(ctx, &review)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
