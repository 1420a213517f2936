package handlers

import (
	"errors"

	"FoodRescue-Backend/domain"
	"FoodRescue-Backend/internal/api/presenters"
	"FoodRescue-Backend/pkg/rating"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RatingHandler interface {
		GetRatingsForOrganization(c *fiber.Ctx) error
		CreateRating(c *fiber.Ctx) error
	}

	ratingHandler struct {
		ratingService rating.RatingService
		validator     *validator.Validate
	}
)

func NewRatingHandler(ratingService rating.RatingService, validator *validator.Validate) RatingHandler {
	return &ratingHandler{
		ratingService: ratingService,
		validator:     validator,
	}
}

func (h *ratingHandler) GetRatingsForOrganization(c *fiber.Ctx) error {
	ratings, err := h.ratingService.GetRatingsForOrganization(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRatings, err)
	}
	return presenters.SuccessResponse(c, ratings, fiber.StatusOK)
}

func (h *ratingHandler) CreateRating(c *fiber.Ctx) error {
	req := new(domain.CreateSupplierRatingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRating, err)
	}

	created, err := h.ratingService.CreateRating(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRating, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateRating, err)
	}
	return presenters.SuccessResponse(c, created, fiber.StatusCreated)
}
