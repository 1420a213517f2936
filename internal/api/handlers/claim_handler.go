package handlers

import (
	"errors"

	"FoodRescue-Backend/domain"
	"FoodRescue-Backend/internal/api/presenters"
	"FoodRescue-Backend/pkg/claim"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ClaimHandler interface {
		CreateClaim(c *fiber.Ctx) error
		GetClaimsForListing(c *fiber.Ctx) error
		UpdateClaim(c *fiber.Ctx) error
	}

	claimHandler struct {
		claimService claim.ClaimService
		validator    *validator.Validate
	}
)

func NewClaimHandler(claimService claim.ClaimService, validator *validator.Validate) ClaimHandler {
	return &claimHandler{
		claimService: claimService,
		validator:    validator,
	}
}

func (h *claimHandler) CreateClaim(c *fiber.Ctx) error {
	req := new(domain.CreateClaimRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateClaim, err)
	}

	created, err := h.claimService.CreateClaim(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrListingNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageListingNotFound, err)
		case errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateClaim, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateClaim, err)
		}
	}
	return presenters.SuccessResponse(c, created, fiber.StatusCreated)
}

func (h *claimHandler) GetClaimsForListing(c *fiber.Ctx) error {
	claims, err := h.claimService.GetClaimsForListing(c.Context(), c.Params("listingId"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetClaims, err)
	}
	return presenters.SuccessResponse(c, claims, fiber.StatusOK)
}

func (h *claimHandler) UpdateClaim(c *fiber.Ctx) error {
	req := new(domain.UpdateClaimRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedConfirmClaim, err)
	}

	confirmed, err := h.claimService.ConfirmClaim(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrClaimNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageClaimNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedConfirmClaim, err)
	}
	return presenters.SuccessResponse(c, confirmed, fiber.StatusOK)
}
