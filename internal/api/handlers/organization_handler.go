package handlers

import (
	"errors"

	"FoodRescue-Backend/domain"
	"FoodRescue-Backend/internal/api/presenters"
	"FoodRescue-Backend/pkg/organization"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	OrganizationHandler interface {
		GetOrganizations(c *fiber.Ctx) error
		GetOrganizationByID(c *fiber.Ctx) error
		CreateOrganization(c *fiber.Ctx) error
	}

	organizationHandler struct {
		organizationService organization.OrganizationService
		validator           *validator.Validate
	}
)

func NewOrganizationHandler(organizationService organization.OrganizationService, validator *validator.Validate) OrganizationHandler {
	return &organizationHandler{
		organizationService: organizationService,
		validator:           validator,
	}
}

func (h *organizationHandler) GetOrganizations(c *fiber.Ctx) error {
	orgs, err := h.organizationService.GetOrganizations(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetOrganizations, err)
	}
	return presenters.SuccessResponse(c, orgs, fiber.StatusOK)
}

func (h *organizationHandler) GetOrganizationByID(c *fiber.Ctx) error {
	org, err := h.organizationService.GetOrganizationByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrganizationNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageOrganizationNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetOrganizations, err)
	}
	return presenters.SuccessResponse(c, org, fiber.StatusOK)
}

func (h *organizationHandler) CreateOrganization(c *fiber.Ctx) error {
	req := new(domain.CreateOrganizationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateOrganization, err)
	}

	org, err := h.organizationService.CreateOrganization(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateOrganization, err)
	}
	return presenters.SuccessResponse(c, org, fiber.StatusCreated)
}
