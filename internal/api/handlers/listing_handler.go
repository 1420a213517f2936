package handlers

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"FoodRescue-Backend/domain"
	"FoodRescue-Backend/internal/api/presenters"
	"FoodRescue-Backend/pkg/listing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const defaultScore = 85

type (
	ListingHandler interface {
		GetListings(c *fiber.Ctx) error
		GetListingByID(c *fiber.Ctx) error
		CreateListing(c *fiber.Ctx) error
		UpdateListing(c *fiber.Ctx) error
		DeleteListing(c *fiber.Ctx) error
	}

	listingHandler struct {
		listingService listing.ListingService
		validator      *validator.Validate
	}
)

func NewListingHandler(listingService listing.ListingService, validator *validator.Validate) ListingHandler {
	return &listingHandler{
		listingService: listingService,
		validator:      validator,
	}
}

func (h *listingHandler) GetListings(c *fiber.Ctx) error {
	listings, err := h.listingService.GetAvailableListings(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetListings, err)
	}
	return presenters.SuccessResponse(c, listings, fiber.StatusOK)
}

func (h *listingHandler) GetListingByID(c *fiber.Ctx) error {
	listingItem, err := h.listingService.GetListingByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageListingNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetListings, err)
	}
	return presenters.SuccessResponse(c, listingItem, fiber.StatusOK)
}

func (h *listingHandler) CreateListing(c *fiber.Ctx) error {
	req, err := parseCreateListingForm(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateListing, err)
	}

	listingItem, err := h.listingService.CreateListing(c.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPickupWindow),
			errors.Is(err, domain.ErrParseUUID),
			errors.Is(err, domain.ErrInvalidImageFormat):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateListing, err)
		}
	}
	return presenters.SuccessResponse(c, listingItem, fiber.StatusCreated)
}

func (h *listingHandler) UpdateListing(c *fiber.Ctx) error {
	req := new(domain.UpdateListingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateListing, err)
	}

	listingItem, err := h.listingService.UpdateListingStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageListingNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateListing, err)
	}
	return presenters.SuccessResponse(c, listingItem, fiber.StatusOK)
}

func (h *listingHandler) DeleteListing(c *fiber.Ctx) error {
	if err := h.listingService.DeleteListing(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageListingNotFound, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteListing, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusNoContent)
}

// parseCreateListingForm assembles the create request from multipart form
// fields. Numeric fields arrive as strings; freshness and quality fall back to
// 85 when missing or unparseable, matching the client's prefill behavior.
func parseCreateListingForm(c *fiber.Ctx) (*domain.CreateListingRequest, error) {
	req := &domain.CreateListingRequest{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Quantity:    c.FormValue("quantity"),
		Category:    c.FormValue("category"),
		Cost:        c.FormValue("cost"),
		Location:    c.FormValue("location"),
		DonorID:     c.FormValue("donorId"),
	}

	latitude, err := strconv.ParseFloat(c.FormValue("latitude"), 64)
	if err != nil {
		return nil, domain.ErrInvalidCoordinates
	}
	longitude, err := strconv.ParseFloat(c.FormValue("longitude"), 64)
	if err != nil {
		return nil, domain.ErrInvalidCoordinates
	}
	req.Latitude = latitude
	req.Longitude = longitude

	start, err := time.Parse(time.RFC3339, c.FormValue("pickupTimeStart"))
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(time.RFC3339, c.FormValue("pickupTimeEnd"))
	if err != nil {
		return nil, err
	}
	req.PickupTimeStart = start
	req.PickupTimeEnd = end

	req.FreshnessScore = parseScore(c.FormValue("freshnessScore"))
	req.QualityScore = parseScore(c.FormValue("qualityScore"))

	if raw := c.FormValue("defectsDetected"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.DefectsDetected); err != nil {
			return nil, err
		}
	}
	if raw := c.FormValue("aiAnalysis"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.AiAnalysis); err != nil {
			return nil, err
		}
	}

	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	return req, nil
}

func parseScore(raw string) int {
	score, err := strconv.Atoi(raw)
	if err != nil {
		return defaultScore
	}
	return score
}
