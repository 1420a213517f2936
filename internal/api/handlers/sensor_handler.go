package handlers

import (
	"errors"

	"FoodRescue-Backend/domain"
	"FoodRescue-Backend/internal/api/presenters"
	"FoodRescue-Backend/pkg/sensor"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SensorHandler interface {
		GetSensorData(c *fiber.Ctx) error
		CreateSensorData(c *fiber.Ctx) error
	}

	sensorHandler struct {
		sensorService sensor.SensorService
		validator     *validator.Validate
	}
)

func NewSensorHandler(sensorService sensor.SensorService, validator *validator.Validate) SensorHandler {
	return &sensorHandler{
		sensorService: sensorService,
		validator:     validator,
	}
}

func (h *sensorHandler) GetSensorData(c *fiber.Ctx) error {
	readings, err := h.sensorService.GetSensorDataForListing(c.Context(), c.Params("listingId"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetSensorData, err)
	}
	return presenters.SuccessResponse(c, readings, fiber.StatusOK)
}

func (h *sensorHandler) CreateSensorData(c *fiber.Ctx) error {
	req := new(domain.CreateSensorDataRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateSensorData, err)
	}

	reading, err := h.sensorService.CreateSensorData(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrParseUUID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateSensorData, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateSensorData, err)
	}
	return presenters.SuccessResponse(c, reading, fiber.StatusCreated)
}
