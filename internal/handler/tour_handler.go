package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/daudtravel/backend/internal/models"
	"github.com/daudtravel/backend/internal/service"
	"github.com/daudtravel/backend/pkg/images"
	"github.com/daudtravel/backend/pkg/utils"
)

type TourHandler struct {
	tourService *service.TourService
	validator   *utils.Validator
}

func NewTourHandler(tourService *service.TourService, validator *utils.Validator) *TourHandler {
	return &TourHandler{
		tourService: tourService,
		validator:   validator,
	}
}

func (h *TourHandler) CreateTour(c *fiber.Ctx) error {
	var req models.CreateTourRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	tour, err := h.tourService.CreateTour(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTourNameExists):
			return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse(err.Error()))
		case errors.Is(err, images.ErrInvalidFormat):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error while creating tour"))
		}
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(tour, "Tour created successfully"))
}

func (h *TourHandler) GetTours(c *fiber.Ctx) error {
	var params models.TourQueryParams
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid query parameters"))
	}

	result, err := h.tourService.GetTours(params)
	if err != nil {
		if errors.Is(err, service.ErrInvalidQuery) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid query parameters"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error while fetching tours"))
	}

	return c.JSON(models.SuccessResponse(result, "Tours retrieved successfully"))
}

func (h *TourHandler) GetTour(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid tour ID"))
	}

	tour, err := h.tourService.GetTour(id, c.Query("locale"))
	if err != nil {
		if errors.Is(err, service.ErrTourNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Tour not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error while fetching tour"))
	}

	return c.JSON(models.SuccessResponse(tour, "Tour retrieved successfully"))
}

func (h *TourHandler) UpdateTour(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid tour ID"))
	}

	var req models.UpdateTourRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	tour, err := h.tourService.UpdateTour(id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTourNotFound):
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Tour not found"))
		case errors.Is(err, images.ErrInvalidFormat):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error while updating tour"))
		}
	}

	return c.JSON(models.SuccessResponse(tour, "Tour updated successfully"))
}

func (h *TourHandler) DeleteTour(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid tour ID"))
	}

	if err := h.tourService.DeleteTour(id); err != nil {
		if errors.Is(err, service.ErrTourNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Tour not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error while deleting tour"))
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"id": id}, "Tour deleted successfully"))
}
