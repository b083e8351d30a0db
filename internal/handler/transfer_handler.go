package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/daudtravel/backend/internal/models"
	"github.com/daudtravel/backend/internal/service"
	"github.com/daudtravel/backend/pkg/utils"
)

type TransferHandler struct {
	transferService *service.TransferService
	validator       *utils.Validator
}

func NewTransferHandler(transferService *service.TransferService, validator *utils.Validator) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
		validator:       validator,
	}
}

func (h *TransferHandler) CreateTransfer(c *fiber.Ctx) error {
	var req models.TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	transfer, err := h.transferService.CreateTransfer(req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error while creating transfer"))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(transfer, "Transfer created successfully"))
}

func (h *TransferHandler) GetTransfers(c *fiber.Ctx) error {
	transfers, err := h.transferService.GetTransfers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error while fetching transfers"))
	}

	return c.JSON(models.SuccessResponse(transfers, "Transfers retrieved successfully"))
}

func (h *TransferHandler) UpdateTransfer(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid transfer ID"))
	}

	var req models.TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	transfer, err := h.transferService.UpdateTransfer(id, req)
	if err != nil {
		if errors.Is(err, service.ErrTransferNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Transfer not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error while updating transfer"))
	}

	return c.JSON(models.SuccessResponse(transfer, "Transfer updated successfully"))
}

func (h *TransferHandler) DeleteTransfer(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid transfer ID"))
	}

	if err := h.transferService.DeleteTransfer(id); err != nil {
		if errors.Is(err, service.ErrTransferNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Transfer not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Internal server error while deleting transfer"))
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"id": id}, "Transfer deleted successfully"))
}
