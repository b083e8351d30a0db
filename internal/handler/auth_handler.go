package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/daudtravel/backend/internal/models"
	"github.com/daudtravel/backend/internal/service"
	"github.com/daudtravel/backend/pkg/utils"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *utils.Validator
}

func NewAuthHandler(authService *service.AuthService, validator *utils.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *AuthHandler) SendCode(c *fiber.Ctx) error {
	var req models.SendCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.authService.SendCode(req.Email); err != nil {
		var cooldown *service.CooldownError
		switch {
		case errors.Is(err, service.ErrEmailExists):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("EMAIL_EXIST"))
		case errors.As(err, &cooldown):
			return c.Status(fiber.StatusBadRequest).JSON(models.Response{
				Success: false,
				Error:   "VERIFICATION_CODE_ALREADY_SENT",
				Data:    fiber.Map{"timeRemaining": cooldown.TimeRemaining},
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Error in signup process"))
		}
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(fiber.Map{"email": req.Email}, "CODE_SEND"))
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req models.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	user, err := h.authService.Signup(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCode) {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("INVALID_VERIFICATION_CODE"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Error in email verification"))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(user, "Email verified and user created successfully"))
}

func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var req models.SigninRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	resp, err := h.authService.Signin(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid credentials"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Error during login"))
	}

	return c.JSON(models.SuccessResponse(resp, "Login successful"))
}

// Status decodes the bearer token the auth middleware already validated.
func (h *AuthHandler) Status(c *fiber.Ctx) error {
	claims := c.Locals("claims")
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Unauthorized"))
	}

	return c.JSON(models.SuccessResponse(fiber.Map{
		"isAuthenticated": true,
		"user":            claims,
	}, "Token verified successfully"))
}

// GetUser only serves the authenticated user's own record.
func (h *AuthHandler) GetUser(c *fiber.Ctx) error {
	id := c.Params("id")

	userID, _ := c.Locals("userID").(string)
	if userID != id {
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Unauthorized access"))
	}

	user, err := h.authService.GetUserByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("User not found"))
	}

	return c.JSON(models.SuccessResponse(user, "User retrieved successfully"))
}
