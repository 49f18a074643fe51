package handlers

import (
	"errors"

	"github.com/friendmatch/backend/internal/dto"
	"github.com/friendmatch/backend/internal/principal"
	"github.com/friendmatch/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetProfile handles GET /api/profile/:id.
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	principalID, err := principal.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	resp, err := h.profileService.GetProfile(c.UserContext(), principalID, userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return storeFailure(c, err, "Failed to load profile")
	}

	return c.JSON(resp)
}

// UpdateProfile handles PUT /api/profile.
func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	principalID, err := principal.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.profileService.UpdateProfile(c.UserContext(), principalID, &req)
	if err != nil {
		if errors.Is(err, services.ErrStoreTimeout) {
			return storeFailure(c, err, "Failed to update profile")
		}
		// Store constraint violations surface with their own detail.
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.JSON(resp)
}

// storeFailure maps timeouts to 503 and everything else to a generic 500.
func storeFailure(c *fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, services.ErrStoreTimeout) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: fallback,
	})
}
