package handlers

import (
	"github.com/friendmatch/backend/internal/dto"
	"github.com/friendmatch/backend/internal/principal"
	"github.com/friendmatch/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type DiscoverHandler struct {
	matchService *services.MatchService
}

func NewDiscoverHandler(matchService *services.MatchService) *DiscoverHandler {
	return &DiscoverHandler{matchService: matchService}
}

// Discover handles GET /api/discover: ranked candidates sharing at least
// one interest with the caller.
func (h *DiscoverHandler) Discover(c *fiber.Ctx) error {
	userID, err := principal.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	matches, err := h.matchService.FindMatches(c.UserContext(), userID)
	if err != nil {
		return storeFailure(c, err, "Failed to find matches")
	}
	return c.JSON(matches)
}
