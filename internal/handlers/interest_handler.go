package handlers

import (
	"github.com/friendmatch/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type InterestHandler struct {
	interestService *services.InterestService
}

func NewInterestHandler(interestService *services.InterestService) *InterestHandler {
	return &InterestHandler{interestService: interestService}
}

// ListInterests handles GET /api/interests. Public: the catalog is needed
// before a profile exists.
func (h *InterestHandler) ListInterests(c *fiber.Ctx) error {
	interests, err := h.interestService.ListInterests(c.UserContext())
	if err != nil {
		return storeFailure(c, err, "Failed to load interests")
	}
	return c.JSON(interests)
}
