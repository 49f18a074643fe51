package handlers

import (
	"errors"

	"github.com/friendmatch/backend/internal/dto"
	"github.com/friendmatch/backend/internal/principal"
	"github.com/friendmatch/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type FriendHandler struct {
	friendshipService *services.FriendshipService
}

func NewFriendHandler(friendshipService *services.FriendshipService) *FriendHandler {
	return &FriendHandler{friendshipService: friendshipService}
}

// SendRequest handles POST /api/friend-request.
func (h *FriendHandler) SendRequest(c *fiber.Ctx) error {
	senderID, err := principal.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.SendFriendRequestRequest
	if err := c.BodyParser(&req); err != nil || req.ReceiverID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.friendshipService.SendRequest(c.UserContext(), senderID, req.ReceiverID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfRequest),
			errors.Is(err, services.ErrRequestExists),
			errors.Is(err, services.ErrAlreadyFriends):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return storeFailure(c, err, "Failed to send friend request")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListPendingRequests handles GET /api/friend-requests.
func (h *FriendHandler) ListPendingRequests(c *fiber.Ctx) error {
	userID, err := principal.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	requests, err := h.friendshipService.ListPendingRequests(c.UserContext(), userID)
	if err != nil {
		return storeFailure(c, err, "Failed to load friend requests")
	}
	return c.JSON(requests)
}

// Respond handles POST /api/friend-request/respond.
func (h *FriendHandler) Respond(c *fiber.Ctx) error {
	responderID, err := principal.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.RespondFriendRequestRequest
	if err := c.BodyParser(&req); err != nil || req.RequestID == uuid.Nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.friendshipService.Respond(c.UserContext(), req.RequestID, responderID, req.Accept)
	if err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return storeFailure(c, err, "Failed to respond to friend request")
	}

	return c.JSON(resp)
}

// ListFriends handles GET /api/friends.
func (h *FriendHandler) ListFriends(c *fiber.Ctx) error {
	userID, err := principal.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	friends, err := h.friendshipService.ListFriends(c.UserContext(), userID)
	if err != nil {
		return storeFailure(c, err, "Failed to load friends")
	}
	return c.JSON(friends)
}

// RemoveFriend handles DELETE /api/friends/:id.
func (h *FriendHandler) RemoveFriend(c *fiber.Ctx) error {
	userID, err := principal.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	friendID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	if err := h.friendshipService.RemoveFriendship(c.UserContext(), userID, friendID); err != nil {
		return storeFailure(c, err, "Failed to remove friend")
	}

	return c.JSON(fiber.Map{"message": "Friend removed successfully"})
}
