package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"wishlist-backend/internal/domain"
	"wishlist-backend/internal/middleware"
	"wishlist-backend/internal/service/friend"
)

type FriendHandler struct {
	friendService friend.Service
}

func NewFriendHandler(friendService friend.Service) *FriendHandler {
	return &FriendHandler{friendService: friendService}
}

type friendRequestBody struct {
	FriendID int64 `json:"friend_id"`
}

func (h *FriendHandler) SendRequest(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var req friendRequestBody
	if err := c.BodyParser(&req); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if req.FriendID <= 0 {
		return middleware.BadRequest("friend_id is required")
	}

	edge, err := h.friendService.SendRequest(c.Context(), userID, req.FriendID)
	if err != nil {
		switch {
		case errors.Is(err, friend.ErrSelfFriendRequest):
			return middleware.BadRequest("Cannot send a friend request to yourself")
		case errors.Is(err, friend.ErrRecipientNotFound):
			return middleware.NotFound("User not found")
		case errors.Is(err, friend.ErrDuplicateFriendRequest):
			return middleware.Conflict("Friend request already exists")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(edge)
}

func (h *FriendHandler) AcceptRequest(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	requesterID, err := strconv.ParseInt(c.Params("requesterId"), 10, 64)
	if err != nil || requesterID <= 0 {
		return middleware.BadRequest("Invalid requester ID")
	}

	edge, err := h.friendService.AcceptRequest(c.Context(), userID, requesterID)
	if err != nil {
		if errors.Is(err, friend.ErrFriendRequestNotFound) {
			return middleware.NotFound("No pending friend request from this user")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(edge)
}

func (h *FriendHandler) ListFriends(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	friends, err := h.friendService.ListFriends(c.Context(), userID)
	if err != nil {
		return err
	}
	if friends == nil {
		friends = []domain.User{}
	}

	return c.Status(fiber.StatusOK).JSON(friends)
}

func (h *FriendHandler) ListPending(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	requests, err := h.friendService.ListPending(c.Context(), userID)
	if err != nil {
		return err
	}
	if requests == nil {
		requests = []domain.PendingRequest{}
	}

	return c.Status(fiber.StatusOK).JSON(requests)
}
