package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"wishlist-backend/internal/domain"
	"wishlist-backend/internal/middleware"
	"wishlist-backend/internal/service/photo"
	"wishlist-backend/internal/service/wish"
)

type WishHandler struct {
	wishService  wish.Service
	photoService photo.Service
}

func NewWishHandler(wishService wish.Service, photoService photo.Service) *WishHandler {
	return &WishHandler{
		wishService:  wishService,
		photoService: photoService,
	}
}

func (h *WishHandler) Create(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	var input domain.CreateWishInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	created, err := h.wishService.Create(c.Context(), userID, input)
	if err != nil {
		return mapWishError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// List returns the authenticated user's own wishes by default; pass
// ?user_id= to browse a friend's list.
func (h *WishHandler) List(c *fiber.Ctx) error {
	ownerID := middleware.GetCurrentUserID(c)
	if raw := c.Query("user_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return middleware.BadRequest("Invalid user_id")
		}
		ownerID = parsed
	}

	wishes, err := h.wishService.ListByOwner(c.Context(), ownerID)
	if err != nil {
		return err
	}
	if wishes == nil {
		wishes = []domain.Wish{}
	}

	return c.Status(fiber.StatusOK).JSON(wishes)
}

func (h *WishHandler) Update(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	wishID, err := parseWishID(c)
	if err != nil {
		return err
	}

	var input domain.UpdateWishInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	updated, err := h.wishService.Update(c.Context(), wishID, userID, input)
	if err != nil {
		return mapWishError(err)
	}

	return c.Status(fiber.StatusOK).JSON(updated)
}

func (h *WishHandler) Delete(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	wishID, err := parseWishID(c)
	if err != nil {
		return err
	}

	if err := h.wishService.Delete(c.Context(), wishID, userID); err != nil {
		return mapWishError(err)
	}

	return c.Status(fiber.StatusNoContent).SendString("")
}

func (h *WishHandler) UploadPhoto(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("File is required")
	}

	contentType := file.Header.Get("Content-Type")

	fileReader, err := file.Open()
	if err != nil {
		return middleware.BadRequest("Failed to read file")
	}
	defer fileReader.Close()

	url, err := h.photoService.Upload(c.Context(), userID, file.Filename, file.Size, contentType, fileReader)
	if err != nil {
		switch {
		case errors.Is(err, photo.ErrUnsupportedType):
			return middleware.BadRequest("Unsupported photo type")
		case errors.Is(err, photo.ErrFileTooLarge):
			return middleware.BadRequest("File size must be less than 10MB")
		case errors.Is(err, photo.ErrStorageUnavailable):
			return middleware.BadGateway("Photo storage is unavailable")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"photo_url": url})
}

func parseWishID(c *fiber.Ctx) (int64, error) {
	wishID, err := strconv.ParseInt(c.Params("wishId"), 10, 64)
	if err != nil || wishID <= 0 {
		return 0, middleware.BadRequest("Invalid wish ID")
	}
	return wishID, nil
}

func mapWishError(err error) error {
	switch {
	case errors.Is(err, domain.ErrWishNotFound):
		return middleware.NotFound("Wish not found")
	case errors.Is(err, wish.ErrNotWishOwner):
		return middleware.Forbidden("You don't have permission to modify this wish")
	case errors.Is(err, wish.ErrEmptyTitle):
		return middleware.BadRequest("Title is required")
	case errors.Is(err, wish.ErrNegativePrice):
		return middleware.BadRequest("Price cannot be negative")
	}
	return err
}
