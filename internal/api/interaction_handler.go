package api

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gilanggnw/Cosmetics-Recommendation/internal/service"
)

type InteractionHandler struct {
	interactionService service.InteractionService
	validate           *validator.Validate
}

func NewInteractionHandler(interactionService service.InteractionService) *InteractionHandler {
	return &InteractionHandler{
		interactionService: interactionService,
		validate:           validator.New(),
	}
}

type RecordSearchRequest struct {
	SearchQuery string `json:"search_query" validate:"required"`
}

type AddBookmarkRequest struct {
	ProductID *int `json:"product_id" validate:"required,min=0"`
}

func (h *InteractionHandler) RecordSearch(c *fiber.Ctx) error {
	userID, err := GetUserIDFromClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	var request RecordSearchRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Missing search query"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Missing search query"})
	}

	if _, err := h.interactionService.RecordSearch(c.Context(), userID, request.SearchQuery); err != nil {
		if errors.Is(err, service.ErrEmptySearchQuery) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Missing search query"})
		}

		slog.ErrorContext(c.Context(), "Failed to record search", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Search history recorded"})
}

func (h *InteractionHandler) ListSearchHistory(c *fiber.Ctx) error {
	userID, err := GetUserIDFromClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	entries, err := h.interactionService.ListSearchHistory(c.Context(), userID)
	if err != nil {
		slog.ErrorContext(c.Context(), "Failed to list search history", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(entries)
}

func (h *InteractionHandler) AddBookmark(c *fiber.Ctx) error {
	userID, err := GetUserIDFromClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	var request AddBookmarkRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	if _, err := h.interactionService.AddBookmark(c.Context(), userID, *request.ProductID); err != nil {
		var pgErr *pgconn.PgError

		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Product is already bookmarked"})
		}

		slog.ErrorContext(c.Context(), "Failed to add bookmark", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Bookmark added successfully"})
}

func (h *InteractionHandler) ListBookmarks(c *fiber.Ctx) error {
	userID, err := GetUserIDFromClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	bookmarks, err := h.interactionService.ListBookmarks(c.Context(), userID)
	if err != nil {
		slog.ErrorContext(c.Context(), "Failed to list bookmarks", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(bookmarks)
}
