package api

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/gilanggnw/Cosmetics-Recommendation/internal/service"
)

type ClickCountHandler struct {
	clickService service.ClickCountService
	validate     *validator.Validate
}

func NewClickCountHandler(clickService service.ClickCountService) *ClickCountHandler {
	return &ClickCountHandler{
		clickService: clickService,
		validate:     validator.New(),
	}
}

type ClickCountRequest struct {
	FilterType string `json:"filter_type" validate:"required"`
}

func (h *ClickCountHandler) Increment(c *fiber.Ctx) error {
	userID, err := GetUserIDFromClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	var request ClickCountRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	newCount, err := h.clickService.Increment(c.Context(), userID, request.FilterType)
	if err != nil {
		if errors.Is(err, service.ErrUnknownFilter) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown filter type: " + request.FilterType})
		}

		slog.ErrorContext(c.Context(), "Failed to increment click count", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"filter_type": request.FilterType,
		"count":       newCount,
	})
}

func (h *ClickCountHandler) GetCounts(c *fiber.Ctx) error {
	userID, err := GetUserIDFromClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	counts, err := h.clickService.GetCounts(c.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrCounterNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No click counts recorded"})
		}

		slog.ErrorContext(c.Context(), "Failed to get click counts", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"counts": fiber.Map{
			"moisturizer_count": counts.MoisturizerCount,
			"cleanser_count":    counts.CleanserCount,
			"treatment_count":   counts.TreatmentCount,
			"face_mask_count":   counts.FaceMaskCount,
			"eye_cream_count":   counts.EyeCreamCount,
			"sun_protect_count": counts.SunProtectCount,
			"combination_count": counts.CombinationCount,
			"dry_count":         counts.DryCount,
			"normal_count":      counts.NormalCount,
			"oily_count":        counts.OilyCount,
			"sensitive_count":   counts.SensitiveCount,
		},
	})
}
