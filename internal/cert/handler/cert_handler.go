package handler

import (
	"errors"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	certerror "github.com/farberstyle-netizen/holistic-dog-site/internal/errors"

	authhandler "github.com/farberstyle-netizen/holistic-dog-site/internal/auth/handler"
	"github.com/farberstyle-netizen/holistic-dog-site/internal/cert/dto"
	"github.com/farberstyle-netizen/holistic-dog-site/internal/cert/service"
	"github.com/farberstyle-netizen/holistic-dog-site/pkg/constant"
)

type CertHandler struct {
	certService *service.CertService
}

func NewCertHandler(certService *service.CertService) *CertHandler {
	return &CertHandler{certService: certService}
}

func (h *CertHandler) Checkout(c *fiber.Ctx) error {
	var input dto.CheckoutInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.DogName == "" || input.State == "" {
		return fail(c, fiber.StatusBadRequest, "Dog name and state required")
	}

	us := authhandler.CurrentUser(c)

	result, err := h.certService.Checkout(c.Context(), us.UserID, us.Email, input)
	if err != nil {
		return internalError(c, err)
	}

	body := fiber.Map{"success": true}
	if result.Free {
		body["licenseId"] = result.LicenseID
		body["free"] = true
	} else {
		body["sessionUrl"] = result.SessionURL
	}
	if result.Test {
		body["test"] = true
	}
	if result.Message != "" {
		body["message"] = result.Message
	}

	return c.Status(fiber.StatusOK).JSON(body)
}

// Webhook acknowledges every well-formed event with 200 so the payment
// provider does not retry; failures on our side are logged.
func (h *CertHandler) Webhook(c *fiber.Ctx) error {
	var event dto.WebhookEvent
	if err := c.BodyParser(&event); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid event payload")
	}

	if event.Type == dto.EventCheckoutCompleted {
		if err := h.certService.HandleCheckoutCompleted(c.Context(), event); err != nil {
			log.Error().Err(err).Msg("webhook processing failed")
			return c.Status(fiber.StatusInternalServerError).SendString("Webhook Error")
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"received": true})
}

func (h *CertHandler) UploadPhoto(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "No photo provided")
	}

	if fileHeader.Size > constant.MaxPhotoBytes {
		return fail(c, fiber.StatusBadRequest, "File too large. Maximum size is 5MB")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return internalError(c, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, constant.MaxPhotoBytes+1))
	if err != nil {
		return internalError(c, err)
	}
	if len(data) > constant.MaxPhotoBytes {
		return fail(c, fiber.StatusBadRequest, "File too large. Maximum size is 5MB")
	}

	contentType := fileHeader.Header.Get(fiber.HeaderContentType)

	url, err := h.certService.UploadPhoto(c.Context(), authhandler.CurrentUser(c).UserID, contentType, data)
	if err != nil {
		if errors.Is(err, certerror.ErrInvalidFileType) || errors.Is(err, certerror.ErrPhotoTooLarge) {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "url": url})
}

func (h *CertHandler) Gallery(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "50"))
	if err != nil || limit <= 0 || limit > 200 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	entries, total, err := h.certService.Gallery(c.Context(), limit, offset)
	if err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"dogs":    entries,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

func (h *CertHandler) Verify(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return fail(c, fiber.StatusBadRequest, "Query parameter required")
	}

	results, err := h.certService.Verify(c.Context(), query)
	if err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"results": results,
		"count":   len(results),
	})
}

func (h *CertHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.certService.Stats(c.Context())
	if err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":               true,
		"total_certifications":  stats.TotalCertifications,
		"active_dogs":           stats.ActiveDogs,
		"pending_shipments":     stats.PendingShipments,
		"recent_certifications": stats.RecentCerts,
	})
}

func (h *CertHandler) RecentDogs(c *fiber.Ctx) error {
	dogs, err := h.certService.RecentDogs(c.Context())
	if err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "dogs": dogs})
}

func (h *CertHandler) Shipments(c *fiber.Ctx) error {
	shipments, err := h.certService.Shipments(c.Context())
	if err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "shipments": shipments})
}

func (h *CertHandler) UpdateTracking(c *fiber.Ctx) error {
	var input dto.TrackingInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.DogID == 0 || input.TrackingNumber == "" {
		return fail(c, fiber.StatusBadRequest, "Missing dog_id or tracking_number")
	}

	if err := h.certService.UpdateTracking(c.Context(), input); err != nil {
		if errors.Is(err, certerror.ErrDogNotFound) {
			return fail(c, fiber.StatusNotFound, err.Error())
		}
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Tracking updated"})
}

func (h *CertHandler) UpdateDog(c *fiber.Ctx) error {
	var input dto.DogDetailsInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.DogID == 0 {
		return fail(c, fiber.StatusBadRequest, "Missing dog_id")
	}

	err := h.certService.UpdateDogDetails(c.Context(), authhandler.CurrentUser(c).UserID, input)
	if err != nil {
		if errors.Is(err, certerror.ErrDogNotFound) {
			return fail(c, fiber.StatusNotFound, err.Error())
		}
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Dog details updated"})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": message})
}

func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	return fail(c, fiber.StatusInternalServerError, "Internal server error")
}
