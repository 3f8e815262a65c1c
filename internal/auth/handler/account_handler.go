package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	autherror "github.com/farberstyle-netizen/holistic-dog-site/internal/errors"

	"github.com/farberstyle-netizen/holistic-dog-site/internal/auth/dto"
	"github.com/farberstyle-netizen/holistic-dog-site/internal/auth/service"
	certdomain "github.com/farberstyle-netizen/holistic-dog-site/internal/cert/domain"
	"github.com/farberstyle-netizen/holistic-dog-site/pkg/constant"
)

// CertifiedDogLister supplies the paid certifications shown on the account
// page without pulling the whole cert service into this handler.
type CertifiedDogLister interface {
	ListPaidByUser(ctx context.Context, userID string) ([]certdomain.Dog, error)
}

type AccountHandler struct {
	userService *service.UserService
	dogs        CertifiedDogLister
}

func NewAccountHandler(userService *service.UserService, dogs CertifiedDogLister) *AccountHandler {
	return &AccountHandler{userService: userService, dogs: dogs}
}

// Profile returns the user record together with their certified dogs and
// saved addresses, mirroring what the account page renders.
func (h *AccountHandler) Profile(c *fiber.Ctx) error {
	us := CurrentUser(c)

	user, err := h.userService.GetProfile(c.Context(), us.UserID)
	if err != nil {
		if errors.Is(err, autherror.ErrUserNotFound) {
			return fail(c, fiber.StatusNotFound, err.Error())
		}
		return internalError(c, err)
	}

	dogs, err := h.dogs.ListPaidByUser(c.Context(), us.UserID)
	if err != nil {
		return internalError(c, err)
	}

	addresses, err := h.userService.ListAddresses(c.Context(), us.UserID)
	if err != nil {
		return internalError(c, err)
	}

	addressOut := make([]dto.SavedAddressOutput, 0, len(addresses))
	for _, a := range addresses {
		addressOut = append(addressOut, dto.SavedAddressOutput{
			ID: a.ID, Label: a.Label, Name: a.Name,
			Address: a.Address, City: a.City, State: a.State, Zip: a.Zip,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"user": dto.ProfileOutput{
			ID:             user.ID,
			Email:          user.Email,
			FirstName:      user.FirstName,
			LastName:       user.LastName,
			Address:        user.Address,
			City:           user.City,
			State:          user.State,
			Zip:            user.Zip,
			BillingName:    user.BillingName,
			BillingAddress: user.BillingAddress,
			BillingCity:    user.BillingCity,
			BillingState:   user.BillingState,
			BillingZip:     user.BillingZip,
		},
		"dogs":            dogs,
		"saved_addresses": addressOut,
	})
}

func (h *AccountHandler) UpdateProfile(c *fiber.Ctx) error {
	var input dto.ProfileUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.userService.UpdateProfile(c.Context(), CurrentUser(c).UserID, input); err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Profile updated"})
}

func (h *AccountHandler) UpdateBilling(c *fiber.Ctx) error {
	var input dto.BillingUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.userService.UpdateBilling(c.Context(), CurrentUser(c).UserID, input); err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Billing address updated"})
}

func (h *AccountHandler) ChangePassword(c *fiber.Ctx) error {
	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return fail(c, fiber.StatusBadRequest, "Missing required fields")
	}
	if len(input.NewPassword) < constant.MinPasswordLength {
		return fail(c, fiber.StatusBadRequest, "Password must be at least 8 characters")
	}

	err := h.userService.ChangePassword(c.Context(), CurrentUser(c).UserID, input)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrWrongCurrentPassword):
			return fail(c, fiber.StatusUnauthorized, err.Error())
		case errors.Is(err, autherror.ErrUserNotFound):
			return fail(c, fiber.StatusNotFound, err.Error())
		default:
			return internalError(c, err)
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Password changed successfully"})
}

func (h *AccountHandler) ListAddresses(c *fiber.Ctx) error {
	addresses, err := h.userService.ListAddresses(c.Context(), CurrentUser(c).UserID)
	if err != nil {
		return internalError(c, err)
	}

	out := make([]dto.SavedAddressOutput, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, dto.SavedAddressOutput{
			ID: a.ID, Label: a.Label, Name: a.Name,
			Address: a.Address, City: a.City, State: a.State, Zip: a.Zip,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "addresses": out})
}

func (h *AccountHandler) CreateAddress(c *fiber.Ctx) error {
	var input dto.SavedAddressInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.Label == "" || input.Name == "" || input.Address == "" || input.City == "" || input.State == "" || input.Zip == "" {
		return fail(c, fiber.StatusBadRequest, "Missing required fields")
	}

	id, err := h.userService.CreateAddress(c.Context(), CurrentUser(c).UserID, input)
	if err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Address saved", "id": id})
}

func (h *AccountHandler) UpdateAddress(c *fiber.Ctx) error {
	var input dto.SavedAddressInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.ID == 0 {
		return fail(c, fiber.StatusBadRequest, "Missing address id")
	}

	if err := h.userService.UpdateAddress(c.Context(), CurrentUser(c).UserID, input); err != nil {
		if errors.Is(err, autherror.ErrAddressNotFound) {
			return fail(c, fiber.StatusNotFound, err.Error())
		}
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Address updated"})
}

func (h *AccountHandler) DeleteAddress(c *fiber.Ctx) error {
	var input dto.SavedAddressInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.ID == 0 {
		return fail(c, fiber.StatusBadRequest, "Missing address id")
	}

	if err := h.userService.DeleteAddress(c.Context(), CurrentUser(c).UserID, input.ID); err != nil {
		if errors.Is(err, autherror.ErrAddressNotFound) {
			return fail(c, fiber.StatusNotFound, err.Error())
		}
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Address deleted"})
}
