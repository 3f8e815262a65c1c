package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	autherror "github.com/farberstyle-netizen/holistic-dog-site/internal/errors"

	"github.com/farberstyle-netizen/holistic-dog-site/internal/auth/dto"
	"github.com/farberstyle-netizen/holistic-dog-site/internal/auth/service"
	"github.com/farberstyle-netizen/holistic-dog-site/pkg/constant"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if input.Email == "" || input.Password == "" || input.FirstName == "" {
		return fail(c, fiber.StatusBadRequest, "Email, password, and first name required")
	}
	if len(input.Password) < constant.MinPasswordLength {
		return fail(c, fiber.StatusBadRequest, "Password must be at least 8 characters")
	}

	result, err := h.userService.Signup(c.Context(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrEmailAlreadyInUse) {
			return fail(c, fiber.StatusConflict, err.Error())
		}
		return internalError(c, err)
	}

	setSessionCookie(c, result.Token, result.ExpiresAt)

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		Success: true,
		Token:   result.Token,
		User: dto.UserOutput{
			ID:        result.User.ID,
			Email:     result.User.Email,
			FirstName: result.User.FirstName,
			IsAdmin:   result.User.IsAdmin,
		},
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if input.Email == "" || input.Password == "" {
		return fail(c, fiber.StatusBadRequest, "Email and password required")
	}

	result, err := h.userService.Login(c.Context(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidCredentials) {
			return fail(c, fiber.StatusUnauthorized, err.Error())
		}
		return internalError(c, err)
	}

	setSessionCookie(c, result.Token, result.ExpiresAt)

	return c.Status(fiber.StatusOK).JSON(dto.AuthResponse{
		Success: true,
		Token:   result.Token,
		User: dto.UserOutput{
			ID:        result.User.ID,
			Email:     result.User.Email,
			FirstName: result.User.FirstName,
			IsAdmin:   result.User.IsAdmin,
		},
	})
}

// Logout always reports success: the cookie is cleared even when the session
// row cannot be deleted.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.userService.Logout(c.Context(), TokenFromRequest(c))

	clearSessionCookie(c)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}

func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var input dto.ResetRequestInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.Email == "" {
		return fail(c, fiber.StatusBadRequest, "Email required")
	}

	// The response is identical whether or not the email exists.
	if err := h.userService.RequestPasswordReset(c.Context(), input.Email); err != nil {
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "If that email exists, a reset link has been sent",
	})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.Token == "" || input.NewPassword == "" {
		return fail(c, fiber.StatusBadRequest, "Token and new password required")
	}
	if len(input.NewPassword) < constant.MinPasswordLength {
		return fail(c, fiber.StatusBadRequest, "Password must be at least 8 characters")
	}

	if err := h.userService.ResetPassword(c.Context(), input); err != nil {
		if errors.Is(err, autherror.ErrResetTokenInvalid) {
			return fail(c, fiber.StatusBadRequest, err.Error())
		}
		return internalError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Password reset successful. Please log in with your new password",
	})
}

func setSessionCookie(c *fiber.Ctx, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     constant.SessionCookieName,
		Value:    token,
		Expires:  expiresAt,
		Path:     "/",
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     constant.SessionCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		Path:     "/",
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
