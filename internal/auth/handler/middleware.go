package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/farberstyle-netizen/holistic-dog-site/internal/auth/domain"
	"github.com/farberstyle-netizen/holistic-dog-site/internal/auth/service"
	"github.com/farberstyle-netizen/holistic-dog-site/pkg/constant"
)

const localsUserKey = "authUser"

// TokenFromRequest extracts the session token. The cookie is the canonical
// transport; the Authorization header is a deprecated fallback kept for
// clients that have not migrated.
func TokenFromRequest(c *fiber.Ctx) string {
	if token := strings.TrimSpace(c.Cookies(constant.SessionCookieName)); token != "" {
		return token
	}

	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return strings.TrimSpace(header[len("bearer "):])
	}

	return ""
}

// RequireAuth admits the request only with a live session, stashing the
// resolved user for downstream handlers.
func RequireAuth(sessions service.SessionManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		us, err := sessions.Validate(c.Context(), TokenFromRequest(c))
		if err != nil {
			return fail(c, fiber.StatusUnauthorized, "Unauthorized - please log in")
		}

		c.Locals(localsUserKey, us)

		return c.Next()
	}
}

// RequireAdmin runs after RequireAuth; an unauthenticated request never
// reaches the privilege check, so a missing token stays a 401.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		us := CurrentUser(c)
		if us == nil {
			return fail(c, fiber.StatusUnauthorized, "Unauthorized - please log in")
		}

		if !us.IsAdmin {
			return fail(c, fiber.StatusForbidden, "Forbidden - admin access required")
		}

		return c.Next()
	}
}

// CurrentUser returns the session user placed by RequireAuth, or nil.
func CurrentUser(c *fiber.Ctx) *domain.UserSession {
	us, _ := c.Locals(localsUserKey).(*domain.UserSession)
	return us
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	return fail(c, fiber.StatusInternalServerError, "Internal server error")
}
