package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/farberstyle-netizen/holistic-dog-site/internal/auth/service"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler, accountHandler *AccountHandler, sessions service.SessionManager) {
	app.Post("/api/v1/signup", h.Signup)
	app.Post("/api/v1/login", h.Login)
	app.Post("/api/v1/logout", h.Logout)
	app.Post("/api/v1/reset-password/request", h.RequestPasswordReset)
	app.Post("/api/v1/reset-password/reset", h.ResetPassword)

	// RequireAuth goes on each route rather than the group: group middleware
	// in fiber mounts on the path prefix, and /api/v1/account/dogs is
	// registered elsewhere with its own guard.
	requireAuth := RequireAuth(sessions)
	account := app.Group("/api/v1/account")
	account.Get("/profile", requireAuth, accountHandler.Profile)
	account.Put("/profile", requireAuth, accountHandler.UpdateProfile)
	account.Put("/billing", requireAuth, accountHandler.UpdateBilling)
	account.Put("/password", requireAuth, accountHandler.ChangePassword)
	account.Get("/addresses", requireAuth, accountHandler.ListAddresses)
	account.Post("/addresses", requireAuth, accountHandler.CreateAddress)
	account.Put("/addresses", requireAuth, accountHandler.UpdateAddress)
	account.Delete("/addresses", requireAuth, accountHandler.DeleteAddress)
}
