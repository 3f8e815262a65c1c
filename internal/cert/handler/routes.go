package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	authhandler "github.com/farberstyle-netizen/holistic-dog-site/internal/auth/handler"
	"github.com/farberstyle-netizen/holistic-dog-site/internal/auth/service"
)

func RegisterRoutes(app *fiber.App, h *CertHandler, sessions service.SessionManager) {
	// Gallery and verification are embedded on third-party pages, so they get
	// a permissive CORS policy of their own (no credentials involved). Scoped
	// with a Next predicate so the wildcard headers never reach the
	// credentialed routes sharing the /api/v1 prefix.
	app.Use(cors.New(cors.Config{
		Next: func(c *fiber.Ctx) bool {
			p := c.Path()
			return p != "/api/v1/gallery" && p != "/api/v1/verify"
		},
		AllowOrigins: "*",
		AllowMethods: "GET, OPTIONS",
		AllowHeaders: "Content-Type",
	}))
	app.Get("/api/v1/gallery", h.Gallery)
	app.Get("/api/v1/verify", h.Verify)

	app.Post("/api/v1/payments/webhook", h.Webhook)

	requireAuth := authhandler.RequireAuth(sessions)
	app.Post("/api/v1/checkout", requireAuth, h.Checkout)
	app.Post("/api/v1/dogs/photo", requireAuth, h.UploadPhoto)
	app.Put("/api/v1/account/dogs", requireAuth, h.UpdateDog)

	admin := app.Group("/api/v1/admin", requireAuth, authhandler.RequireAdmin())
	admin.Get("/stats", h.Stats)
	admin.Get("/recent-dogs", h.RecentDogs)
	admin.Get("/shipments", h.Shipments)
	admin.Post("/shipments/tracking", h.UpdateTracking)
}
