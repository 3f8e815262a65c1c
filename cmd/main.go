package main

import (
	"context"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"

	"github.com/farberstyle-netizen/holistic-dog-site/config"
	"github.com/farberstyle-netizen/holistic-dog-site/db"
	authhandler "github.com/farberstyle-netizen/holistic-dog-site/internal/auth/handler"
	authrepo "github.com/farberstyle-netizen/holistic-dog-site/internal/auth/repository/postgres"
	authservice "github.com/farberstyle-netizen/holistic-dog-site/internal/auth/service"
	certhandler "github.com/farberstyle-netizen/holistic-dog-site/internal/cert/handler"
	certrepo "github.com/farberstyle-netizen/holistic-dog-site/internal/cert/repository/postgres"
	certservice "github.com/farberstyle-netizen/holistic-dog-site/internal/cert/service"
	"github.com/farberstyle-netizen/holistic-dog-site/internal/mailer"
	"github.com/farberstyle-netizen/holistic-dog-site/pkg/cloudinary"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg := config.Load()
	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	defer dbPool.Close()

	uploader, err := cloudinary.NewUploader()
	if err != nil {
		logger.Fatal().Err(err).Msg("cloudinary init failed")
	}

	mail := mailer.New(mailer.Config{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: cfg.MailFrom,
	})

	userRepo := authrepo.NewUserRepository(dbPool)
	sessionRepo := authrepo.NewSessionRepository(dbPool)
	resetTokenRepo := authrepo.NewResetTokenRepository(dbPool)
	certRepo := certrepo.NewCertRepository(dbPool)

	sessionService := authservice.NewSessionService(sessionRepo)
	userService := authservice.NewUserService(userRepo, resetTokenRepo, sessionService, mail, cfg.SiteBaseURL, logger)
	certService := certservice.NewCertService(certRepo, uploader, mail, certservice.PaymentLinks{
		Live: cfg.StripePaymentLink,
		Test: cfg.StripePaymentTestLink,
	}, logger)

	authHandler := authhandler.NewAuthHandler(userService)
	accountHandler := authhandler.NewAccountHandler(userService, certService)
	certHandler := certhandler.NewCertHandler(certService)

	app := fiber.New()
	// Gallery and verify carry their own permissive CORS policy; keep the
	// credentialed allow-list off those paths so the headers don't conflict.
	app.Use(cors.New(cors.Config{
		Next: func(c *fiber.Ctx) bool {
			p := c.Path()
			return strings.HasPrefix(p, "/api/v1/gallery") || strings.HasPrefix(p, "/api/v1/verify")
		},
		AllowOrigins:     strings.Join(cfg.AllowedOrigins, ", "),
		AllowHeaders:     "Content-Type, Accept, Authorization, Cookie",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	authhandler.RegisterRoutes(app, authHandler, accountHandler, sessionService)
	certhandler.RegisterRoutes(app, certHandler, sessionService)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	logger.Info().Str("port", cfg.Port).Msg("listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
