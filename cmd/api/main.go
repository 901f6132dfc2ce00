package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/shineinfosolutions/crm-api/internal/application/auth"
	"github.com/shineinfosolutions/crm-api/internal/application/billing"
	"github.com/shineinfosolutions/crm-api/internal/application/notify"
	"github.com/shineinfosolutions/crm-api/internal/infrastructure/fcm"
	infrapdf "github.com/shineinfosolutions/crm-api/internal/infrastructure/pdf"
	"github.com/shineinfosolutions/crm-api/internal/infrastructure/postgres"
	httpRouter "github.com/shineinfosolutions/crm-api/internal/interfaces/http"
	"github.com/shineinfosolutions/crm-api/pkg/config"
	"github.com/shineinfosolutions/crm-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	invoiceRepo := postgres.NewInvoiceRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	tokenRepo := postgres.NewDeviceTokenRepository(pool)

	// Push delivery is optional: without credentials the API still registers
	// device tokens, it just never sends.
	var sender notify.MessageSender
	if cfg.FCM.CredentialsFile != "" {
		fcmClient, err := fcm.NewClient(ctx, cfg.FCM.CredentialsFile, cfg.FCM.ProjectID)
		if err != nil {
			log.Fatal().Err(err).Msg("FCM client")
		}
		sender = fcmClient
	} else {
		log.Warn().Msg("FCM credentials not configured, push delivery disabled")
	}
	notifyUC := notify.NewUseCase(tokenRepo, sender, log)

	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, notifyUC)

	pdfGenerator := infrapdf.NewMarotoGenerator()
	pdfUC := billing.NewPDFUseCase(invoiceRepo, pdfGenerator, billing.SellerInfo{
		Name:        cfg.Seller.Name,
		GSTIN:       cfg.Seller.GSTIN,
		Address:     cfg.Seller.Address,
		City:        cfg.Seller.City,
		Phone:       cfg.Seller.Phone,
		Email:       cfg.Seller.Email,
		BankName:    cfg.Seller.BankName,
		BankAccount: cfg.Seller.BankAccount,
		BankIFSC:    cfg.Seller.BankIFSC,
		BankBranch:  cfg.Seller.BankBranch,
	})

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI in local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CRM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceUC: invoiceUC,
		PDFUC:     pdfUC,
		NotifyUC:  notifyUC,
		AuthUC:    authUC,
		JWTSecret: cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
