package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/skyviewhq/skyview-api/internal/api"
	"github.com/skyviewhq/skyview-api/internal/config"
	"github.com/skyviewhq/skyview-api/internal/platform/mongodb"
	"github.com/skyviewhq/skyview-api/internal/platform/stripe"
	"github.com/skyviewhq/skyview-api/internal/service/auth"
	"github.com/skyviewhq/skyview-api/internal/service/rental"
	"github.com/skyviewhq/skyview-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown. Handlers receive these
// by reference instead of capturing globals.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *mongodb.Database

	// Stores (using interfaces for proper abstraction)
	userStore         store.UserStore
	apartmentStore    store.ApartmentStore
	agreementStore    store.AgreementStore
	couponStore       store.CouponStore
	announcementStore store.AnnouncementStore
	paymentStore      store.PaymentStore

	// Service interfaces
	tokenService   auth.TokenService
	rentalService  rental.Service
	paymentGateway api.PaymentGateway
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts the core dependencies that must be established
// before application wiring: configuration, logger, and database handle.
func newApplication(cfg *config.Config, logger *slog.Logger, db *mongodb.Database) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.tokenService, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("Token service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Initialize stores
	app.userStore = mongodb.NewUserStore(db)
	app.apartmentStore = mongodb.NewApartmentStore(db)
	app.agreementStore = mongodb.NewAgreementStore(db)
	app.couponStore = mongodb.NewCouponStore(db)
	app.announcementStore = mongodb.NewAnnouncementStore(db)
	app.paymentStore = mongodb.NewPaymentStore(db)

	// Initialize the rental workflow, the only multi-step business logic.
	app.rentalService, err = rental.NewService(
		app.agreementStore,
		app.userStore,
		app.apartmentStore,
		db,
		logger.With("component", "rental_service"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rental service: %w", err)
	}

	// Initialize the payment gateway client.
	app.paymentGateway, err = stripe.NewGateway(
		cfg.Payment,
		logger.With("component", "payment_gateway"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize payment gateway: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.db.Close(ctx); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
