package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/skyviewhq/skyview-api/internal/api"
	apiMiddleware "github.com/skyviewhq/skyview-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Paths and gates reproduce the original API
// surface exactly, including its casing quirks.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Create API handlers using the application's services
	tokenHandler := api.NewTokenHandler(app.tokenService)
	userHandler := api.NewUserHandler(app.userStore, app.rentalService)
	apartmentHandler := api.NewApartmentHandler(app.apartmentStore)
	agreementHandler := api.NewAgreementHandler(app.agreementStore, app.rentalService)
	announcementHandler := api.NewAnnouncementHandler(app.announcementStore)
	couponHandler := api.NewCouponHandler(app.couponStore)
	paymentHandler := api.NewPaymentHandler(app.paymentStore, app.paymentGateway)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService, app.userStore)

	// Public endpoints
	r.Post("/jwt", tokenHandler.Issue)
	r.Post("/users", userHandler.Register)
	r.Get("/users", userHandler.List)
	r.Get("/apartment", apartmentHandler.List)
	r.Get("/apartmentCount", apartmentHandler.Count)
	r.Get("/unAvailableApartment", apartmentHandler.UnavailableCount)
	r.Get("/coupons", couponHandler.List)
	r.Post("/payments", paymentHandler.Create)

	// Authenticated endpoints
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)

		r.Patch("/users/{email}", userHandler.MoveOut)
		r.Get("/users/role/{email}", userHandler.GetRole)
		r.Get("/agreement/{email}", agreementHandler.GetByEmail)
		r.Post("/agreement", agreementHandler.Apply)
		r.Get("/announcement", announcementHandler.List)
		r.Post("/create-payment-intent", paymentHandler.CreateIntent)
		r.Get("/payments/{email}", paymentHandler.ListByEmail)

		// Admin endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAdmin)

			r.Get("/members", userHandler.ListMembers)
			r.Get("/agreement", agreementHandler.List)
			r.Patch("/agreement/checking/{id}", agreementHandler.Decide)
			r.Post("/announcement", announcementHandler.Create)
			r.Post("/coupons", couponHandler.Create)
		})
	})

	// Liveness endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("SkyView server is running...")); err != nil {
			app.logger.Error("Failed to write liveness response", "error", err)
		}
	})

	return r
}
