// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hausfam/onboarding-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	onboardingHandler *handlers.OnboardingHandler,
	formHandler *handlers.FormHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Wizard session lifecycle.
		r.Post("/onboarding/sessions", onboardingHandler.StartSession)
		r.Get("/onboarding/sessions/{id}", onboardingHandler.GetSession)

		// Per-step updates.
		r.Put("/onboarding/sessions/{id}/personal", onboardingHandler.UpdatePersonal)
		r.Put("/onboarding/sessions/{id}/tax", onboardingHandler.UpdateTax)
		r.Put("/onboarding/sessions/{id}/children", onboardingHandler.UpdateChildren)
		r.Put("/onboarding/sessions/{id}/household", onboardingHandler.UpdateHousehold)
		r.Put("/onboarding/sessions/{id}/preferences", onboardingHandler.UpdatePreferences)

		// Navigation and submission.
		r.Post("/onboarding/sessions/{id}/next", onboardingHandler.Next)
		r.Post("/onboarding/sessions/{id}/back", onboardingHandler.Back)
		r.Post("/onboarding/sessions/{id}/skip", onboardingHandler.Skip)
		r.Post("/onboarding/sessions/{id}/complete", onboardingHandler.Complete)

		// Form descriptions and shared helpers.
		r.Get("/address-forms/{country}", formHandler.AddressForm)
		r.Post("/phone/format", formHandler.FormatPhone)
	})

	return r
}
