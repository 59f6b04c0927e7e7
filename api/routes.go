package api

import (
	"github.com/go-chi/chi/v5"
)

// setupAPIRoutes mounts the intake endpoints. There is deliberately no
// list, delete, or regenerate route; the client's regenerate affordance has
// no backing operation.
func setupAPIRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		// Logo request endpoints
		r.Post("/api/logo-requests", handlers.logoRequestHandler.createLogoRequest())
		r.Get("/api/logo-requests/{logoRequestID}", handlers.logoRequestHandler.getLogoRequest())
	})
}
