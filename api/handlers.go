package api

import (
	"github.com/brandforge/logo-backend/config"
	"github.com/brandforge/logo-backend/database"
	"github.com/brandforge/logo-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, c map[string]string) *routeHandlers {
	// The external design strategy stays off unless explicitly enabled; its
	// failures degrade to catalog output either way.
	var generator services.LogoGenerator
	if config.GetBool(c, "CANVA_ENABLED", false) {
		generator = services.NewCanvaGenerator(c)
	}

	logoRequestService := services.NewLogoRequestService(database.LogoRequestRepo(), generator)

	return &routeHandlers{
		logoRequestHandler: newLogoRequestHandler(logoRequestService),
	}
}
