package adminRoutes

import (
	adminControllers "github.com/SSub-jun/edu-platform-sub001/controllers/admin"
	"github.com/SSub-jun/edu-platform-sub001/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"))

	adminGroup.Get("/dashboard", adminControllers.GetDashboardStats)
}
