package userRoutes

import (
	userControllers "github.com/SSub-jun/edu-platform-sub001/controllers/user"
	"github.com/SSub-jun/edu-platform-sub001/middleware"
	userValidators "github.com/SSub-jun/edu-platform-sub001/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userControllers.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, userValidators.UpdateProfile(), userControllers.UpdateProfile)
}
