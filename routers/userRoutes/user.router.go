package userRoutes

import (
	"github.com/fishperson113/letslearn-backend/controllers/userControllers"
	"github.com/fishperson113/letslearn-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userControllers.GetProfile)
	userGroup.Patch("/profile", middleware.JWTMiddleware, userControllers.UpdateProfile)
	userGroup.Get("/courses", middleware.JWTMiddleware, userControllers.GetMyCourses)
}
