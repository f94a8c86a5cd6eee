package authRoutes

import (
	authControllers "github.com/fishperson113/letslearn-backend/controllers/auth"
	authValidators "github.com/fishperson113/letslearn-backend/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
}
