package messageRoutes

import (
	controllers "github.com/fishperson113/letslearn-backend/controllers/message"
	"github.com/fishperson113/letslearn-backend/middleware"
	validators "github.com/fishperson113/letslearn-backend/validators/message"

	"github.com/gofiber/fiber/v2"
)

func SetupMessageRoutes(app *fiber.App) {
	messageGroup := app.Group("/message")

	messageGroup.Post("/send", middleware.JWTMiddleware, validators.SendMessage(), controllers.SendMessage)
	messageGroup.Get("/conversations", middleware.JWTMiddleware, controllers.GetConversations)
	messageGroup.Get("/conversation/:id", middleware.JWTMiddleware, controllers.GetConversationMessages)
}
