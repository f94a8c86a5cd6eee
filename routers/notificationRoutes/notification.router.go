package notificationRoutes

import (
	controllers "github.com/fishperson113/letslearn-backend/controllers/notification"
	"github.com/fishperson113/letslearn-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/notification")

	notificationGroup.Get("/list", middleware.JWTMiddleware, controllers.GetNotifications)
	notificationGroup.Post("/read-all", middleware.JWTMiddleware, controllers.MarkAllNotificationsRead)
	notificationGroup.Post("/:id/read", middleware.JWTMiddleware, controllers.MarkNotificationRead)
}
