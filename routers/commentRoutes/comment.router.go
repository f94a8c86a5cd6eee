package commentRoutes

import (
	controllers "github.com/fishperson113/letslearn-backend/controllers/comment"
	"github.com/fishperson113/letslearn-backend/middleware"
	validators "github.com/fishperson113/letslearn-backend/validators/comment"

	"github.com/gofiber/fiber/v2"
)

func SetupCommentRoutes(app *fiber.App) {
	app.Post("/course/:id/comment", middleware.JWTMiddleware, validators.CreateComment(), controllers.CreateComment)
	app.Get("/course/:id/comments", middleware.JWTMiddleware, controllers.GetCourseComments)
	app.Delete("/comment/:id", middleware.JWTMiddleware, controllers.DeleteComment)
}
