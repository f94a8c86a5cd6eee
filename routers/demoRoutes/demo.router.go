package demoRoutes

import (
	controllers "github.com/fishperson113/letslearn-backend/controllers/demo"

	"github.com/gofiber/fiber/v2"
)

func SetupDemoRoutes(app *fiber.App) {
	demoGroup := app.Group("/demo")

	demoGroup.Get("/course-stats", controllers.GetCourseStats)
}
