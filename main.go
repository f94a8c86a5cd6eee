package main

import (
	"log"

	"github.com/fishperson113/letslearn-backend/config"
	"github.com/fishperson113/letslearn-backend/database"
	authRoutes "github.com/fishperson113/letslearn-backend/routers/authRoutes"
	commentRoutes "github.com/fishperson113/letslearn-backend/routers/commentRoutes"
	courseRoutes "github.com/fishperson113/letslearn-backend/routers/courseRoutes"
	demoRoutes "github.com/fishperson113/letslearn-backend/routers/demoRoutes"
	messageRoutes "github.com/fishperson113/letslearn-backend/routers/messageRoutes"
	notificationRoutes "github.com/fishperson113/letslearn-backend/routers/notificationRoutes"
	userProfileRoutes "github.com/fishperson113/letslearn-backend/routers/userRoutes"
	"github.com/fishperson113/letslearn-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	database.ConnectRedis()

	utils.InitializeGradeReminderScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",  // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded files (assignment submissions, template files)
	app.Static("/uploads", "./uploads")

	authRoutes.SetupAuthRoutes(app)
	userProfileRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	commentRoutes.SetupCommentRoutes(app)
	messageRoutes.SetupMessageRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)
	demoRoutes.SetupDemoRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
