package courseRoutes

import (
	controllers "github.com/fishperson113/letslearn-backend/controllers/course"
	"github.com/fishperson113/letslearn-backend/middleware"
	validators "github.com/fishperson113/letslearn-backend/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all course, section, topic and activity routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Course CRUD
	courseGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Post("/create", middleware.JWTMiddleware, validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Get("/:id", middleware.JWTMiddleware, controllers.GetCourseDetails)
	courseGroup.Put("/:id", middleware.JWTMiddleware, validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, controllers.DeleteCourse)
	courseGroup.Post("/:id/publish", middleware.JWTMiddleware, controllers.PublishCourse)

	// Cloning
	courseGroup.Post("/:id/clone", middleware.JWTMiddleware, validators.CloneCourse(), controllers.CloneCourse)

	// Sections
	courseGroup.Post("/:id/section", middleware.JWTMiddleware, validators.CreateSection(), controllers.CreateSection)

	sectionGroup := app.Group("/section")
	sectionGroup.Put("/:id", middleware.JWTMiddleware, validators.CreateSection(), controllers.UpdateSection)
	sectionGroup.Delete("/:id", middleware.JWTMiddleware, controllers.DeleteSection)

	// Topics
	sectionGroup.Post("/:id/topic", middleware.JWTMiddleware, validators.CreateTopic(), controllers.CreateTopic)

	topicGroup := app.Group("/topic")
	topicGroup.Get("/:id", middleware.JWTMiddleware, controllers.GetTopic)
	topicGroup.Put("/:id", middleware.JWTMiddleware, validators.UpdateTopic(), controllers.UpdateTopic)
	topicGroup.Delete("/:id", middleware.JWTMiddleware, controllers.DeleteTopic)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, controllers.EnrollCourse)
	courseGroup.Delete("/:id/enroll", middleware.JWTMiddleware, controllers.UnenrollCourse)

	app.Get("/user/enrollments", middleware.JWTMiddleware, controllers.GetMyEnrollments)

	// Assignment submissions
	topicGroup.Post("/:id/submission", middleware.JWTMiddleware, controllers.SubmitAssignment)
	topicGroup.Get("/:id/submission", middleware.JWTMiddleware, controllers.GetMySubmission)
	topicGroup.Get("/:id/submissions", middleware.JWTMiddleware, controllers.ListSubmissions)

	submissionGroup := app.Group("/submission")
	submissionGroup.Post("/:id/grade", middleware.JWTMiddleware, validators.GradeSubmission(), controllers.GradeSubmission)

	// Admin
	adminGroup := app.Group("/admin/course")
	adminGroup.Get("/list", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), controllers.GetAllCoursesAdmin)

	// Quiz attempts
	topicGroup.Post("/:id/attempt", middleware.JWTMiddleware, validators.SubmitQuizAttempt(), controllers.SubmitQuizAttempt)
	topicGroup.Get("/:id/attempts", middleware.JWTMiddleware, controllers.GetMyQuizAttempts)
}
