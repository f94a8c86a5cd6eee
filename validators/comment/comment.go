package commentValidator

import (
	"strings"

	"github.com/fishperson113/letslearn-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateComment validates a comment creation request
func CreateComment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID string `json:"courseId"`
			ParentID *uint  `json:"parentId"`
			Content  string `json:"content"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// route param wins over any course id in the body
		if id := strings.TrimSpace(c.Params("id")); id != "" {
			reqData.CourseID = id
		}
		reqData.CourseID = strings.TrimSpace(reqData.CourseID)
		reqData.Content = strings.TrimSpace(reqData.Content)

		if reqData.CourseID == "" {
			errors["courseId"] = "Course ID is required!"
		}

		if reqData.Content == "" {
			errors["content"] = "Content is required!"
		} else if len(reqData.Content) > 2000 {
			errors["content"] = "Content must be at most 2000 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedComment", reqData)
		return c.Next()
	}
}
