package courseValidator

import (
	"encoding/json"
	"strings"

	"github.com/fishperson113/letslearn-backend/middleware"
	courseModels "github.com/fishperson113/letslearn-backend/models/course"

	"github.com/gofiber/fiber/v2"
)

// CreateSection validates section creation and update requests
func CreateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Position    *int   `json:"position"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}

		if reqData.Position != nil && *reqData.Position < 0 {
			errors["position"] = "Position cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

// CreateTopic validates topic creation. The tag is checked before the payload
// is ever parsed so an unsupported type fails fast.
func CreateTopic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title   string          `json:"title"`
			Type    string          `json:"type"`
			Payload json.RawMessage `json:"payload"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Type = strings.TrimSpace(reqData.Type)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}

		if reqData.Type == "" {
			errors["type"] = "Topic type is required!"
		} else if !courseModels.ValidTopicType(reqData.Type) {
			errors["type"] = "Unsupported topic type!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTopic", reqData)
		return c.Next()
	}
}

// UpdateTopic validates topic update requests
func UpdateTopic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title   *string         `json:"title"`
			Type    string          `json:"type"`
			Payload json.RawMessage `json:"payload"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Type = strings.TrimSpace(reqData.Type)

		if reqData.Type == "" {
			errors["type"] = "Topic type is required!"
		} else if !courseModels.ValidTopicType(reqData.Type) {
			errors["type"] = "Unsupported topic type!"
		}

		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			errors["title"] = "Title cannot be empty!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTopicUpdate", reqData)
		return c.Next()
	}
}

// GradeSubmission validates a grading request
func GradeSubmission() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Grade float64 `json:"grade"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Grade < 0 || reqData.Grade > 100 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"grade": "Grade must be between 0 and 100!",
			})
		}

		c.Locals("validatedGrade", reqData)
		return c.Next()
	}
}
