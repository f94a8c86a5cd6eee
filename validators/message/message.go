package messageValidator

import (
	"strings"

	"github.com/fishperson113/letslearn-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

// SendMessage validates a direct message request
func SendMessage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			RecipientID uint   `json:"recipientId"`
			Content     string `json:"content"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Content = strings.TrimSpace(reqData.Content)

		if reqData.RecipientID == 0 {
			errors["recipientId"] = "Recipient is required!"
		}

		if reqData.Content == "" {
			errors["content"] = "Content is required!"
		} else if len(reqData.Content) > 5000 {
			errors["content"] = "Content must be at most 5000 characters!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMessage", reqData)
		return c.Next()
	}
}
