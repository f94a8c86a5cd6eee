package courseValidator

import (
	"strings"

	"github.com/fishperson113/letslearn-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

// quizAnswer mirrors the attempt submission shape used by the quiz controller.
type quizAnswer struct {
	QuestionID string   `json:"questionId"`
	ChoiceIDs  []string `json:"choiceIds"`
	Text       string   `json:"text"`
}

// SubmitQuizAttempt validates a quiz attempt submission
func SubmitQuizAttempt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Answers []quizAnswer `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		for _, answer := range reqData.Answers {
			if strings.TrimSpace(answer.QuestionID) == "" {
				errors["answers"] = "Every answer needs a question id!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// the controller re-parses the body; this handler only gates bad input
		return c.Next()
	}
}
