package controllers

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/fishperson113/letslearn-backend/database"
	"github.com/fishperson113/letslearn-backend/middleware"
	courseModels "github.com/fishperson113/letslearn-backend/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// quizAnswer is one submitted answer keyed by question id. ChoiceIDs is used
// for choice questions, Text for truefalse and shortanswer.
type quizAnswer struct {
	QuestionID string   `json:"questionId"`
	ChoiceIDs  []string `json:"choiceIds"`
	Text       string   `json:"text"`
}

// SubmitQuizAttempt grades a quiz submission and stores the attempt.
func SubmitQuizAttempt(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	topicID := strings.TrimSpace(c.Params("id"))

	reqData := new(struct {
		Answers []quizAnswer `json:"answers"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	var quiz courseModels.TopicQuiz
	if err := database.Database.Db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Questions.Choices").
		First(&quiz, "topic_id = ?", topicID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	course, err := courseForTopic(topicID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}
	if !isEnrolled(database.Database.Db, userId, course.ID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You are not enrolled in this course!", nil)
	}

	now := time.Now()
	if quiz.Open != nil && now.Before(*quiz.Open) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Quiz is not open yet!", nil)
	}
	if quiz.Close != nil && now.After(*quiz.Close) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Quiz is closed!", nil)
	}

	var attempts int64
	database.Database.Db.Model(&courseModels.QuizAttempt{}).
		Where("quiz_id = ? AND user_id = ?", quiz.ID, userId).
		Count(&attempts)
	if quiz.AttemptAllowed > 0 && attempts >= int64(quiz.AttemptAllowed) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "No attempts remaining!", nil)
	}

	score, maxScore := gradeQuiz(&quiz, reqData.Answers)

	rawAnswers, _ := json.Marshal(reqData.Answers)
	attempt := courseModels.QuizAttempt{
		ID:            uuid.NewString(),
		QuizID:        quiz.ID,
		UserID:        userId,
		AttemptNumber: int(attempts) + 1,
		Answers:       datatypes.JSON(rawAnswers),
		Score:         score,
		MaxScore:      maxScore,
		Passed:        score >= quiz.GradeToPass,
	}

	if err := database.Database.Db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save attempt!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz attempt submitted successfully!", attempt)
}

// GetMyQuizAttempts lists the current user's attempts on a quiz topic.
func GetMyQuizAttempts(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	topicID := strings.TrimSpace(c.Params("id"))

	var quiz courseModels.TopicQuiz
	if err := database.Database.Db.First(&quiz, "topic_id = ?", topicID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var attemptList []courseModels.QuizAttempt
	if err := database.Database.Db.
		Where("quiz_id = ? AND user_id = ?", quiz.ID, userId).
		Order("attempt_number ASC").
		Find(&attemptList).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", fiber.Map{
		"attempts":      attemptList,
		"finalGrade":    finalGrade(quiz.GradingMethod, attemptList),
		"gradingMethod": quiz.GradingMethod,
	})
}

// gradeQuiz scores the submitted answers against the question tree.
func gradeQuiz(quiz *courseModels.TopicQuiz, answers []quizAnswer) (float64, float64) {
	byQuestion := make(map[string]quizAnswer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}

	var score, maxScore float64
	for _, question := range quiz.Questions {
		maxScore += question.DefaultMark

		answer, submitted := byQuestion[question.ID]
		if !submitted {
			continue
		}

		switch question.Type {
		case courseModels.QuestionTypeTrueFalse, courseModels.QuestionTypeShortAnswer:
			if strings.EqualFold(strings.TrimSpace(answer.Text), strings.TrimSpace(question.CorrectAnswer)) {
				score += question.DefaultMark
			}
		case courseModels.QuestionTypeMultipleChoice:
			var percent float64
			for _, choiceID := range answer.ChoiceIDs {
				for _, choice := range question.Choices {
					if choice.ID == choiceID {
						percent += choice.GradePercent
					}
				}
			}
			if percent < 0 {
				percent = 0
			}
			if percent > 100 {
				percent = 100
			}
			score += question.DefaultMark * percent / 100
		}
	}
	return score, maxScore
}

// finalGrade folds a user's attempts according to the quiz grading method.
func finalGrade(method string, attemptList []courseModels.QuizAttempt) float64 {
	if len(attemptList) == 0 {
		return 0
	}
	switch method {
	case courseModels.GradingAverage:
		var sum float64
		for _, a := range attemptList {
			sum += a.Score
		}
		return sum / float64(len(attemptList))
	case courseModels.GradingFirst:
		return attemptList[0].Score
	case courseModels.GradingLast:
		return attemptList[len(attemptList)-1].Score
	default: // highest
		best := attemptList[0].Score
		for _, a := range attemptList[1:] {
			if a.Score > best {
				best = a.Score
			}
		}
		return best
	}
}
