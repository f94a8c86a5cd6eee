package controllers

import (
	"testing"

	courseModels "github.com/fishperson113/letslearn-backend/models/course"

	"github.com/stretchr/testify/assert"
)

func sampleQuiz() *courseModels.TopicQuiz {
	return &courseModels.TopicQuiz{
		Questions: []courseModels.QuizQuestion{
			{
				ID:            "q1",
				Type:          courseModels.QuestionTypeTrueFalse,
				DefaultMark:   1,
				CorrectAnswer: "true",
			},
			{
				ID:            "q2",
				Type:          courseModels.QuestionTypeShortAnswer,
				DefaultMark:   2,
				CorrectAnswer: "Gopher",
			},
			{
				ID:          "q3",
				Type:        courseModels.QuestionTypeMultipleChoice,
				DefaultMark: 4,
				Multiple:    true,
				Choices: []courseModels.QuestionChoice{
					{ID: "c1", GradePercent: 50},
					{ID: "c2", GradePercent: 50},
					{ID: "c3", GradePercent: -100},
				},
			},
		},
	}
}

func TestGradeQuizFullMarks(t *testing.T) {
	score, maxScore := gradeQuiz(sampleQuiz(), []quizAnswer{
		{QuestionID: "q1", Text: "TRUE"},
		{QuestionID: "q2", Text: " gopher "},
		{QuestionID: "q3", ChoiceIDs: []string{"c1", "c2"}},
	})

	assert.Equal(t, 7.0, maxScore)
	assert.Equal(t, 7.0, score)
}

func TestGradeQuizPartialAndNegativeClamped(t *testing.T) {
	score, maxScore := gradeQuiz(sampleQuiz(), []quizAnswer{
		{QuestionID: "q1", Text: "false"},
		{QuestionID: "q3", ChoiceIDs: []string{"c1", "c3"}},
	})

	assert.Equal(t, 7.0, maxScore)
	// q1 wrong, q2 unanswered, q3 sums to -50 percent and clamps at zero
	assert.Equal(t, 0.0, score)
}

func TestGradeQuizUnknownQuestionIgnored(t *testing.T) {
	score, _ := gradeQuiz(sampleQuiz(), []quizAnswer{
		{QuestionID: "missing", Text: "true"},
		{QuestionID: "q2", Text: "Gopher"},
	})

	assert.Equal(t, 2.0, score)
}

func TestFinalGradeMethods(t *testing.T) {
	attempts := []courseModels.QuizAttempt{
		{AttemptNumber: 1, Score: 3},
		{AttemptNumber: 2, Score: 7},
		{AttemptNumber: 3, Score: 5},
	}

	assert.Equal(t, 7.0, finalGrade(courseModels.GradingHighest, attempts))
	assert.Equal(t, 5.0, finalGrade(courseModels.GradingAverage, attempts))
	assert.Equal(t, 3.0, finalGrade(courseModels.GradingFirst, attempts))
	assert.Equal(t, 5.0, finalGrade(courseModels.GradingLast, attempts))
	assert.Equal(t, 0.0, finalGrade(courseModels.GradingHighest, nil))
}
