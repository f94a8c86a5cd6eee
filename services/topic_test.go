package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/fishperson113/letslearn-backend/models"
	courseModels "github.com/fishperson113/letslearn-backend/models/course"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&courseModels.Course{},
		&courseModels.Section{},
		&courseModels.Topic{},
		&courseModels.TopicPage{},
		&courseModels.TopicFile{},
		&courseModels.TopicLink{},
		&courseModels.TopicMeeting{},
		&courseModels.TopicAssignment{},
		&courseModels.AssignmentResponse{},
		&courseModels.FileAttachment{},
		&courseModels.TopicQuiz{},
		&courseModels.QuizQuestion{},
		&courseModels.QuestionChoice{},
		&courseModels.QuizAttempt{},
		&courseModels.Enrollment{},
	))
	return db
}

func seedSection(t *testing.T, db *gorm.DB, creatorID uint) courseModels.Section {
	t.Helper()

	c := courseModels.Course{
		ID:        "C-" + uuid.NewString()[:8],
		CreatorID: creatorID,
		Title:     "Course " + uuid.NewString(),
	}
	require.NoError(t, db.Create(&c).Error)

	section := courseModels.Section{
		ID:       uuid.NewString(),
		CourseID: c.ID,
		Position: 0,
		Title:    "Week 1",
	}
	require.NoError(t, db.Create(&section).Error)
	return section
}

func TestCreateTopicUnsupportedType(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTopicService(db, nil)
	section := seedSection(t, db, 1)

	_, err := svc.CreateTopic(context.Background(), section.ID, "T", "essay", json.RawMessage(`{}`))
	require.ErrorIs(t, err, ErrUnsupportedTopicType)

	var count int64
	require.NoError(t, db.Model(&courseModels.Topic{}).Count(&count).Error)
	assert.Zero(t, count, "no topic row may survive a rejected type")
}

func TestCreateTopicSectionMissing(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTopicService(db, nil)

	_, err := svc.CreateTopic(context.Background(), uuid.NewString(), "T", "page", json.RawMessage(`{}`))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateTopicMalformedPayloadRollsBack(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTopicService(db, nil)
	section := seedSection(t, db, 1)

	_, err := svc.CreateTopic(context.Background(), section.ID, "T", "page", json.RawMessage(`{"content": 42}`))
	require.ErrorIs(t, err, ErrValidation)

	var count int64
	require.NoError(t, db.Model(&courseModels.Topic{}).Count(&count).Error)
	assert.Zero(t, count, "topic insert must roll back with the variant")
}

func TestCreatePageTopic(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTopicService(db, nil)
	section := seedSection(t, db, 1)

	env, err := svc.CreateTopic(context.Background(), section.ID, "Intro", "page",
		json.RawMessage(`{"description":"about","content":"hello"}`))
	require.NoError(t, err)

	assert.Equal(t, "Intro", env.Title)
	assert.Equal(t, courseModels.TopicTypePage, env.Type)
	assert.Equal(t, section.ID, env.SectionID)

	page, ok := env.Data.(*courseModels.TopicPage)
	require.True(t, ok)
	assert.Equal(t, "about", page.Description)
	assert.Equal(t, "hello", page.Content)
}

func TestCreateQuizTopicGeneratesFreshIdentifiers(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTopicService(db, nil)
	section := seedSection(t, db, 1)

	payload := `{
		"description": "weekly quiz",
		"grade_to_pass": 50,
		"questions": [
			{"text": "2+2?", "choices": [
				{"text": "4", "grade_percent": 100},
				{"text": "5", "grade_percent": 0}
			]},
			{"text": "sky color?", "choices": [{"text": "blue", "grade_percent": 100}]}
		]
	}`
	env, err := svc.CreateTopic(context.Background(), section.ID, "Quiz 1", "quiz", json.RawMessage(payload))
	require.NoError(t, err)

	quiz, ok := env.Data.(*courseModels.TopicQuiz)
	require.True(t, ok)
	require.Len(t, quiz.Questions, 2)
	assert.Equal(t, courseModels.GradingHighest, quiz.GradingMethod)
	assert.Equal(t, 1, quiz.AttemptAllowed)

	seen := map[string]bool{}
	for _, q := range quiz.Questions {
		require.NotEmpty(t, q.ID)
		assert.False(t, seen[q.ID])
		seen[q.ID] = true
		for _, ch := range q.Choices {
			require.NotEmpty(t, ch.ID)
			assert.False(t, seen[ch.ID])
			seen[ch.ID] = true
		}
	}
}

func TestCreateQuizTopicEmptyPayloadDefaultsToNoQuestions(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTopicService(db, nil)
	section := seedSection(t, db, 1)

	env, err := svc.CreateTopic(context.Background(), section.ID, "Quiz", "quiz", json.RawMessage(`{}`))
	require.NoError(t, err)

	quiz := env.Data.(*courseModels.TopicQuiz)
	assert.Empty(t, quiz.Questions)
}

func TestUpdatePageMergePatch(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTopicService(db, nil)
	section := seedSection(t, db, 1)

	env, err := svc.CreateTopic(context.Background(), section.ID, "Intro", "page",
		json.RawMessage(`{"description":"keep me","content":"old"}`))
	require.NoError(t, err)

	updated, err := svc.UpdateTopic(context.Background(), env.ID, nil, "page",
		json.RawMessage(`{"content":"new"}`))
	require.NoError(t, err)

	page := updated.Data.(*courseModels.TopicPage)
	assert.Equal(t, "keep me", page.Description, "omitted field must stay untouched")
	assert.Equal(t, "new", page.Content)
}

func TestUpdateTopicTitleOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTopicService(db, nil)
	section := seedSection(t, db, 1)

	env, err := svc.CreateTopic(context.Background(), section.ID, "Old title", "link",
		json.RawMessage(`{"url":"https://example.com"}`))
	require.NoError(t, err)

	title := "New title"
	updated, err := svc.UpdateTopic(context.Background(), env.ID, &title, "link", json.RawMessage(`{}`))
	require.NoError(t, err)

	assert.Equal(t, "New title", updated.Title)
	link := updated.Data.(*courseModels.TopicLink)
	assert.Equal(t, "https://example.com", link.URL)
}

func TestUpdateTopicNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTopicService(db, nil)

	_, err := svc.UpdateTopic(context.Background(), uuid.NewString(), nil, "page", json.RawMessage(`{}`))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateTopicTypeMismatch(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTopicService(db, nil)
	section := seedSection(t, db, 1)

	env, err := svc.CreateTopic(context.Background(), section.ID, "Intro", "page",
		json.RawMessage(`{"content":"x"}`))
	require.NoError(t, err)

	// Dispatching a quiz update against a page topic misses the quiz table.
	_, err = svc.UpdateTopic(context.Background(), env.ID, nil, "quiz", json.RawMessage(`{}`))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateQuizMergeDoesNotPrune(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTopicService(db, nil)
	section := seedSection(t, db, 1)

	env, err := svc.CreateTopic(context.Background(), section.ID, "Quiz", "quiz", json.RawMessage(`{
		"questions": [
			{"text": "q1", "choices": [{"text": "a"}, {"text": "b"}]},
			{"text": "q2", "choices": [{"text": "c"}]}
		]
	}`))
	require.NoError(t, err)

	quiz := env.Data.(*courseModels.TopicQuiz)
	require.Len(t, quiz.Questions, 2)
	q1 := quiz.Questions[0]

	// Patch q1's text and add a brand-new question; q2 is omitted entirely.
	patch := `{"questions":[
		{"id":"` + q1.ID + `","text":"q1 edited"},
		{"text":"q3","choices":[{"text":"d","grade_percent":100}]}
	]}`
	updated, err := svc.UpdateTopic(context.Background(), env.ID, nil, "quiz", json.RawMessage(patch))
	require.NoError(t, err)

	got := updated.Data.(*courseModels.TopicQuiz)
	require.Len(t, got.Questions, 3, "omitted questions must not be deleted")

	byID := map[string]courseModels.QuizQuestion{}
	for _, q := range got.Questions {
		byID[q.ID] = q
	}
	assert.Equal(t, "q1 edited", byID[q1.ID].Text)
	assert.Len(t, byID[q1.ID].Choices, 2, "omitted choices must not be deleted")
}

func TestUpdateQuizUnknownQuestionID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTopicService(db, nil)
	section := seedSection(t, db, 1)

	env, err := svc.CreateTopic(context.Background(), section.ID, "Quiz", "quiz", json.RawMessage(`{}`))
	require.NoError(t, err)

	patch := `{"questions":[{"id":"` + uuid.NewString() + `","text":"ghost"}]}`
	_, err = svc.UpdateTopic(context.Background(), env.ID, nil, "quiz", json.RawMessage(patch))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetTopicMissingVariantIsIntegrityError(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTopicService(db, nil)
	section := seedSection(t, db, 1)

	// A typed topic with no variant row is a broken row, not an empty page.
	topic := courseModels.Topic{
		ID:        uuid.NewString(),
		SectionID: section.ID,
		Title:     "broken",
		Type:      courseModels.TopicTypePage,
	}
	require.NoError(t, db.Create(&topic).Error)

	_, err := svc.GetTopicByID(context.Background(), topic.ID)
	require.ErrorIs(t, err, ErrInternal)
}

func TestDeleteTopicIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTopicService(db, nil)
	section := seedSection(t, db, 1)

	missing := uuid.NewString()
	ok, err := svc.DeleteTopic(context.Background(), missing)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.DeleteTopic(context.Background(), missing)
	require.NoError(t, err)
	assert.False(t, ok, "second delete of a missing topic stays false")

	env, err := svc.CreateTopic(context.Background(), section.ID, "T", "page", json.RawMessage(`{}`))
	require.NoError(t, err)

	ok, err = svc.DeleteTopic(context.Background(), env.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.DeleteTopic(context.Background(), env.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreateMeetingTopicSurvivesProviderOutage(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTopicService(db, failingLinker{})
	section := seedSection(t, db, 1)

	env, err := svc.CreateTopic(context.Background(), section.ID, "Standup", "meeting",
		json.RawMessage(`{"description":"weekly"}`))
	require.NoError(t, err)

	meeting := env.Data.(*courseModels.TopicMeeting)
	assert.Empty(t, meeting.JoinURL)
	assert.Equal(t, "weekly", meeting.Description)
}

type failingLinker struct{}

func (failingLinker) JoinURL(context.Context, string) (string, error) {
	return "", assert.AnError
}
