package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	courseModels "github.com/fishperson113/letslearn-backend/models/course"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingLinker requests a join URL from the external meeting provider.
// A nil linker (or a linker error) leaves the join URL empty; creating a
// meeting topic must not fail on a provider outage.
type MeetingLinker interface {
	JoinURL(ctx context.Context, title string) (string, error)
}

// TopicService handles the per-type dispatch for topic create/update/read.
// A topic's type is fixed at creation and selects which variant table owns
// its payload.
type TopicService struct {
	db     *gorm.DB
	linker MeetingLinker
}

func NewTopicService(db *gorm.DB, linker MeetingLinker) *TopicService {
	return &TopicService{db: db, linker: linker}
}

// TopicEnvelope is the generic topic fields plus the variant data for the
// topic's type.
type TopicEnvelope struct {
	ID        string      `json:"id"`
	SectionID string      `json:"section_id"`
	Title     string      `json:"title"`
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
}

// Per-type payload shapes. Every field is a pointer so the same shape serves
// create (nil resolves to the field default) and update (nil keeps the
// stored value).

type PagePayload struct {
	Description *string `json:"description"`
	Content     *string `json:"content"`
}

type FilePayload struct {
	Description *string            `json:"description"`
	File        *AttachmentPayload `json:"file"`
}

type LinkPayload struct {
	Description *string `json:"description"`
	URL         *string `json:"url"`
}

type MeetingPayload struct {
	Description *string    `json:"description"`
	Open        *time.Time `json:"open"`
	Close       *time.Time `json:"close"`
}

type AssignmentPayload struct {
	Description     *string             `json:"description"`
	Open            *time.Time          `json:"open"`
	Close           *time.Time          `json:"close"`
	MaximumFile     *int                `json:"maximum_file"`
	MaximumFileSize *int                `json:"maximum_file_size"`
	RemindToGrade   *time.Time          `json:"remind_to_grade"`
	TemplateFiles   []AttachmentPayload `json:"template_files"`
}

type AttachmentPayload struct {
	Name        string `json:"name"`
	DisplayURL  string `json:"display_url"`
	DownloadURL string `json:"download_url"`
}

type QuizPayload struct {
	Description    *string           `json:"description"`
	Open           *time.Time        `json:"open"`
	Close          *time.Time        `json:"close"`
	TimeLimit      *int              `json:"time_limit"`
	TimeLimitUnit  *string           `json:"time_limit_unit"`
	GradeToPass    *float64          `json:"grade_to_pass"`
	GradingMethod  *string           `json:"grading_method"`
	AttemptAllowed *int              `json:"attempt_allowed"`
	Questions      []QuestionPayload `json:"questions"`
}

type QuestionPayload struct {
	ID            string          `json:"id"` // empty means a new question
	Position      *int            `json:"position"`
	Type          *string         `json:"type"`
	Text          *string         `json:"text"`
	DefaultMark   *float64        `json:"default_mark"`
	CorrectAnswer *string         `json:"correct_answer"`
	Multiple      *bool           `json:"multiple"`
	Choices       []ChoicePayload `json:"choices"`
}

type ChoicePayload struct {
	ID           string   `json:"id"` // empty means a new choice
	Position     *int     `json:"position"`
	Text         *string  `json:"text"`
	GradePercent *float64 `json:"grade_percent"`
	Feedback     *string  `json:"feedback"`
}

// CreateTopic validates the type tag, creates the generic topic row and the
// matching variant rows in one transaction. The raw payload is only parsed
// after the tag has been accepted.
func (s *TopicService) CreateTopic(ctx context.Context, sectionID, title, topicType string, rawPayload json.RawMessage) (*TopicEnvelope, error) {
	if !courseModels.ValidTopicType(topicType) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTopicType, topicType)
	}

	db := s.db.WithContext(ctx)

	var section courseModels.Section
	if err := db.First(&section, "id = ?", sectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: section %q", ErrNotFound, sectionID)
		}
		return nil, fmt.Errorf("%w: loading section: %v", ErrInternal, err)
	}

	topic := courseModels.Topic{
		ID:        uuid.NewString(),
		SectionID: sectionID,
		Title:     title,
		Type:      topicType,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&topic).Error; err != nil {
			return err
		}
		return s.createVariant(ctx, tx, &topic, rawPayload)
	})
	if err != nil {
		if isServiceError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: failed to create topic: %v", ErrInternal, err)
	}

	return s.GetTopicByID(ctx, topic.ID)
}

func (s *TopicService) createVariant(ctx context.Context, tx *gorm.DB, topic *courseModels.Topic, raw json.RawMessage) error {
	switch topic.Type {
	case courseModels.TopicTypePage:
		payload, err := parsePayload[PagePayload](raw)
		if err != nil {
			return err
		}
		return tx.Create(&courseModels.TopicPage{
			ID:          uuid.NewString(),
			TopicID:     topic.ID,
			Description: strOr(payload.Description),
			Content:     strOr(payload.Content),
		}).Error

	case courseModels.TopicTypeLink:
		payload, err := parsePayload[LinkPayload](raw)
		if err != nil {
			return err
		}
		return tx.Create(&courseModels.TopicLink{
			ID:          uuid.NewString(),
			TopicID:     topic.ID,
			Description: strOr(payload.Description),
			URL:         strOr(payload.URL),
		}).Error

	case courseModels.TopicTypeFile:
		payload, err := parsePayload[FilePayload](raw)
		if err != nil {
			return err
		}
		topicFile := courseModels.TopicFile{
			ID:          uuid.NewString(),
			TopicID:     topic.ID,
			Description: strOr(payload.Description),
		}
		if err := tx.Create(&topicFile).Error; err != nil {
			return err
		}
		if payload.File != nil {
			return tx.Create(&courseModels.FileAttachment{
				ID:          uuid.NewString(),
				Name:        payload.File.Name,
				DisplayURL:  payload.File.DisplayURL,
				DownloadURL: payload.File.DownloadURL,
				TopicFileID: &topicFile.ID,
			}).Error
		}
		return nil

	case courseModels.TopicTypeMeeting:
		payload, err := parsePayload[MeetingPayload](raw)
		if err != nil {
			return err
		}
		joinURL := ""
		if s.linker != nil {
			joinURL, err = s.linker.JoinURL(ctx, topic.Title)
			if err != nil {
				log.Printf("[TOPIC] meeting provider unavailable for topic %s: %v", topic.ID, err)
				joinURL = ""
			}
		}
		return tx.Create(&courseModels.TopicMeeting{
			ID:          uuid.NewString(),
			TopicID:     topic.ID,
			Description: strOr(payload.Description),
			Open:        payload.Open,
			Close:       payload.Close,
			JoinURL:     joinURL,
		}).Error

	case courseModels.TopicTypeAssignment:
		payload, err := parsePayload[AssignmentPayload](raw)
		if err != nil {
			return err
		}
		assignment := courseModels.TopicAssignment{
			ID:              uuid.NewString(),
			TopicID:         topic.ID,
			Description:     strOr(payload.Description),
			Open:            payload.Open,
			Close:           payload.Close,
			MaximumFile:     intOr(payload.MaximumFile, 1),
			MaximumFileSize: intOr(payload.MaximumFileSize, 5),
			RemindToGrade:   payload.RemindToGrade,
		}
		if err := tx.Create(&assignment).Error; err != nil {
			return err
		}
		for _, f := range payload.TemplateFiles {
			file := courseModels.FileAttachment{
				ID:                uuid.NewString(),
				Name:              f.Name,
				DisplayURL:        f.DisplayURL,
				DownloadURL:       f.DownloadURL,
				TopicAssignmentID: &assignment.ID,
			}
			if err := tx.Create(&file).Error; err != nil {
				return err
			}
		}
		return nil

	case courseModels.TopicTypeQuiz:
		payload, err := parsePayload[QuizPayload](raw)
		if err != nil {
			return err
		}
		quiz := courseModels.TopicQuiz{
			ID:             uuid.NewString(),
			TopicID:        topic.ID,
			Description:    strOr(payload.Description),
			Open:           payload.Open,
			Close:          payload.Close,
			TimeLimit:      intOr(payload.TimeLimit, 0),
			TimeLimitUnit:  strOrDefault(payload.TimeLimitUnit, "minutes"),
			GradeToPass:    floatOr(payload.GradeToPass, 0),
			GradingMethod:  strOrDefault(payload.GradingMethod, courseModels.GradingHighest),
			AttemptAllowed: intOr(payload.AttemptAllowed, 1),
		}
		if err := tx.Create(&quiz).Error; err != nil {
			return err
		}
		for i, q := range payload.Questions {
			question := courseModels.QuizQuestion{
				ID:            uuid.NewString(),
				QuizID:        quiz.ID,
				Position:      intOr(q.Position, i),
				Type:          strOrDefault(q.Type, courseModels.QuestionTypeMultipleChoice),
				Text:          strOr(q.Text),
				DefaultMark:   floatOr(q.DefaultMark, 1),
				CorrectAnswer: strOr(q.CorrectAnswer),
				Multiple:      boolOr(q.Multiple),
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
			for j, ch := range q.Choices {
				choice := courseModels.QuestionChoice{
					ID:           uuid.NewString(),
					QuestionID:   question.ID,
					Position:     intOr(ch.Position, j),
					Text:         strOr(ch.Text),
					GradePercent: floatOr(ch.GradePercent, 0),
					Feedback:     strOr(ch.Feedback),
				}
				if err := tx.Create(&choice).Error; err != nil {
					return err
				}
			}
		}
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnsupportedTopicType, topic.Type)
}

// UpdateTopic applies a merge-patch to the topic and its variant: supplied
// fields overwrite, absent fields keep their stored value. The dispatch runs
// on the submitted type; a type that does not match the stored variant
// surfaces as NotFound on the variant lookup.
func (s *TopicService) UpdateTopic(ctx context.Context, topicID string, title *string, topicType string, rawPayload json.RawMessage) (*TopicEnvelope, error) {
	if !courseModels.ValidTopicType(topicType) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTopicType, topicType)
	}

	db := s.db.WithContext(ctx)

	var topic courseModels.Topic
	if err := db.First(&topic, "id = ?", topicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: topic %q", ErrNotFound, topicID)
		}
		return nil, fmt.Errorf("%w: loading topic: %v", ErrInternal, err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if title != nil {
			topic.Title = *title
			if err := tx.Model(&courseModels.Topic{}).Where("id = ?", topic.ID).Update("title", *title).Error; err != nil {
				return err
			}
		}
		return s.updateVariant(tx, topic.ID, topicType, rawPayload)
	})
	if err != nil {
		if isServiceError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: failed to update topic: %v", ErrInternal, err)
	}

	return s.GetTopicByID(ctx, topic.ID)
}

func (s *TopicService) updateVariant(tx *gorm.DB, topicID, topicType string, raw json.RawMessage) error {
	switch topicType {
	case courseModels.TopicTypePage:
		payload, err := parsePayload[PagePayload](raw)
		if err != nil {
			return err
		}
		var page courseModels.TopicPage
		if err := firstVariant(tx, &page, topicID); err != nil {
			return err
		}
		setStr(&page.Description, payload.Description)
		setStr(&page.Content, payload.Content)
		return tx.Save(&page).Error

	case courseModels.TopicTypeLink:
		payload, err := parsePayload[LinkPayload](raw)
		if err != nil {
			return err
		}
		var link courseModels.TopicLink
		if err := firstVariant(tx, &link, topicID); err != nil {
			return err
		}
		setStr(&link.Description, payload.Description)
		setStr(&link.URL, payload.URL)
		return tx.Save(&link).Error

	case courseModels.TopicTypeFile:
		payload, err := parsePayload[FilePayload](raw)
		if err != nil {
			return err
		}
		var topicFile courseModels.TopicFile
		if err := firstVariant(tx, &topicFile, topicID); err != nil {
			return err
		}
		setStr(&topicFile.Description, payload.Description)
		if err := tx.Save(&topicFile).Error; err != nil {
			return err
		}
		if payload.File != nil {
			// A new attachment replaces the current one.
			if err := tx.Where("topic_file_id = ?", topicFile.ID).Delete(&courseModels.FileAttachment{}).Error; err != nil {
				return err
			}
			return tx.Create(&courseModels.FileAttachment{
				ID:          uuid.NewString(),
				Name:        payload.File.Name,
				DisplayURL:  payload.File.DisplayURL,
				DownloadURL: payload.File.DownloadURL,
				TopicFileID: &topicFile.ID,
			}).Error
		}
		return nil

	case courseModels.TopicTypeMeeting:
		payload, err := parsePayload[MeetingPayload](raw)
		if err != nil {
			return err
		}
		var meeting courseModels.TopicMeeting
		if err := firstVariant(tx, &meeting, topicID); err != nil {
			return err
		}
		setStr(&meeting.Description, payload.Description)
		if payload.Open != nil {
			meeting.Open = payload.Open
		}
		if payload.Close != nil {
			meeting.Close = payload.Close
		}
		return tx.Save(&meeting).Error

	case courseModels.TopicTypeAssignment:
		payload, err := parsePayload[AssignmentPayload](raw)
		if err != nil {
			return err
		}
		var assignment courseModels.TopicAssignment
		if err := firstVariant(tx, &assignment, topicID); err != nil {
			return err
		}
		setStr(&assignment.Description, payload.Description)
		if payload.Open != nil {
			assignment.Open = payload.Open
		}
		if payload.Close != nil {
			assignment.Close = payload.Close
		}
		if payload.MaximumFile != nil {
			assignment.MaximumFile = *payload.MaximumFile
		}
		if payload.MaximumFileSize != nil {
			assignment.MaximumFileSize = *payload.MaximumFileSize
		}
		if payload.RemindToGrade != nil {
			assignment.RemindToGrade = payload.RemindToGrade
			assignment.ReminderSent = false
		}
		if err := tx.Save(&assignment).Error; err != nil {
			return err
		}
		for _, f := range payload.TemplateFiles {
			file := courseModels.FileAttachment{
				ID:                uuid.NewString(),
				Name:              f.Name,
				DisplayURL:        f.DisplayURL,
				DownloadURL:       f.DownloadURL,
				TopicAssignmentID: &assignment.ID,
			}
			if err := tx.Create(&file).Error; err != nil {
				return err
			}
		}
		return nil

	case courseModels.TopicTypeQuiz:
		payload, err := parsePayload[QuizPayload](raw)
		if err != nil {
			return err
		}
		return s.updateQuiz(tx, topicID, payload)
	}

	return fmt.Errorf("%w: %q", ErrUnsupportedTopicType, topicType)
}

// updateQuiz merges the submitted question tree into the stored one. A
// question or choice with a known id is patched in place, one without an id
// is created fresh. Entries missing from the submission stay untouched;
// removal only happens through the explicit delete endpoints.
func (s *TopicService) updateQuiz(tx *gorm.DB, topicID string, payload *QuizPayload) error {
	var quiz courseModels.TopicQuiz
	if err := tx.Preload("Questions.Choices").Where("topic_id = ?", topicID).First(&quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: quiz for topic %q", ErrNotFound, topicID)
		}
		return err
	}

	setStr(&quiz.Description, payload.Description)
	if payload.Open != nil {
		quiz.Open = payload.Open
	}
	if payload.Close != nil {
		quiz.Close = payload.Close
	}
	if payload.TimeLimit != nil {
		quiz.TimeLimit = *payload.TimeLimit
	}
	if payload.TimeLimitUnit != nil {
		quiz.TimeLimitUnit = *payload.TimeLimitUnit
	}
	if payload.GradeToPass != nil {
		quiz.GradeToPass = *payload.GradeToPass
	}
	if payload.GradingMethod != nil {
		quiz.GradingMethod = *payload.GradingMethod
	}
	if payload.AttemptAllowed != nil {
		quiz.AttemptAllowed = *payload.AttemptAllowed
	}
	if err := tx.Omit("Questions").Save(&quiz).Error; err != nil {
		return err
	}

	existing := make(map[string]*courseModels.QuizQuestion, len(quiz.Questions))
	for i := range quiz.Questions {
		existing[quiz.Questions[i].ID] = &quiz.Questions[i]
	}

	for i, q := range payload.Questions {
		if q.ID == "" {
			question := courseModels.QuizQuestion{
				ID:            uuid.NewString(),
				QuizID:        quiz.ID,
				Position:      intOr(q.Position, len(quiz.Questions)+i),
				Type:          strOrDefault(q.Type, courseModels.QuestionTypeMultipleChoice),
				Text:          strOr(q.Text),
				DefaultMark:   floatOr(q.DefaultMark, 1),
				CorrectAnswer: strOr(q.CorrectAnswer),
				Multiple:      boolOr(q.Multiple),
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
			for j, ch := range q.Choices {
				choice := courseModels.QuestionChoice{
					ID:           uuid.NewString(),
					QuestionID:   question.ID,
					Position:     intOr(ch.Position, j),
					Text:         strOr(ch.Text),
					GradePercent: floatOr(ch.GradePercent, 0),
					Feedback:     strOr(ch.Feedback),
				}
				if err := tx.Create(&choice).Error; err != nil {
					return err
				}
			}
			continue
		}

		question, ok := existing[q.ID]
		if !ok {
			return fmt.Errorf("%w: question %q", ErrNotFound, q.ID)
		}
		if q.Position != nil {
			question.Position = *q.Position
		}
		if q.Type != nil {
			question.Type = *q.Type
		}
		setStr(&question.Text, q.Text)
		if q.DefaultMark != nil {
			question.DefaultMark = *q.DefaultMark
		}
		setStr(&question.CorrectAnswer, q.CorrectAnswer)
		if q.Multiple != nil {
			question.Multiple = *q.Multiple
		}
		if err := tx.Omit("Choices").Save(question).Error; err != nil {
			return err
		}

		choices := make(map[string]*courseModels.QuestionChoice, len(question.Choices))
		for i := range question.Choices {
			choices[question.Choices[i].ID] = &question.Choices[i]
		}
		for j, ch := range q.Choices {
			if ch.ID == "" {
				choice := courseModels.QuestionChoice{
					ID:           uuid.NewString(),
					QuestionID:   question.ID,
					Position:     intOr(ch.Position, len(question.Choices)+j),
					Text:         strOr(ch.Text),
					GradePercent: floatOr(ch.GradePercent, 0),
					Feedback:     strOr(ch.Feedback),
				}
				if err := tx.Create(&choice).Error; err != nil {
					return err
				}
				continue
			}
			choice, ok := choices[ch.ID]
			if !ok {
				return fmt.Errorf("%w: choice %q", ErrNotFound, ch.ID)
			}
			if ch.Position != nil {
				choice.Position = *ch.Position
			}
			setStr(&choice.Text, ch.Text)
			if ch.GradePercent != nil {
				choice.GradePercent = *ch.GradePercent
			}
			setStr(&choice.Feedback, ch.Feedback)
			if err := tx.Save(choice).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

// GetTopicByID loads a topic with its variant data. A typed topic whose
// variant row is missing is a broken row, reported as an internal error
// rather than an empty payload.
func (s *TopicService) GetTopicByID(ctx context.Context, topicID string) (*TopicEnvelope, error) {
	db := s.db.WithContext(ctx)

	var topic courseModels.Topic
	if err := db.First(&topic, "id = ?", topicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: topic %q", ErrNotFound, topicID)
		}
		return nil, fmt.Errorf("%w: loading topic: %v", ErrInternal, err)
	}

	data, err := s.loadVariant(db, &topic)
	if err != nil {
		return nil, err
	}

	return &TopicEnvelope{
		ID:        topic.ID,
		SectionID: topic.SectionID,
		Title:     topic.Title,
		Type:      topic.Type,
		Data:      data,
	}, nil
}

func (s *TopicService) loadVariant(db *gorm.DB, topic *courseModels.Topic) (interface{}, error) {
	missing := func(err error) (interface{}, error) {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: topic %s has type %s but no variant row", ErrInternal, topic.ID, topic.Type)
		}
		return nil, fmt.Errorf("%w: loading %s variant: %v", ErrInternal, topic.Type, err)
	}

	switch topic.Type {
	case courseModels.TopicTypePage:
		var page courseModels.TopicPage
		if err := db.Where("topic_id = ?", topic.ID).First(&page).Error; err != nil {
			return missing(err)
		}
		return &page, nil
	case courseModels.TopicTypeLink:
		var link courseModels.TopicLink
		if err := db.Where("topic_id = ?", topic.ID).First(&link).Error; err != nil {
			return missing(err)
		}
		return &link, nil
	case courseModels.TopicTypeFile:
		var topicFile courseModels.TopicFile
		if err := db.Preload("File").Where("topic_id = ?", topic.ID).First(&topicFile).Error; err != nil {
			return missing(err)
		}
		return &topicFile, nil
	case courseModels.TopicTypeMeeting:
		var meeting courseModels.TopicMeeting
		if err := db.Where("topic_id = ?", topic.ID).First(&meeting).Error; err != nil {
			return missing(err)
		}
		return &meeting, nil
	case courseModels.TopicTypeAssignment:
		var assignment courseModels.TopicAssignment
		if err := db.Preload("TemplateFiles").Where("topic_id = ?", topic.ID).First(&assignment).Error; err != nil {
			return missing(err)
		}
		return &assignment, nil
	case courseModels.TopicTypeQuiz:
		var quiz courseModels.TopicQuiz
		err := db.
			Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("quiz_questions.position asc") }).
			Preload("Questions.Choices", func(db *gorm.DB) *gorm.DB { return db.Order("question_choices.position asc") }).
			Where("topic_id = ?", topic.ID).First(&quiz).Error
		if err != nil {
			return missing(err)
		}
		return &quiz, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedTopicType, topic.Type)
}

// DeleteTopic removes a topic. A missing topic returns false rather than an
// error, so deletes are idempotent. Variant rows go with the topic through
// the FK cascade declared on the variant tables.
func (s *TopicService) DeleteTopic(ctx context.Context, topicID string) (bool, error) {
	res := s.db.WithContext(ctx).Where("id = ?", topicID).Delete(&courseModels.Topic{})
	if res.Error != nil {
		return false, fmt.Errorf("%w: deleting topic: %v", ErrInternal, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// firstVariant loads the variant row owned by topicID into dest, mapping a
// missing row to ErrNotFound. Used by the update path where a type mismatch
// legitimately means "no such variant".
func firstVariant(tx *gorm.DB, dest interface{}, topicID string) error {
	if err := tx.Where("topic_id = ?", topicID).First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: variant for topic %q", ErrNotFound, topicID)
		}
		return err
	}
	return nil
}

func parsePayload[T any](raw json.RawMessage) (*T, error) {
	payload := new(T)
	if len(raw) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(raw, payload); err != nil {
		return nil, fmt.Errorf("%w: malformed payload: %v", ErrValidation, err)
	}
	return payload, nil
}

func isServiceError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrUnsupportedTopicType) ||
		errors.Is(err, ErrInternal)
}

func strOr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func strOrDefault(p *string, def string) string {
	if p == nil || *p == "" {
		return def
	}
	return *p
}

func setStr(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func boolOr(p *bool) bool {
	return p != nil && *p
}
