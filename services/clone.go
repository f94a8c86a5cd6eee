package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fishperson113/letslearn-backend/models"
	courseModels "github.com/fishperson113/letslearn-backend/models/course"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseCloneService duplicates a whole course graph (course -> sections ->
// topics -> variant payloads) under a new course id with fresh identifiers
// at every level. Meetings are live, time-bound events tied to the original
// course run and are never cloned.
type CourseCloneService struct {
	db *gorm.DB
}

func NewCourseCloneService(db *gorm.DB) *CourseCloneService {
	return &CourseCloneService{db: db}
}

// CloneRequest carries the target course id plus optional overrides for the
// course scalars. Fields left nil fall back to the source course's values.
type CloneRequest struct {
	NewCourseID  string  `json:"new_course_id"`
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	ThumbnailURL *string `json:"thumbnail_url"`
}

// CloneResult summarizes a finished clone.
type CloneResult struct {
	ID             string `json:"id"`
	SourceCourseID string `json:"source_course_id"`
	SectionCount   int    `json:"section_count"`
	TopicCount     int    `json:"topic_count"`
}

// skeleton is the output of the pure graph-construction phase: the new
// course graph plus the old-to-new id maps the variant-copy phase needs.
// The maps live only for the duration of one clone call.
type skeleton struct {
	course     courseModels.Course
	sectionIDs map[string]string
	topicIDs   map[string]string
}

// buildSkeleton walks the source graph in order and produces a structurally
// identical copy with fresh identifiers. No variant data is touched here;
// meeting topics are left out entirely. TotalJoined always restarts at zero
// and the creator is always the requesting user.
func buildSkeleton(src *courseModels.Course, req CloneRequest, newCreatorID uint) skeleton {
	sk := skeleton{
		course: courseModels.Course{
			ID:           req.NewCourseID,
			CreatorID:    newCreatorID,
			Title:        strOrDefault(req.Title, src.Title),
			Description:  strOrDefault(req.Description, src.Description),
			ThumbnailURL: strOrDefault(req.ThumbnailURL, src.ThumbnailURL),
			TotalJoined:  0,
			IsPublished:  src.IsPublished,
		},
		sectionIDs: make(map[string]string),
		topicIDs:   make(map[string]string),
	}

	for _, section := range src.Sections {
		newSection := courseModels.Section{
			ID:          uuid.NewString(),
			CourseID:    sk.course.ID,
			Position:    section.Position,
			Title:       section.Title,
			Description: section.Description,
		}
		sk.sectionIDs[section.ID] = newSection.ID

		for _, topic := range section.Topics {
			if topic.Type == courseModels.TopicTypeMeeting {
				continue
			}
			newTopic := courseModels.Topic{
				ID:        uuid.NewString(),
				SectionID: newSection.ID,
				Title:     topic.Title,
				Type:      topic.Type,
			}
			sk.topicIDs[topic.ID] = newTopic.ID
			newSection.Topics = append(newSection.Topics, newTopic)
		}

		sk.course.Sections = append(sk.course.Sections, newSection)
	}

	return sk
}

// Clone authorizes and runs a full course clone. All writes happen inside
// one transaction; a failure anywhere leaves no trace of the new course.
func (s *CourseCloneService) Clone(ctx context.Context, sourceCourseID string, req CloneRequest, requestingUserID uint) (*CloneResult, error) {
	if strings.TrimSpace(sourceCourseID) == "" {
		return nil, fmt.Errorf("%w: source course id is required", ErrValidation)
	}
	if strings.TrimSpace(req.NewCourseID) == "" {
		return nil, fmt.Errorf("%w: new course id is required", ErrValidation)
	}

	db := s.db.WithContext(ctx)

	var src courseModels.Course
	err := db.
		Preload("Sections", func(db *gorm.DB) *gorm.DB { return db.Order("sections.position asc, sections.created_at asc") }).
		Preload("Sections.Topics", func(db *gorm.DB) *gorm.DB { return db.Order("topics.created_at asc") }).
		First(&src, "id = ?", sourceCourseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: course %q", ErrNotFound, sourceCourseID)
		}
		return nil, fmt.Errorf("%w: loading course graph: %v", ErrInternal, err)
	}

	if err := s.authorize(db, &src, requestingUserID); err != nil {
		return nil, err
	}

	// Fast-fail only; the primary key is what actually prevents a duplicate
	// slipping in between this check and the insert.
	var count int64
	if err := db.Model(&courseModels.Course{}).Where("id = ?", req.NewCourseID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("%w: checking target id: %v", ErrInternal, err)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: course id %q already exists", ErrConflict, req.NewCourseID)
	}

	sk := buildSkeleton(&src, req, requestingUserID)

	err = db.Transaction(func(tx *gorm.DB) error {
		// One insert graph: sections and topics ride along with the course.
		if err := tx.Create(&sk.course).Error; err != nil {
			return err
		}

		for _, section := range src.Sections {
			for i := range section.Topics {
				topic := &section.Topics[i]
				// The skeleton already dropped meetings, so the map lookup
				// below would miss anyway; keep the explicit skip in case
				// that ever changes.
				if topic.Type == courseModels.TopicTypeMeeting {
					continue
				}
				newTopicID, ok := sk.topicIDs[topic.ID]
				if !ok {
					continue
				}
				if err := cloneVariant(tx, topic, newTopicID); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		if isServiceError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: failed to clone course %q: %v", ErrInternal, sourceCourseID, err)
	}

	return &CloneResult{
		ID:             sk.course.ID,
		SourceCourseID: sourceCourseID,
		SectionCount:   len(sk.sectionIDs),
		TopicCount:     len(sk.topicIDs),
	}, nil
}

// authorize permits the course creator, and otherwise only users whose role
// is ADMIN (case-insensitive). There is no third tier.
func (s *CourseCloneService) authorize(db *gorm.DB, src *courseModels.Course, requestingUserID uint) error {
	if requestingUserID == src.CreatorID {
		return nil
	}

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", requestingUserID, false).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %d may not clone course %q", ErrPermissionDenied, requestingUserID, src.ID)
		}
		return fmt.Errorf("%w: loading requesting user: %v", ErrInternal, err)
	}
	if !strings.EqualFold(user.Role, "ADMIN") {
		return fmt.Errorf("%w: user %d may not clone course %q", ErrPermissionDenied, requestingUserID, src.ID)
	}
	return nil
}

// cloneVariant deep-copies one topic's variant payload onto the new topic
// id. Every copied row gets a fresh identifier so the old and new graphs
// never share a key.
func cloneVariant(tx *gorm.DB, src *courseModels.Topic, newTopicID string) error {
	switch src.Type {
	case courseModels.TopicTypePage:
		var page courseModels.TopicPage
		if err := tx.Where("topic_id = ?", src.ID).First(&page).Error; err != nil {
			return variantLoadError(src, err)
		}
		return tx.Create(&courseModels.TopicPage{
			ID:          uuid.NewString(),
			TopicID:     newTopicID,
			Description: page.Description,
			Content:     page.Content,
		}).Error

	case courseModels.TopicTypeLink:
		var link courseModels.TopicLink
		if err := tx.Where("topic_id = ?", src.ID).First(&link).Error; err != nil {
			return variantLoadError(src, err)
		}
		return tx.Create(&courseModels.TopicLink{
			ID:          uuid.NewString(),
			TopicID:     newTopicID,
			Description: link.Description,
			URL:         link.URL,
		}).Error

	case courseModels.TopicTypeFile:
		var topicFile courseModels.TopicFile
		if err := tx.Preload("File").Where("topic_id = ?", src.ID).First(&topicFile).Error; err != nil {
			return variantLoadError(src, err)
		}
		newFile := courseModels.TopicFile{
			ID:          uuid.NewString(),
			TopicID:     newTopicID,
			Description: topicFile.Description,
		}
		if err := tx.Create(&newFile).Error; err != nil {
			return err
		}
		if topicFile.File != nil {
			return tx.Create(&courseModels.FileAttachment{
				ID:          uuid.NewString(),
				Name:        topicFile.File.Name,
				DisplayURL:  topicFile.File.DisplayURL,
				DownloadURL: topicFile.File.DownloadURL,
				TopicFileID: &newFile.ID,
			}).Error
		}
		return nil

	case courseModels.TopicTypeAssignment:
		var assignment courseModels.TopicAssignment
		if err := tx.Preload("TemplateFiles").Where("topic_id = ?", src.ID).First(&assignment).Error; err != nil {
			return variantLoadError(src, err)
		}
		newAssignment := courseModels.TopicAssignment{
			ID:              uuid.NewString(),
			TopicID:         newTopicID,
			Description:     assignment.Description,
			Open:            assignment.Open,
			Close:           assignment.Close,
			MaximumFile:     assignment.MaximumFile,
			MaximumFileSize: assignment.MaximumFileSize,
			RemindToGrade:   assignment.RemindToGrade,
		}
		if err := tx.Create(&newAssignment).Error; err != nil {
			return err
		}
		// Template files keep name and URLs but must not carry any link back
		// to student-submission context.
		for _, f := range assignment.TemplateFiles {
			file := courseModels.FileAttachment{
				ID:                uuid.NewString(),
				Name:              f.Name,
				DisplayURL:        f.DisplayURL,
				DownloadURL:       f.DownloadURL,
				TopicAssignmentID: &newAssignment.ID,
			}
			if err := tx.Create(&file).Error; err != nil {
				return err
			}
		}
		return nil

	case courseModels.TopicTypeQuiz:
		var quiz courseModels.TopicQuiz
		err := tx.
			Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("quiz_questions.position asc") }).
			Preload("Questions.Choices", func(db *gorm.DB) *gorm.DB { return db.Order("question_choices.position asc") }).
			Where("topic_id = ?", src.ID).First(&quiz).Error
		if err != nil {
			return variantLoadError(src, err)
		}
		newQuiz := courseModels.TopicQuiz{
			ID:             uuid.NewString(),
			TopicID:        newTopicID,
			Description:    quiz.Description,
			Open:           quiz.Open,
			Close:          quiz.Close,
			TimeLimit:      quiz.TimeLimit,
			TimeLimitUnit:  quiz.TimeLimitUnit,
			GradeToPass:    quiz.GradeToPass,
			GradingMethod:  quiz.GradingMethod,
			AttemptAllowed: quiz.AttemptAllowed,
		}
		if err := tx.Omit("Questions").Create(&newQuiz).Error; err != nil {
			return err
		}
		for _, q := range quiz.Questions {
			newQuestion := courseModels.QuizQuestion{
				ID:            uuid.NewString(),
				QuizID:        newQuiz.ID,
				Position:      q.Position,
				Type:          q.Type,
				Text:          q.Text,
				DefaultMark:   q.DefaultMark,
				CorrectAnswer: q.CorrectAnswer,
				Multiple:      q.Multiple,
			}
			if err := tx.Omit("Choices").Create(&newQuestion).Error; err != nil {
				return err
			}
			for _, ch := range q.Choices {
				newChoice := courseModels.QuestionChoice{
					ID:           uuid.NewString(),
					QuestionID:   newQuestion.ID,
					Position:     ch.Position,
					Text:         ch.Text,
					GradePercent: ch.GradePercent,
					Feedback:     ch.Feedback,
				}
				if err := tx.Create(&newChoice).Error; err != nil {
					return err
				}
			}
		}
		return nil
	}

	// Unknown or meeting type: the generic topic row is all there is.
	return nil
}

func variantLoadError(src *courseModels.Topic, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: topic %s has type %s but no variant row", ErrInternal, src.ID, src.Type)
	}
	return err
}
