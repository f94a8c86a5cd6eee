package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/fishperson113/letslearn-backend/models"
	courseModels "github.com/fishperson113/letslearn-backend/models/course"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// seedCourseGraph builds a course with two sections covering every cloneable
// topic type plus one meeting, and returns it with the graph preloaded.
func seedCourseGraph(t *testing.T, db *gorm.DB, creatorID uint) courseModels.Course {
	t.Helper()

	topics := NewTopicService(db, nil)

	c := courseModels.Course{
		ID:          "SRC-" + uuid.NewString()[:8],
		CreatorID:   creatorID,
		Title:       "Source " + uuid.NewString(),
		Description: "source course",
		TotalJoined: 7,
		IsPublished: true,
	}
	require.NoError(t, db.Create(&c).Error)

	s1 := courseModels.Section{ID: uuid.NewString(), CourseID: c.ID, Position: 0, Title: "Week 1", Description: "basics"}
	s2 := courseModels.Section{ID: uuid.NewString(), CourseID: c.ID, Position: 1, Title: "Week 2"}
	require.NoError(t, db.Create(&s1).Error)
	require.NoError(t, db.Create(&s2).Error)

	ctx := context.Background()
	mustCreate := func(sectionID, title, typ, payload string) {
		_, err := topics.CreateTopic(ctx, sectionID, title, typ, json.RawMessage(payload))
		require.NoError(t, err)
	}

	mustCreate(s1.ID, "Intro page", "page", `{"description":"d","content":"welcome"}`)
	mustCreate(s1.ID, "Reading", "link", `{"url":"https://example.com/paper"}`)
	mustCreate(s1.ID, "Live session", "meeting", `{"description":"kickoff"}`)
	mustCreate(s2.ID, "Slides", "file", `{"description":"deck","file":{"name":"slides.pdf","display_url":"/f/1","download_url":"/f/1/dl"}}`)
	mustCreate(s2.ID, "Homework", "assignment",
		`{"description":"solve all","maximum_file":3,"template_files":[{"name":"tmpl.docx","display_url":"/f/2","download_url":"/f/2/dl"}]}`)
	mustCreate(s2.ID, "Checkpoint", "quiz", `{
		"grade_to_pass": 60,
		"questions": [
			{"text": "q1", "default_mark": 2, "choices": [
				{"text": "right", "grade_percent": 100, "feedback": "well done"},
				{"text": "wrong", "grade_percent": 0}
			]}
		]
	}`)

	var loaded courseModels.Course
	require.NoError(t, db.
		Preload("Sections", func(db *gorm.DB) *gorm.DB { return db.Order("sections.position asc") }).
		Preload("Sections.Topics", func(db *gorm.DB) *gorm.DB { return db.Order("topics.created_at asc") }).
		First(&loaded, "id = ?", c.ID).Error)
	return loaded
}

func seedUser(t *testing.T, db *gorm.DB, role string) models.User {
	t.Helper()
	u := models.User{
		Name:     "user-" + uuid.NewString()[:8],
		Email:    uuid.NewString() + "@example.com",
		Password: "x",
		Role:     role,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func collectGraphIDs(t *testing.T, db *gorm.DB, courseID string) map[string]bool {
	t.Helper()
	ids := map[string]bool{courseID: true}

	var sections []courseModels.Section
	require.NoError(t, db.Where("course_id = ?", courseID).Find(&sections).Error)
	for _, s := range sections {
		ids[s.ID] = true
		var topics []courseModels.Topic
		require.NoError(t, db.Where("section_id = ?", s.ID).Find(&topics).Error)
		for _, topic := range topics {
			ids[topic.ID] = true
		}
	}
	return ids
}

func TestCloneValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCourseCloneService(db)

	_, err := svc.Clone(context.Background(), "", CloneRequest{NewCourseID: "X"}, 1)
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.Clone(context.Background(), "SRC", CloneRequest{}, 1)
	require.ErrorIs(t, err, ErrValidation)
}

func TestCloneSourceNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCourseCloneService(db)

	_, err := svc.Clone(context.Background(), "NOPE", CloneRequest{NewCourseID: "X"}, 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCloneAuthorization(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCourseCloneService(db)

	creator := seedUser(t, db, "USER")
	admin := seedUser(t, db, "admin") // role compare is case-insensitive
	outsider := seedUser(t, db, "USER")

	src := seedCourseGraph(t, db, creator.ID)

	_, err := svc.Clone(context.Background(), src.ID, CloneRequest{NewCourseID: "CL-OUT"}, outsider.ID)
	require.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.Clone(context.Background(), src.ID, CloneRequest{NewCourseID: "CL-CREATOR", Title: strPtr("Creator copy")}, creator.ID)
	require.NoError(t, err, "creator needs no elevated role")

	res, err := svc.Clone(context.Background(), src.ID, CloneRequest{NewCourseID: "CL-ADMIN", Title: strPtr("Admin copy")}, admin.ID)
	require.NoError(t, err, "admin may clone someone else's course")

	var cloned courseModels.Course
	require.NoError(t, db.First(&cloned, "id = ?", res.ID).Error)
	assert.Equal(t, admin.ID, cloned.CreatorID, "clone belongs to the requester, not the source creator")
}

func TestCloneConflictOnExistingID(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCourseCloneService(db)

	creator := seedUser(t, db, "USER")
	src := seedCourseGraph(t, db, creator.ID)

	_, err := svc.Clone(context.Background(), src.ID, CloneRequest{NewCourseID: src.ID}, creator.ID)
	require.ErrorIs(t, err, ErrConflict)
}

func TestCloneSkipsMeetings(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCourseCloneService(db)

	creator := seedUser(t, db, "USER")
	src := seedCourseGraph(t, db, creator.ID)

	srcTopics := 0
	meetings := 0
	for _, s := range src.Sections {
		for _, topic := range s.Topics {
			srcTopics++
			if topic.Type == courseModels.TopicTypeMeeting {
				meetings++
			}
		}
	}
	require.Positive(t, meetings)

	res, err := svc.Clone(context.Background(), src.ID, CloneRequest{NewCourseID: "CL-MEET", Title: strPtr("No meetings")}, creator.ID)
	require.NoError(t, err)

	assert.Equal(t, len(src.Sections), res.SectionCount)
	assert.Equal(t, srcTopics-meetings, res.TopicCount)

	var clonedMeetings int64
	require.NoError(t, db.Model(&courseModels.Topic{}).
		Joins("JOIN sections ON sections.id = topics.section_id").
		Where("sections.course_id = ? AND topics.type = ?", res.ID, courseModels.TopicTypeMeeting).
		Count(&clonedMeetings).Error)
	assert.Zero(t, clonedMeetings)
}

func TestCloneReproducibleAndDisjoint(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCourseCloneService(db)

	creator := seedUser(t, db, "USER")
	src := seedCourseGraph(t, db, creator.ID)

	first, err := svc.Clone(context.Background(), src.ID, CloneRequest{NewCourseID: "CL-A", Title: strPtr("Copy A")}, creator.ID)
	require.NoError(t, err)
	second, err := svc.Clone(context.Background(), src.ID, CloneRequest{NewCourseID: "CL-B", Title: strPtr("Copy B")}, creator.ID)
	require.NoError(t, err)

	assert.Equal(t, first.SectionCount, second.SectionCount)
	assert.Equal(t, first.TopicCount, second.TopicCount)

	srcIDs := collectGraphIDs(t, db, src.ID)
	aIDs := collectGraphIDs(t, db, first.ID)
	bIDs := collectGraphIDs(t, db, second.ID)
	for id := range aIDs {
		assert.False(t, srcIDs[id], "clone shares id %s with source", id)
		assert.False(t, bIDs[id], "clones share id %s", id)
	}

	var cloned courseModels.Course
	require.NoError(t, db.First(&cloned, "id = ?", first.ID).Error)
	assert.Equal(t, src.Description, cloned.Description)
	assert.Equal(t, src.IsPublished, cloned.IsPublished)
	assert.Zero(t, cloned.TotalJoined, "join counter restarts on clone")

	// Section scalars and order survive.
	var sections []courseModels.Section
	require.NoError(t, db.Where("course_id = ?", first.ID).Order("position asc").Find(&sections).Error)
	require.Len(t, sections, len(src.Sections))
	for i, s := range sections {
		assert.Equal(t, src.Sections[i].Title, s.Title)
		assert.Equal(t, src.Sections[i].Position, s.Position)
		assert.Equal(t, src.Sections[i].Description, s.Description)
	}
}

func TestCloneQuizDeepCopyIsolation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCourseCloneService(db)

	creator := seedUser(t, db, "USER")
	src := seedCourseGraph(t, db, creator.ID)

	res, err := svc.Clone(context.Background(), src.ID, CloneRequest{NewCourseID: "CL-QUIZ", Title: strPtr("Quiz copy")}, creator.ID)
	require.NoError(t, err)

	var srcQuiz, newQuiz courseModels.TopicQuiz
	require.NoError(t, db.Preload("Questions.Choices").
		Joins("JOIN topics ON topics.id = topic_quizzes.topic_id").
		Joins("JOIN sections ON sections.id = topics.section_id").
		Where("sections.course_id = ?", src.ID).First(&srcQuiz).Error)
	require.NoError(t, db.Preload("Questions.Choices").
		Joins("JOIN topics ON topics.id = topic_quizzes.topic_id").
		Joins("JOIN sections ON sections.id = topics.section_id").
		Where("sections.course_id = ?", res.ID).First(&newQuiz).Error)

	require.Len(t, newQuiz.Questions, len(srcQuiz.Questions))
	assert.NotEqual(t, srcQuiz.ID, newQuiz.ID)
	assert.Equal(t, srcQuiz.GradeToPass, newQuiz.GradeToPass)

	srcQ, newQ := srcQuiz.Questions[0], newQuiz.Questions[0]
	assert.NotEqual(t, srcQ.ID, newQ.ID)
	assert.Equal(t, srcQ.Text, newQ.Text)
	assert.Equal(t, srcQ.DefaultMark, newQ.DefaultMark)
	require.Len(t, newQ.Choices, len(srcQ.Choices))
	assert.NotEqual(t, srcQ.Choices[0].ID, newQ.Choices[0].ID)
	assert.Equal(t, srcQ.Choices[0].Feedback, newQ.Choices[0].Feedback)

	// Mutating the clone must never touch the source rows.
	require.NoError(t, db.Model(&courseModels.QuestionChoice{}).
		Where("id = ?", newQ.Choices[0].ID).Update("text", "tampered").Error)

	var check courseModels.QuestionChoice
	require.NoError(t, db.First(&check, "id = ?", srcQ.Choices[0].ID).Error)
	assert.Equal(t, srcQ.Choices[0].Text, check.Text)
}

func TestCloneAssignmentResetsFileLinkage(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCourseCloneService(db)

	creator := seedUser(t, db, "USER")
	src := seedCourseGraph(t, db, creator.ID)

	// Attach a stray response-linked file to the source template to prove the
	// clone drops submission context.
	var srcAssignment courseModels.TopicAssignment
	require.NoError(t, db.Preload("TemplateFiles").
		Joins("JOIN topics ON topics.id = topic_assignments.topic_id").
		Joins("JOIN sections ON sections.id = topics.section_id").
		Where("sections.course_id = ?", src.ID).First(&srcAssignment).Error)
	require.NotEmpty(t, srcAssignment.TemplateFiles)

	res, err := svc.Clone(context.Background(), src.ID, CloneRequest{NewCourseID: "CL-ASSN", Title: strPtr("Assignment copy")}, creator.ID)
	require.NoError(t, err)

	var newAssignment courseModels.TopicAssignment
	require.NoError(t, db.Preload("TemplateFiles").
		Joins("JOIN topics ON topics.id = topic_assignments.topic_id").
		Joins("JOIN sections ON sections.id = topics.section_id").
		Where("sections.course_id = ?", res.ID).First(&newAssignment).Error)

	assert.Equal(t, srcAssignment.Description, newAssignment.Description)
	assert.Equal(t, srcAssignment.MaximumFile, newAssignment.MaximumFile)
	require.Len(t, newAssignment.TemplateFiles, len(srcAssignment.TemplateFiles))

	for _, f := range newAssignment.TemplateFiles {
		assert.NotEqual(t, srcAssignment.TemplateFiles[0].ID, f.ID)
		require.NotNil(t, f.TopicAssignmentID)
		assert.Equal(t, newAssignment.ID, *f.TopicAssignmentID)
		assert.Nil(t, f.AssignmentResponseID, "template files carry no submission linkage")
		assert.Nil(t, f.TopicFileID)
	}
}

func TestBuildSkeletonIsDeterministic(t *testing.T) {
	now := time.Now()
	src := courseModels.Course{
		ID:          "SRC",
		CreatorID:   1,
		Title:       "T",
		IsPublished: true,
		TotalJoined: 3,
		Sections: []courseModels.Section{
			{ID: "s1", Position: 0, Title: "A", Topics: []courseModels.Topic{
				{ID: "t1", Title: "p", Type: courseModels.TopicTypePage, CreatedAt: now},
				{ID: "t2", Title: "m", Type: courseModels.TopicTypeMeeting, CreatedAt: now},
			}},
			{ID: "s2", Position: 1, Title: "B", Topics: []courseModels.Topic{
				{ID: "t3", Title: "q", Type: courseModels.TopicTypeQuiz, CreatedAt: now},
			}},
		},
	}

	sk := buildSkeleton(&src, CloneRequest{NewCourseID: "NEW"}, 42)

	assert.Equal(t, "NEW", sk.course.ID)
	assert.Equal(t, uint(42), sk.course.CreatorID)
	assert.Zero(t, sk.course.TotalJoined)
	assert.True(t, sk.course.IsPublished)

	require.Len(t, sk.course.Sections, 2)
	assert.Equal(t, "A", sk.course.Sections[0].Title)
	assert.Len(t, sk.course.Sections[0].Topics, 1, "meeting topic is excluded")
	assert.Len(t, sk.sectionIDs, 2)
	assert.Len(t, sk.topicIDs, 2)
	_, hasMeeting := sk.topicIDs["t2"]
	assert.False(t, hasMeeting)

	// Fresh ids throughout.
	assert.NotEqual(t, "s1", sk.sectionIDs["s1"])
	assert.NotEqual(t, "t1", sk.topicIDs["t1"])
}

func strPtr(s string) *string { return &s }
