package course

import "time"

// Topic types. The set is closed: a topic's type is fixed at creation and
// decides which variant table owns its data.
const (
	TopicTypePage       = "page"
	TopicTypeFile       = "file"
	TopicTypeLink       = "link"
	TopicTypeQuiz       = "quiz"
	TopicTypeAssignment = "assignment"
	TopicTypeMeeting    = "meeting"
)

// ValidTopicType reports whether t belongs to the closed topic type set.
func ValidTopicType(t string) bool {
	switch t {
	case TopicTypePage, TopicTypeFile, TopicTypeLink, TopicTypeQuiz, TopicTypeAssignment, TopicTypeMeeting:
		return true
	}
	return false
}

// Topic is the generic envelope row. Exactly one variant row (matching Type)
// exists per topic; the variant tables cascade-delete from here.
type Topic struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	SectionID string    `json:"section_id" gorm:"index;not null"`
	Title     string    `json:"title"`
	Type      string    `json:"type" gorm:"not null"`
}
