package course

import (
	"time"

	"gorm.io/datatypes"
)

// Question types within a quiz.
const (
	QuestionTypeTrueFalse      = "truefalse"
	QuestionTypeShortAnswer    = "shortanswer"
	QuestionTypeMultipleChoice = "multiplechoice"
)

// Quiz grading methods.
const (
	GradingHighest = "highest"
	GradingAverage = "average"
	GradingFirst   = "first"
	GradingLast    = "last"
)

// TopicQuiz is a "quiz" topic with its owned question tree.
type TopicQuiz struct {
	ID             string     `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	TopicID        string     `json:"topic_id" gorm:"uniqueIndex;not null"`
	Topic          Topic      `json:"-" gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE"`
	Description    string     `json:"description"`
	Open           *time.Time `json:"open"`
	Close          *time.Time `json:"close"`
	TimeLimit      int        `json:"time_limit" gorm:"default:0"`
	TimeLimitUnit  string     `json:"time_limit_unit" gorm:"default:'minutes'"`
	GradeToPass    float64    `json:"grade_to_pass" gorm:"default:0"`
	GradingMethod  string     `json:"grading_method" gorm:"default:'highest'"`
	AttemptAllowed int        `json:"attempt_allowed" gorm:"default:1"` // 0 means unlimited

	Questions []QuizQuestion `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}

// QuizQuestion belongs to one quiz and owns an ordered list of choices.
type QuizQuestion struct {
	ID            string    `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	QuizID        string    `json:"quiz_id" gorm:"index;not null"`
	Position      int       `json:"position" gorm:"default:0"`
	Type          string    `json:"type" gorm:"default:'multiplechoice'"`
	Text          string    `json:"text" gorm:"type:text"`
	DefaultMark   float64   `json:"default_mark" gorm:"default:1"`
	CorrectAnswer string    `json:"correct_answer"`
	Multiple      bool      `json:"multiple" gorm:"default:false"`

	Choices []QuestionChoice `json:"choices,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

// QuestionChoice is one selectable answer; GradePercent is the share of the
// question's mark awarded for picking it.
type QuestionChoice struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	QuestionID   string    `json:"question_id" gorm:"index;not null"`
	Position     int       `json:"position" gorm:"default:0"`
	Text         string    `json:"text"`
	GradePercent float64   `json:"grade_percent" gorm:"default:0"`
	Feedback     string    `json:"feedback"`
}

// QuizAttempt records one student run of a quiz. Answers maps question ids
// to the submitted choice ids or free-text answer.
type QuizAttempt struct {
	ID            string         `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	QuizID        string         `json:"quiz_id" gorm:"index;not null"`
	UserID        uint           `json:"user_id" gorm:"index;not null"`
	AttemptNumber int            `json:"attempt_number" gorm:"default:1"`
	Answers       datatypes.JSON `json:"answers"`
	Score         float64        `json:"score" gorm:"default:0"`
	MaxScore      float64        `json:"max_score" gorm:"default:0"`
	Passed        bool           `json:"passed" gorm:"default:false"`
}
