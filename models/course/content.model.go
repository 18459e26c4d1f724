package course

import "gorm.io/gorm"

// QuizQuestion is a single question on a QUIZ content item
type QuizQuestion struct {
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

// ContentItem represents an atomic learning unit within a module
type ContentItem struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	ModuleID    uint   `json:"module_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ContentType string `json:"content_type" gorm:"default:'TEXT'"` // TEXT, VIDEO, QUIZ, ASSIGNMENT, INTERACTIVE, RESOURCE
	Duration    int    `json:"duration" gorm:"default:0"`          // minutes
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	IsRequired  bool   `json:"is_required"`

	TextContent string `json:"text_content" gorm:"type:text"` // for TEXT type
	VideoURL    string `json:"video_url"`                     // for VIDEO type
	ResourceURL string `json:"resource_url"`                  // for RESOURCE/ASSIGNMENT type

	// For QUIZ type; correct answers are stripped before returning to students.
	QuizQuestions []QuizQuestion `json:"quiz_questions,omitempty" gorm:"serializer:json"`

	IsPublished bool `json:"is_published" gorm:"default:false"`
	IsDeleted   bool `gorm:"default:false"`
}

// QuizAttempt records a scored submission against a QUIZ content item
type QuizAttempt struct {
	gorm.Model
	UserID        uint   `json:"user_id" gorm:"index;not null"`
	ContentID     uint   `json:"content_id" gorm:"index;not null"`
	Answers       []int  `json:"answers" gorm:"serializer:json"` // selected option index per question
	Score         int    `json:"score"`
	MaxScore      int    `json:"max_score"`
	Passed        bool   `json:"passed"`
	AttemptNumber int    `json:"attempt_number"`
	Status        string `json:"status" gorm:"default:'SUBMITTED'"`
	IsDeleted     bool   `gorm:"default:false"`
}
