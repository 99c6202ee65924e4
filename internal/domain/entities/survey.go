package entities

import (
	"time"
)

// QuestionType identifies how a question is answered.
type QuestionType int

const (
	QuestionSingleChoice   QuestionType = 1
	QuestionMultipleChoice QuestionType = 2
	QuestionFreeText       QuestionType = 3
)

// IsChoice reports whether answers reference options.
func (t QuestionType) IsChoice() bool {
	return t == QuestionSingleChoice || t == QuestionMultipleChoice
}

func (t QuestionType) String() string {
	switch t {
	case QuestionSingleChoice:
		return "single_choice"
	case QuestionMultipleChoice:
		return "multiple_choice"
	case QuestionFreeText:
		return "text"
	default:
		return "unknown"
	}
}

// Survey is a named collection of ordered questions.
type Survey struct {
	ID          uint   `json:"id" gorm:"primaryKey;column:id"`
	Title       string `json:"title" gorm:"column:title;size:255;not null"`
	Description string `json:"description" gorm:"column:description;type:text"`
	IsPublished bool   `json:"is_published" gorm:"column:is_published;not null;default:false"`
	Version     int    `json:"version" gorm:"column:version;not null;default:1"`
	Timestamps

	// Relations
	Questions []Question       `json:"questions" gorm:"foreignKey:SurveyID;constraint:OnDelete:CASCADE"`
	Responses []SurveyResponse `json:"-" gorm:"foreignKey:SurveyID;constraint:OnDelete:CASCADE"`
}

// Question belongs to exactly one survey; Order is its display position.
type Question struct {
	ID       uint         `json:"id" gorm:"primaryKey;column:id"`
	SurveyID uint         `json:"survey_id" gorm:"column:survey_id;not null;index"`
	Text     string       `json:"text" gorm:"column:text;type:text;not null"`
	Type     QuestionType `json:"type" gorm:"column:question_type;not null"`
	Required bool         `json:"required" gorm:"column:required;not null;default:false"`
	Order    int          `json:"order" gorm:"column:order_index;not null"`

	Options []Option `json:"options" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

// Option is one selectable choice of a question.
type Option struct {
	ID         uint   `json:"id" gorm:"primaryKey;column:id"`
	QuestionID uint   `json:"question_id" gorm:"column:question_id;not null;index"`
	Text       string `json:"text" gorm:"column:text;size:255;not null"`
	Order      int    `json:"order" gorm:"column:order_index;not null"`
}

// SurveyResponse is one respondent's complete submission.
type SurveyResponse struct {
	ID        uint      `json:"id" gorm:"primaryKey;column:id"`
	SurveyID  uint      `json:"survey_id" gorm:"column:survey_id;not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null"`

	QuestionResponses []QuestionResponse `json:"question_responses,omitempty" gorm:"foreignKey:SurveyResponseID;constraint:OnDelete:CASCADE"`
}

// QuestionResponse is a single answer row. QuestionID and OptionID are not
// backed by foreign keys; the submission processor keeps them consistent.
type QuestionResponse struct {
	ID               uint    `json:"id" gorm:"primaryKey;column:id"`
	SurveyResponseID uint    `json:"survey_response_id" gorm:"column:survey_response_id;not null;index"`
	QuestionID       uint    `json:"question_id" gorm:"column:question_id;not null;index"`
	OptionID         *uint   `json:"option_id" gorm:"column:option_id"`
	TextResponse     *string `json:"text_response" gorm:"column:text_response;type:text"`
}

// SurveyStats is one row of the per-survey aggregate.
type SurveyStats struct {
	SurveyID      uint   `json:"survey_id" gorm:"column:survey_id"`
	Title         string `json:"title" gorm:"column:title"`
	IsPublished   bool   `json:"is_published" gorm:"column:is_published"`
	QuestionCount int64  `json:"question_count" gorm:"column:question_count"`
	ResponseCount int64  `json:"response_count" gorm:"column:response_count"`
}
