package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/PavaniTiago/survey-builder-api/internal/domain/entities"
	"github.com/PavaniTiago/survey-builder-api/internal/domain/repositories"
)

const (
	unknownOptionAnswer = "unknown option"
	noResponseAnswer    = "no response"
)

// otherMarkers are option texts that stand for "none of the above, please
// specify". Compared case-insensitively.
var otherMarkers = []string{"other", "其他"}

type AnswerReport struct {
	QuestionID   uint                  `json:"question_id"`
	QuestionText string                `json:"question_text"`
	QuestionType entities.QuestionType `json:"question_type"`
	OptionID     *uint                 `json:"option_id"`
	Answer       string                `json:"answer"`
}

type ResponseReport struct {
	ID        uint           `json:"id"`
	SurveyID  uint           `json:"survey_id"`
	CreatedAt time.Time      `json:"created_at"`
	Answers   []AnswerReport `json:"answers"`
}

// ResponseUseCase monta os relatórios de respostas de uma pesquisa
type ResponseUseCase struct {
	surveyRepo   repositories.SurveyRepository
	responseRepo repositories.ResponseRepository
}

func NewResponseUseCase(surveyRepo repositories.SurveyRepository, responseRepo repositories.ResponseRepository) *ResponseUseCase {
	return &ResponseUseCase{
		surveyRepo:   surveyRepo,
		responseRepo: responseRepo,
	}
}

// ListBySurvey resolves every answer of every response against lookup maps
// built once from the survey's questions and options.
func (u *ResponseUseCase) ListBySurvey(ctx context.Context, surveyID uint) ([]ResponseReport, error) {
	survey, err := u.surveyRepo.FindByID(ctx, surveyID)
	if err != nil {
		return nil, surveyError(err)
	}

	responses, err := u.responseRepo.ListBySurvey(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	questions := make(map[uint]entities.Question, len(survey.Questions))
	options := make(map[uint]entities.Option)
	for _, q := range survey.Questions {
		questions[q.ID] = q
		for _, o := range q.Options {
			options[o.ID] = o
		}
	}

	reports := make([]ResponseReport, 0, len(responses))
	for _, r := range responses {
		report := ResponseReport{
			ID:        r.ID,
			SurveyID:  r.SurveyID,
			CreatedAt: r.CreatedAt,
			Answers:   make([]AnswerReport, 0, len(r.QuestionResponses)),
		}
		for _, qr := range r.QuestionResponses {
			q := questions[qr.QuestionID]

			var opt *entities.Option
			if qr.OptionID != nil {
				if o, ok := options[*qr.OptionID]; ok && o.QuestionID == qr.QuestionID {
					opt = &o
				}
			}

			report.Answers = append(report.Answers, AnswerReport{
				QuestionID:   qr.QuestionID,
				QuestionText: q.Text,
				QuestionType: q.Type,
				OptionID:     qr.OptionID,
				Answer:       AnswerText(qr.OptionID, opt, qr.TextResponse),
			})
		}
		reports = append(reports, report)
	}

	return reports, nil
}

func (u *ResponseUseCase) Delete(ctx context.Context, id uint) error {
	err := u.responseRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return newError(ErrNotFound, "Survey response not found")
	}
	return err
}

// AnswerText renders one answer row for display. opt is the resolved option
// or nil when optionID does not name an option of the question.
func AnswerText(optionID *uint, opt *entities.Option, text *string) string {
	hasText := text != nil && *text != ""

	if optionID == nil {
		if text != nil {
			return *text
		}
		return noResponseAnswer
	}
	if opt == nil {
		return unknownOptionAnswer
	}
	if !hasText {
		return opt.Text
	}
	if IsOtherOption(opt.Text) {
		return *text
	}
	return opt.Text + ": " + *text
}

func IsOtherOption(text string) bool {
	text = strings.TrimSpace(text)
	for _, marker := range otherMarkers {
		if strings.EqualFold(text, marker) {
			return true
		}
	}
	return false
}
