package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PavaniTiago/survey-builder-api/internal/domain/entities"
	"github.com/PavaniTiago/survey-builder-api/internal/domain/repositories"
)

type OptionInput struct {
	Text string `json:"text" validate:"required,max=255"`
}

type QuestionInput struct {
	Text     string                `json:"text" validate:"required"`
	Type     entities.QuestionType `json:"type" validate:"required,oneof=1 2 3"`
	Required bool                  `json:"required"`
	Options  []OptionInput         `json:"options" validate:"dive"`
}

// SurveyInput is the body of create and replace. Version is optional; when
// set on replace it must match the stored version.
type SurveyInput struct {
	Title       string          `json:"title" validate:"required,max=255"`
	Description string          `json:"description"`
	Version     int             `json:"version" validate:"gte=0"`
	Questions   []QuestionInput `json:"questions" validate:"dive"`
}

// SurveyUseCase implementa os casos de uso relacionados a pesquisas
type SurveyUseCase struct {
	surveyRepo repositories.SurveyRepository
}

// NewSurveyUseCase cria uma nova instância de SurveyUseCase
func NewSurveyUseCase(surveyRepo repositories.SurveyRepository) *SurveyUseCase {
	return &SurveyUseCase{
		surveyRepo: surveyRepo,
	}
}

func (u *SurveyUseCase) List(ctx context.Context) ([]entities.Survey, error) {
	return u.surveyRepo.List(ctx, false)
}

func (u *SurveyUseCase) ListPublished(ctx context.Context) ([]entities.Survey, error) {
	return u.surveyRepo.List(ctx, true)
}

func (u *SurveyUseCase) Get(ctx context.Context, id uint) (*entities.Survey, error) {
	survey, err := u.surveyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, surveyError(err)
	}
	return survey, nil
}

// GetPublished hides drafts from respondents.
func (u *SurveyUseCase) GetPublished(ctx context.Context, id uint) (*entities.Survey, error) {
	survey, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !survey.IsPublished {
		return nil, newError(ErrNotFound, "Survey not found")
	}
	return survey, nil
}

// Create cria a pesquisa com perguntas e opções em uma única transação
func (u *SurveyUseCase) Create(ctx context.Context, input SurveyInput) (*entities.Survey, error) {
	survey, err := buildSurvey(input)
	if err != nil {
		return nil, err
	}
	survey.Version = 1

	if err := u.surveyRepo.Create(ctx, survey); err != nil {
		return nil, fmt.Errorf("create survey: %w", err)
	}
	return survey, nil
}

// Replace substitui título, descrição e todo o conjunto de perguntas
func (u *SurveyUseCase) Replace(ctx context.Context, id uint, input SurveyInput) (*entities.Survey, error) {
	survey, err := buildSurvey(input)
	if err != nil {
		return nil, err
	}
	survey.ID = id

	if err := u.surveyRepo.Replace(ctx, survey, input.Version); err != nil {
		return nil, surveyError(err)
	}
	return survey, nil
}

func (u *SurveyUseCase) Delete(ctx context.Context, id uint) error {
	if err := u.surveyRepo.Delete(ctx, id); err != nil {
		return surveyError(err)
	}
	return nil
}

func (u *SurveyUseCase) Publish(ctx context.Context, id uint) (*entities.Survey, error) {
	return u.setPublished(ctx, id, true)
}

func (u *SurveyUseCase) Unpublish(ctx context.Context, id uint) (*entities.Survey, error) {
	return u.setPublished(ctx, id, false)
}

func (u *SurveyUseCase) setPublished(ctx context.Context, id uint, published bool) (*entities.Survey, error) {
	survey, err := u.surveyRepo.SetPublished(ctx, id, published)
	if err != nil {
		return nil, surveyError(err)
	}
	return survey, nil
}

// Stats retorna contagem de perguntas e respostas por pesquisa
func (u *SurveyUseCase) Stats(ctx context.Context) ([]entities.SurveyStats, error) {
	return u.surveyRepo.Stats(ctx)
}

// buildSurvey validates the input and assigns display order from array
// position, ignoring anything the client sent.
func buildSurvey(input SurveyInput) (*entities.Survey, error) {
	input.Title = strings.TrimSpace(input.Title)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	survey := &entities.Survey{
		Title:       input.Title,
		Description: input.Description,
		Questions:   make([]entities.Question, 0, len(input.Questions)),
	}

	for i, q := range input.Questions {
		if q.Type.IsChoice() && len(q.Options) == 0 {
			return nil, newError(ErrInvalidInput, "questions[%d].options must not be empty for a choice question", i)
		}

		question := entities.Question{
			Text:     q.Text,
			Type:     q.Type,
			Required: q.Required,
			Order:    i,
		}
		// Free-text questions never carry options
		if q.Type.IsChoice() {
			question.Options = make([]entities.Option, 0, len(q.Options))
			for j, o := range q.Options {
				question.Options = append(question.Options, entities.Option{Text: o.Text, Order: j})
			}
		}
		survey.Questions = append(survey.Questions, question)
	}

	return survey, nil
}

func surveyError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return newError(ErrNotFound, "Survey not found")
	case errors.Is(err, repositories.ErrVersionConflict):
		return newError(ErrConflict, "Survey was modified by someone else; reload and try again")
	case errors.Is(err, repositories.ErrHasResponses):
		return newError(ErrConflict, "Survey already has responses; delete them before changing its questions")
	default:
		return err
	}
}
