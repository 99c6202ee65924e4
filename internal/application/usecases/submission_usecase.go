package usecases

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/PavaniTiago/survey-builder-api/internal/domain/entities"
	"github.com/PavaniTiago/survey-builder-api/internal/domain/repositories"
	"github.com/PavaniTiago/survey-builder-api/internal/infrastructure/logger"
)

// AnswerKind tags the shape of a decoded answer.
type AnswerKind int

const (
	AnswerMalformed AnswerKind = iota
	AnswerScalar
	AnswerList
)

// AnswerValue is one answer from a submission form: a single string or
// number, or a list of them. Anything else decodes as AnswerMalformed so
// one bad entry never rejects the whole request.
type AnswerValue struct {
	Kind   AnswerKind
	Scalar string
	List   []string
}

func ScalarAnswer(s string) AnswerValue {
	return AnswerValue{Kind: AnswerScalar, Scalar: s}
}

func ListAnswer(items ...string) AnswerValue {
	return AnswerValue{Kind: AnswerList, List: items}
}

func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	*a = AnswerValue{}

	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return nil
		}
		a.Kind = AnswerList
		a.List = make([]string, 0, len(items))
		for _, item := range items {
			// Non-scalar elements become empty strings and fail id parsing later
			s, _ := scalarText(item)
			a.List = append(a.List, s)
		}
		return nil
	}

	if s, ok := scalarText(data); ok {
		a.Kind = AnswerScalar
		a.Scalar = s
	}
	return nil
}

func (a AnswerValue) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case AnswerScalar:
		return json.Marshal(a.Scalar)
	case AnswerList:
		return json.Marshal(a.List)
	default:
		return []byte("null"), nil
	}
}

// scalarText accepts JSON strings and numbers.
func scalarText(raw []byte) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil || n == "" {
		return "", false
	}
	return n.String(), true
}

// SubmissionInput is the anonymous form payload posted to /api/submit.
type SubmissionInput struct {
	SurveyID        uint                   `json:"survey_id" validate:"required"`
	Responses       map[string]AnswerValue `json:"responses"`
	OtherTexts      map[string]AnswerValue `json:"otherTexts"`
	SelectedOptions map[string]AnswerValue `json:"selectedOptions"`
}

// SubmissionUseCase grava respostas anônimas de pesquisas publicadas
type SubmissionUseCase struct {
	surveyRepo   repositories.SurveyRepository
	responseRepo repositories.ResponseRepository
}

func NewSubmissionUseCase(surveyRepo repositories.SurveyRepository, responseRepo repositories.ResponseRepository) *SubmissionUseCase {
	return &SubmissionUseCase{
		surveyRepo:   surveyRepo,
		responseRepo: responseRepo,
	}
}

// Submit stores one SurveyResponse and every answer row that could be
// parsed. Malformed entries are dropped without failing the request.
func (u *SubmissionUseCase) Submit(ctx context.Context, input SubmissionInput) (*entities.SurveyResponse, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	survey, err := u.surveyRepo.FindByID(ctx, input.SurveyID)
	if err != nil {
		return nil, surveyError(err)
	}
	if !survey.IsPublished {
		return nil, newError(ErrInvalidInput, "Survey is not published")
	}

	response := &entities.SurveyResponse{
		SurveyID:          survey.ID,
		QuestionResponses: BuildQuestionResponses(survey.Questions, input),
	}
	if err := u.responseRepo.Create(ctx, response); err != nil {
		return nil, fmt.Errorf("store submission: %w", err)
	}

	logger.WithFields(logger.Fields{
		"survey_id":          survey.ID,
		"survey_response_id": response.ID,
		"rows":               len(response.QuestionResponses),
	}).Info("survey submitted")

	return response, nil
}

// BuildQuestionResponses turns a submission into answer rows for the given
// questions. Keys are processed in ascending numeric order; responses come
// first, then selectedOptions.
func BuildQuestionResponses(questions []entities.Question, input SubmissionInput) []entities.QuestionResponse {
	byID := make(map[uint]entities.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	b := rowBuilder{questions: byID, otherTexts: input.OtherTexts}

	for _, key := range sortedKeys(input.Responses) {
		// "<question>-<option>" keys belong to the other-text encoding
		if strings.Contains(key, "-") {
			continue
		}
		q, ok := b.question(key)
		if !ok {
			continue
		}

		value := input.Responses[key]
		switch {
		case q.Type == entities.QuestionFreeText:
			if value.Kind != AnswerScalar {
				logger.Debugf("submission: dropping non-text answer for free-text question %d", q.ID)
				continue
			}
			text := value.Scalar
			b.rows = append(b.rows, entities.QuestionResponse{QuestionID: q.ID, TextResponse: &text})
		case value.Kind == AnswerList:
			b.addOptions(q, value.List)
		case value.Kind == AnswerScalar:
			b.addOption(q, value.Scalar, key)
		default:
			logger.Debugf("submission: dropping malformed answer for question %d", q.ID)
		}
	}

	for _, key := range sortedKeys(input.SelectedOptions) {
		q, ok := b.question(key)
		if !ok || !q.Type.IsChoice() {
			continue
		}

		value := input.SelectedOptions[key]
		switch value.Kind {
		case AnswerList:
			b.addOptions(q, value.List)
		case AnswerScalar:
			b.addOptions(q, []string{value.Scalar})
		}
	}

	return b.rows
}

type rowBuilder struct {
	questions  map[uint]entities.Question
	otherTexts map[string]AnswerValue
	rows       []entities.QuestionResponse
}

func (b *rowBuilder) question(key string) (entities.Question, bool) {
	id, ok := parseID(key)
	if !ok {
		logger.Debugf("submission: skipping non-numeric question key %q", key)
		return entities.Question{}, false
	}
	q, ok := b.questions[id]
	if !ok {
		logger.Debugf("submission: question %d is not part of this survey", id)
	}
	return q, ok
}

// addOptions adds one row per option; each looks up its own other text.
func (b *rowBuilder) addOptions(q entities.Question, options []string) {
	for _, raw := range options {
		optionID, ok := parseID(raw)
		if !ok {
			logger.Debugf("submission: skipping option %q of question %d", raw, q.ID)
			continue
		}
		b.appendChoice(q.ID, optionID, fmt.Sprintf("%d-%d", q.ID, optionID))
	}
}

func (b *rowBuilder) addOption(q entities.Question, raw, otherKey string) {
	optionID, ok := parseID(raw)
	if !ok {
		logger.Debugf("submission: skipping option %q of question %d", raw, q.ID)
		return
	}
	b.appendChoice(q.ID, optionID, otherKey)
}

func (b *rowBuilder) appendChoice(questionID, optionID uint, otherKey string) {
	row := entities.QuestionResponse{QuestionID: questionID, OptionID: &optionID}
	if other, ok := b.otherTexts[otherKey]; ok && other.Kind == AnswerScalar && other.Scalar != "" {
		text := other.Scalar
		row.TextResponse = &text
	}
	b.rows = append(b.rows, row)
}

func parseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// sortedKeys orders numeric keys numerically and the rest after them.
func sortedKeys(m map[string]AnswerValue) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aok := parseID(keys[i])
		b, bok := parseID(keys[j])
		switch {
		case aok && bok:
			return a < b
		case aok != bok:
			return aok
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}
