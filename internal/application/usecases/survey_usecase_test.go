package usecases_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/PavaniTiago/survey-builder-api/internal/application/usecases"
	"github.com/PavaniTiago/survey-builder-api/internal/domain/entities"
	"github.com/PavaniTiago/survey-builder-api/internal/testutil"
)

func surveyInput(title string) usecases.SurveyInput {
	return usecases.SurveyInput{
		Title: title,
		Questions: []usecases.QuestionInput{
			{Text: "First", Type: entities.QuestionSingleChoice, Options: []usecases.OptionInput{{Text: "A"}, {Text: "B"}}},
			{Text: "Second", Type: entities.QuestionFreeText, Options: []usecases.OptionInput{{Text: "ignored"}}},
			{Text: "Third", Type: entities.QuestionMultipleChoice, Options: []usecases.OptionInput{{Text: "X"}}},
		},
	}
}

func TestCreateSurveyAssignsOrder(t *testing.T) {
	db := testutil.NewDB(t)
	uc := usecases.NewUseCases(db, nil)
	ctx := context.Background()

	created, err := uc.Surveys.Create(ctx, surveyInput("ordered"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := uc.Surveys.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Version != 1 || got.IsPublished {
		t.Errorf("Expected a version 1 draft, got %+v", got)
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if got.Questions[i].Text != want || got.Questions[i].Order != i {
			t.Errorf("Question %d: expected %q at order %d, got %q at %d", i, want, i, got.Questions[i].Text, got.Questions[i].Order)
		}
	}
	if len(got.Questions[1].Options) != 0 {
		t.Errorf("Expected free-text question without options, got %d", len(got.Questions[1].Options))
	}
	if got.Questions[0].Options[1].Text != "B" || got.Questions[0].Options[1].Order != 1 {
		t.Errorf("Unexpected option order: %+v", got.Questions[0].Options)
	}
}

func TestCreateSurveyValidation(t *testing.T) {
	uc := usecases.NewSurveyUseCase(nil)

	tests := []struct {
		name    string
		input   usecases.SurveyInput
		message string
	}{
		{"missing title", usecases.SurveyInput{Title: "  "}, "title is required"},
		{"long title", usecases.SurveyInput{Title: strings.Repeat("a", 256)}, "title"},
		{
			"bad type",
			usecases.SurveyInput{Title: "t", Questions: []usecases.QuestionInput{{Text: "q", Type: 7}}},
			"questions[0].type",
		},
		{
			"missing question text",
			usecases.SurveyInput{Title: "t", Questions: []usecases.QuestionInput{{Type: entities.QuestionFreeText}}},
			"questions[0].text is required",
		},
		{
			"choice without options",
			usecases.SurveyInput{Title: "t", Questions: []usecases.QuestionInput{{Text: "q", Type: entities.QuestionSingleChoice}}},
			"questions[0].options",
		},
		{
			"empty option text",
			usecases.SurveyInput{Title: "t", Questions: []usecases.QuestionInput{{Text: "q", Type: entities.QuestionSingleChoice, Options: []usecases.OptionInput{{}}}}},
			"questions[0].options[0].text is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), tt.input)
			if !errors.Is(err, usecases.ErrInvalidInput) {
				t.Fatalf("Expected ErrInvalidInput, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("Expected message containing %q, got %q", tt.message, err.Error())
			}
		})
	}
}

func TestReplaceSurveyPolicies(t *testing.T) {
	db := testutil.NewDB(t)
	uc := usecases.NewUseCases(db, nil)
	ctx := context.Background()

	created, err := uc.Surveys.Create(ctx, surveyInput("v1"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	input := surveyInput("v2")
	input.Version = 1
	updated, err := uc.Surveys.Replace(ctx, created.ID, input)
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if updated.Version != 2 || updated.Title != "v2" {
		t.Errorf("Unexpected survey: %+v", updated)
	}

	// Still carries version 1
	if _, err := uc.Surveys.Replace(ctx, created.ID, input); !errors.Is(err, usecases.ErrConflict) {
		t.Errorf("Expected ErrConflict for stale version, got %v", err)
	}

	if _, err := uc.Surveys.Publish(ctx, created.ID); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	_, err = uc.Submissions.Submit(ctx, usecases.SubmissionInput{SurveyID: created.ID})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	input.Version = 0
	if _, err := uc.Surveys.Replace(ctx, created.ID, input); !errors.Is(err, usecases.ErrConflict) {
		t.Errorf("Expected ErrConflict once responses exist, got %v", err)
	}

	if _, err := uc.Surveys.Replace(ctx, created.ID+100, input); !errors.Is(err, usecases.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestPublishedVisibility(t *testing.T) {
	db := testutil.NewDB(t)
	uc := usecases.NewUseCases(db, nil)
	ctx := context.Background()

	created, err := uc.Surveys.Create(ctx, surveyInput("hidden"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := uc.Surveys.GetPublished(ctx, created.ID); !errors.Is(err, usecases.ErrNotFound) {
		t.Errorf("Expected draft to be hidden, got %v", err)
	}

	published, err := uc.Surveys.Publish(ctx, created.ID)
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if !published.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("Expected updated_at to move forward")
	}

	if _, err := uc.Surveys.GetPublished(ctx, created.ID); err != nil {
		t.Errorf("Expected published survey, got %v", err)
	}
	list, err := uc.Surveys.ListPublished(ctx)
	if err != nil || len(list) != 1 {
		t.Errorf("Expected 1 published survey, got %d (%v)", len(list), err)
	}

	unpublished, err := uc.Surveys.Unpublish(ctx, created.ID)
	if err != nil {
		t.Fatalf("Unpublish failed: %v", err)
	}
	if unpublished.IsPublished || !unpublished.UpdatedAt.After(published.UpdatedAt) {
		t.Errorf("Unexpected survey after unpublish: %+v", unpublished)
	}

	if err := uc.Surveys.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := uc.Surveys.Delete(ctx, created.ID); !errors.Is(err, usecases.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
