package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/PavaniTiago/survey-builder-api/internal/application/usecases"
	"github.com/PavaniTiago/survey-builder-api/internal/domain/entities"
	"github.com/PavaniTiago/survey-builder-api/internal/testutil"
)

func TestAnswerText(t *testing.T) {
	id := uint(5)
	red := &entities.Option{ID: 5, Text: "Red"}
	other := &entities.Option{ID: 5, Text: "Other"}
	otherZh := &entities.Option{ID: 5, Text: "其他"}
	text := func(s string) *string { return &s }

	tests := []struct {
		name     string
		optionID *uint
		opt      *entities.Option
		text     *string
		want     string
	}{
		{"free text", nil, nil, text("hello"), "hello"},
		{"nothing", nil, nil, nil, "no response"},
		{"option only", &id, red, nil, "Red"},
		{"option with text", &id, red, text("dark"), "Red: dark"},
		{"option with empty text", &id, red, text(""), "Red"},
		{"other marker", &id, other, text("green"), "green"},
		{"other marker lower case", &id, &entities.Option{Text: "  OTHER "}, text("green"), "green"},
		{"chinese other marker", &id, otherZh, text("绿色"), "绿色"},
		{"unknown option", &id, nil, text("ignored"), "unknown option"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := usecases.AnswerText(tt.optionID, tt.opt, tt.text); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestResponseReport(t *testing.T) {
	db := testutil.NewDB(t)
	uc := usecases.NewUseCases(db, nil)
	ctx := context.Background()

	survey := testutil.CreateSurvey(t, db, "colours", true)
	single, multi, free := survey.Questions[0], survey.Questions[1], survey.Questions[2]

	_, err := uc.Submissions.Submit(ctx, usecases.SubmissionInput{
		SurveyID: survey.ID,
		Responses: map[string]usecases.AnswerValue{
			itoa(single.ID): usecases.ScalarAnswer(itoa(single.Options[2].ID)),
			itoa(multi.ID):  usecases.ListAnswer(itoa(multi.Options[0].ID), "9999"),
			itoa(free.ID):   usecases.ScalarAnswer("nice"),
		},
		OtherTexts: map[string]usecases.AnswerValue{
			itoa(single.ID): usecases.ScalarAnswer("green"),
			itoa(multi.ID) + "-" + itoa(multi.Options[0].ID): usecases.ScalarAnswer("two of them"),
		},
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	reports, err := uc.Responses.ListBySurvey(ctx, survey.ID)
	if err != nil {
		t.Fatalf("ListBySurvey failed: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("Expected 1 report, got %d", len(reports))
	}

	answers := map[string]bool{}
	for _, a := range reports[0].Answers {
		answers[a.Answer] = true
	}
	for _, want := range []string{"green", "Cat: two of them", "unknown option", "nice"} {
		if !answers[want] {
			t.Errorf("Expected answer %q in %+v", want, reports[0].Answers)
		}
	}

	if _, err := uc.Responses.ListBySurvey(ctx, survey.ID+100); !errors.Is(err, usecases.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestDeleteResponse(t *testing.T) {
	db := testutil.NewDB(t)
	uc := usecases.NewUseCases(db, nil)
	ctx := context.Background()

	survey := testutil.CreateSurvey(t, db, "short", true)
	resp, err := uc.Submissions.Submit(ctx, usecases.SubmissionInput{
		SurveyID:  survey.ID,
		Responses: map[string]usecases.AnswerValue{itoa(survey.Questions[2].ID): usecases.ScalarAnswer("x")},
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if err := uc.Responses.Delete(ctx, resp.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n := testutil.Count(t, db, &entities.QuestionResponse{}, ""); n != 0 {
		t.Errorf("Expected no question responses, got %d", n)
	}
	if err := uc.Responses.Delete(ctx, resp.ID); !errors.Is(err, usecases.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
