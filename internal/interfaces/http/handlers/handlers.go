package handlers

import (
	"github.com/PavaniTiago/survey-builder-api/internal/application/usecases"
	"gorm.io/gorm"
)

// Handlers agrupa os handlers HTTP da API
type Handlers struct {
	Surveys     *SurveyHandler
	Submissions *SubmissionHandler
	Responses   *ResponseHandler
	Auth        *AuthHandler
	Users       *UserHandler
	Health      *HealthHandler
}

func NewHandlers(useCases *usecases.UseCases, db *gorm.DB) *Handlers {
	return &Handlers{
		Surveys:     NewSurveyHandler(useCases.Surveys),
		Submissions: NewSubmissionHandler(useCases.Submissions),
		Responses:   NewResponseHandler(useCases.Responses),
		Auth:        NewAuthHandler(useCases.Auth),
		Users:       NewUserHandler(useCases.Users),
		Health:      NewHealthHandler(db),
	}
}
