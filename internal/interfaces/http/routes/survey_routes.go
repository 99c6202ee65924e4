package routes

import (
	"github.com/PavaniTiago/survey-builder-api/internal/interfaces/http/handlers"
	"github.com/PavaniTiago/survey-builder-api/internal/interfaces/http/middleware"
)

// RegisterSurveyRoutes mounts survey authoring, respondent and reporting routes.
func RegisterSurveyRoutes(groups middleware.RouteGroups, h *handlers.Handlers) {
	// Respondent routes
	groups.Public.Get("/published-surveys", h.Surveys.GetPublishedSurveys)
	groups.Public.Get("/published-surveys/:id", h.Surveys.GetPublishedSurvey)
	groups.Public.Post("/submit", h.Submissions.SubmitSurvey)

	// Authoring routes
	groups.Protected.Get("/surveys", h.Surveys.GetSurveys)
	groups.Protected.Post("/surveys", h.Surveys.CreateSurvey)
	groups.Protected.Get("/surveys/:id", h.Surveys.GetSurvey)
	groups.Protected.Put("/surveys/:id", h.Surveys.UpdateSurvey)
	groups.Protected.Delete("/surveys/:id", h.Surveys.DeleteSurvey)
	groups.Protected.Post("/surveys/:id/publish", h.Surveys.PublishSurvey)
	groups.Protected.Post("/surveys/:id/unpublish", h.Surveys.UnpublishSurvey)
	groups.Protected.Get("/survey-stats", h.Surveys.GetSurveyStats)

	// Reporting routes
	groups.Protected.Get("/survey-responses/:surveyId", h.Responses.GetSurveyResponses)
	groups.Protected.Delete("/survey-responses/:id", h.Responses.DeleteSurveyResponse)
}
