package handlers

import (
	"github.com/PavaniTiago/survey-builder-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

// SurveyHandler lida com requisições relacionadas a pesquisas
type SurveyHandler struct {
	surveyUseCase *usecases.SurveyUseCase
}

// NewSurveyHandler cria uma nova instância de SurveyHandler
func NewSurveyHandler(surveyUseCase *usecases.SurveyUseCase) *SurveyHandler {
	return &SurveyHandler{
		surveyUseCase: surveyUseCase,
	}
}

// GetSurveys retorna todas as pesquisas com perguntas e opções
// @Summary Retorna todas as pesquisas
// @Tags surveys
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entities.Survey
// @Failure 401 {object} map[string]interface{} "Token ausente ou inválido"
// @Router /surveys [get]
func (h *SurveyHandler) GetSurveys(c *fiber.Ctx) error {
	surveys, err := h.surveyUseCase.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(surveys)
}

// GetSurvey retorna uma pesquisa com perguntas e opções ordenadas
// @Summary Retorna uma pesquisa
// @Tags surveys
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da pesquisa"
// @Success 200 {object} entities.Survey
// @Failure 404 {object} map[string]interface{} "Pesquisa não encontrada"
// @Router /surveys/{id} [get]
func (h *SurveyHandler) GetSurvey(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid survey id")
	}

	survey, err := h.surveyUseCase.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(survey)
}

// CreateSurvey cria uma pesquisa com perguntas e opções
// @Summary Cria uma pesquisa
// @Tags surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param survey body usecases.SurveyInput true "Pesquisa"
// @Success 201 {object} entities.Survey
// @Failure 400 {object} map[string]interface{} "Dados inválidos"
// @Router /surveys [post]
func (h *SurveyHandler) CreateSurvey(c *fiber.Ctx) error {
	var input usecases.SurveyInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body")
	}

	survey, err := h.surveyUseCase.Create(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(survey)
}

// UpdateSurvey substitui título, descrição e perguntas da pesquisa
// @Summary Substitui uma pesquisa
// @Description Remove todas as perguntas e insere o novo conjunto. Recusado com 409 se a pesquisa já tiver respostas ou se "version" estiver desatualizada.
// @Tags surveys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID da pesquisa"
// @Param survey body usecases.SurveyInput true "Pesquisa"
// @Success 200 {object} entities.Survey
// @Failure 409 {object} map[string]interface{} "Conflito"
// @Router /surveys/{id} [put]
func (h *SurveyHandler) UpdateSurvey(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid survey id")
	}

	var input usecases.SurveyInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body")
	}

	survey, err := h.surveyUseCase.Replace(c.UserContext(), id, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(survey)
}

func (h *SurveyHandler) DeleteSurvey(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid survey id")
	}

	if err := h.surveyUseCase.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Survey deleted successfully"})
}

func (h *SurveyHandler) PublishSurvey(c *fiber.Ctx) error {
	return h.setPublished(c, true)
}

func (h *SurveyHandler) UnpublishSurvey(c *fiber.Ctx) error {
	return h.setPublished(c, false)
}

func (h *SurveyHandler) setPublished(c *fiber.Ctx, published bool) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid survey id")
	}

	setState := h.surveyUseCase.Unpublish
	if published {
		setState = h.surveyUseCase.Publish
	}

	survey, err := setState(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(survey)
}

// GetPublishedSurveys lista as pesquisas publicadas para respondentes
// @Summary Lista pesquisas publicadas
// @Tags public
// @Produce json
// @Success 200 {array} entities.Survey
// @Router /published-surveys [get]
func (h *SurveyHandler) GetPublishedSurveys(c *fiber.Ctx) error {
	surveys, err := h.surveyUseCase.ListPublished(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(surveys)
}

func (h *SurveyHandler) GetPublishedSurvey(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid survey id")
	}

	survey, err := h.surveyUseCase.GetPublished(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(survey)
}

// GetSurveyStats retorna contagem de perguntas e respostas por pesquisa
// @Summary Estatísticas de pesquisas
// @Tags surveys
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entities.SurveyStats
// @Router /survey-stats [get]
func (h *SurveyHandler) GetSurveyStats(c *fiber.Ctx) error {
	stats, err := h.surveyUseCase.Stats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
