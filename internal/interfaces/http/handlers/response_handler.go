package handlers

import (
	"github.com/PavaniTiago/survey-builder-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

type ResponseHandler struct {
	responseUseCase *usecases.ResponseUseCase
}

func NewResponseHandler(responseUseCase *usecases.ResponseUseCase) *ResponseHandler {
	return &ResponseHandler{
		responseUseCase: responseUseCase,
	}
}

// GetSurveyResponses retorna as respostas de uma pesquisa com o texto de cada resposta resolvido
// @Summary Respostas de uma pesquisa
// @Tags responses
// @Produce json
// @Security BearerAuth
// @Param surveyId path int true "ID da pesquisa"
// @Success 200 {array} usecases.ResponseReport
// @Failure 404 {object} map[string]interface{} "Pesquisa não encontrada"
// @Router /survey-responses/{surveyId} [get]
func (h *ResponseHandler) GetSurveyResponses(c *fiber.Ctx) error {
	surveyID, ok := parseID(c, "surveyId")
	if !ok {
		return badRequest(c, "Invalid survey id")
	}

	reports, err := h.responseUseCase.ListBySurvey(c.UserContext(), surveyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(reports)
}

func (h *ResponseHandler) DeleteSurveyResponse(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid survey response id")
	}

	if err := h.responseUseCase.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Survey response deleted successfully"})
}
