package handlers

import (
	"github.com/PavaniTiago/survey-builder-api/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
)

type SubmissionHandler struct {
	submissionUseCase *usecases.SubmissionUseCase
}

func NewSubmissionHandler(submissionUseCase *usecases.SubmissionUseCase) *SubmissionHandler {
	return &SubmissionHandler{
		submissionUseCase: submissionUseCase,
	}
}

// SubmitSurvey grava uma resposta anônima
// @Summary Envia respostas de uma pesquisa publicada
// @Description Entradas malformadas são descartadas individualmente; a submissão é gravada em uma única transação.
// @Tags public
// @Accept json
// @Produce json
// @Param submission body usecases.SubmissionInput true "Respostas"
// @Success 200 {object} map[string]interface{} "survey_response_id"
// @Failure 400 {object} map[string]interface{} "Pesquisa não publicada"
// @Failure 404 {object} map[string]interface{} "Pesquisa não encontrada"
// @Router /submit [post]
func (h *SubmissionHandler) SubmitSurvey(c *fiber.Ctx) error {
	var input usecases.SubmissionInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body")
	}

	response, err := h.submissionUseCase.Submit(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message":            "Survey submitted successfully",
		"survey_response_id": response.ID,
	})
}
