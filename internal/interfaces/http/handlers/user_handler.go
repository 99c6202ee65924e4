package handlers

import (
	"strconv"

	"github.com/PavaniTiago/survey-builder-api/internal/application/usecases"
	"github.com/PavaniTiago/survey-builder-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userUseCase *usecases.UserUseCase
}

func NewUserHandler(userUseCase *usecases.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

// GetUsers lista usuários (somente administradores)
// @Summary Lista usuários
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Página atual" default(1)
// @Param limit query int false "Itens por página" default(50)
// @Success 200 {object} map[string]interface{} "Lista de usuários"
// @Failure 403 {object} map[string]interface{} "Acesso restrito a administradores"
// @Router /users [get]
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return badRequest(c, "Invalid 'page' parameter")
	}

	limit, err := strconv.Atoi(c.Query("limit", "50"))
	if err != nil || limit < 1 || limit > 500 {
		return badRequest(c, "Invalid 'limit' parameter")
	}

	users, total, err := h.userUseCase.GetUsers(c.UserContext(), middleware.CurrentUser(c), page, limit)
	if err != nil {
		return respondError(c, err)
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)

	return c.JSON(fiber.Map{
		"users":      users,
		"page":       page,
		"limit":      limit,
		"total":      total,
		"totalPages": totalPages,
	})
}

func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid user id")
	}

	user, err := h.userUseCase.GetUser(c.UserContext(), middleware.CurrentUser(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// UpdateUser atualiza dados do próprio usuário; administradores podem alterar qualquer conta
// @Summary Atualiza um usuário
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do usuário"
// @Param user body usecases.UpdateUserInput true "Campos a alterar"
// @Success 200 {object} entities.User
// @Failure 403 {object} map[string]interface{} "Sem permissão"
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid user id")
	}

	var input usecases.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.userUseCase.UpdateUser(c.UserContext(), middleware.CurrentUser(c), id, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "Invalid user id")
	}

	if err := h.userUseCase.DeleteUser(c.UserContext(), middleware.CurrentUser(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
