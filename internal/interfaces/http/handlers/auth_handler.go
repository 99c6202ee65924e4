package handlers

import (
	"github.com/PavaniTiago/survey-builder-api/internal/application/usecases"
	"github.com/PavaniTiago/survey-builder-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authUseCase *usecases.AuthUseCase
}

func NewAuthHandler(authUseCase *usecases.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// Register cria uma conta e devolve um token
// @Summary Cadastro
// @Tags auth
// @Accept json
// @Produce json
// @Param user body usecases.RegisterInput true "Usuário"
// @Success 201 {object} usecases.AuthResult
// @Failure 400 {object} map[string]interface{} "Usuário ou email já existe"
// @Router /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input usecases.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body")
	}

	result, err := h.authUseCase.Register(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// Login valida as credenciais e devolve um token
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body usecases.LoginInput true "Credenciais"
// @Success 200 {object} usecases.AuthResult
// @Failure 401 {object} map[string]interface{} "Credenciais inválidas"
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input usecases.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid request body")
	}

	result, err := h.authUseCase.Login(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentUser(c))
}
