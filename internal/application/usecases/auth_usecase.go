package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PavaniTiago/survey-builder-api/internal/domain/entities"
	"github.com/PavaniTiago/survey-builder-api/internal/domain/repositories"
	"github.com/PavaniTiago/survey-builder-api/internal/infrastructure/security"
)

type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResult is returned by register and login.
type AuthResult struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	User      *entities.User `json:"user"`
}

// AuthUseCase cuida de cadastro, login e validação de tokens
type AuthUseCase struct {
	userRepo repositories.IUserRepository
	tokens   *security.TokenIssuer
}

func NewAuthUseCase(userRepo repositories.IUserRepository, tokens *security.TokenIssuer) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := validateInput(input); err != nil {
		return nil, err
	}

	taken, err := uc.userRepo.ExistsByUsernameOrEmail(ctx, input.Username, input.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, newError(ErrInvalidInput, "Username or email already exists")
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entities.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, newError(ErrInvalidInput, "Username or email already exists")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return uc.issue(user)
}

// Login never tells the caller which of username or password was wrong.
func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByUsername(ctx, strings.TrimSpace(input.Username))
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, newError(ErrUnauthorized, "Invalid username or password")
	}
	if err != nil {
		return nil, err
	}

	if !security.CheckPassword(user.PasswordHash, input.Password) {
		return nil, newError(ErrUnauthorized, "Invalid username or password")
	}

	return uc.issue(user)
}

// Authenticate resolves a bearer token to its user.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	userID, err := uc.tokens.Parse(token)
	if err != nil {
		return nil, newError(ErrUnauthorized, "Token is invalid or expired")
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, newError(ErrUnauthorized, "User not found")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *AuthUseCase) issue(user *entities.User) (*AuthResult, error) {
	token, expiresAt, err := uc.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}
