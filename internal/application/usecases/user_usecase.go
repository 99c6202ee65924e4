package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PavaniTiago/survey-builder-api/internal/domain/entities"
	"github.com/PavaniTiago/survey-builder-api/internal/domain/repositories"
	"github.com/PavaniTiago/survey-builder-api/internal/infrastructure/security"
)

// UpdateUserInput holds the fields a caller wants to change; nil means keep.
type UpdateUserInput struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=64"`
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Password *string `json:"password" validate:"omitempty,min=6,max=72"`
	IsAdmin  *bool   `json:"is_admin"`
}

type UserUseCase struct {
	userRepo repositories.IUserRepository
}

func NewUserUseCase(userRepo repositories.IUserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

// GetUsers lists accounts; admins only.
func (uc *UserUseCase) GetUsers(ctx context.Context, actor *entities.User, page, limit int) ([]entities.User, int64, error) {
	if !actor.IsAdmin {
		return nil, 0, newError(ErrForbidden, "Admin access required")
	}
	return uc.userRepo.List(ctx, page, limit)
}

func (uc *UserUseCase) GetUser(ctx context.Context, actor *entities.User, id uint) (*entities.User, error) {
	if !canAccess(actor, id) {
		return nil, newError(ErrForbidden, "You can only access your own account")
	}
	return uc.find(ctx, id)
}

// UpdateUser applies a partial update. Only admins may change is_admin.
func (uc *UserUseCase) UpdateUser(ctx context.Context, actor *entities.User, id uint, input UpdateUserInput) (*entities.User, error) {
	if !canAccess(actor, id) {
		return nil, newError(ErrForbidden, "You can only update your own account")
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	user, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.IsAdmin != nil && *input.IsAdmin != user.IsAdmin {
		if !actor.IsAdmin {
			return nil, newError(ErrForbidden, "Only admins can change admin status")
		}
		user.IsAdmin = *input.IsAdmin
	}

	username, email := user.Username, user.Email
	if input.Username != nil {
		username = strings.TrimSpace(*input.Username)
	}
	if input.Email != nil {
		email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if username != user.Username || email != user.Email {
		taken, err := uc.userRepo.ExistsByUsernameOrEmail(ctx, username, email, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, newError(ErrInvalidInput, "Username or email already exists")
		}
		user.Username, user.Email = username, email
	}

	if input.Password != nil {
		hash, err := security.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repositories.ErrDuplicate):
			return nil, newError(ErrInvalidInput, "Username or email already exists")
		case errors.Is(err, repositories.ErrNotFound):
			return nil, newError(ErrNotFound, "User not found")
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// DeleteUser removes another account; admins only.
func (uc *UserUseCase) DeleteUser(ctx context.Context, actor *entities.User, id uint) error {
	if !actor.IsAdmin {
		return newError(ErrForbidden, "Admin access required")
	}
	if actor.ID == id {
		return newError(ErrForbidden, "You cannot delete your own account")
	}

	err := uc.userRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return newError(ErrNotFound, "User not found")
	}
	return err
}

func (uc *UserUseCase) find(ctx context.Context, id uint) (*entities.User, error) {
	user, err := uc.userRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, newError(ErrNotFound, "User not found")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func canAccess(actor *entities.User, id uint) bool {
	return actor.IsAdmin || actor.ID == id
}
