package usecases_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PavaniTiago/survey-builder-api/internal/application/usecases"
	"github.com/PavaniTiago/survey-builder-api/internal/domain/entities"
	"github.com/PavaniTiago/survey-builder-api/internal/domain/repositories"
	"github.com/PavaniTiago/survey-builder-api/internal/domain/repositories/mocks"
	"github.com/PavaniTiago/survey-builder-api/internal/infrastructure/security"
	"github.com/PavaniTiago/survey-builder-api/internal/testutil"
	"go.uber.org/mock/gomock"
)

func newAuth(t *testing.T) (*usecases.AuthUseCase, *mocks.MockIUserRepository, *security.TokenIssuer) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIUserRepository(ctrl)
	tokens := security.NewTokenIssuer(testutil.TestSecret, time.Hour)
	return usecases.NewAuthUseCase(repo, tokens), repo, tokens
}

func TestRegister(t *testing.T) {
	auth, repo, tokens := newAuth(t)
	ctx := context.Background()

	repo.EXPECT().ExistsByUsernameOrEmail(ctx, "ana", "ana@example.com", uint(0)).Return(false, nil)
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *entities.User) error {
		if u.PasswordHash == "" || u.PasswordHash == "secret1" {
			t.Errorf("Expected a hashed password, got %q", u.PasswordHash)
		}
		u.ID = 7
		return nil
	})

	result, err := auth.Register(ctx, usecases.RegisterInput{Username: " ana ", Email: "Ana@Example.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	userID, err := tokens.Parse(result.Token)
	if err != nil || userID != 7 {
		t.Errorf("Expected token for user 7, got %d (%v)", userID, err)
	}
	if !security.CheckPassword(result.User.PasswordHash, "secret1") {
		t.Error("Stored hash does not match the password")
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	auth, repo, _ := newAuth(t)
	ctx := context.Background()

	repo.EXPECT().ExistsByUsernameOrEmail(ctx, "ana", "ana@example.com", uint(0)).Return(true, nil)

	_, err := auth.Register(ctx, usecases.RegisterInput{Username: "ana", Email: "ana@example.com", Password: "secret1"})
	if !errors.Is(err, usecases.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestRegisterRaceReportsDuplicate(t *testing.T) {
	auth, repo, _ := newAuth(t)
	ctx := context.Background()

	repo.EXPECT().ExistsByUsernameOrEmail(ctx, gomock.Any(), gomock.Any(), uint(0)).Return(false, nil)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(repositories.ErrDuplicate)

	_, err := auth.Register(ctx, usecases.RegisterInput{Username: "ana", Email: "ana@example.com", Password: "secret1"})
	if !errors.Is(err, usecases.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	auth, _, _ := newAuth(t)

	for _, input := range []usecases.RegisterInput{
		{Username: "ab", Email: "ab@example.com", Password: "secret1"},
		{Username: "ana", Email: "not-an-email", Password: "secret1"},
		{Username: "ana", Email: "ana@example.com", Password: "short"},
	} {
		if _, err := auth.Register(context.Background(), input); !errors.Is(err, usecases.ErrInvalidInput) {
			t.Errorf("Register(%+v): expected ErrInvalidInput, got %v", input, err)
		}
	}
}

func TestLogin(t *testing.T) {
	auth, repo, _ := newAuth(t)
	ctx := context.Background()

	hash, err := security.HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	user := &entities.User{ID: 3, Username: "ana", PasswordHash: hash}
	repo.EXPECT().FindByUsername(ctx, "ana").Return(user, nil).Times(2)
	repo.EXPECT().FindByUsername(ctx, "bob").Return(nil, repositories.ErrNotFound)

	result, err := auth.Login(ctx, usecases.LoginInput{Username: "ana", Password: "secret1"})
	if err != nil || result.Token == "" {
		t.Fatalf("Login failed: %v", err)
	}

	result, err = auth.Login(ctx, usecases.LoginInput{Username: "ana", Password: "wrong"})
	if !errors.Is(err, usecases.ErrUnauthorized) || result != nil {
		t.Errorf("Expected ErrUnauthorized and no token, got %v, %+v", err, result)
	}

	if _, err := auth.Login(ctx, usecases.LoginInput{Username: "bob", Password: "secret1"}); !errors.Is(err, usecases.ErrUnauthorized) {
		t.Errorf("Expected ErrUnauthorized for unknown user, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	auth, repo, tokens := newAuth(t)
	ctx := context.Background()

	valid, _, err := tokens.Issue(3)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	expired, _, err := tokens.WithClock(func() time.Time {
		return time.Now().Add(-2 * time.Hour)
	}).Issue(3)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	foreign, _, err := security.NewTokenIssuer("another-secret", time.Hour).Issue(3)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	gone, _, err := tokens.Issue(4)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	repo.EXPECT().FindByID(ctx, uint(3)).Return(&entities.User{ID: 3}, nil)
	repo.EXPECT().FindByID(ctx, uint(4)).Return(nil, repositories.ErrNotFound)

	user, err := auth.Authenticate(ctx, valid)
	if err != nil || user.ID != 3 {
		t.Fatalf("Authenticate failed: %v", err)
	}

	for name, token := range map[string]string{"expired": expired, "foreign": foreign, "garbage": "abc.def", "deleted user": gone} {
		if _, err := auth.Authenticate(ctx, token); !errors.Is(err, usecases.ErrUnauthorized) {
			t.Errorf("%s: expected ErrUnauthorized, got %v", name, err)
		}
	}
}
