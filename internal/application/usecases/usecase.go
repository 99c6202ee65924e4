package usecases

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/PavaniTiago/survey-builder-api/internal/domain/repositories"
	"github.com/PavaniTiago/survey-builder-api/internal/infrastructure/security"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Error kinds understood by the HTTP layer.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// Error carries a client-facing message together with its kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// UseCases agrupa todos os casos de uso da aplicação
type UseCases struct {
	Surveys     *SurveyUseCase
	Submissions *SubmissionUseCase
	Responses   *ResponseUseCase
	Auth        *AuthUseCase
	Users       *UserUseCase
}

// NewUseCases monta os casos de uso sobre os repositórios gorm
func NewUseCases(db *gorm.DB, tokens *security.TokenIssuer) *UseCases {
	surveyRepo := repositories.NewSurveyRepository(db)
	responseRepo := repositories.NewResponseRepository(db)
	userRepo := repositories.NewUserRepository(db)

	return &UseCases{
		Surveys:     NewSurveyUseCase(surveyRepo),
		Submissions: NewSubmissionUseCase(surveyRepo, responseRepo),
		Responses:   NewResponseUseCase(surveyRepo, responseRepo),
		Auth:        NewAuthUseCase(userRepo, tokens),
		Users:       NewUserUseCase(userRepo),
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json names so messages match the request body
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInput runs struct validation and reports the first violation.
func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return newError(ErrInvalidInput, "invalid input")
	}

	fe := fieldErrs[0]
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return newError(ErrInvalidInput, "%s is required", field)
	case "min", "max":
		return newError(ErrInvalidInput, "%s must satisfy %s=%s", field, fe.Tag(), fe.Param())
	case "oneof":
		return newError(ErrInvalidInput, "%s must be one of %s", field, fe.Param())
	case "email":
		return newError(ErrInvalidInput, "%s must be a valid email address", field)
	default:
		return newError(ErrInvalidInput, "%s is invalid", field)
	}
}
