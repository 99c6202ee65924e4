package migrations

import (
	"github.com/PavaniTiago/survey-builder-api/internal/domain/entities"

	"gorm.io/gorm"
)

// Migrate creates or updates every table of the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.User{},
		&entities.Survey{},
		&entities.Question{},
		&entities.Option{},
		&entities.SurveyResponse{},
		&entities.QuestionResponse{},
	)
}
