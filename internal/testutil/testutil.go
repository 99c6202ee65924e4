// Package testutil provides database fixtures shared by package tests.
package testutil

import (
	"fmt"
	"io"
	"testing"

	"github.com/PavaniTiago/survey-builder-api/internal/config"
	"github.com/PavaniTiago/survey-builder-api/internal/domain/entities"
	"github.com/PavaniTiago/survey-builder-api/internal/infrastructure/database"
	"github.com/PavaniTiago/survey-builder-api/internal/infrastructure/database/migrations"
	"github.com/PavaniTiago/survey-builder-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/survey-builder-api/internal/infrastructure/security"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestSecret signs tokens in tests.
const TestSecret = "test-secret"

// NewDB returns a migrated in-memory SQLite database private to the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger.SetOutput(io.Discard)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := database.Open(config.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := migrations.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	if err := migrations.AddIndexes(db); err != nil {
		t.Fatalf("Failed to add indexes: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// CreateUser inserts a user with the given password and returns it.
func CreateUser(t *testing.T, db *gorm.DB, username, password string, admin bool) *entities.User {
	t.Helper()

	hash, err := security.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user := &entities.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		IsAdmin:      admin,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", username, err)
	}
	return user
}

// CreateSurvey inserts a survey with one question of each type. The choice
// questions get the options listed; the last option of the single-choice
// question is "Other".
func CreateSurvey(t *testing.T, db *gorm.DB, title string, published bool) *entities.Survey {
	t.Helper()

	survey := &entities.Survey{
		Title:       title,
		Description: "fixture",
		IsPublished: published,
		Version:     1,
		Questions: []entities.Question{
			{
				Text:  "Favourite colour?",
				Type:  entities.QuestionSingleChoice,
				Order: 0,
				Options: []entities.Option{
					{Text: "Red", Order: 0},
					{Text: "Blue", Order: 1},
					{Text: "Other", Order: 2},
				},
			},
			{
				Text:  "Which pets do you have?",
				Type:  entities.QuestionMultipleChoice,
				Order: 1,
				Options: []entities.Option{
					{Text: "Cat", Order: 0},
					{Text: "Dog", Order: 1},
					{Text: "Something else", Order: 2},
				},
			},
			{
				Text:  "Anything to add?",
				Type:  entities.QuestionFreeText,
				Order: 2,
			},
		},
	}
	if err := db.Create(survey).Error; err != nil {
		t.Fatalf("Failed to create survey: %v", err)
	}
	return survey
}

// Count returns the number of rows of model matching the optional condition.
func Count(t *testing.T, db *gorm.DB, model any, query string, args ...any) int64 {
	t.Helper()

	var n int64
	q := db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}
