package repositories

import (
	"context"
	"fmt"

	"github.com/PavaniTiago/survey-builder-api/internal/domain/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResponseRepository interface {
	Create(ctx context.Context, response *entities.SurveyResponse) error
	ListBySurvey(ctx context.Context, surveyID uint) ([]entities.SurveyResponse, error)
	Delete(ctx context.Context, id uint) error
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db}
}

// Create stores the response header and all of its answer rows atomically.
func (r *responseRepository) Create(ctx context.Context, response *entities.SurveyResponse) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(response).Error; err != nil {
			return fmt.Errorf("insert survey response: %w", err)
		}

		if len(response.QuestionResponses) == 0 {
			return nil
		}
		for i := range response.QuestionResponses {
			response.QuestionResponses[i].SurveyResponseID = response.ID
		}
		if err := tx.CreateInBatches(&response.QuestionResponses, 100).Error; err != nil {
			return fmt.Errorf("insert question responses: %w", err)
		}
		return nil
	})
}

// ListBySurvey returns responses oldest first with their answer rows.
func (r *responseRepository) ListBySurvey(ctx context.Context, surveyID uint) ([]entities.SurveyResponse, error) {
	responses := []entities.SurveyResponse{}
	err := r.db.WithContext(ctx).
		Preload("QuestionResponses", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("survey_id = ?", surveyID).
		Order("created_at ASC, id ASC").
		Find(&responses).Error
	if err != nil {
		return nil, fmt.Errorf("list survey responses: %w", err)
	}
	return responses, nil
}

func (r *responseRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("survey_response_id = ?", id).Delete(&entities.QuestionResponse{}).Error; err != nil {
			return fmt.Errorf("delete question responses: %w", err)
		}

		res := tx.Delete(&entities.SurveyResponse{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete survey response: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
