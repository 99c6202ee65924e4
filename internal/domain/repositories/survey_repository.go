package repositories

import (
	"context"
	"fmt"

	"github.com/PavaniTiago/survey-builder-api/internal/domain/entities"
	"github.com/PavaniTiago/survey-builder-api/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SurveyRepository interface {
	List(ctx context.Context, publishedOnly bool) ([]entities.Survey, error)
	FindByID(ctx context.Context, id uint) (*entities.Survey, error)
	Create(ctx context.Context, survey *entities.Survey) error
	Replace(ctx context.Context, survey *entities.Survey, expectedVersion int) error
	Delete(ctx context.Context, id uint) error
	SetPublished(ctx context.Context, id uint, published bool) (*entities.Survey, error)
	Stats(ctx context.Context) ([]entities.SurveyStats, error)
}

type surveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db}
}

// List returns surveys newest first, with questions and options.
func (r *surveyRepository) List(ctx context.Context, publishedOnly bool) ([]entities.Survey, error) {
	surveys := []entities.Survey{}

	query := withQuestions(r.db.WithContext(ctx).Model(&entities.Survey{}))
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	if err := query.Order("created_at DESC, id DESC").Find(&surveys).Error; err != nil {
		return nil, fmt.Errorf("list surveys: %w", err)
	}
	return surveys, nil
}

func (r *surveyRepository) FindByID(ctx context.Context, id uint) (*entities.Survey, error) {
	var survey entities.Survey
	if err := withQuestions(r.db.WithContext(ctx)).First(&survey, id).Error; err != nil {
		return nil, translate(err)
	}
	return &survey, nil
}

// Create inserts the survey, then its questions, then each question's
// options, all in one transaction. Generated ids are written back.
func (r *surveyRepository) Create(ctx context.Context, survey *entities.Survey) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(survey).Error; err != nil {
			return fmt.Errorf("insert survey: %w", err)
		}
		return insertQuestions(tx, survey.ID, survey.Questions)
	})
}

// Replace overwrites title and description and swaps the whole question set.
// It fails with ErrVersionConflict when expectedVersion is set and stale, and
// with ErrHasResponses when responses would be orphaned.
func (r *surveyRepository) Replace(ctx context.Context, survey *entities.Survey, expectedVersion int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current entities.Survey
		if err := tx.First(&current, survey.ID).Error; err != nil {
			return translate(err)
		}

		if expectedVersion != 0 && expectedVersion != current.Version {
			return ErrVersionConflict
		}

		var responses int64
		if err := tx.Model(&entities.SurveyResponse{}).Where("survey_id = ?", survey.ID).Count(&responses).Error; err != nil {
			return fmt.Errorf("count responses: %w", err)
		}
		if responses > 0 {
			return ErrHasResponses
		}

		if err := deleteQuestions(tx, survey.ID); err != nil {
			return err
		}

		survey.Version = current.Version + 1
		survey.IsPublished = current.IsPublished
		survey.CreatedAt = current.CreatedAt
		survey.UpdatedAt = utils.NextAfter(current.UpdatedAt)

		res := tx.Model(&entities.Survey{}).
			Where("id = ? AND version = ?", survey.ID, current.Version).
			UpdateColumns(map[string]any{
				"title":       survey.Title,
				"description": survey.Description,
				"version":     survey.Version,
				"updated_at":  survey.UpdatedAt,
			})
		if res.Error != nil {
			return fmt.Errorf("update survey: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrVersionConflict
		}

		return insertQuestions(tx, survey.ID, survey.Questions)
	})
}

// Delete removes the survey with its questions, options, responses and
// answer rows. Children go first so no engine-level cascade is required.
func (r *surveyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		responseIDs := tx.Model(&entities.SurveyResponse{}).Select("id").Where("survey_id = ?", id)
		if err := tx.Where("survey_response_id IN (?)", responseIDs).Delete(&entities.QuestionResponse{}).Error; err != nil {
			return fmt.Errorf("delete question responses: %w", err)
		}
		if err := tx.Where("survey_id = ?", id).Delete(&entities.SurveyResponse{}).Error; err != nil {
			return fmt.Errorf("delete survey responses: %w", err)
		}
		if err := deleteQuestions(tx, id); err != nil {
			return err
		}

		res := tx.Delete(&entities.Survey{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete survey: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// SetPublished flips the flag and moves updated_at strictly forward.
func (r *surveyRepository) SetPublished(ctx context.Context, id uint, published bool) (*entities.Survey, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current entities.Survey
		if err := tx.First(&current, id).Error; err != nil {
			return translate(err)
		}

		return tx.Model(&entities.Survey{}).
			Where("id = ?", id).
			UpdateColumns(map[string]any{
				"is_published": published,
				"updated_at":   utils.NextAfter(current.UpdatedAt),
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// Stats counts questions and responses for every survey in one query.
func (r *surveyRepository) Stats(ctx context.Context) ([]entities.SurveyStats, error) {
	stats := []entities.SurveyStats{}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			s.id AS survey_id,
			s.title,
			s.is_published,
			(SELECT COUNT(*) FROM questions q WHERE q.survey_id = s.id) AS question_count,
			(SELECT COUNT(*) FROM survey_responses sr WHERE sr.survey_id = s.id) AS response_count
		FROM surveys s
		ORDER BY s.id`).
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("survey stats: %w", err)
	}
	return stats, nil
}

func deleteQuestions(tx *gorm.DB, surveyID uint) error {
	questionIDs := tx.Model(&entities.Question{}).Select("id").Where("survey_id = ?", surveyID)
	if err := tx.Where("question_id IN (?)", questionIDs).Delete(&entities.Option{}).Error; err != nil {
		return fmt.Errorf("delete options: %w", err)
	}
	if err := tx.Where("survey_id = ?", surveyID).Delete(&entities.Question{}).Error; err != nil {
		return fmt.Errorf("delete questions: %w", err)
	}
	return nil
}

// insertQuestions writes questions one by one so each id is known before
// its options are inserted.
func insertQuestions(tx *gorm.DB, surveyID uint, questions []entities.Question) error {
	for i := range questions {
		q := &questions[i]
		q.ID = 0
		q.SurveyID = surveyID
		if err := tx.Omit(clause.Associations).Create(q).Error; err != nil {
			return fmt.Errorf("insert question %d: %w", i, err)
		}

		if len(q.Options) == 0 {
			continue
		}
		for j := range q.Options {
			q.Options[j].ID = 0
			q.Options[j].QuestionID = q.ID
		}
		if err := tx.Create(&q.Options).Error; err != nil {
			return fmt.Errorf("insert options of question %d: %w", i, err)
		}
	}
	return nil
}
