package migrations

import (
	"fmt"

	"gorm.io/gorm"
)

// The statements are valid for both Postgres and SQLite.
var indexes = []string{
	// Display order lookups
	"CREATE INDEX IF NOT EXISTS idx_questions_survey_order ON questions (survey_id, order_index)",
	"CREATE INDEX IF NOT EXISTS idx_options_question_order ON options (question_id, order_index)",

	// Published listing
	"CREATE INDEX IF NOT EXISTS idx_surveys_published_created ON surveys (created_at) WHERE is_published = true",

	// Reporting joins
	"CREATE INDEX IF NOT EXISTS idx_survey_responses_survey_created ON survey_responses (survey_id, created_at)",
	"CREATE INDEX IF NOT EXISTS idx_question_responses_response_question ON question_responses (survey_response_id, question_id)",
}

// AddIndexes adds the composite indexes AutoMigrate does not derive from tags.
func AddIndexes(db *gorm.DB) error {
	for _, idx := range indexes {
		if err := db.Exec(idx).Error; err != nil {
			return fmt.Errorf("%s: %w", idx, err)
		}
	}
	return nil
}
