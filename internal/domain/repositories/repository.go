package repositories

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicate       = errors.New("duplicate record")
	ErrVersionConflict = errors.New("version conflict")
	ErrHasResponses    = errors.New("survey already has responses")
)

// translate maps gorm errors onto the repository error set.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

func byDisplayOrder(db *gorm.DB) *gorm.DB {
	return db.Order("order_index ASC, id ASC")
}

// withQuestions preloads questions and options in display order.
func withQuestions(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Questions", byDisplayOrder).
		Preload("Questions.Options", byDisplayOrder)
}
