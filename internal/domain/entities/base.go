package entities

import "time"

// Timestamps holds the audit columns shared by mutable entities.
type Timestamps struct {
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;not null"`
}
