package entities

// User is an account that can author surveys.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey;column:id"`
	Username     string `json:"username" gorm:"column:username;size:64;not null;uniqueIndex"`
	Email        string `json:"email" gorm:"column:email;size:255;not null;uniqueIndex"`
	PasswordHash string `json:"-" gorm:"column:password_hash;size:255;not null"`
	IsAdmin      bool   `json:"is_admin" gorm:"column:is_admin;not null;default:false"`
	Timestamps
}
