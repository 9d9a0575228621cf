package models

import "time"

// Treballador del saló. El DNI és la clau natural que referencien les reserves.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DNI     string `gorm:"size:20;uniqueIndex;not null" json:"dni"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Surname string `gorm:"size:100;not null" json:"surname"`
	Nick    string `gorm:"size:50;uniqueIndex;not null" json:"nick"`
	Telf    string `gorm:"size:20" json:"telf"`
	Email   string `gorm:"size:100;uniqueIndex;not null" json:"email"`

	PasswordHash string `gorm:"size:255;not null" json:"-"`
	IsAdmin      bool   `gorm:"default:false" json:"is_admin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
