package models

import "time"

// Client sense login, identificat pel DNI (clau primària natural)
type Client struct {
	DNI string `gorm:"primaryKey;size:20" json:"dni"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Surname string `gorm:"size:100;not null" json:"surname"`
	Telf    string `gorm:"size:20" json:"telf"`
	Email   string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
