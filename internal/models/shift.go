package models

import "time"

// Torn de feina. EndTime a NULL vol dir torn obert; com a màxim n'hi ha un.
type Shift struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Date      string     `gorm:"size:10" json:"date"`

	Reservations []Reservation `json:"reservations,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
