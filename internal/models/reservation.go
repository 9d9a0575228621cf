package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Dia (2006-01-02) i hora d'inici (15:04). La finestra ocupada és
	// [hour, hour + service.estimation).
	Date string `gorm:"size:10;index:idx_reservations_worker_date" json:"date"`
	Hour string `gorm:"size:8" json:"hour"`

	WorkerDNI string `gorm:"size:20;index:idx_reservations_worker_date" json:"worker_dni"`
	Worker    User   `gorm:"foreignKey:WorkerDNI;references:DNI;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"worker"`

	ClientDNI string `gorm:"size:20;index" json:"client_dni"`
	Client    Client `gorm:"foreignKey:ClientDNI;references:DNI;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Només s'assigna quan la reserva passa a "completed".
	ShiftID *uint  `json:"shift_id"`
	Shift   *Shift `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"shift,omitempty"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Rating  *int    `json:"rating"`
	Comment *string `gorm:"size:255" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
