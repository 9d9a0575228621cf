package reservation

import (
	"time"

	"github.com/ynz20/AppPerruqueriaApi/internal/httperr"
)

// Slot és la franja semioberta [Start, End) en minuts des de mitjanit.
type Slot struct {
	Start int
	End   int
}

// NewSlot construeix la franja d'una reserva a partir de l'hora d'inici i la
// duració estimada del servei.
func NewSlot(hour string, durationMin int) (Slot, error) {
	start, err := ParseHour(hour)
	if err != nil {
		return Slot{}, err
	}
	if durationMin < 0 {
		return Slot{}, httperr.ErrBusiness("invalid_duration")
	}
	return Slot{Start: start, End: start + durationMin}, nil
}

// Overlaps: solapament d'intervals semioberts. Els extrems que es toquen
// (una reserva acaba a les 10:00 i l'altra comença a les 10:00) NO xoquen.
func (s Slot) Overlaps(o Slot) bool {
	return s.Start < o.End && s.End > o.Start
}

// ParseHour accepta "15:04" i "15:04:05" (la columna hour de sempre) i
// retorna minuts des de mitjanit.
func ParseHour(hour string) (int, error) {
	t, err := time.Parse("15:04", hour)
	if err != nil {
		t, err = time.Parse("15:04:05", hour)
		if err != nil {
			return 0, httperr.ErrBusiness("invalid_hour")
		}
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ParseDate valida el dia de calendari (2006-01-02) i el retorna normalitzat.
func ParseDate(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_date")
	}
	return t.Format("2006-01-02"), nil
}
