package reservation

import "github.com/ynz20/AppPerruqueriaApi/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ParseStatus tanca el tipus: qualsevol altra cadena és invàlida.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusCompleted, StatusCancelled:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// IsTerminal: completed i cancelled no admeten més transicions d'estat.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Blocks indica si una reserva en aquest estat ocupa la seva franja.
// Les cancel·lades no bloquegen.
func (s Status) Blocks() bool {
	return s == StatusPending || s == StatusCompleted
}

// ===============================
// Transitions
// ===============================

func CanTransition(from, to Status) error {
	if from.IsTerminal() {
		return httperr.ErrBusiness("invalid_state")
	}
	if to == StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
