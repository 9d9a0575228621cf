package reservation

import (
	"github.com/ynz20/AppPerruqueriaApi/internal/httperr"
	"github.com/ynz20/AppPerruqueriaApi/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Complete marca la reserva com a feta i la imputa al torn obert.
func Complete(r *models.Reservation, shiftID uint) error {
	if err := CanTransition(Status(r.Status), StatusCompleted); err != nil {
		return err
	}

	r.Status = string(StatusCompleted)
	r.ShiftID = &shiftID
	return nil
}

func Cancel(r *models.Reservation) error {
	if err := CanTransition(Status(r.Status), StatusCancelled); err != nil {
		return err
	}

	r.Status = string(StatusCancelled)
	return nil
}

// Rate valora la reserva. requireCompleted és política configurable: per
// defecte només es poden valorar reserves completades.
func Rate(r *models.Reservation, rating int, comment *string, requireCompleted bool) error {
	if rating < 1 || rating > 5 {
		return httperr.ErrBusiness("invalid_rating")
	}
	if requireCompleted && Status(r.Status) != StatusCompleted {
		return httperr.ErrBusiness("reservation_not_completed")
	}

	r.Rating = &rating
	r.Comment = comment
	return nil
}
