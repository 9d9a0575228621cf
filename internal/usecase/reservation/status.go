package reservation

import (
	"context"

	"github.com/ynz20/AppPerruqueriaApi/internal/audit"
	domain "github.com/ynz20/AppPerruqueriaApi/internal/domain/reservation"
	"github.com/ynz20/AppPerruqueriaApi/internal/models"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute aplica el pas de pending a completed o cancelled. Completar exigeix
// un torn obert; la reserva s'hi imputa en el mateix pas.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	reservationID uint,
	newStatus string,
) (*models.Reservation, error) {

	target, err := domain.ParseStatus(newStatus)
	if err != nil {
		return nil, err
	}

	var updated *models.Reservation

	err = uc.repo.WithTx(ctx, func(tx domain.Repository) error {

		r, err := tx.FindByID(ctx, reservationID)
		if err != nil {
			return err
		}

		switch target {
		case domain.StatusCompleted:
			shift, err := tx.FindOpenShift(ctx)
			if err != nil {
				// sense torn obert no es pot completar; cap mutació
				return err
			}
			if err := domain.Complete(r, shift.ID); err != nil {
				return err
			}

		case domain.StatusCancelled:
			if err := domain.Cancel(r); err != nil {
				return err
			}

		default:
			return domain.CanTransition(domain.Status(r.Status), target)
		}

		if err := tx.Update(ctx, r); err != nil {
			return err
		}

		updated = r
		return nil
	})

	if err != nil {
		return nil, err
	}

	action := "reservation_cancelled"
	if target == domain.StatusCompleted {
		action = "reservation_completed"
	}
	uc.audit.Dispatch(audit.Event{
		UserDNI:  &updated.WorkerDNI,
		Action:   action,
		Entity:   "reservation",
		EntityID: &updated.ID,
	})

	return updated, nil
}
