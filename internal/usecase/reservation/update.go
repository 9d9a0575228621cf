package reservation

import (
	"context"

	"github.com/ynz20/AppPerruqueriaApi/internal/audit"
	domain "github.com/ynz20/AppPerruqueriaApi/internal/domain/reservation"
	"github.com/ynz20/AppPerruqueriaApi/internal/httperr"
	"github.com/ynz20/AppPerruqueriaApi/internal/models"
)

type UpdateReservationInput struct {
	Date      string
	Hour      string
	WorkerDNI string
	ClientDNI string
	ServiceID uint
	ShiftID   *uint
	Status    string
}

// UpdateReservation reubica o reescriu una reserva sencera. Torna a passar
// el control de conflictes excloent la mateixa reserva de l'escaneig.
type UpdateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	locks *SlotLocks
}

func NewUpdateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	locks *SlotLocks,
) *UpdateReservation {
	return &UpdateReservation{
		repo:  repo,
		audit: audit,
		locks: locks,
	}
}

func (uc *UpdateReservation) Execute(
	ctx context.Context,
	id uint,
	in UpdateReservationInput,
) (*models.Reservation, error) {

	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	status, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	candidate, err := domain.NewSlot(in.Hour, service.Estimation)
	if err != nil {
		return nil, err
	}

	unlock := uc.locks.Lock(in.WorkerDNI, date)
	defer unlock()

	var updated *models.Reservation

	err = uc.repo.WithTx(ctx, func(tx domain.Repository) error {

		r, err := tx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if status.Blocks() {
			conflict, err := hasConflict(ctx, tx, in.WorkerDNI, date, candidate, r.ID)
			if err != nil {
				return err
			}
			if conflict {
				return httperr.ErrBusiness("slot_occupied")
			}
		}

		r.Date = date
		r.Hour = in.Hour
		r.WorkerDNI = in.WorkerDNI
		r.ClientDNI = in.ClientDNI
		r.ServiceID = service.ID
		r.ShiftID = in.ShiftID
		r.Status = string(status)

		if err := tx.Update(ctx, r); err != nil {
			return err
		}

		updated = r
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserDNI:  &updated.WorkerDNI,
		Action:   "reservation_updated",
		Entity:   "reservation",
		EntityID: &updated.ID,
	})

	return updated, nil
}
