package reservation

import (
	"context"

	"github.com/ynz20/AppPerruqueriaApi/internal/audit"
	domain "github.com/ynz20/AppPerruqueriaApi/internal/domain/reservation"
	"github.com/ynz20/AppPerruqueriaApi/internal/httperr"
	"github.com/ynz20/AppPerruqueriaApi/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	Date      string
	Hour      string
	WorkerDNI string
	ClientDNI string
	ServiceID uint

	// Opcionals: l'estat inicial per defecte és pending i el torn només
	// s'assigna en completar.
	ShiftID *uint
	Status  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	locks *SlotLocks
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	locks *SlotLocks,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
		locks: locks,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	// 1. Data i hora ben formades
	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	status := domain.InitialStatus()
	if in.Status != "" {
		status, err = domain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
	}

	// 2. Servei: sense la duració no hi ha interval candidat
	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	// 3. Franja candidata [hour, hour + estimation)
	candidate, err := domain.NewSlot(in.Hour, service.Estimation)
	if err != nil {
		return nil, err
	}

	// 4. Check-and-insert serialitzat per (treballador, dia)
	unlock := uc.locks.Lock(in.WorkerDNI, date)
	defer unlock()

	var created *models.Reservation

	err = uc.repo.WithTx(ctx, func(tx domain.Repository) error {

		conflict, err := hasConflict(ctx, tx, in.WorkerDNI, date, candidate, 0)
		if err != nil {
			return err
		}
		if conflict {
			return httperr.ErrBusiness("slot_occupied")
		}

		r := &models.Reservation{
			Date:      date,
			Hour:      in.Hour,
			WorkerDNI: in.WorkerDNI,
			ClientDNI: in.ClientDNI,
			ServiceID: service.ID,
			ShiftID:   in.ShiftID,
			Status:    string(status),
		}

		if err := tx.Create(ctx, r); err != nil {
			return err
		}

		created = r
		return nil
	})

	if err != nil {
		if httperr.IsBusiness(err, "slot_occupied") {
			uc.audit.Dispatch(audit.Event{
				UserDNI: &in.WorkerDNI,
				Action:  "reservation_conflict",
				Entity:  "reservation",
				Metadata: map[string]any{
					"date": date,
					"hour": in.Hour,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserDNI:  &in.WorkerDNI,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &created.ID,
	})

	return created, nil
}
