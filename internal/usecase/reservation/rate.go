package reservation

import (
	"context"

	"github.com/ynz20/AppPerruqueriaApi/internal/audit"
	domain "github.com/ynz20/AppPerruqueriaApi/internal/domain/reservation"
	"github.com/ynz20/AppPerruqueriaApi/internal/models"
)

type RateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	// requireCompleted ve de configuració; amb false es manté el
	// comportament històric de poder valorar qualsevol reserva.
	requireCompleted bool
}

func NewRateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
	requireCompleted bool,
) *RateReservation {
	return &RateReservation{
		repo:             repo,
		audit:            audit,
		requireCompleted: requireCompleted,
	}
}

func (uc *RateReservation) Execute(
	ctx context.Context,
	reservationID uint,
	rating int,
	comment *string,
) (*models.Reservation, error) {

	r, err := uc.repo.FindByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if err := domain.Rate(r, rating, comment, uc.requireCompleted); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserDNI:  &r.WorkerDNI,
		Action:   "reservation_rated",
		Entity:   "reservation",
		EntityID: &r.ID,
		Metadata: map[string]any{"rating": rating},
	})

	return r, nil
}
