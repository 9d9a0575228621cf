package reservation

import (
	"context"

	domain "github.com/ynz20/AppPerruqueriaApi/internal/domain/reservation"
	"github.com/ynz20/AppPerruqueriaApi/internal/dto"
	"github.com/ynz20/AppPerruqueriaApi/internal/models"
)

// ListReservations resol les lectures filtrades per client i per
// treballador, amb les dades de presentació ja creuades.
type ListReservations struct {
	repo domain.Repository
}

func NewListReservations(repo domain.Repository) *ListReservations {
	return &ListReservations{repo: repo}
}

func (uc *ListReservations) ByClient(
	ctx context.Context,
	clientDNI string,
) ([]dto.ReservationListDTO, error) {

	rs, err := uc.repo.FindByClient(ctx, clientDNI)
	if err != nil {
		return nil, err
	}
	return toListDTOs(rs), nil
}

func (uc *ListReservations) ByWorker(
	ctx context.Context,
	workerDNI string,
) ([]dto.ReservationListDTO, error) {

	rs, err := uc.repo.FindByWorker(ctx, workerDNI)
	if err != nil {
		return nil, err
	}
	return toListDTOs(rs), nil
}

func toListDTOs(rs []models.Reservation) []dto.ReservationListDTO {
	out := make([]dto.ReservationListDTO, 0, len(rs))
	for _, r := range rs {
		out = append(out, dto.ReservationListDTO{
			ID:          r.ID,
			Date:        r.Date,
			Hour:        r.Hour,
			Status:      r.Status,
			WorkerDNI:   r.WorkerDNI,
			WorkerName:  r.Worker.Name + " " + r.Worker.Surname,
			ClientDNI:   r.ClientDNI,
			ClientName:  r.Client.Name + " " + r.Client.Surname,
			ServiceName: r.Service.Name,
			Estimation:  r.Service.Estimation,
			Total:       r.Service.Price,
			Rating:      r.Rating,
			Comment:     r.Comment,
		})
	}
	return out
}
