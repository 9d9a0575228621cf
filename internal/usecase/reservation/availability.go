package reservation

import (
	"context"

	domain "github.com/ynz20/AppPerruqueriaApi/internal/domain/reservation"
)

type AvailableWorkersInput struct {
	Date      string
	Hour      string
	ServiceID uint
}

// AvailableWorkers calcula el complement: tots els treballadors menys els
// que tenen alguna reserva no cancel·lada que solapa la franja demanada.
type AvailableWorkers struct {
	repo domain.Repository
}

func NewAvailableWorkers(repo domain.Repository) *AvailableWorkers {
	return &AvailableWorkers{repo: repo}
}

func (uc *AvailableWorkers) Execute(
	ctx context.Context,
	in AvailableWorkersInput,
) ([]string, error) {

	date, err := domain.ParseDate(in.Date)
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

	reservations, err := uc.repo.FindAllByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	busy := make(map[string]bool)
	for _, r := range reservations {
		if !domain.Status(r.Status).Blocks() {
			continue
		}

		slot, err := domain.NewSlot(r.Hour, r.Service.Estimation)
		if err != nil {
			continue
		}

		if candidate.Overlaps(slot) {
			busy[r.WorkerDNI] = true
		}
	}

	roster, err := uc.repo.ListWorkerDNIs(ctx)
	if err != nil {
		return nil, err
	}

	// Un treballador sense cap reserva aquell dia sempre surt disponible.
	available := make([]string, 0, len(roster))
	for _, dni := range roster {
		if !busy[dni] {
			available = append(available, dni)
		}
	}

	return available, nil
}
