package reservation

import (
	"context"

	domain "github.com/ynz20/AppPerruqueriaApi/internal/domain/reservation"
)

// hasConflict escaneja les reserves del treballador en aquell dia i comprova
// el solapament semiobert contra la franja candidata. Les cancel·lades no
// bloquegen. excludeID (0 = cap) salta la pròpia reserva quan es revalida
// una edició.
func hasConflict(
	ctx context.Context,
	repo domain.Repository,
	workerDNI string,
	date string,
	candidate domain.Slot,
	excludeID uint,
) (bool, error) {

	existing, err := repo.FindByWorkerAndDate(ctx, workerDNI, date)
	if err != nil {
		return false, err
	}

	for _, r := range existing {
		if excludeID != 0 && r.ID == excludeID {
			continue
		}
		if !domain.Status(r.Status).Blocks() {
			continue
		}

		slot, err := domain.NewSlot(r.Hour, r.Service.Estimation)
		if err != nil {
			// reserva antiga amb hora corrupta: no la podem situar, l'ignorem
			continue
		}

		if candidate.Overlaps(slot) {
			return true, nil
		}
	}

	return false, nil
}
