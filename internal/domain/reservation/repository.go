package reservation

import (
	"context"

	"github.com/ynz20/AppPerruqueriaApi/internal/models"
)

type Repository interface {
	// -------- Service catalog --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Worker roster --------
	ListWorkerDNIs(
		ctx context.Context,
	) ([]string, error)

	// -------- Reservations --------
	FindByID(
		ctx context.Context,
		id uint,
	) (*models.Reservation, error)

	// Reserves d'un treballador en un dia, amb el servei precarregat
	// (cal l'estimation per calcular cada interval).
	FindByWorkerAndDate(
		ctx context.Context,
		workerDNI string,
		date string,
	) ([]models.Reservation, error)

	FindAllByDate(
		ctx context.Context,
		date string,
	) ([]models.Reservation, error)

	FindByClient(
		ctx context.Context,
		clientDNI string,
	) ([]models.Reservation, error)

	FindByWorker(
		ctx context.Context,
		workerDNI string,
	) ([]models.Reservation, error)

	Create(
		ctx context.Context,
		r *models.Reservation,
	) error

	Update(
		ctx context.Context,
		r *models.Reservation,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) error

	// -------- Shift tracker --------
	FindOpenShift(
		ctx context.Context,
	) (*models.Shift, error)

	// -------- Transaction boundary --------
	// WithTx executa fn contra un Repository lligat a una transacció;
	// si fn retorna error es fa rollback de tot.
	WithTx(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
