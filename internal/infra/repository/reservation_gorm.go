package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/ynz20/AppPerruqueriaApi/internal/domain/reservation"
	"github.com/ynz20/AppPerruqueriaApi/internal/httperr"
	"github.com/ynz20/AppPerruqueriaApi/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Service catalog
// --------------------------------------------------

func (r *ReservationGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Worker roster
// --------------------------------------------------

func (r *ReservationGormRepository) ListWorkerDNIs(
	ctx context.Context,
) ([]string, error) {

	var dnis []string
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Order("dni ASC").
		Pluck("dni", &dnis).Error; err != nil {
		return nil, err
	}
	return dnis, nil
}

// --------------------------------------------------
// Reservations
// --------------------------------------------------

func (r *ReservationGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Service").
		First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("reservation_not_found")
		}
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) FindByWorkerAndDate(
	ctx context.Context,
	workerDNI string,
	date string,
) ([]models.Reservation, error) {

	var rs []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("worker_dni = ? AND date = ?", workerDNI, date).
		Order("hour ASC").
		Find(&rs).Error; err != nil {
		return nil, err
	}
	return rs, nil
}

func (r *ReservationGormRepository) FindAllByDate(
	ctx context.Context,
	date string,
) ([]models.Reservation, error) {

	var rs []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("date = ?", date).
		Order("hour ASC").
		Find(&rs).Error; err != nil {
		return nil, err
	}
	return rs, nil
}

func (r *ReservationGormRepository) FindByClient(
	ctx context.Context,
	clientDNI string,
) ([]models.Reservation, error) {

	var rs []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Worker").
		Preload("Client").
		Where("client_dni = ?", clientDNI).
		Order("date ASC, hour ASC").
		Find(&rs).Error; err != nil {
		return nil, err
	}
	return rs, nil
}

func (r *ReservationGormRepository) FindByWorker(
	ctx context.Context,
	workerDNI string,
) ([]models.Reservation, error) {

	var rs []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Worker").
		Preload("Client").
		Where("worker_dni = ?", workerDNI).
		Order("date ASC, hour ASC").
		Find(&rs).Error; err != nil {
		return nil, err
	}
	return rs, nil
}

func (r *ReservationGormRepository) Create(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *ReservationGormRepository) Update(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *ReservationGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	tx := r.db.WithContext(ctx).Delete(&models.Reservation{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return httperr.ErrBusiness("reservation_not_found")
	}
	return nil
}

// --------------------------------------------------
// Shift tracker
// --------------------------------------------------

func (r *ReservationGormRepository) FindOpenShift(
	ctx context.Context,
) (*models.Shift, error) {

	var shift models.Shift
	if err := r.db.WithContext(ctx).
		Where("end_time IS NULL").
		First(&shift).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("no_open_shift")
		}
		return nil, err
	}
	return &shift, nil
}

// --------------------------------------------------
// Transaction boundary
// --------------------------------------------------

func (r *ReservationGormRepository) WithTx(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ReservationGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
