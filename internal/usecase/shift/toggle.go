package shift

import (
	"context"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/ynz20/AppPerruqueriaApi/internal/audit"
	"github.com/ynz20/AppPerruqueriaApi/internal/models"
)

// ToggleShift tanca el torn obert si n'hi ha, o n'obre un de nou. El mutex
// més la transacció mantenen l'invariant: mai dos torns oberts alhora.
type ToggleShift struct {
	db    *gorm.DB
	audit *audit.Dispatcher

	mu sync.Mutex
}

func NewToggleShift(db *gorm.DB, audit *audit.Dispatcher) *ToggleShift {
	return &ToggleShift{
		db:    db,
		audit: audit,
	}
}

type ToggleResult struct {
	Shift  *models.Shift
	Opened bool
}

func (uc *ToggleShift) Execute(ctx context.Context, userDNI string) (*ToggleResult, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	var result ToggleResult

	err := uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var open models.Shift
		err := tx.Where("end_time IS NULL").First(&open).Error

		switch {
		case err == nil:
			now := time.Now()
			open.EndTime = &now
			if err := tx.Save(&open).Error; err != nil {
				return err
			}
			result = ToggleResult{Shift: &open, Opened: false}
			return nil

		case errors.Is(err, gorm.ErrRecordNotFound):
			now := time.Now()
			created := models.Shift{
				StartTime: now,
				EndTime:   nil,
				Date:      now.Format("2006-01-02"),
			}
			if err := tx.Create(&created).Error; err != nil {
				return err
			}
			result = ToggleResult{Shift: &created, Opened: true}
			return nil

		default:
			return err
		}
	})

	if err != nil {
		return nil, err
	}

	action := "shift_closed"
	if result.Opened {
		action = "shift_opened"
	}
	uc.audit.Dispatch(audit.Event{
		UserDNI:  &userDNI,
		Action:   action,
		Entity:   "shift",
		EntityID: &result.Shift.ID,
	})

	return &result, nil
}

// IsOpen respon si hi ha cap torn actiu (end_time NULL).
func (uc *ToggleShift) IsOpen(ctx context.Context) (bool, error) {
	var count int64
	if err := uc.db.WithContext(ctx).
		Model(&models.Shift{}).
		Where("end_time IS NULL").
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
