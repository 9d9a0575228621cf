package shift

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ynz20/AppPerruqueriaApi/internal/audit"
	dbpkg "github.com/ynz20/AppPerruqueriaApi/internal/db"
	"github.com/ynz20/AppPerruqueriaApi/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))
	return db
}

func countOpenShifts(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.Shift{}).
		Where("end_time IS NULL").
		Count(&count).Error)
	return count
}

func TestToggleOpensAndCloses(t *testing.T) {
	db := newTestDB(t)
	uc := NewToggleShift(db, audit.NewDispatcher(audit.New(db)))

	open, err := uc.IsOpen(context.Background())
	require.NoError(t, err)
	assert.False(t, open)

	// primer toggle: obre torn
	result, err := uc.Execute(context.Background(), "20572143T")
	require.NoError(t, err)
	assert.True(t, result.Opened)
	assert.Nil(t, result.Shift.EndTime)

	open, err = uc.IsOpen(context.Background())
	require.NoError(t, err)
	assert.True(t, open)

	// segon toggle: tanca el mateix torn
	result, err = uc.Execute(context.Background(), "20572143T")
	require.NoError(t, err)
	assert.False(t, result.Opened)
	assert.NotNil(t, result.Shift.EndTime)

	open, err = uc.IsOpen(context.Background())
	require.NoError(t, err)
	assert.False(t, open)

	var total int64
	require.NoError(t, db.Model(&models.Shift{}).Count(&total).Error)
	assert.EqualValues(t, 1, total)
}

// Després de qualsevol seqüència de toggles hi ha com a màxim un torn obert.
func TestToggleSingleOpenInvariant(t *testing.T) {
	db := newTestDB(t)
	uc := NewToggleShift(db, audit.NewDispatcher(audit.New(db)))

	for i := 0; i < 7; i++ {
		_, err := uc.Execute(context.Background(), "20572143T")
		require.NoError(t, err)

		assert.LessOrEqual(t, countOpenShifts(t, db), int64(1))
	}

	// 7 toggles: obert, tancat, obert... acaba obert
	assert.EqualValues(t, 1, countOpenShifts(t, db))

	var total int64
	require.NoError(t, db.Model(&models.Shift{}).Count(&total).Error)
	assert.EqualValues(t, 4, total)
}
