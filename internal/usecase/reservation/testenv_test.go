package reservation

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ynz20/AppPerruqueriaApi/internal/audit"
	dbpkg "github.com/ynz20/AppPerruqueriaApi/internal/db"
	infraRepo "github.com/ynz20/AppPerruqueriaApi/internal/infra/repository"
	"github.com/ynz20/AppPerruqueriaApi/internal/models"
)

// testEnv aixeca una base sqlite en memòria amb un parell de treballadors,
// un client i un servei de 30 minuts, que és el que fan servir tots els tests.
type testEnv struct {
	db    *gorm.DB
	repo  *infraRepo.ReservationGormRepository
	audit *audit.Dispatcher
	locks *SlotLocks

	worker  models.User
	worker2 models.User
	client  models.Client
	service models.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// amb més d'una connexió, cada :memory: seria una base diferent
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	env := &testEnv{
		db:    db,
		repo:  infraRepo.NewReservationGormRepository(db),
		audit: audit.NewDispatcher(audit.New(db)),
		locks: NewSlotLocks(),
	}

	env.worker = models.User{
		DNI: "20572143T", Name: "Luis", Surname: "Perez",
		Nick: "luisp", Email: "luis@example.com", PasswordHash: "x",
	}
	require.NoError(t, db.Create(&env.worker).Error)

	env.worker2 = models.User{
		DNI: "12345678Z", Name: "Marta", Surname: "Soler",
		Nick: "msoler", Email: "marta@example.com", PasswordHash: "x",
	}
	require.NoError(t, db.Create(&env.worker2).Error)

	env.client = models.Client{DNI: "50572123E", Name: "Yeray", Surname: "Zafra"}
	require.NoError(t, db.Create(&env.client).Error)

	env.service = models.Service{Name: "Tall de cabell", Price: 15, Estimation: 30}
	require.NoError(t, db.Create(&env.service).Error)

	return env
}

func (e *testEnv) createUC() *CreateReservation {
	return NewCreateReservation(e.repo, e.audit, e.locks)
}

func (e *testEnv) updateUC() *UpdateReservation {
	return NewUpdateReservation(e.repo, e.audit, e.locks)
}

func (e *testEnv) statusUC() *UpdateStatus {
	return NewUpdateStatus(e.repo, e.audit)
}

func (e *testEnv) rateUC(requireCompleted bool) *RateReservation {
	return NewRateReservation(e.repo, e.audit, requireCompleted)
}

// mustReserve insereix una reserva directament, saltant-se el cas d'ús, per
// muntar l'escenari de partida d'un test.
func (e *testEnv) mustReserve(t *testing.T, workerDNI, date, hour, status string) models.Reservation {
	t.Helper()

	r := models.Reservation{
		Date:      date,
		Hour:      hour,
		WorkerDNI: workerDNI,
		ClientDNI: e.client.DNI,
		ServiceID: e.service.ID,
		Status:    status,
	}
	require.NoError(t, e.db.Create(&r).Error)
	return r
}

func (e *testEnv) countReservations(t *testing.T) int64 {
	t.Helper()

	var count int64
	require.NoError(t, e.db.Model(&models.Reservation{}).Count(&count).Error)
	return count
}
