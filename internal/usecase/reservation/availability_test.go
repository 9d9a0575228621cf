package reservation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableWorkers(t *testing.T) {
	env := newTestEnv(t)
	env.mustReserve(t, env.worker.DNI, "2025-06-01", "10:00", "pending")

	uc := NewAvailableWorkers(env.repo)

	// 10:15 cau dins [10:00, 10:30): només queda el segon treballador
	workers, err := uc.Execute(context.Background(), AvailableWorkersInput{
		Date: "2025-06-01", Hour: "10:15", ServiceID: env.service.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{env.worker2.DNI}, workers)

	// a les 10:30 la franja ja és lliure per a tothom
	workers, err = uc.Execute(context.Background(), AvailableWorkersInput{
		Date: "2025-06-01", Hour: "10:30", ServiceID: env.service.ID,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{env.worker.DNI, env.worker2.DNI}, workers)

	// un altre dia no hi pinta res la reserva
	workers, err = uc.Execute(context.Background(), AvailableWorkersInput{
		Date: "2025-06-02", Hour: "10:15", ServiceID: env.service.ID,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{env.worker.DNI, env.worker2.DNI}, workers)
}

// La consulta no muta res: repetir-la dona sempre el mateix resultat.
func TestAvailableWorkersIdempotent(t *testing.T) {
	env := newTestEnv(t)
	env.mustReserve(t, env.worker.DNI, "2025-06-01", "10:00", "pending")

	uc := NewAvailableWorkers(env.repo)

	in := AvailableWorkersInput{Date: "2025-06-01", Hour: "10:15", ServiceID: env.service.ID}

	first, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAvailableWorkersCancelledIgnored(t *testing.T) {
	env := newTestEnv(t)
	env.mustReserve(t, env.worker.DNI, "2025-06-01", "10:00", "cancelled")

	uc := NewAvailableWorkers(env.repo)

	workers, err := uc.Execute(context.Background(), AvailableWorkersInput{
		Date: "2025-06-01", Hour: "10:00", ServiceID: env.service.ID,
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{env.worker.DNI, env.worker2.DNI}, workers)
}

func TestAvailableWorkersValidation(t *testing.T) {
	env := newTestEnv(t)
	uc := NewAvailableWorkers(env.repo)

	_, err := uc.Execute(context.Background(), AvailableWorkersInput{
		Date: "ahir", Hour: "10:00", ServiceID: env.service.ID,
	})
	assert.EqualError(t, err, "invalid_date")

	_, err = uc.Execute(context.Background(), AvailableWorkersInput{
		Date: "2025-06-01", Hour: "10:00", ServiceID: 9999,
	})
	assert.EqualError(t, err, "service_not_found")
}
