package reservation

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReservation(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.createUC().Execute(context.Background(), CreateReservationInput{
		Date:      "2025-06-01",
		Hour:      "10:00",
		WorkerDNI: env.worker.DNI,
		ClientDNI: env.client.DNI,
		ServiceID: env.service.ID,
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "pending", created.Status)
	assert.Nil(t, created.ShiftID)
}

func TestCreateReservationOverlapRejected(t *testing.T) {
	env := newTestEnv(t)
	env.mustReserve(t, env.worker.DNI, "2025-06-01", "10:00", "pending")

	// el servei dura 30 min: [10:15, 10:45) xoca amb [10:00, 10:30)
	_, err := env.createUC().Execute(context.Background(), CreateReservationInput{
		Date:      "2025-06-01",
		Hour:      "10:15",
		WorkerDNI: env.worker.DNI,
		ClientDNI: env.client.DNI,
		ServiceID: env.service.ID,
	})
	assert.EqualError(t, err, "slot_occupied")

	assert.EqualValues(t, 1, env.countReservations(t))
}

func TestCreateReservationAdjacentAllowed(t *testing.T) {
	env := newTestEnv(t)
	env.mustReserve(t, env.worker.DNI, "2025-06-01", "10:00", "pending")

	// [10:30, 11:00) toca [10:00, 10:30) pels extrems però no hi solapa
	_, err := env.createUC().Execute(context.Background(), CreateReservationInput{
		Date:      "2025-06-01",
		Hour:      "10:30",
		WorkerDNI: env.worker.DNI,
		ClientDNI: env.client.DNI,
		ServiceID: env.service.ID,
	})
	require.NoError(t, err)

	assert.EqualValues(t, 2, env.countReservations(t))
}

func TestCreateReservationOtherWorkerUnaffected(t *testing.T) {
	env := newTestEnv(t)
	env.mustReserve(t, env.worker.DNI, "2025-06-01", "10:00", "pending")

	_, err := env.createUC().Execute(context.Background(), CreateReservationInput{
		Date:      "2025-06-01",
		Hour:      "10:00",
		WorkerDNI: env.worker2.DNI,
		ClientDNI: env.client.DNI,
		ServiceID: env.service.ID,
	})
	require.NoError(t, err)
}

func TestCreateReservationCancelledDoesNotBlock(t *testing.T) {
	env := newTestEnv(t)
	env.mustReserve(t, env.worker.DNI, "2025-06-01", "10:00", "cancelled")

	_, err := env.createUC().Execute(context.Background(), CreateReservationInput{
		Date:      "2025-06-01",
		Hour:      "10:00",
		WorkerDNI: env.worker.DNI,
		ClientDNI: env.client.DNI,
		ServiceID: env.service.ID,
	})
	require.NoError(t, err)
}

func TestCreateReservationValidation(t *testing.T) {
	env := newTestEnv(t)
	uc := env.createUC()

	_, err := uc.Execute(context.Background(), CreateReservationInput{
		Date: "01/06/2025", Hour: "10:00",
		WorkerDNI: env.worker.DNI, ClientDNI: env.client.DNI,
		ServiceID: env.service.ID,
	})
	assert.EqualError(t, err, "invalid_date")

	_, err = uc.Execute(context.Background(), CreateReservationInput{
		Date: "2025-06-01", Hour: "banana",
		WorkerDNI: env.worker.DNI, ClientDNI: env.client.DNI,
		ServiceID: env.service.ID,
	})
	assert.EqualError(t, err, "invalid_hour")

	_, err = uc.Execute(context.Background(), CreateReservationInput{
		Date: "2025-06-01", Hour: "10:00",
		WorkerDNI: env.worker.DNI, ClientDNI: env.client.DNI,
		ServiceID: env.service.ID, Status: "done",
	})
	assert.EqualError(t, err, "invalid_status")

	_, err = uc.Execute(context.Background(), CreateReservationInput{
		Date: "2025-06-01", Hour: "10:00",
		WorkerDNI: env.worker.DNI, ClientDNI: env.client.DNI,
		ServiceID: 9999,
	})
	assert.EqualError(t, err, "service_not_found")

	assert.EqualValues(t, 0, env.countReservations(t))
}

// La franja es disputa des de N goroutines alhora: només una pot guanyar.
func TestCreateReservationConcurrentSameSlot(t *testing.T) {
	env := newTestEnv(t)
	uc := env.createUC()

	const attempts = 8

	var wg sync.WaitGroup
	errs := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), CreateReservationInput{
				Date:      "2025-06-01",
				Hour:      "10:00",
				WorkerDNI: env.worker.DNI,
				ClientDNI: env.client.DNI,
				ServiceID: env.service.ID,
			})
			errs <- err
		}()
	}

	wg.Wait()
	close(errs)

	ok, conflicts := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			ok++
		default:
			assert.EqualError(t, err, "slot_occupied")
			conflicts++
		}
	}

	assert.Equal(t, 1, ok)
	assert.Equal(t, attempts-1, conflicts)
	assert.EqualValues(t, 1, env.countReservations(t))
}
