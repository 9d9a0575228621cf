package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"pending", "completed", "cancelled"} {
		s, err := ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, Status(valid), s)
	}

	_, err := ParseStatus("done")
	assert.EqualError(t, err, "invalid_status")

	_, err = ParseStatus("")
	assert.EqualError(t, err, "invalid_status")
}

func TestStatusBlocks(t *testing.T) {
	assert.True(t, StatusPending.Blocks())
	assert.True(t, StatusCompleted.Blocks())
	assert.False(t, StatusCancelled.Blocks())
}

func TestCanTransition(t *testing.T) {
	assert.NoError(t, CanTransition(StatusPending, StatusCompleted))
	assert.NoError(t, CanTransition(StatusPending, StatusCancelled))

	// els estats terminals no admeten més canvis
	assert.EqualError(t, CanTransition(StatusCompleted, StatusCancelled), "invalid_state")
	assert.EqualError(t, CanTransition(StatusCancelled, StatusCompleted), "invalid_state")

	// no es pot tornar a pending
	assert.EqualError(t, CanTransition(StatusPending, StatusPending), "invalid_state")
}
