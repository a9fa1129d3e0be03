package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"banquethall-backend/models"
)

func TestPartitionBookings(t *testing.T) {
	now := time.Date(2026, 6, 15, 18, 30, 0, 0, time.Local)
	bookings := []models.Booking{
		{ID: 1, Date: "2026-06-01"},
		{ID: 2, Date: "2026-06-20"},
		{ID: 3, Date: "2026-06-15"}, // today
		{ID: 4, Date: "2026-05-30"},
		{ID: 5, Date: "2026-07-01"},
	}

	part := PartitionBookings(bookings, now)

	require.Len(t, part.Upcoming, 3)
	require.Len(t, part.Past, 2)

	// today counts as upcoming; upcoming ascending
	assert.Equal(t, uint(3), part.Upcoming[0].ID)
	assert.Equal(t, uint(2), part.Upcoming[1].ID)
	assert.Equal(t, uint(5), part.Upcoming[2].ID)

	// past descending, most recent first
	assert.Equal(t, uint(1), part.Past[0].ID)
	assert.Equal(t, uint(4), part.Past[1].ID)
}

func TestPartitionBookingsEmpty(t *testing.T) {
	part := PartitionBookings(nil, time.Now())
	// panels render empty lists, never null
	assert.NotNil(t, part.Upcoming)
	assert.NotNil(t, part.Past)
	assert.Empty(t, part.Upcoming)
	assert.Empty(t, part.Past)
}

func TestPartitionBookingsDoesNotMutateInput(t *testing.T) {
	bookings := []models.Booking{
		{ID: 1, Date: "2026-06-20"},
		{ID: 2, Date: "2026-06-01"},
	}
	PartitionBookings(bookings, time.Date(2026, 6, 15, 0, 0, 0, 0, time.Local))
	assert.Equal(t, uint(1), bookings[0].ID)
	assert.Equal(t, uint(2), bookings[1].ID)
}
