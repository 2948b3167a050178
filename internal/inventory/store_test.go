package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abu-ellil/arena-app-abosaleh/pkg/logger"
)

func fixedSource(seats []Seat, err error) SeatSource {
	return SeatSourceFunc(func(ctx context.Context, eventID, date string) ([]Seat, error) {
		return seats, err
	})
}

func loadedStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(fixedSource([]Seat{
		{ID: "seat-A-1", Row: "A", Number: 1, Category: "VIP", Price: 400, Status: StatusAvailable},
		{ID: "seat-A-2", Row: "A", Number: 2, Category: "Royal", Price: 500, Status: StatusAvailable},
		{ID: "seat-A-3", Row: "A", Number: 3, Category: "VIP", Price: 400, Status: StatusBooked},
		{ID: "seat-B-1", Row: "B", Number: 1, Category: "Gold", Price: 150.5},
	}, nil), logger.NewDiscard())
	s.LoadSeatsForEvent(context.Background(), "evt-1", "2025-01-10")
	require.Len(t, s.Seats(), 4)
	return s
}

func TestStore_LoadNormalisesStatus(t *testing.T) {
	s := loadedStore(t)

	seats := s.Seats()
	assert.Equal(t, StatusAvailable, seats[3].Status)
	assert.Equal(t, StatusBooked, seats[2].Status)
	assert.Equal(t, "evt-1", s.EventID())
	assert.Equal(t, "2025-01-10", s.Date())
}

func TestStore_LoadFailureLeavesInventoryEmpty(t *testing.T) {
	s := NewStore(fixedSource(nil, errors.New("connection refused")), logger.NewDiscard())

	s.LoadSeatsForEvent(context.Background(), "evt-1", "2025-01-10")

	assert.Empty(t, s.Seats())
	assert.Equal(t, 0.0, s.TotalPrice())
}

func TestStore_SelectBookedSeatIsNoop(t *testing.T) {
	s := loadedStore(t)

	assert.False(t, s.SelectSeat("seat-A-3"))
	assert.Equal(t, 0, s.SelectedCount())
	assert.Equal(t, StatusBooked, s.Seats()[2].Status)
}

func TestStore_SelectUnknownSeatIsNoop(t *testing.T) {
	s := loadedStore(t)

	assert.False(t, s.SelectSeat("seat-Z-9"))
	assert.Equal(t, 0, s.SelectedCount())
}

func TestStore_TotalPrice(t *testing.T) {
	s := loadedStore(t)
	assert.Equal(t, 0.0, s.TotalPrice())

	assert.True(t, s.SelectSeat("seat-A-1"))
	assert.True(t, s.SelectSeat("seat-A-2"))
	assert.False(t, s.SelectSeat("seat-A-2"))

	assert.Equal(t, 900.0, s.TotalPrice())
	assert.Equal(t, 2, s.SelectedCount())
}

func TestStore_SelectedSeatsKeepPickOrder(t *testing.T) {
	s := loadedStore(t)

	s.SelectSeat("seat-B-1")
	s.SelectSeat("seat-A-1")
	s.SelectSeat("seat-A-2")
	s.DeselectSeat("seat-A-1")

	selected := s.SelectedSeats()
	require.Len(t, selected, 2)
	assert.Equal(t, "seat-B-1", selected[0].ID)
	assert.Equal(t, "seat-A-2", selected[1].ID)
	assert.Equal(t, 650.5, s.TotalPrice())
}

func TestStore_DeselectOnlyAffectsSelected(t *testing.T) {
	s := loadedStore(t)

	assert.False(t, s.DeselectSeat("seat-A-1"))
	assert.False(t, s.DeselectSeat("seat-A-3"))
	assert.Equal(t, StatusBooked, s.Seats()[2].Status)
}

func TestStore_ClearSelection(t *testing.T) {
	s := loadedStore(t)
	s.SelectSeat("seat-A-1")
	s.SelectSeat("seat-B-1")

	s.ClearSelection()

	assert.Equal(t, 0, s.SelectedCount())
	for _, seat := range s.Seats() {
		assert.NotEqual(t, StatusSelected, seat.Status)
	}
}

func TestStore_ReloadDropsSelection(t *testing.T) {
	s := loadedStore(t)
	s.SelectSeat("seat-A-1")

	s.LoadSeatsForEvent(context.Background(), "evt-1", "2025-01-11")

	assert.Equal(t, 0, s.SelectedCount())
	assert.Equal(t, "2025-01-11", s.Date())
}

func TestStore_Legend(t *testing.T) {
	s := loadedStore(t)
	s.SelectSeat("seat-A-1")

	legend := s.Legend()
	require.Len(t, legend, 3)
	assert.Equal(t, "VIP", string(legend[0].Category))
	assert.Equal(t, 1, legend[0].Selected)
	assert.Equal(t, 1, legend[0].Booked)
	assert.Equal(t, "Royal", string(legend[1].Category))
	assert.Equal(t, "Gold", string(legend[2].Category))
}
