package inventory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/pricing"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/logger"
)

// Store holds the seat map and the current selection of a single selection
// session. Each session owns its own Store; nothing is shared between them.
type Store struct {
	mu     sync.RWMutex
	source SeatSource
	log    *logger.Logger

	eventID string
	date    string
	seats   []Seat
	index   map[string]int
	order   []string // selected ids, in the order they were picked
}

func NewStore(source SeatSource, log *logger.Logger) *Store {
	if log == nil {
		log = logger.GetDefault()
	}
	return &Store{
		source: source,
		log:    log,
		index:  make(map[string]int),
	}
}

// LoadSeatsForEvent replaces the inventory with the seats of eventID on date.
// A failed fetch is logged and leaves the inventory empty.
func (s *Store) LoadSeatsForEvent(ctx context.Context, eventID, date string) {
	seats, err := s.source.SeatsForEvent(ctx, eventID, date)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.eventID = eventID
	s.date = date
	s.seats = nil
	s.index = make(map[string]int)
	s.order = nil

	if err != nil {
		s.log.ErrorContext(ctx, "failed to load seats",
			slog.String("event_id", eventID),
			slog.String("date", date),
			slog.String("error", err.Error()),
		)
		return
	}

	s.seats = make([]Seat, 0, len(seats))
	for _, seat := range seats {
		if seat.ID == "" {
			continue
		}
		if _, dup := s.index[seat.ID]; dup {
			continue
		}
		if seat.Status != StatusBooked {
			seat.Status = StatusAvailable
		}
		s.index[seat.ID] = len(s.seats)
		s.seats = append(s.seats, seat)
	}

	s.log.DebugContext(ctx, "seats loaded",
		slog.String("event_id", eventID),
		slog.String("date", date),
		slog.Int("count", len(s.seats)),
	)
}

// SelectSeat marks an available seat as selected. Booked, unknown and
// already selected seats are left untouched; the return value reports
// whether anything changed.
func (s *Store) SelectSeat(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok || s.seats[i].Status != StatusAvailable {
		return false
	}
	s.seats[i].Status = StatusSelected
	s.order = append(s.order, id)
	return true
}

// DeselectSeat returns a selected seat to available.
func (s *Store) DeselectSeat(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok || s.seats[i].Status != StatusSelected {
		return false
	}
	s.seats[i].Status = StatusAvailable
	for k, sel := range s.order {
		if sel == id {
			s.order = append(s.order[:k], s.order[k+1:]...)
			break
		}
	}
	return true
}

// ClearSelection returns every selected seat to available.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		s.seats[s.index[id]].Status = StatusAvailable
	}
	s.order = nil
}

func (s *Store) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, id := range s.order {
		total += s.seats[s.index[id]].Price
	}
	return total
}

func (s *Store) SelectedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// SelectedSeats returns the selection in pick order.
func (s *Store) SelectedSeats() []Seat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Seat, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.seats[s.index[id]])
	}
	return out
}

// Seats returns a snapshot of the whole inventory.
func (s *Store) Seats() []Seat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Seat(nil), s.seats...)
}

// Legend returns per-category statistics for the loaded seats.
func (s *Store) Legend() []pricing.Stat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return LegendFor(s.seats)
}

func (s *Store) EventID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.eventID
}

func (s *Store) Date() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.date
}

func tally(st Status) pricing.Tally {
	switch st {
	case StatusSelected:
		return pricing.TallySelected
	case StatusBooked:
		return pricing.TallyBooked
	}
	return pricing.TallyAvailable
}

// LegendFor builds legend rows for an arbitrary seat list.
func LegendFor(seats []Seat) []pricing.Stat {
	l := pricing.NewLegend()
	for _, seat := range seats {
		l.Add(seat.Category, seat.Price, tally(seat.Status))
	}
	return l.Stats()
}
