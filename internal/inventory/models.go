package inventory

import "context"

// Status of a seat within one selection session.
type Status string

const (
	StatusAvailable Status = "available"
	StatusSelected  Status = "selected"
	StatusBooked    Status = "booked"
)

type Seat struct {
	ID       string  `json:"id"`
	Row      string  `json:"row"`
	Number   int     `json:"number"`
	Section  string  `json:"section"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Status   Status  `json:"status"`
}

// SeatSource loads the seat map of an event on a given show date.
type SeatSource interface {
	SeatsForEvent(ctx context.Context, eventID, date string) ([]Seat, error)
}

// SeatSourceFunc adapts a plain function to SeatSource.
type SeatSourceFunc func(ctx context.Context, eventID, date string) ([]Seat, error)

func (f SeatSourceFunc) SeatsForEvent(ctx context.Context, eventID, date string) ([]Seat, error) {
	return f(ctx, eventID, date)
}
