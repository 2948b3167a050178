package bookings

import (
	"github.com/Abu-ellil/arena-app-abosaleh/internal/cart"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/inventory"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/pricing"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/reservation"
)

// SelectionSummary is the booking bar under the seat map
type SelectionSummary struct {
	SessionID   string             `json:"sessionId"`
	EventID     string             `json:"eventId"`
	Date        string             `json:"date"`
	Selected    []inventory.Seat   `json:"selectedSeats"`
	Count       int                `json:"count"`
	Total       float64            `json:"total"`
	Currency    string             `json:"currency"`
	Token       string             `json:"seats"`
	CheckoutURL string             `json:"checkoutUrl,omitempty"`
	Timer       reservation.Status `json:"timer"`
}

// SelectionResponse is returned when a session opens
type SelectionResponse struct {
	SelectionSummary
	EventTitle string           `json:"eventTitle"`
	Seats      []inventory.Seat `json:"seatMap"`
	Legend     []pricing.Stat   `json:"legend"`
}

type CheckoutView struct {
	VisitID      string             `json:"visitId"`
	EventID      string             `json:"eventId"`
	EventTitle   string             `json:"eventTitle"`
	Seats        []inventory.Seat   `json:"selectedSeats"`
	Token        string             `json:"seats"`
	Total        float64            `json:"total"`
	DisplayTotal float64            `json:"displayTotal"`
	SetPrice     string             `json:"setPrice,omitempty"`
	Currency     string             `json:"currency"`
	CountryCode  string             `json:"countryCode"`
	BackURL      string             `json:"backUrl"`
	Timer        reservation.Status `json:"timer"`
}

type PaymentView struct {
	VisitID      string             `json:"visitId"`
	EventID      string             `json:"eventId"`
	EventTitle   string             `json:"eventTitle"`
	Seats        []inventory.Seat   `json:"selectedSeats"`
	Total        float64            `json:"total"`
	DisplayTotal float64            `json:"displayTotal"`
	SetPrice     string             `json:"setPrice,omitempty"`
	Currency     string             `json:"currency"`
	Customer     cart.Customer      `json:"customer"`
	Timer        reservation.Status `json:"timer"`
}

type ProceedResponse struct {
	PaymentURL string `json:"paymentUrl"`
}
