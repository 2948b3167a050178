package checkout

import (
	"fmt"
	"time"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/cart"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/inventory"
)

// PaymentMethod is the only method the site offers.
const PaymentMethod = "بطاقة ائتمان"

type OrderSeat struct {
	ID       string  `json:"id"`
	Row      string  `json:"row"`
	Number   int     `json:"number"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// CardSummary is the redacted card: no number, expiry or CVV.
type CardSummary struct {
	CardType CardType `json:"cardType"`
	LastFour string   `json:"lastFour"`
}

type PaymentInfo struct {
	CardLastFour  string `json:"cardLastFour"`
	PaymentMethod string `json:"paymentMethod"`
}

// OrderPayload is what leaves the server on a submitted payment.
type OrderPayload struct {
	EventID       string      `json:"eventId"`
	EventTitle    string      `json:"eventTitle"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	CustomerEmail string      `json:"customerEmail"`
	Seats         []OrderSeat `json:"seats"`
	TotalAmount   float64     `json:"totalAmount"`
	Currency      string      `json:"currency,omitempty"`
	SetPrice      string      `json:"setPrice,omitempty"`
	Timestamp     time.Time   `json:"timestamp"`
	BookingID     string      `json:"bookingId"`
	CardInfo      CardSummary `json:"cardInfo"`
	PaymentInfo   PaymentInfo `json:"paymentInfo"`
}

// NewBookingID returns the client-side reference "booking-<unix ms>".
func NewBookingID(now time.Time) string {
	return fmt.Sprintf("booking-%d", now.UnixMilli())
}

// OrderRequest is everything needed to compose an order.
type OrderRequest struct {
	EventID    string
	EventTitle string
	Currency   string
	SetPrice   string
	Seats      []inventory.Seat
	Form       PaymentForm
}

// BuildOrder composes the payload. Row and number are re-derived from the
// seat ids, the total is recomputed and the card is reduced to its type and
// last four digits.
func BuildOrder(req OrderRequest, now time.Time) *OrderPayload {
	seats := make([]OrderSeat, 0, len(req.Seats))
	for _, s := range req.Seats {
		row, number := cart.SplitSeatID(s.ID)
		seats = append(seats, OrderSeat{
			ID:       s.ID,
			Row:      row,
			Number:   number,
			Category: s.Category,
			Price:    s.Price,
		})
	}

	last4 := LastFour(req.Form.CardNumber)

	return &OrderPayload{
		EventID:       req.EventID,
		EventTitle:    req.EventTitle,
		CustomerName:  req.Form.FullName,
		CustomerPhone: req.Form.Phone,
		CustomerEmail: req.Form.Email,
		Seats:         seats,
		TotalAmount:   cart.Total(req.Seats),
		Currency:      req.Currency,
		SetPrice:      req.SetPrice,
		Timestamp:     now.UTC(),
		BookingID:     NewBookingID(now),
		CardInfo: CardSummary{
			CardType: DetectCardType(req.Form.CardNumber),
			LastFour: last4,
		},
		PaymentInfo: PaymentInfo{
			CardLastFour:  last4,
			PaymentMethod: PaymentMethod,
		},
	}
}
