package seats

import (
	"github.com/Abu-ellil/arena-app-abosaleh/internal/inventory"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/pricing"
)

type SeatMapResponse struct {
	EventID  string           `json:"eventId"`
	Date     string           `json:"date"`
	Currency string           `json:"currency,omitempty"`
	Seats    []inventory.Seat `json:"seats"`
}

type LegendResponse struct {
	EventID    string         `json:"eventId"`
	Date       string         `json:"date"`
	Categories []pricing.Stat `json:"categories"`
}

type LayoutResponse struct {
	EventID string `json:"eventId"`
	Date    string `json:"date"`
	Created int    `json:"created"`
	Removed int64  `json:"removed"`
}

type MarkBookedResponse struct {
	Updated int64 `json:"updated"`
}
