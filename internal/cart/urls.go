package cart

import (
	"net/url"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/inventory"
)

const (
	CheckoutPath = "/checkout"
	PaymentPath  = "/payment"
	ConfirmPath  = "/confirm"
	HomePath     = "/"
)

// Customer is the contact data collected on the checkout page.
type Customer struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// CheckoutQuery is what the checkout page reads from its URL.
type CheckoutQuery struct {
	EventID  string           `json:"eventId"`
	Token    string           `json:"seats"`
	Seats    []inventory.Seat `json:"selectedSeats"`
	Total    float64          `json:"total"`
	Display  string           `json:"displayTotal"`
	SetPrice string           `json:"setPrice,omitempty"`
}

// PaymentQuery is what the payment page reads from its URL.
type PaymentQuery struct {
	CheckoutQuery
	Customer Customer `json:"customer"`
}

// CheckoutURL builds /checkout?eventId=..&seats=..&total=..
func CheckoutURL(eventID string, seats []inventory.Seat, total float64) string {
	v := url.Values{}
	v.Set("eventId", eventID)
	v.Set("seats", Encode(seats))
	v.Set("total", FormatPrice(total))
	return CheckoutPath + "?" + v.Encode()
}

// PaymentURL builds the payment page URL. The total is recomputed from the
// seats; setPrice is passed through only when non-empty.
func PaymentURL(eventID string, seats []inventory.Seat, c Customer, setPrice string) string {
	v := url.Values{}
	v.Set("eventId", eventID)
	v.Set("seats", Encode(seats))
	v.Set("total", FormatPrice(Total(seats)))
	v.Set("fullName", c.FullName)
	v.Set("phone", c.Phone)
	v.Set("email", c.Email)
	if setPrice != "" {
		v.Set("setPrice", setPrice)
	}
	return PaymentPath + "?" + v.Encode()
}

// ConfirmURL builds the confirmation page URL.
func ConfirmURL(phone, bookingID string) string {
	v := url.Values{}
	v.Set("phone", phone)
	v.Set("bookingId", bookingID)
	return ConfirmPath + "?" + v.Encode()
}

// EventURL is where the checkout page's back action leads.
func EventURL(eventID string) string {
	return "/event/" + url.PathEscape(eventID)
}

// ParseCheckoutQuery decodes checkout parameters. The displayed total is kept
// verbatim next to the recomputed sum; the two are never reconciled.
func ParseCheckoutQuery(v url.Values) CheckoutQuery {
	token := v.Get("seats")
	seats := Decode(token)

	display := v.Get("total")
	if display == "" {
		display = "0"
	}

	return CheckoutQuery{
		EventID:  v.Get("eventId"),
		Token:    token,
		Seats:    seats,
		Total:    Total(seats),
		Display:  display,
		SetPrice: v.Get("setPrice"),
	}
}

// ParsePaymentQuery decodes payment parameters including the prefilled
// customer fields.
func ParsePaymentQuery(v url.Values) PaymentQuery {
	return PaymentQuery{
		CheckoutQuery: ParseCheckoutQuery(v),
		Customer: Customer{
			FullName: v.Get("fullName"),
			Phone:    v.Get("phone"),
			Email:    v.Get("email"),
		},
	}
}

// DisplayTotal parses the display-only total; garbage reads as 0.
func DisplayTotal(q CheckoutQuery) float64 {
	return parsePrice(q.Display)
}
