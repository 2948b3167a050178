package bookings

import "github.com/Abu-ellil/arena-app-abosaleh/internal/checkout"

// OpenSelectionRequest starts a selection session on one show date
type OpenSelectionRequest struct {
	EventID string `json:"eventId" binding:"required"`
	Date    string `json:"date" binding:"required"`
}

// ProceedRequest is the checkout contact form
type ProceedRequest = checkout.CheckoutForm

// SubmitRequest is the payment card form. Contact fields left empty are
// taken from the payment page URL.
type SubmitRequest = checkout.PaymentForm
