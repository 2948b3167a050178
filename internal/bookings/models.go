package bookings

import (
	"github.com/Abu-ellil/arena-app-abosaleh/internal/cart"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/inventory"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/reservation"
)

// session is one buyer on the seat selection page. The visit id of its
// countdown is the session id.
type session struct {
	id      string
	eventID string
	date    string
	title   string
	store   *inventory.Store
}

// page is an open checkout or payment visit and the cart it was opened with.
// submitting is guarded by the service mutex.
type page struct {
	stage      reservation.Stage
	title      string
	query      cart.PaymentQuery
	submitting bool
}
