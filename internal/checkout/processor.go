package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/cart"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/logger"
)

// Sink receives submitted orders, e.g. a chat bot or a message broker.
type Sink interface {
	SendOrder(ctx context.Context, order *OrderPayload) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, order *OrderPayload) error

func (f SinkFunc) SendOrder(ctx context.Context, order *OrderPayload) error {
	return f(ctx, order)
}

var ErrInvalidForm = errors.New("invalid form")

// SubmitError is returned when the sink rejects an order. The buyer can
// always try again.
type SubmitError struct {
	BookingID string
	Retryable bool
	Err       error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("order %s not delivered: %v", e.BookingID, e.Err)
}

func (e *SubmitError) Unwrap() error { return e.Err }

// Confirmation is returned for a delivered order.
type Confirmation struct {
	BookingID   string  `json:"bookingId"`
	Phone       string  `json:"phone"`
	TotalAmount float64 `json:"totalAmount"`
	RedirectURL string  `json:"redirectUrl"`
}

// Processor runs the checkout and payment forms: validation, hand-over from
// checkout to payment, and order submission.
type Processor struct {
	validator *Validator
	sink      Sink
	now       func() time.Time
	log       *logger.Logger
}

func NewProcessor(sink Sink, now func() time.Time, log *logger.Logger) *Processor {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logger.GetDefault()
	}
	return &Processor{
		validator: NewValidator(now),
		sink:      sink,
		now:       now,
		log:       log,
	}
}

func (p *Processor) ValidateCheckout(form CheckoutForm) ErrorMap {
	return p.validator.ValidateCheckout(form)
}

func (p *Processor) ValidatePayment(form PaymentForm) ErrorMap {
	return p.validator.ValidatePayment(form)
}

// Proceed validates the checkout form and returns the payment page URL.
func (p *Processor) Proceed(q cart.CheckoutQuery, form CheckoutForm) (string, ErrorMap) {
	if errs := p.ValidateCheckout(form); !errs.Valid() {
		return "", errs
	}
	customer := cart.Customer{FullName: form.FullName, Phone: form.Phone, Email: form.Email}
	return cart.PaymentURL(q.EventID, q.Seats, customer, q.SetPrice), nil
}

// Submit validates the payment form, composes the order and hands it to the
// sink. Validation failures come back as ErrorMap with ErrInvalidForm; sink
// failures as *SubmitError.
func (p *Processor) Submit(ctx context.Context, req OrderRequest) (*Confirmation, ErrorMap, error) {
	if errs := p.ValidatePayment(req.Form); !errs.Valid() {
		return nil, errs, ErrInvalidForm
	}

	order := BuildOrder(req, p.now())

	if err := p.sink.SendOrder(ctx, order); err != nil {
		p.log.LogOrderFailed(ctx, order.BookingID, err)
		return nil, nil, &SubmitError{BookingID: order.BookingID, Retryable: true, Err: err}
	}

	p.log.LogOrderSubmitted(ctx, order.BookingID, order.EventTitle, len(order.Seats), order.TotalAmount)

	return &Confirmation{
		BookingID:   order.BookingID,
		Phone:       order.CustomerPhone,
		TotalAmount: order.TotalAmount,
		RedirectURL: cart.ConfirmURL(order.CustomerPhone, order.BookingID),
	}, nil, nil
}
