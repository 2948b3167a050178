package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/checkout"
)

// Sink modes selectable through NOTIFY_MODE
const (
	ModeTelegram = "telegram"
	ModeKafka    = "kafka"
	ModeAMQP     = "amqp"
	ModeLog      = "log"
)

var ErrSinkDisabled = errors.New("order sink is not configured")

// OrderSink delivers submitted orders somewhere a human will see them
type OrderSink interface {
	checkout.Sink
	Close() error
}

// BookingRequest is the body of POST /telegram
type BookingRequest struct {
	BookingData *checkout.OrderPayload `json:"bookingData" binding:"required"`
}

type BookingResponse struct {
	OK        bool   `json:"ok"`
	BookingID string `json:"bookingId,omitempty"`
}

func marshalOrder(order *checkout.OrderPayload) ([]byte, error) {
	b, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order: %w", err)
	}
	return b, nil
}

func unmarshalOrder(b []byte) (*checkout.OrderPayload, error) {
	var order checkout.OrderPayload
	if err := json.Unmarshal(b, &order); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order: %w", err)
	}
	return &order, nil
}

func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func money(amount float64, currency string) string {
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", amount), "0"), ".")
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// FormatOrderMessage renders an order as a Markdown chat message. Only the
// redacted card summary is available here.
func FormatOrderMessage(order *checkout.OrderPayload) string {
	var b strings.Builder

	b.WriteString("*🎟️ حجز جديد*\n\n")
	fmt.Fprintf(&b, "*الفعالية:* %s\n", md(order.EventTitle))
	fmt.Fprintf(&b, "*رقم الحجز:* %s\n", md(order.BookingID))
	fmt.Fprintf(&b, "*الاسم:* %s\n", md(order.CustomerName))
	fmt.Fprintf(&b, "*الهاتف:* %s\n", md(order.CustomerPhone))
	fmt.Fprintf(&b, "*البريد:* %s\n", md(order.CustomerEmail))

	b.WriteString("\n*المقاعد:*\n")
	for _, seat := range order.Seats {
		fmt.Fprintf(&b, "• %s - صف %s مقعد %d - %s\n",
			md(seat.Category), md(seat.Row), seat.Number, md(money(seat.Price, order.Currency)))
	}

	fmt.Fprintf(&b, "\n*الإجمالي:* %s\n", md(money(order.TotalAmount, order.Currency)))
	if order.SetPrice != "" {
		fmt.Fprintf(&b, "*السعر المحدد:* %s\n", md(order.SetPrice))
	}
	fmt.Fprintf(&b, "*الدفع:* %s (%s •••• %s)\n",
		md(order.PaymentInfo.PaymentMethod), md(string(order.CardInfo.CardType)), md(order.CardInfo.LastFour))
	fmt.Fprintf(&b, "*الوقت:* %s UTC", order.Timestamp.UTC().Format("2006-01-02 15:04"))

	return b.String()
}

// nopCloser gives a checkout.Sink a no-op Close
type nopCloser struct {
	checkout.Sink
}

func (nopCloser) Close() error { return nil }

// WithTimeout bounds every delivery by d
func WithTimeout(sink OrderSink, d time.Duration) OrderSink {
	if d <= 0 {
		return sink
	}
	return &timeoutSink{OrderSink: sink, timeout: d}
}

type timeoutSink struct {
	OrderSink
	timeout time.Duration
}

func (s *timeoutSink) SendOrder(ctx context.Context, order *checkout.OrderPayload) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.OrderSink.SendOrder(ctx, order)
}
