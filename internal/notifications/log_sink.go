package notifications

import (
	"context"
	"log/slog"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/checkout"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/logger"
)

// LogSink writes orders to the structured log. Meant for development.
type LogSink struct {
	log *logger.Logger
}

func NewLogSink(log *logger.Logger) *LogSink {
	if log == nil {
		log = logger.GetDefault()
	}
	return &LogSink{log: log}
}

func (l *LogSink) SendOrder(ctx context.Context, order *checkout.OrderPayload) error {
	l.log.InfoContext(ctx, "order received",
		slog.String("booking_id", order.BookingID),
		slog.String("event_id", order.EventID),
		slog.String("customer", order.CustomerName),
		slog.Int("seats", len(order.Seats)),
		slog.Float64("total", order.TotalAmount),
		slog.String("card", string(order.CardInfo.CardType)+" "+order.CardInfo.LastFour),
	)
	return nil
}

func (l *LogSink) Close() error { return nil }
