package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/IBM/sarama"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/checkout"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/logger"
)

type ConsumerConfig struct {
	Brokers              []string
	GroupID              string
	Topics               []string
	SessionTimeoutMs     int
	HeartbeatMs          int
	RetryBackoffMs       int
	MaxProcessingTime    time.Duration
	OffsetOldest         bool
	MaxRetries           int
	RetryBackoffDuration time.Duration
}

func DefaultConsumerConfig() *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:              []string{"localhost:9092"},
		GroupID:              "arena-order-relay",
		Topics:               []string{"arena-orders"},
		SessionTimeoutMs:     30000,
		HeartbeatMs:          3000,
		RetryBackoffMs:       100,
		MaxProcessingTime:    time.Minute,
		OffsetOldest:         true,
		MaxRetries:           3,
		RetryBackoffDuration: time.Second,
	}
}

// OrderRelay consumes published orders and forwards them to a downstream
// sink, typically Telegram. Delivery is retried with exponential backoff.
type OrderRelay struct {
	consumerGroup sarama.ConsumerGroup
	config        *ConsumerConfig
	downstream    checkout.Sink
	log           *logger.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewOrderRelay(config *ConsumerConfig, downstream checkout.Sink, log *logger.Logger) (*OrderRelay, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Consumer.Group.Session.Timeout = time.Duration(config.SessionTimeoutMs) * time.Millisecond
	saramaConfig.Consumer.Group.Heartbeat.Interval = time.Duration(config.HeartbeatMs) * time.Millisecond
	saramaConfig.Consumer.Retry.Backoff = time.Duration(config.RetryBackoffMs) * time.Millisecond
	saramaConfig.Consumer.MaxProcessingTime = config.MaxProcessingTime
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second

	if config.OffsetOldest {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	}

	consumerGroup, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return newOrderRelay(consumerGroup, config, downstream, log), nil
}

func newOrderRelay(group sarama.ConsumerGroup, config *ConsumerConfig, downstream checkout.Sink, log *logger.Logger) *OrderRelay {
	if log == nil {
		log = logger.GetDefault()
	}
	return &OrderRelay{
		consumerGroup: group,
		config:        config,
		downstream:    downstream,
		log:           log.WithComponent("order-relay"),
	}
}

// Start launches numWorkers consumer loops; they run until Stop or ctx is done
func (r *OrderRelay) Start(ctx context.Context, numWorkers int) {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	ctx, r.cancel = context.WithCancel(ctx)

	r.log.Info("starting order relay workers", slog.Int("workers", numWorkers), slog.Any("topics", r.config.Topics))

	if r.consumerGroup != nil {
		go r.handleErrors()
	}

	for i := 0; i < numWorkers; i++ {
		r.wg.Add(1)
		go func(workerID int) {
			defer r.wg.Done()
			r.runWorker(ctx, workerID)
		}(i)
	}
}

func (r *OrderRelay) runWorker(ctx context.Context, workerID int) {
	handler := &relayHandler{relay: r, workerID: workerID}

	for {
		select {
		case <-ctx.Done():
			r.log.Info("relay worker shutting down", slog.Int("worker", workerID))
			return
		default:
			if err := r.consumerGroup.Consume(ctx, r.config.Topics, handler); err != nil {
				r.log.Error("relay worker consume failed", slog.Int("worker", workerID), slog.String("error", err.Error()))
				select {
				case <-time.After(time.Second):
				case <-ctx.Done():
					return
				}
			}
		}
	}
}

func (r *OrderRelay) handleErrors() {
	for err := range r.consumerGroup.Errors() {
		r.log.Error("consumer group error", slog.String("error", err.Error()))
	}
}

// Stop cancels the workers, waits for them and closes the group
func (r *OrderRelay) Stop() error {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()

	if r.consumerGroup == nil {
		return nil
	}
	if err := r.consumerGroup.Close(); err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}
	r.log.Info("order relay stopped")
	return nil
}

type relayHandler struct {
	relay    *OrderRelay
	workerID int
}

func (h *relayHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *relayHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *relayHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok || message == nil {
				return nil
			}

			if err := h.relay.processMessage(session.Context(), message); err != nil {
				h.relay.log.Error("failed to relay order",
					slog.Int("worker", h.workerID),
					slog.Int64("offset", message.Offset),
					slog.String("error", err.Error()),
				)
				continue
			}
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

func (r *OrderRelay) processMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	order, err := unmarshalOrder(message.Value)
	if err != nil {
		// A poison message would block the partition forever
		r.log.Error("dropping malformed order message",
			slog.String("topic", message.Topic),
			slog.Int64("offset", message.Offset),
			slog.String("error", err.Error()),
		)
		return nil
	}

	return r.executeWithRetry(ctx, order)
}

func (r *OrderRelay) executeWithRetry(ctx context.Context, order *checkout.OrderPayload) error {
	maxRetries := r.config.MaxRetries
	backoff := r.config.RetryBackoffDuration

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := r.downstream.SendOrder(ctx, order)
		if err == nil {
			if attempt > 0 {
				r.log.Info("order relayed after retries", slog.String("booking_id", order.BookingID), slog.Int("retries", attempt))
			}
			return nil
		}

		if attempt == maxRetries {
			return fmt.Errorf("order %s not relayed after %d attempts: %w", order.BookingID, maxRetries+1, err)
		}

		// Exponential backoff
		delay := backoff * time.Duration(1<<attempt)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}
