package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/IBM/sarama"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/checkout"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/logger"
)

// KafkaProducerConfig contains configuration for the Kafka order producer
type KafkaProducerConfig struct {
	Brokers          []string
	Topic            string
	RetryMax         int
	TimeoutMs        int
	RequiredAcks     sarama.RequiredAcks
	CompressionType  sarama.CompressionCodec
	IdempotentWrites bool
	MaxMessageBytes  int
}

// DefaultKafkaProducerConfig returns a default producer configuration
func DefaultKafkaProducerConfig() *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:          []string{"localhost:9092"},
		Topic:            "arena-orders",
		RetryMax:         3,
		TimeoutMs:        10000,             // 10 seconds
		RequiredAcks:     sarama.WaitForAll, // Wait for all in-sync replicas
		CompressionType:  sarama.CompressionSnappy,
		IdempotentWrites: true,
		MaxMessageBytes:  1000000, // 1MB
	}
}

// KafkaSink publishes orders to a topic, keyed by booking id
type KafkaSink struct {
	producer sarama.SyncProducer
	topic    string
	log      *logger.Logger
}

// NewKafkaSink creates a new Kafka order producer
func NewKafkaSink(config *KafkaProducerConfig, log *logger.Logger) (*KafkaSink, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.CompressionType
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = time.Duration(config.TimeoutMs) * time.Millisecond
	saramaConfig.Producer.Idempotent = config.IdempotentWrites
	saramaConfig.Producer.MaxMessageBytes = config.MaxMessageBytes

	// Idempotent producers need a single in-flight request
	if config.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return NewKafkaSinkWithProducer(producer, config.Topic, log), nil
}

func NewKafkaSinkWithProducer(producer sarama.SyncProducer, topic string, log *logger.Logger) *KafkaSink {
	if log == nil {
		log = logger.GetDefault()
	}
	return &KafkaSink{producer: producer, topic: topic, log: log}
}

func (k *KafkaSink) SendOrder(ctx context.Context, order *checkout.OrderPayload) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := marshalOrder(order)
	if err != nil {
		return err
	}

	message := &sarama.ProducerMessage{
		Topic:     k.topic,
		Key:       sarama.StringEncoder(order.BookingID),
		Value:     sarama.ByteEncoder(value),
		Headers:   orderHeaders(order),
		Timestamp: order.Timestamp,
	}

	partition, offset, err := k.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send order to Kafka: %w", err)
	}

	k.log.Info("order published to Kafka",
		slog.String("topic", k.topic),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
		slog.String("booking_id", order.BookingID),
	)
	return nil
}

// orderHeaders creates Kafka headers for an order
func orderHeaders(order *checkout.OrderPayload) []sarama.RecordHeader {
	return []sarama.RecordHeader{
		{Key: []byte("booking_id"), Value: []byte(order.BookingID)},
		{Key: []byte("event_id"), Value: []byte(order.EventID)},
		{Key: []byte("content_type"), Value: []byte("application/json")},
		{Key: []byte("producer"), Value: []byte("arena-orders")},
		{Key: []byte("version"), Value: []byte("1.0")},
	}
}

// Close closes the Kafka producer
func (k *KafkaSink) Close() error {
	if k.producer == nil {
		return nil
	}
	if err := k.producer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka producer: %w", err)
	}
	return nil
}
