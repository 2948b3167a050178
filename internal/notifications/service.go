package notifications

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/checkout"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/config"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/logger"
)

// Service owns the configured order sink and, in Kafka mode, the relay that
// forwards published orders to Telegram.
type Service struct {
	sink    OrderSink
	relay   *OrderRelay
	workers int
	mode    string
	log     *logger.Logger
}

// NewService builds the sink selected by cfg.Mode. Telegram without a
// token degrades to the log sink.
func NewService(cfg config.NotifyConfig, log *logger.Logger) (*Service, error) {
	if log == nil {
		log = logger.GetDefault()
	}
	log = log.WithComponent("notifications")

	mode := strings.ToLower(strings.TrimSpace(cfg.Mode))
	s := &Service{mode: mode, workers: cfg.KafkaWorkers, log: log}

	switch mode {
	case ModeTelegram, "":
		if cfg.TelegramToken == "" {
			log.Warn("TELEGRAM_BOT_TOKEN not set, orders go to the log")
			s.mode = ModeLog
			s.sink = NewLogSink(log)
			break
		}
		tg, err := NewTelegramSink(cfg.TelegramToken, cfg.TelegramChatID, log)
		if err != nil {
			return nil, err
		}
		s.mode = ModeTelegram
		s.sink = tg

	case ModeKafka:
		pc := DefaultKafkaProducerConfig()
		pc.Brokers = cfg.KafkaBrokers
		pc.Topic = cfg.KafkaTopic
		kafka, err := NewKafkaSink(pc, log)
		if err != nil {
			return nil, err
		}
		s.sink = kafka

		if cfg.KafkaRelay {
			tg, err := NewTelegramSink(cfg.TelegramToken, cfg.TelegramChatID, log)
			if err != nil {
				_ = kafka.Close()
				return nil, err
			}
			cc := DefaultConsumerConfig()
			cc.Brokers = cfg.KafkaBrokers
			cc.Topics = []string{cfg.KafkaTopic}
			cc.GroupID = cfg.KafkaGroupID
			cc.MaxRetries = cfg.KafkaMaxRetries
			relay, err := NewOrderRelay(cc, tg, log)
			if err != nil {
				_ = kafka.Close()
				return nil, err
			}
			s.relay = relay
		}

	case ModeAMQP:
		s.sink = NewAMQPSink(cfg.AMQPURL, cfg.AMQPQueue, log)

	case ModeLog:
		s.sink = NewLogSink(log)

	default:
		return nil, fmt.Errorf("unknown NOTIFY_MODE %q", cfg.Mode)
	}

	s.sink = WithTimeout(s.sink, cfg.SendTimeout)
	log.Info("order sink ready", slog.String("mode", s.mode), slog.Bool("relay", s.relay != nil))
	return s, nil
}

// NewServiceWithSink wraps an existing sink; used by tests and tooling
func NewServiceWithSink(sink checkout.Sink, log *logger.Logger) *Service {
	if log == nil {
		log = logger.GetDefault()
	}
	orderSink, ok := sink.(OrderSink)
	if !ok {
		orderSink = nopCloser{sink}
	}
	return &Service{sink: orderSink, mode: "custom", log: log}
}

func (s *Service) Mode() string { return s.mode }

// SendOrder satisfies checkout.Sink
func (s *Service) SendOrder(ctx context.Context, order *checkout.OrderPayload) error {
	if order == nil {
		return errors.New("empty order")
	}
	return s.sink.SendOrder(ctx, order)
}

// Start runs the Kafka relay if one is configured
func (s *Service) Start(ctx context.Context) {
	if s.relay != nil {
		s.relay.Start(ctx, s.workers)
	}
}

func (s *Service) Close() error {
	var errs []error
	if s.relay != nil {
		if err := s.relay.Stop(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.sink.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
