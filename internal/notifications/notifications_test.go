package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abu-ellil/arena-app-abosaleh/internal/checkout"
	"github.com/Abu-ellil/arena-app-abosaleh/internal/shared/config"
	"github.com/Abu-ellil/arena-app-abosaleh/pkg/logger"
)

func sampleOrder() *checkout.OrderPayload {
	return &checkout.OrderPayload{
		EventID:       "evt-1",
		EventTitle:    "ليلة طرب",
		CustomerName:  "sara_k",
		CustomerPhone: "555",
		CustomerEmail: "s@x.io",
		Seats: []checkout.OrderSeat{
			{ID: "seat-A-1", Row: "A", Number: 1, Category: "VIP", Price: 400},
			{ID: "seat-A-2", Row: "A", Number: 2, Category: "Royal", Price: 500},
		},
		TotalAmount: 900,
		Currency:    "SAR",
		Timestamp:   time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC),
		BookingID:   "booking-1741977000000",
		CardInfo:    checkout.CardSummary{CardType: checkout.CardVisa, LastFour: "1111"},
		PaymentInfo: checkout.PaymentInfo{CardLastFour: "1111", PaymentMethod: checkout.PaymentMethod},
	}
}

type recordingSink struct {
	mu     sync.Mutex
	fails  int
	calls  int
	orders []*checkout.OrderPayload
}

func (r *recordingSink) SendOrder(ctx context.Context, order *checkout.OrderPayload) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.calls <= r.fails {
		return errors.New("downstream unavailable")
	}
	r.orders = append(r.orders, order)
	return nil
}

func TestFormatOrderMessage(t *testing.T) {
	msg := FormatOrderMessage(sampleOrder())

	assert.Contains(t, msg, "ليلة طرب")
	assert.Contains(t, msg, "*رقم الحجز:* booking-1741977000000")
	assert.Contains(t, msg, `sara\_k`)
	assert.Contains(t, msg, "صف A مقعد 1 - 400 SAR")
	assert.Contains(t, msg, "900 SAR")
	assert.Contains(t, msg, "•••• 1111")
}

func TestFormatOrderMessage_EscapesCallerFields(t *testing.T) {
	order := sampleOrder()
	order.BookingID = "booking_`1`"
	order.CardInfo.LastFour = "11*1"
	order.PaymentInfo.PaymentMethod = "credit_card"

	msg := FormatOrderMessage(order)

	assert.Contains(t, msg, "booking\\_\\`1\\`")
	assert.Contains(t, msg, "credit\\_card")
	assert.Contains(t, msg, "•••• 11\\*1")
	assert.NotContains(t, msg, "credit_card")
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "400 SAR", money(400, "SAR"))
	assert.Equal(t, "12.5", money(12.5, ""))
}

// fakeTelegram serves the two Bot API methods the sink touches
func fakeTelegram(t *testing.T, fail bool) (*httptest.Server, *[]string) {
	t.Helper()
	var texts []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"arena","username":"arena_bot"}}`))
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			_ = r.ParseForm()
			texts = append(texts, r.FormValue("text"))
			if fail {
				_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
				return
			}
			_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":0,"chat":{"id":42,"type":"group"}}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &texts
}

func TestTelegramSink(t *testing.T) {
	t.Run("delivers the redacted order", func(t *testing.T) {
		srv, texts := fakeTelegram(t, false)
		bot, err := tgbotapi.NewBotAPIWithClient("token", srv.URL+"/bot%s/%s", srv.Client())
		require.NoError(t, err)

		sink := NewTelegramSinkWithBot(bot, 42, logger.NewDiscard())
		require.NoError(t, sink.SendOrder(context.Background(), sampleOrder()))
		require.Len(t, *texts, 1)
		assert.Contains(t, (*texts)[0], "booking-1741977000000")
	})

	t.Run("api failure is returned", func(t *testing.T) {
		srv, _ := fakeTelegram(t, true)
		bot, err := tgbotapi.NewBotAPIWithClient("token", srv.URL+"/bot%s/%s", srv.Client())
		require.NoError(t, err)

		sink := NewTelegramSinkWithBot(bot, 42, logger.NewDiscard())
		assert.Error(t, sink.SendOrder(context.Background(), sampleOrder()))
	})

	t.Run("disabled bot refuses", func(t *testing.T) {
		sink, err := NewTelegramSink("", 42, logger.NewDiscard())
		require.NoError(t, err)
		assert.False(t, sink.Enabled())
		assert.ErrorIs(t, sink.SendOrder(context.Background(), sampleOrder()), ErrSinkDisabled)
	})
}

func TestKafkaSink(t *testing.T) {
	t.Run("publishes json keyed by booking id", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
			var order checkout.OrderPayload
			if err := json.Unmarshal(val, &order); err != nil {
				return err
			}
			if order.BookingID != "booking-1741977000000" {
				return errors.New("unexpected booking id")
			}
			return nil
		})

		sink := NewKafkaSinkWithProducer(producer, "arena-orders", logger.NewDiscard())
		require.NoError(t, sink.SendOrder(context.Background(), sampleOrder()))
		require.NoError(t, sink.Close())
	})

	t.Run("broker failure is returned", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

		sink := NewKafkaSinkWithProducer(producer, "arena-orders", logger.NewDiscard())
		assert.ErrorIs(t, sink.SendOrder(context.Background(), sampleOrder()), sarama.ErrOutOfBrokers)
		require.NoError(t, sink.Close())
	})
}

func TestOrderRelay_RetriesWithBackoff(t *testing.T) {
	downstream := &recordingSink{fails: 2}
	cfg := DefaultConsumerConfig()
	cfg.MaxRetries = 3
	cfg.RetryBackoffDuration = time.Millisecond
	relay := newOrderRelay(nil, cfg, downstream, logger.NewDiscard())

	body, err := json.Marshal(sampleOrder())
	require.NoError(t, err)

	err = relay.processMessage(context.Background(), &sarama.ConsumerMessage{Topic: "arena-orders", Value: body})
	require.NoError(t, err)
	assert.Equal(t, 3, downstream.calls)
	require.Len(t, downstream.orders, 1)
	assert.Equal(t, "booking-1741977000000", downstream.orders[0].BookingID)
}

func TestOrderRelay_GivesUp(t *testing.T) {
	downstream := &recordingSink{fails: 10}
	cfg := DefaultConsumerConfig()
	cfg.MaxRetries = 1
	cfg.RetryBackoffDuration = time.Millisecond
	relay := newOrderRelay(nil, cfg, downstream, logger.NewDiscard())

	body, _ := json.Marshal(sampleOrder())
	err := relay.processMessage(context.Background(), &sarama.ConsumerMessage{Value: body})
	assert.Error(t, err)
	assert.Equal(t, 2, downstream.calls)
}

func TestOrderRelay_DropsMalformed(t *testing.T) {
	downstream := &recordingSink{}
	relay := newOrderRelay(nil, DefaultConsumerConfig(), downstream, logger.NewDiscard())

	err := relay.processMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte("not json")})
	assert.NoError(t, err)
	assert.Equal(t, 0, downstream.calls)
}

func TestOrderPublishing(t *testing.T) {
	now := time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)
	pub, err := orderPublishing(sampleOrder(), now)
	require.NoError(t, err)

	assert.Equal(t, "application/json", pub.ContentType)
	assert.Equal(t, uint8(2), pub.DeliveryMode)
	assert.Equal(t, "booking-1741977000000", pub.MessageId)
	assert.Equal(t, now, pub.Timestamp)
	assert.NotContains(t, string(pub.Body), "cvv")
}

func TestNewService_Modes(t *testing.T) {
	svc, err := NewService(config.NotifyConfig{Mode: "log"}, logger.NewDiscard())
	require.NoError(t, err)
	assert.Equal(t, ModeLog, svc.Mode())
	assert.NoError(t, svc.SendOrder(context.Background(), sampleOrder()))
	assert.NoError(t, svc.Close())

	svc, err = NewService(config.NotifyConfig{Mode: "telegram"}, logger.NewDiscard())
	require.NoError(t, err)
	assert.Equal(t, ModeLog, svc.Mode())

	svc, err = NewService(config.NotifyConfig{Mode: "amqp", AMQPQueue: "arena.orders"}, logger.NewDiscard())
	require.NoError(t, err)
	assert.Equal(t, ModeAMQP, svc.Mode())
	assert.NoError(t, svc.Close())

	_, err = NewService(config.NotifyConfig{Mode: "pigeon"}, logger.NewDiscard())
	assert.Error(t, err)
}

func TestWithTimeout(t *testing.T) {
	slow := checkout.SinkFunc(func(ctx context.Context, order *checkout.OrderPayload) error {
		<-ctx.Done()
		return ctx.Err()
	})
	sink := WithTimeout(nopCloser{slow}, 10*time.Millisecond)
	assert.ErrorIs(t, sink.SendOrder(context.Background(), sampleOrder()), context.DeadlineExceeded)
}

func TestSendBookingRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	post := func(svc *Service, body interface{}) *httptest.ResponseRecorder {
		router := gin.New()
		SetupNotificationRoutes(router.Group("/api/v1"), NewController(svc))
		b, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/telegram", bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("ok", func(t *testing.T) {
		sink := &recordingSink{}
		w := post(NewServiceWithSink(sink, logger.NewDiscard()), BookingRequest{BookingData: sampleOrder()})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":true`)
		assert.Len(t, sink.orders, 1)
	})

	t.Run("sink failure asks for retry", func(t *testing.T) {
		sink := &recordingSink{fails: 1}
		w := post(NewServiceWithSink(sink, logger.NewDiscard()), BookingRequest{BookingData: sampleOrder()})
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), `"retry":true`)
	})

	t.Run("card fields in the request are dropped", func(t *testing.T) {
		sink := &recordingSink{}
		raw := map[string]interface{}{
			"bookingData": map[string]interface{}{
				"bookingId":  "booking-1",
				"cardNumber": "4111111111111111",
				"cvv":        "123",
			},
		}
		w := post(NewServiceWithSink(sink, logger.NewDiscard()), raw)
		require.Equal(t, http.StatusOK, w.Code)
		b, _ := json.Marshal(sink.orders[0])
		assert.NotContains(t, string(b), "4111111111111111")
		assert.NotContains(t, string(b), "cvv")
	})

	t.Run("missing booking data", func(t *testing.T) {
		w := post(NewServiceWithSink(&recordingSink{}, logger.NewDiscard()), map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
