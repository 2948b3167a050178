package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "/api/v1", cfg.GetAPIBasePath())
	assert.Equal(t, 7*time.Minute, cfg.Reservation.SelectionWindow)
	assert.Equal(t, 7*time.Minute, cfg.Reservation.CheckoutWindow)
	assert.Equal(t, 10*time.Minute, cfg.Reservation.PaymentWindow)
	assert.Equal(t, "SAR", cfg.Defaults.Currency)
	assert.Equal(t, "admin", cfg.Defaults.AdminUsername)
	assert.Equal(t, 250.0, cfg.Defaults.BronzePrice)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("RESERVATION_PAYMENT_WINDOW", "90s")
	t.Setenv("NOTIFY_MODE", "KAFKA")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("TELEGRAM_CHAT_ID", "-100123")
	t.Setenv("DB_HOST", "db")

	cfg := Load()

	assert.Equal(t, 90*time.Second, cfg.Reservation.PaymentWindow)
	assert.Equal(t, "kafka", cfg.Notify.Mode)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Notify.KafkaBrokers)
	assert.Equal(t, int64(-100123), cfg.Notify.TelegramChatID)
	assert.Contains(t, cfg.Database.DSN, "host=db ")
}
