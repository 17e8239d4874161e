package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "static", cfg.CatalogSource)
	assert.Equal(t, "file", cfg.SnapshotStore)
	assert.Equal(t, "cart-snapshot.json", cfg.SnapshotPath)
	assert.Equal(t, "czk", cfg.Currency)
	assert.Equal(t, "https://api.stripe.com", cfg.PaymentAPIBase)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "storefront-events", cfg.KafkaTopic)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "30")
	t.Setenv("CATALOG_SOURCE", "postgres")
	t.Setenv("SNAPSHOT_STORE", "redis")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("PAYMENT_SECRET_KEY", "sk_test_abc")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "postgres", cfg.CatalogSource)
	assert.Equal(t, "redis", cfg.SnapshotStore)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "sk_test_abc", cfg.PaymentSecretKey)
}

func TestLoad_InvalidTimeoutFallsBack(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}
