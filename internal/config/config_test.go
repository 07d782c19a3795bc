package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "user:pw@tcp(127.0.0.1:3306)/clubhouse?parseTime=True")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("JOIN_PASSCODE", "open sesame")
	t.Setenv("ADMIN_PASSCODE", "let me in")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "127.0.0.1:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, "clubhouse.audit", cfg.Kafka.Topic)
	assert.Empty(t, cfg.Kafka.Brokers)
}

func TestLoadMissingSecrets(t *testing.T) {
	tests := []string{"DATABASE_DSN", "SESSION_SECRET", "JOIN_PASSCODE", "ADMIN_PASSCODE"}
	for _, missing := range tests {
		t.Run(missing, func(t *testing.T) {
			setRequired(t)
			t.Setenv(missing, "")
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadKafkaBrokers(t *testing.T) {
	setRequired(t)
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.Kafka.Brokers)
}

func TestLoadBadNumbers(t *testing.T) {
	setRequired(t)
	t.Setenv("REDIS_DB", "not-a-number")
	_, err := Load()
	assert.Error(t, err)

	setRequired(t)
	t.Setenv("REDIS_DB", "")
	t.Setenv("SMTP_PORT", "nope")
	_, err = Load()
	assert.Error(t, err)
}
