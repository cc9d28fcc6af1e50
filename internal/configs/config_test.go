package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "DATABASE_URL", "DB_MAX_CONNS", "DB_AUTO_MIGRATE", "PORT", "CORS_ALLOWED_ORIGINS",
		"RABBITMQ_ENABLED", "RABBITMQ_URL", "RABBITMQ_EXCHANGE", "STDOUT_LOG_LEVEL", "STDOUT_LOG_JSON",
		"FLUENTBIT_ENABLED", "FLUENTBIT_HOST", "FLUENTBIT_PORT", "FLUENTBIT_LOG_LEVEL", "FEATURED_DEFAULT_LIMIT",
	} {
		// t.Setenv восстановит исходное значение после теста
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/listings")

	cfg, notes, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	assert.Equal(t, "listing-service", cfg.AppName)
	assert.Equal(t, "5000", cfg.Rest.Port)
	assert.Equal(t, []string{"*"}, cfg.Rest.AllowedOrigins)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.RabbitMQ.Enabled)
	assert.Equal(t, "listing.events", cfg.RabbitMQ.Exchange)
	assert.False(t, cfg.FluentBit.Enabled)
	assert.Equal(t, "debug", cfg.StdoutLogger.Level)
	assert.Equal(t, 10, cfg.Listing.FeaturedDefaultLimit)
}

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	clearEnv(t)

	_, _, err := LoadConfig(missingEnvFile(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadConfigCollectsParseErrors(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/listings")
	t.Setenv("DB_AUTO_MIGRATE", "sometimes")
	t.Setenv("FEATURED_DEFAULT_LIMIT", "ten")
	t.Setenv("PORT", "http")

	_, _, err := LoadConfig(missingEnvFile(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_AUTO_MIGRATE")
	assert.Contains(t, err.Error(), "FEATURED_DEFAULT_LIMIT")
	assert.Contains(t, err.Error(), "PORT")
}

func TestLoadConfigRabbitRequiresURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/listings")
	t.Setenv("RABBITMQ_ENABLED", "true")

	_, _, err := LoadConfig(missingEnvFile(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RABBITMQ_URL")
}

func TestLoadConfigFluentWithoutHostIsDisabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/listings")
	t.Setenv("FLUENTBIT_ENABLED", "true")

	cfg, notes, err := LoadConfig(missingEnvFile(t))
	require.NoError(t, err)
	assert.False(t, cfg.FluentBit.Enabled)
	assert.Len(t, notes, 2)
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	content := "DATABASE_URL=postgres://db/listings\nPORT=8080\nCORS_ALLOWED_ORIGINS=http://a.com, http://b.com\nRABBITMQ_ENABLED=true\nRABBITMQ_URL=amqp://guest:guest@mq:5672/\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, notes, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Empty(t, notes)
	assert.Equal(t, "postgres://db/listings", cfg.Database.URL)
	assert.Equal(t, "8080", cfg.Rest.Port)
	assert.Equal(t, []string{"http://a.com", "http://b.com"}, cfg.Rest.AllowedOrigins)
	assert.True(t, cfg.RabbitMQ.Enabled)
}
