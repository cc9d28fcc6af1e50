package configs

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type DatabaseConfig struct {
	URL         string
	MaxConns    int
	AutoMigrate bool
}

type RabbitMQConfig struct {
	Enabled  bool
	URL      string
	Exchange string
}

type RESTConfig struct {
	Port           string
	AllowedOrigins []string
}

type StdoutLogConfig struct {
	Level string
	JSON  bool
}

type FluentBitConfig struct {
	Enabled bool
	Host    string
	Port    int
	Level   string
}

type ListingConfig struct {
	FeaturedDefaultLimit int
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	AppName      string
	Database     DatabaseConfig
	RabbitMQ     RabbitMQConfig
	Rest         RESTConfig
	StdoutLogger StdoutLogConfig
	FluentBit    FluentBitConfig
	Listing      ListingConfig
}

// LoadConfig читает .env (если он есть) и переменные окружения.
// Отсутствие .env не ошибка: в контейнере все приходит через окружение.
// Некорректные значения собираются и возвращаются одной ошибкой.
func LoadConfig(envPath ...string) (*AppConfig, []string, error) {
	var notes []string
	if err := godotenv.Load(envPath...); err != nil {
		notes = append(notes, fmt.Sprintf("could not load .env file (path: %v): %v", envPath, err))
	}

	var errs []error
	env := envReader{errs: &errs}

	cfg := &AppConfig{}
	cfg.AppName = env.String("APP_NAME", "listing-service")

	cfg.Database.URL = env.String("DATABASE_URL", "")
	if cfg.Database.URL == "" {
		errs = append(errs, fmt.Errorf("DATABASE_URL environment variable is required"))
	}
	cfg.Database.MaxConns = env.Int("DB_MAX_CONNS", 0)
	cfg.Database.AutoMigrate = env.Bool("DB_AUTO_MIGRATE", true)

	cfg.Rest.Port = env.String("PORT", "5000")
	if _, err := strconv.Atoi(cfg.Rest.Port); err != nil {
		errs = append(errs, fmt.Errorf("PORT must be a number, got %q", cfg.Rest.Port))
	}
	cfg.Rest.AllowedOrigins = splitList(env.String("CORS_ALLOWED_ORIGINS", "*"))

	cfg.RabbitMQ.Enabled = env.Bool("RABBITMQ_ENABLED", false)
	cfg.RabbitMQ.URL = env.String("RABBITMQ_URL", "")
	cfg.RabbitMQ.Exchange = env.String("RABBITMQ_EXCHANGE", "listing.events")
	if cfg.RabbitMQ.Enabled && cfg.RabbitMQ.URL == "" {
		errs = append(errs, fmt.Errorf("RABBITMQ_URL is required when RABBITMQ_ENABLED is true"))
	}

	cfg.StdoutLogger.Level = env.String("STDOUT_LOG_LEVEL", "debug")
	cfg.StdoutLogger.JSON = env.Bool("STDOUT_LOG_JSON", false)

	cfg.FluentBit.Enabled = env.Bool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = env.String("FLUENTBIT_HOST", "")
		if cfg.FluentBit.Host == "" {
			notes = append(notes, "FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = env.Int("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = env.String("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.Listing.FeaturedDefaultLimit = env.Int("FEATURED_DEFAULT_LIMIT", 10)
	if cfg.Listing.FeaturedDefaultLimit <= 0 {
		errs = append(errs, fmt.Errorf("FEATURED_DEFAULT_LIMIT must be positive"))
	}

	if len(errs) > 0 {
		return nil, notes, errors.Join(errs...)
	}
	return cfg, notes, nil
}

// envReader читает переменные с дефолтами и копит ошибки разбора
type envReader struct {
	errs *[]error
}

func (e envReader) String(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func (e envReader) Int(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(valueStr) == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		*e.errs = append(*e.errs, fmt.Errorf("environment variable %s (value: %s) could not be parsed as int: %w", key, valueStr, err))
		return defaultValue
	}
	return value
}

func (e envReader) Bool(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(valueStr) == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(strings.TrimSpace(valueStr))
	if err != nil {
		*e.errs = append(*e.errs, fmt.Errorf("environment variable %s (value: %s) could not be parsed as bool: %w", key, valueStr, err))
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			result = append(result, p)
		}
	}
	return result
}
