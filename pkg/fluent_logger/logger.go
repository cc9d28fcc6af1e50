package fluentlogger

import (
	"fmt"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// Config - параметры подключения к Fluent Bit
type Config struct {
	Host    string // "127.0.0.1" или "fluent-bit" в Docker
	Port    int    // обычно 24224
	Timeout time.Duration
	// Async не блокирует запрос, если Fluent Bit недоступен
	Async bool
}

// NewClient создает клиент Fluent Bit.
// Соединение устанавливается лениво, ошибки появятся при первой отправке.
func NewClient(cfg Config) (*fluent.Fluent, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("fluent bit host is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	client, err := fluent.New(fluent.Config{
		FluentHost: cfg.Host,
		FluentPort: cfg.Port,
		Timeout:    timeout,
		Async:      cfg.Async,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fluent bit client: %w", err)
	}
	return client, nil
}
