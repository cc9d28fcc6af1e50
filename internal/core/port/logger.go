package port

// Fields - структурированные поля записи лога
type Fields map[string]interface{}

// LoggerPort - контракт логгера, которым пользуются ядро и адаптеры
type LoggerPort interface {
	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, err error, fields Fields)

	// WithFields возвращает логгер, который добавляет fields к каждой записи
	WithFields(fields Fields) LoggerPort
}
