package port

// Fields — структурированные данные для записи в лог.
type Fields map[string]interface{}

// LoggerPort абстрагирует ядро приложения от конкретной реализации логгера.
type LoggerPort interface {
	// Info записывает информационное сообщение.
	Info(msg string, fields Fields)

	// Warn записывает предупреждение.
	Warn(msg string, fields Fields)

	// Error записывает ошибку вместе с объектом error.
	Error(msg string, err error, fields Fields)

	Debug(msg string, fields Fields)

	// WithFields создает новый логгер с уже добавленным контекстом
	// (например, trace_id или именем компонента).
	WithFields(fields Fields) LoggerPort
}
