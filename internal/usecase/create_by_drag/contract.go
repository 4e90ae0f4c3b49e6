package create_by_drag

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Metrics интерфейс для метрик жестов. Может быть nil.
type Metrics interface {
	IncGesture(gesture, outcome string)
}
