package resize_reservation

import (
	"github.com/TomyMarengo/Woki-Challenge/internal/domain"
	"github.com/TomyMarengo/Woki-Challenge/internal/store"
)

// Store интерфейс хранилища, используемый жестом изменения размера
type Store interface {
	ByID(id string) *domain.Reservation
	View() store.View
	Update(id string, patch store.Patch) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics интерфейс для метрик жестов. Может быть nil.
type Metrics interface {
	IncGesture(gesture, outcome string)
}
