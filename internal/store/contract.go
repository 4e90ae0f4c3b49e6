package store

// Metrics интерфейс для метрик мутаций хранилища (см. pkg/metrics).
// Может быть nil - тогда метрики не собираются.
type Metrics interface {
	IncMutation(op string)
	SetReservations(n int)
}
