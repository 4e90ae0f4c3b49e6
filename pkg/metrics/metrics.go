package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик движка таймлайна
type Metrics struct {
	// GesturesTotal количество завершенных жестов по типу и исходу
	// gesture: move | resize | create, outcome: commit | abort
	GesturesTotal *prometheus.CounterVec

	// ConflictsTotal количество обнаруженных advisory-конфликтов по причине
	ConflictsTotal *prometheus.CounterVec

	// StoreMutationsTotal количество мутаций хранилища по операции
	// op: add | update | remove | replace | reset
	StoreMutationsTotal *prometheus.CounterVec

	// ReservationsGauge текущее количество бронирований в хранилище
	ReservationsGauge prometheus.Gauge
}

// New создает и регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	m := &Metrics{
		GesturesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "timeline_gestures_total",
			Help:        "Completed pointer gestures by type and outcome",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"gesture", "outcome"}),

		ConflictsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "timeline_conflicts_total",
			Help:        "Advisory conflicts detected by reason",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"reason"}),

		StoreMutationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "timeline_store_mutations_total",
			Help:        "Reservation store mutations by operation",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"op"}),

		ReservationsGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "timeline_reservations",
			Help:        "Current number of reservations in the store",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}),
	}

	prometheus.MustRegister(
		m.GesturesTotal,
		m.ConflictsTotal,
		m.StoreMutationsTotal,
		m.ReservationsGauge,
	)

	return m
}

// IncGesture инкрементирует счетчик жестов
func (m *Metrics) IncGesture(gesture, outcome string) {
	m.GesturesTotal.WithLabelValues(gesture, outcome).Inc()
}

// IncConflict инкрементирует счетчик конфликтов
func (m *Metrics) IncConflict(reason string) {
	m.ConflictsTotal.WithLabelValues(reason).Inc()
}

// IncMutation инкрементирует счетчик мутаций хранилища
func (m *Metrics) IncMutation(op string) {
	m.StoreMutationsTotal.WithLabelValues(op).Inc()
}

// SetReservations обновляет gauge количества бронирований
func (m *Metrics) SetReservations(n int) {
	m.ReservationsGauge.Set(float64(n))
}
