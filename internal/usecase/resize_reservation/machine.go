// Package resize_reservation конечный автомат жеста изменения размера
// бронирования за левый или правый край. В отличие от перемещения, этот жест
// коммитит инкрементально на каждом движении указателя: обратная связь должна
// следовать за курсором в реальном времени без отдельного слоя превью.
package resize_reservation

import (
	"math"

	"github.com/TomyMarengo/Woki-Challenge/internal/domain"
	"github.com/TomyMarengo/Woki-Challenge/internal/store"
	"github.com/TomyMarengo/Woki-Challenge/internal/timegrid"
	"github.com/TomyMarengo/Woki-Challenge/pkg/ptr"
)

// Machine автомат жеста изменения размера. Не потокобезопасен: события
// указателя обрабатываются строго по одному.
type Machine struct {
	store   Store
	logger  Logger
	metrics Metrics
	state   *State
}

// NewMachine создает автомат изменения размера
func NewMachine(store Store, logger Logger, metrics Metrics) *Machine {
	return &Machine{
		store:   store,
		logger:  logger,
		metrics: metrics,
	}
}

// Active сообщает, идет ли жест
func (m *Machine) Active() bool {
	return m.state != nil
}

// StateSnapshot возвращает копию захваченного состояния (nil в IDLE)
func (m *Machine) StateSnapshot() *State {
	if m.state == nil {
		return nil
	}
	copied := *m.state
	return &copied
}

// Start переход IDLE -> ACTIVE на pointer-down по краю блока
func (m *Machine) Start(reservationID string, edge Edge, originX float64) error {
	if m.state != nil {
		return ErrGestureActive
	}
	if edge != EdgeLeft && edge != EdgeRight {
		return ErrUnknownEdge
	}

	res := m.store.ByID(reservationID)
	if res == nil {
		return ErrReservationNotFound
	}

	m.state = &State{
		ReservationID:           res.ID,
		Edge:                    edge,
		OriginX:                 originX,
		OriginalDurationMinutes: res.DurationMinutes,
		OriginalStartSlot:       timegrid.InstantToSlot(res.StartTime),
	}
	m.logger.Info("resize: started for reservation=%s edge=%s", res.ID, edge)
	return nil
}

// Move обрабатывает движение указателя и при изменении немедленно коммитит
// новую границу в хранилище. Возвращает true, если правка была применена.
func (m *Machine) Move(clientX, slotWidth float64) (bool, error) {
	if m.state == nil {
		return false, ErrNoActiveGesture
	}

	deltaSlots := int(math.Round((clientX - m.state.OriginX) / slotWidth))
	if deltaSlots == 0 {
		return false, nil
	}

	res := m.store.ByID(m.state.ReservationID)
	if res == nil {
		return false, ErrReservationNotFound
	}

	switch m.state.Edge {
	case EdgeRight:
		return m.resizeRight(res, deltaSlots)
	default:
		return m.resizeLeft(res, deltaSlots)
	}
}

// resizeRight двигает время окончания: длительность зажимается в
// [MinDurationMinutes, MaxDurationMinutes], начало не меняется
func (m *Machine) resizeRight(res *domain.Reservation, deltaSlots int) (bool, error) {
	newDuration := clampDuration(m.state.OriginalDurationMinutes + deltaSlots*domain.SlotMinutes)
	if newDuration == res.DurationMinutes {
		return false, nil
	}

	newEndSlot := m.state.OriginalStartSlot + newDuration/domain.SlotMinutes
	newEnd, err := timegrid.SlotToInstant(m.store.View().CurrentDate, newEndSlot)
	if err != nil {
		return false, err
	}

	if err := m.store.Update(res.ID, store.Patch{
		EndTime:         ptr.Ptr(newEnd),
		DurationMinutes: ptr.Ptr(newDuration),
	}); err != nil {
		return false, err
	}

	m.state.Edited = true
	m.logger.Info("resize: reservation=%s right edge -> duration=%d", res.ID, newDuration)
	return true, nil
}

// resizeLeft двигает время начала при фиксированном конце: новый стартовый
// слот зажимается в [0, endSlot-2] (минимум 2 слота = 30 минут), правка
// применяется только если длительность в границах и старт реально сдвинулся
func (m *Machine) resizeLeft(res *domain.Reservation, deltaSlots int) (bool, error) {
	currentStartSlot := timegrid.InstantToSlot(res.StartTime)
	// Конечный слот производится из начала и длительности: конец ровно в
	// закрытие нормализуется в полночь следующего дня, и производная по
	// настенным часам зажалась бы в слот 0
	endSlot := currentStartSlot + res.DurationMinutes/domain.SlotMinutes

	newStartSlot := m.state.OriginalStartSlot + deltaSlots
	if newStartSlot > endSlot-minRetainedSlots {
		newStartSlot = endSlot - minRetainedSlots
	}
	if newStartSlot < 0 {
		newStartSlot = 0
	}

	newDuration := (endSlot - newStartSlot) * domain.SlotMinutes
	if newDuration < domain.MinDurationMinutes || newDuration > domain.MaxDurationMinutes ||
		newStartSlot == currentStartSlot {
		return false, nil
	}

	newStart, err := timegrid.SlotToInstant(m.store.View().CurrentDate, newStartSlot)
	if err != nil {
		return false, err
	}

	if err := m.store.Update(res.ID, store.Patch{
		StartTime:       ptr.Ptr(newStart),
		DurationMinutes: ptr.Ptr(newDuration),
	}); err != nil {
		return false, err
	}

	m.state.Edited = true
	m.logger.Info("resize: reservation=%s left edge -> slot=%d duration=%d", res.ID, newStartSlot, newDuration)
	return true, nil
}

// End переход ACTIVE -> IDLE на pointer-up или pointer-leave.
// Транзитные координаты отбрасываются; дальнейших коммитов нет - правки уже
// произошли инкрементально.
func (m *Machine) End() {
	if m.state == nil {
		return
	}
	outcome := "abort"
	if m.state.Edited {
		outcome = "commit"
	}
	m.logger.Info("resize: ended for reservation=%s outcome=%s", m.state.ReservationID, outcome)
	m.state = nil
	if m.metrics != nil {
		m.metrics.IncGesture("resize", outcome)
	}
}

// Cancel обрабатывает потерю захвата указателя как неявный pointer-up
func (m *Machine) Cancel() {
	m.End()
}

func clampDuration(minutes int) int {
	if minutes < domain.MinDurationMinutes {
		return domain.MinDurationMinutes
	}
	if minutes > domain.MaxDurationMinutes {
		return domain.MaxDurationMinutes
	}
	return minutes
}
