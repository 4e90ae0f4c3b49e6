// Package move_reservation конечный автомат жеста перемещения бронирования:
// IDLE -> ACTIVE -> (COMMIT | ABORT) -> IDLE. Во время движения считается
// только превью; единственная мутация хранилища происходит на Drop.
package move_reservation

import (
	"math"

	"github.com/TomyMarengo/Woki-Challenge/internal/conflict"
	"github.com/TomyMarengo/Woki-Challenge/internal/domain"
	"github.com/TomyMarengo/Woki-Challenge/internal/store"
	"github.com/TomyMarengo/Woki-Challenge/internal/timegrid"
	"github.com/TomyMarengo/Woki-Challenge/pkg/ptr"
)

// Machine автомат жеста перемещения. Не потокобезопасен: события указателя
// обрабатываются строго по одному, одновременно активен максимум один жест.
type Machine struct {
	store   Store
	logger  Logger
	metrics Metrics
	state   *State
}

// NewMachine создает автомат перемещения
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

// Start переход IDLE -> ACTIVE на pointer-down над бронированием.
// Захватываются исходный слот и длительность в слотах.
func (m *Machine) Start(reservationID string) error {
	if m.state != nil {
		return ErrGestureActive
	}

	res := m.store.ByID(reservationID)
	if res == nil {
		return ErrReservationNotFound
	}

	m.state = &State{
		ReservationID: res.ID,
		TableID:       res.TableID,
		OriginSlot:    timegrid.InstantToSlot(res.StartTime),
		DurationSlots: res.DurationMinutes / domain.SlotMinutes,
	}
	m.logger.Info("move: started for reservation=%s origin_slot=%d duration_slots=%d",
		res.ID, m.state.OriginSlot, m.state.DurationSlots)
	return nil
}

// Move считает превью-размещение для текущего сдвига указателя.
// Возвращает nil, когда сдвиг нулевой (блок остался на месте) или жест не
// активен. Хранилище не мутируется.
func (m *Machine) Move(deltaX, slotWidth float64) *Preview {
	if m.state == nil {
		return nil
	}

	deltaSlots := roundToSlots(deltaX, slotWidth)
	if deltaSlots == 0 {
		return nil
	}

	newStartSlot := clampStartSlot(m.state.OriginSlot+deltaSlots, m.state.DurationSlots)
	newEndSlot := newStartSlot + m.state.DurationSlots

	date := m.store.View().CurrentDate
	start, err := timegrid.SlotToInstant(date, newStartSlot)
	if err != nil {
		m.logger.Error("move: preview failed: %v", err)
		return nil
	}
	end, err := timegrid.SlotToInstant(date, newEndSlot)
	if err != nil {
		m.logger.Error("move: preview failed: %v", err)
		return nil
	}

	return &Preview{
		StartSlot: newStartSlot,
		EndSlot:   newEndSlot,
		Start:     start,
		End:       end,
	}
}

// Drop переход ACTIVE -> (COMMIT | ABORT) на pointer-up.
// targetTableID - стол drop-зоны под указателем (пустая строка = тот же стол).
// Нулевой сдвиг без смены стола - ABORT (no-op). Иначе кандидат проверяется
// advisory-проверкой CanPlace и безусловно коммитится в хранилище: конфликт
// логируется и возвращается в Result, но никогда не блокирует.
func (m *Machine) Drop(deltaX, slotWidth float64, targetTableID string) (*Result, error) {
	if m.state == nil {
		return nil, ErrNoActiveGesture
	}
	state := *m.state
	m.state = nil

	res := m.store.ByID(state.ReservationID)
	if res == nil {
		// Бронирование удалили во время жеста
		m.incGesture("abort")
		return nil, ErrReservationNotFound
	}

	deltaSlots := roundToSlots(deltaX, slotWidth)
	tableID := state.TableID
	if targetTableID != "" {
		tableID = targetTableID
	}

	if deltaSlots == 0 && tableID == state.TableID {
		m.logger.Info("move: aborted for reservation=%s (no movement)", state.ReservationID)
		m.incGesture("abort")
		return &Result{ReservationID: state.ReservationID}, nil
	}

	date := m.store.View().CurrentDate

	// Advisory-вердикт считается по незажатому кандидату: выход за окно
	// обслуживания должен быть помечен, даже если коммит зажат в сетку
	rawStart, err := timegrid.SlotToInstant(date, state.OriginSlot+deltaSlots)
	if err != nil {
		return nil, err
	}
	rawEnd, err := timegrid.SlotToInstant(date, state.OriginSlot+deltaSlots+state.DurationSlots)
	if err != nil {
		return nil, err
	}
	decision := conflict.CanPlace(res, tableID, rawStart, rawEnd, m.store.Reservations(), m.store.Tables())

	newStartSlot := clampStartSlot(state.OriginSlot+deltaSlots, state.DurationSlots)
	newStart, err := timegrid.SlotToInstant(date, newStartSlot)
	if err != nil {
		return nil, err
	}
	newEnd, err := timegrid.SlotToInstant(date, newStartSlot+state.DurationSlots)
	if err != nil {
		return nil, err
	}
	durationMinutes := state.DurationSlots * domain.SlotMinutes

	if !decision.Allowed {
		m.logger.Warn("move: drop created conflict for reservation=%s: %s", res.ID, decision.Detail)
		m.incConflict(string(decision.Reason))
	}

	if err := m.store.Update(res.ID, store.Patch{
		TableID:         ptr.Ptr(tableID),
		StartTime:       ptr.Ptr(newStart),
		EndTime:         ptr.Ptr(newEnd),
		DurationMinutes: ptr.Ptr(durationMinutes),
	}); err != nil {
		m.incGesture("abort")
		return nil, err
	}

	m.logger.Info("move: committed reservation=%s table=%s slot=%d", res.ID, tableID, newStartSlot)
	m.incGesture("commit")

	return &Result{
		Committed:       true,
		ReservationID:   res.ID,
		TableID:         tableID,
		Start:           newStart,
		End:             newEnd,
		DurationMinutes: durationMinutes,
		Decision:        decision,
	}, nil
}

// Cancel обрабатывает потерю захвата указателя (blur окна и т.п.) как
// неявный pointer-up без сдвига: ACTIVE -> ABORT -> IDLE
func (m *Machine) Cancel() {
	if m.state == nil {
		return
	}
	m.logger.Info("move: cancelled for reservation=%s", m.state.ReservationID)
	m.state = nil
	m.incGesture("abort")
}

// clampStartSlot зажимает стартовый слот так, чтобы весь блок остался в сетке
func clampStartSlot(slot, durationSlots int) int {
	maxStart := domain.TotalSlots - durationSlots
	if slot < 0 {
		return 0
	}
	if slot > maxStart {
		return maxStart
	}
	return slot
}

func (m *Machine) incGesture(outcome string) {
	if m.metrics != nil {
		m.metrics.IncGesture("move", outcome)
	}
}

func (m *Machine) incConflict(reason string) {
	if m.metrics != nil {
		m.metrics.IncConflict(reason)
	}
}

func roundToSlots(deltaX, slotWidth float64) int {
	return int(math.Round(deltaX / slotWidth))
}
