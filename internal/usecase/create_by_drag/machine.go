// Package create_by_drag конечный автомат жеста рисования нового бронирования
// на пустом месте строки стола. Жест только предлагает кандидатное размещение;
// запись в хранилище выполняет внешняя форма создания после подтверждения.
package create_by_drag

import (
	"github.com/TomyMarengo/Woki-Challenge/internal/domain"
	"github.com/TomyMarengo/Woki-Challenge/internal/timegrid"
)

// Machine автомат жеста рисования. Не потокобезопасен: события указателя
// обрабатываются строго по одному.
type Machine struct {
	logger  Logger
	metrics Metrics
	state   *State
}

// NewMachine создает автомат рисования
func NewMachine(logger Logger, metrics Metrics) *Machine {
	return &Machine{
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

// Start переход IDLE -> ACTIVE на pointer-down по пустому месту строки.
// x - координата клика относительно начала сетки. Клик левее нулевого слота
// жест не начинает; возвращается false.
func (m *Machine) Start(tableID string, x, slotWidth float64) bool {
	if m.state != nil {
		return false
	}

	slot := timegrid.PixelToSlot(x, slotWidth)
	if slot < 0 {
		return false
	}

	m.state = &State{
		TableID:   tableID,
		StartSlot: slot,
		EndSlot:   slot,
	}
	m.logger.Info("create: started on table=%s slot=%d", tableID, slot)
	return true
}

// Move расширяет превью-прямоугольник. Конечный слот зажимается, чтобы быть
// >= стартового; хранилище не трогается.
func (m *Machine) Move(x, slotWidth float64) *Preview {
	if m.state == nil {
		return nil
	}

	slot := timegrid.PixelToSlot(x, slotWidth)
	if slot >= m.state.StartSlot {
		m.state.EndSlot = slot
	}

	return &Preview{
		TableID:   m.state.TableID,
		StartSlot: m.state.StartSlot,
		EndSlot:   m.state.EndSlot,
	}
}

// End переход ACTIVE -> (COMMIT | ABORT) на pointer-up или pointer-leave
// (обрабатываются одинаково). Жест короче 30 минут - случайный клик, молча
// ABORT (ok=false). Иначе кандидат передается внешней форме создания.
func (m *Machine) End() (*Proposal, bool) {
	if m.state == nil {
		return nil, false
	}
	state := *m.state
	m.state = nil

	durationMinutes := (state.EndSlot - state.StartSlot + 1) * domain.SlotMinutes
	if durationMinutes < domain.MinDurationMinutes {
		m.logger.Info("create: aborted on table=%s (%d min below floor)", state.TableID, durationMinutes)
		m.incGesture("abort")
		return nil, false
	}

	m.logger.Info("create: proposing table=%s slot=%d duration=%d",
		state.TableID, state.StartSlot, durationMinutes)
	m.incGesture("commit")

	return &Proposal{
		TableID:         state.TableID,
		StartSlot:       state.StartSlot,
		DurationMinutes: durationMinutes,
	}, true
}

// Cancel обрабатывает потерю захвата указателя: жест отбрасывается без
// предложения
func (m *Machine) Cancel() {
	if m.state == nil {
		return
	}
	m.logger.Info("create: cancelled on table=%s", m.state.TableID)
	m.state = nil
	m.incGesture("abort")
}

func (m *Machine) incGesture(outcome string) {
	if m.metrics != nil {
		m.metrics.IncGesture("create", outcome)
	}
}
