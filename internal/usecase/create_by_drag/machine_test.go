package create_by_drag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomyMarengo/Woki-Challenge/internal/usecase/create_by_drag"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{}) {}
func (nopLogger) Warn(format string, v ...interface{}) {}

const slotWidth = 60.0

func newMachine() *create_by_drag.Machine {
	return create_by_drag.NewMachine(nopLogger{}, nil)
}

func TestStart_CapturesSlotUnderPointer(t *testing.T) {
	m := newMachine()

	ok := m.Start("T4", 4*slotWidth+10, slotWidth)

	require.True(t, ok)
	state := m.StateSnapshot()
	assert.Equal(t, "T4", state.TableID)
	assert.Equal(t, 4, state.StartSlot)
	assert.Equal(t, 4, state.EndSlot)
}

func TestStart_LeftOfGridRejected(t *testing.T) {
	m := newMachine()

	ok := m.Start("T4", -10, slotWidth)

	assert.False(t, ok)
	assert.False(t, m.Active())
}

func TestStart_WhileActiveRejected(t *testing.T) {
	m := newMachine()
	require.True(t, m.Start("T4", 0, slotWidth))

	assert.False(t, m.Start("T5", 0, slotWidth))
	assert.Equal(t, "T4", m.StateSnapshot().TableID)
}

func TestMove_ExtendsPreview(t *testing.T) {
	m := newMachine()
	require.True(t, m.Start("T4", 4*slotWidth, slotWidth))

	preview := m.Move(7*slotWidth, slotWidth)

	require.NotNil(t, preview)
	assert.Equal(t, 4, preview.StartSlot)
	assert.Equal(t, 7, preview.EndSlot)
}

func TestMove_EndNeverBeforeStart(t *testing.T) {
	// Движение левее стартового слота не сжимает превью ниже старта
	m := newMachine()
	require.True(t, m.Start("T4", 4*slotWidth, slotWidth))
	m.Move(7*slotWidth, slotWidth)

	preview := m.Move(slotWidth, slotWidth)

	require.NotNil(t, preview)
	assert.Equal(t, 4, preview.StartSlot)
	assert.Equal(t, 7, preview.EndSlot)
}

func TestMove_WithoutStartReturnsNil(t *testing.T) {
	m := newMachine()

	assert.Nil(t, m.Move(2*slotWidth, slotWidth))
}

func TestEnd_TwoSlotsProposeThirtyMinutes(t *testing.T) {
	// Слоты 4-5 включительно: (5-4+1)*15 = 30 минут, ровно на нижней границе
	m := newMachine()
	require.True(t, m.Start("T4", 4*slotWidth, slotWidth))
	m.Move(5*slotWidth, slotWidth)

	proposal, ok := m.End()

	require.True(t, ok)
	assert.Equal(t, "T4", proposal.TableID)
	assert.Equal(t, 4, proposal.StartSlot)
	assert.Equal(t, 30, proposal.DurationMinutes)
	assert.False(t, m.Active())
}

func TestEnd_SingleSlotSilentlyAborts(t *testing.T) {
	// Один слот = 15 минут, ниже минимума: случайный клик, предложения нет
	m := newMachine()
	require.True(t, m.Start("T4", 4*slotWidth, slotWidth))

	proposal, ok := m.End()

	assert.False(t, ok)
	assert.Nil(t, proposal)
	assert.False(t, m.Active())
}

func TestEnd_IdleIsNoop(t *testing.T) {
	m := newMachine()

	proposal, ok := m.End()

	assert.False(t, ok)
	assert.Nil(t, proposal)
}

func TestCancel_DiscardsGesture(t *testing.T) {
	m := newMachine()
	require.True(t, m.Start("T4", 4*slotWidth, slotWidth))
	m.Move(10*slotWidth, slotWidth)

	m.Cancel()

	assert.False(t, m.Active())
	proposal, ok := m.End()
	assert.False(t, ok)
	assert.Nil(t, proposal)
}
