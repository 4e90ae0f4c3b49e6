package move_reservation

import (
	"time"

	"github.com/TomyMarengo/Woki-Challenge/internal/conflict"
)

// State захваченное состояние активного жеста перемещения
type State struct {
	ReservationID string
	TableID       string // стол на момент pointer-down
	OriginSlot    int
	DurationSlots int
}

// Preview кандидатное размещение для отображения во время перетаскивания.
// Хранилище при этом не мутируется.
type Preview struct {
	StartSlot int
	EndSlot   int
	Start     time.Time
	End       time.Time
}

// Result итог жеста. Committed=false означает no-op (отпустили без сдвига).
// Decision - advisory-вердикт движка конфликтов: мутация проходит даже при
// Allowed=false, конфликт только подсвечивается.
type Result struct {
	Committed       bool
	ReservationID   string
	TableID         string
	Start           time.Time
	End             time.Time
	DurationMinutes int
	Decision        conflict.Decision
}
