package resize_reservation

// Edge какой край блока тянут
type Edge string

const (
	EdgeLeft  Edge = "left"
	EdgeRight Edge = "right"
)

// minRetainedSlots минимум слотов, остающихся при левом ресайзе (30 минут)
const minRetainedSlots = 2

// State захваченное состояние активного жеста изменения размера.
// Транзитные координаты отбрасываются на End/Cancel; сами правки к этому
// моменту уже закоммичены инкрементально.
type State struct {
	ReservationID           string
	Edge                    Edge
	OriginX                 float64
	OriginalDurationMinutes int
	OriginalStartSlot       int
	Edited                  bool
}
