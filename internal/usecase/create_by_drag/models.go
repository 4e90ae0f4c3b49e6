package create_by_drag

// State захваченное состояние активного жеста рисования
type State struct {
	TableID   string
	StartSlot int
	EndSlot   int // включительно; всегда >= StartSlot
}

// Preview прямоугольник превью: занимаемые слоты [StartSlot, EndSlot]
type Preview struct {
	TableID   string
	StartSlot int
	EndSlot   int
}

// Proposal кандидатное размещение, передаваемое внешней форме создания.
// Сам автомат сущность не создает: add в хранилище делает форма после
// подтверждения пользователем.
type Proposal struct {
	TableID         string
	StartSlot       int
	DurationMinutes int
}
