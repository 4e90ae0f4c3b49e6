package domain

// Grid configuration. The service day is partitioned into fixed 15-minute
// slots spanning [StartHour, EndHour).
const (
	StartHour   = 11
	EndHour     = 24 // midnight
	SlotMinutes = 15

	// TotalSlots per service day (11:00 to 00:00 = 13 hours = 52 slots)
	TotalSlots = (EndHour - StartHour) * 60 / SlotMinutes
)

// Reservation duration bounds
const (
	DefaultDurationMinutes = 90
	MinDurationMinutes     = 30
	MaxDurationMinutes     = 240 // 4 hours
)

// Grid rendering dimensions consumed by presentation collaborators
const (
	BaseSlotWidth = 60.0 // pixels per 15-minute slot at zoom 1
	RowHeight     = 60.0 // pixels per table row
)

// Zoom bounds (pixel width multiplier)
const (
	MinZoom = 0.5
	MaxZoom = 1.5
)

// UTCOffsetHours is the single fixed timezone offset of the system
// (America/Argentina/Buenos_Aires, no DST)
const UTCOffsetHours = -3

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllStatuses список всех статусов бронирования
// Используется валидацией и генератором тестовых данных
var AllStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusSeated,
	StatusFinished,
	StatusNoShow,
	StatusCancelled,
}

// AllPriorities список всех приоритетов бронирования
var AllPriorities = []Priority{
	PriorityStandard,
	PriorityVIP,
	PriorityLargeGroup,
}
