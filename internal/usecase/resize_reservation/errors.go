package resize_reservation

import "errors"

var (
	// ErrGestureActive возвращается при попытке начать жест, пока активен другой
	ErrGestureActive = errors.New("resize gesture already active")

	// ErrNoActiveGesture возвращается, когда Move вызван без Start
	ErrNoActiveGesture = errors.New("no active resize gesture")

	// ErrReservationNotFound возвращается, когда бронирование отсутствует
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrUnknownEdge возвращается для края, отличного от left/right
	ErrUnknownEdge = errors.New("unknown resize edge")
)
