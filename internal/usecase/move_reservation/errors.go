package move_reservation

import "errors"

var (
	// ErrGestureActive возвращается при попытке начать жест, пока активен другой
	ErrGestureActive = errors.New("move gesture already active")

	// ErrNoActiveGesture возвращается, когда Move/Drop вызваны без Start
	ErrNoActiveGesture = errors.New("no active move gesture")

	// ErrReservationNotFound возвращается, когда бронирование отсутствует
	ErrReservationNotFound = errors.New("reservation not found")
)
