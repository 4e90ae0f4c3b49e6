package domain

import "errors"

// ErrInvalidReservation возвращается, когда бронирование нарушает инварианты
// полей (см. Reservation.Validate)
var ErrInvalidReservation = errors.New("invalid reservation")
