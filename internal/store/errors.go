package store

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование с указанным ID
	// отсутствует в хранилище. Вызывающие стороны вправе игнорировать эту
	// ошибку: обновление несуществующего ID - допустимый no-op.
	ErrReservationNotFound = errors.New("reservation not found")
)
