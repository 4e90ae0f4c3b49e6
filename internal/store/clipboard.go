package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/TomyMarengo/Woki-Challenge/internal/domain"
)

// Операции дублирования и вставки: создание бронирований на основе
// существующих, со сдвигом на 30 минут. Обе строятся поверх Add.

const cloneShiftMinutes = 30

// Duplicate создает копию бронирования на 30 минут позже с новым ID и
// статусом PENDING. Возвращает созданную копию.
func (s *Store) Duplicate(id string) (*domain.Reservation, error) {
	original := s.ByID(id)
	if original == nil {
		return nil, ErrReservationNotFound
	}

	duplicated := cloneShifted(original, s.nowFunc()())
	s.Add(duplicated)
	return duplicated, nil
}

// Paste вставляет ранее скопированные бронирования, каждое на 30 минут позже
// оригинала, с новыми ID и статусом PENDING. Возвращает созданные копии.
func (s *Store) Paste(copied []*domain.Reservation) []*domain.Reservation {
	now := s.nowFunc()()
	pasted := make([]*domain.Reservation, 0, len(copied))
	for _, res := range copied {
		created := cloneShifted(res, now)
		s.Add(created)
		pasted = append(pasted, created)
	}
	return pasted
}

func (s *Store) nowFunc() func() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now
}

func cloneShifted(original *domain.Reservation, now time.Time) *domain.Reservation {
	copied := *original
	copied.ID = uuid.NewString()
	copied.StartTime = original.StartTime.Add(cloneShiftMinutes * time.Minute)
	copied.EndTime = original.EndTime.Add(cloneShiftMinutes * time.Minute)
	copied.Status = domain.StatusPending
	copied.CreatedAt = now
	copied.UpdatedAt = now
	return &copied
}
