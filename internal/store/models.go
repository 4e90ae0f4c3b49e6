package store

import (
	"time"

	"github.com/TomyMarengo/Woki-Challenge/internal/domain"
)

// Seed начальное состояние хранилища: справочные данные и стартовый набор
// бронирований. Справочные данные (сектора, столы) неизменяемы после init.
type Seed struct {
	Date         string // YYYY-MM-DD
	Sectors      []*domain.Sector
	Tables       []*domain.Table
	Reservations []*domain.Reservation
}

// Patch частичное обновление бронирования: nil-поля не трогаются.
// Само хранилище патч не валидирует - это обязанность вызывающей стороны
// (жесты и формы зовут движок конфликтов заранее, если хотят предупредить).
type Patch struct {
	TableID         *string
	Customer        *domain.Customer
	PartySize       *int
	StartTime       *time.Time
	EndTime         *time.Time
	DurationMinutes *int
	Status          *domain.ReservationStatus
	Priority        *domain.Priority
	Notes           *string
	Source          *string
}

// View снимок презентационного состояния (дата, зум, фильтры)
type View struct {
	CurrentDate        string
	Zoom               float64
	CollapsedSectorIDs []string
	SelectedSectorIDs  []string
	SelectedStatuses   []domain.ReservationStatus
	SearchQuery        string
}

// SectorGroup сектор со своими видимыми столами, в порядке сортировки
type SectorGroup struct {
	Sector *domain.Sector
	Tables []*domain.Table
}
