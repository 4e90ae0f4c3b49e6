// Package store единственный авторитетный контейнер состояния таймлайна:
// бронирования, столы, сектора, выделение и фильтры. Создается явно через
// New и передается потребителям по ссылке - никаких скрытых глобалов.
package store

import (
	"sync"
	"time"

	"github.com/TomyMarengo/Woki-Challenge/internal/domain"
)

// Store хранилище состояния таймлайна. Все мутации атомарны относительно
// читающих проекций. Хранилище не валидирует сущности и не проверяет
// конфликты: пересечения и вместимость - advisory-проверки на вызывающей
// стороне, бронирование с конфликтом - валидное хранимое состояние.
type Store struct {
	mu sync.RWMutex

	reservations []*domain.Reservation
	tables       []*domain.Table
	sectors      []*domain.Sector

	// Презентационное состояние
	currentDate        string
	selectedIDs        []string
	zoom               float64
	collapsedSectorIDs []string
	selectedSectorIDs  []string
	selectedStatuses   []domain.ReservationStatus
	searchQuery        string

	// Снимок для ResetToSeed
	seedReservations []*domain.Reservation

	metrics Metrics
	now     func() time.Time
}

// New создает хранилище из начального состояния. metrics может быть nil.
func New(seed Seed, metrics Metrics) *Store {
	s := &Store{
		reservations:       cloneReservations(seed.Reservations),
		seedReservations:   cloneReservations(seed.Reservations),
		tables:             seed.Tables,
		sectors:            seed.Sectors,
		currentDate:        seed.Date,
		selectedIDs:        []string{},
		zoom:               1,
		collapsedSectorIDs: []string{},
		selectedSectorIDs:  []string{},
		selectedStatuses:   []domain.ReservationStatus{},
		metrics:            metrics,
		now:                time.Now,
	}
	s.reportReservations()
	return s
}

// SetNowFunc подменяет источник времени (для детерминированных тестов)
func (s *Store) SetNowFunc(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Add добавляет бронирование. Дедупликации и валидации нет.
func (s *Store) Add(res *domain.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reservations = append(s.reservations, res)
	s.incMutation("add")
	s.reportReservationsLocked()
}

// Update сливает непустые поля патча в бронирование и обновляет UpdatedAt.
// Отсутствующий ID - это ErrReservationNotFound; вызывающая сторона вправе
// трактовать его как no-op.
func (s *Store) Update(id string, patch Patch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.findLocked(id)
	if res == nil {
		return ErrReservationNotFound
	}

	if patch.TableID != nil {
		res.TableID = *patch.TableID
	}
	if patch.Customer != nil {
		res.Customer = *patch.Customer
	}
	if patch.PartySize != nil {
		res.PartySize = *patch.PartySize
	}
	if patch.StartTime != nil {
		res.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		res.EndTime = *patch.EndTime
	}
	if patch.DurationMinutes != nil {
		res.DurationMinutes = *patch.DurationMinutes
	}
	if patch.Status != nil {
		// Статусы свободно переключаемы в любом направлении - это
		// намеренное упрощение, не баг
		res.Status = *patch.Status
	}
	if patch.Priority != nil {
		res.Priority = *patch.Priority
	}
	if patch.Notes != nil {
		res.Notes = patch.Notes
	}
	if patch.Source != nil {
		res.Source = patch.Source
	}

	res.UpdatedAt = s.now()
	s.incMutation("update")
	return nil
}

// Remove удаляет бронирование и вычищает его из выделения
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.reservations[:0]
	for _, res := range s.reservations {
		if res.ID != id {
			kept = append(kept, res)
		}
	}
	s.reservations = kept

	selected := s.selectedIDs[:0]
	for _, selID := range s.selectedIDs {
		if selID != id {
			selected = append(selected, selID)
		}
	}
	s.selectedIDs = selected

	s.incMutation("remove")
	s.reportReservationsLocked()
}

// Select обновляет выделение. При multiSelect=false выделение становится
// ровно {id}, при true - членство id переключается.
func (s *Store) Select(id string, multiSelect bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !multiSelect {
		s.selectedIDs = []string{id}
		return
	}

	for i, selID := range s.selectedIDs {
		if selID == id {
			s.selectedIDs = append(s.selectedIDs[:i], s.selectedIDs[i+1:]...)
			return
		}
	}
	s.selectedIDs = append(s.selectedIDs, id)
}

// ClearSelection сбрасывает выделение
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedIDs = []string{}
}

// SetDate переключает отображаемый день
func (s *Store) SetDate(date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentDate = date
}

// SetZoom устанавливает зум, зажимая в [MinZoom, MaxZoom]
func (s *Store) SetZoom(zoom float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if zoom < domain.MinZoom {
		zoom = domain.MinZoom
	}
	if zoom > domain.MaxZoom {
		zoom = domain.MaxZoom
	}
	s.zoom = zoom
}

// ToggleSectorCollapse переключает флаг сворачивания сектора
func (s *Store) ToggleSectorCollapse(sectorID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range s.collapsedSectorIDs {
		if id == sectorID {
			s.collapsedSectorIDs = append(s.collapsedSectorIDs[:i], s.collapsedSectorIDs[i+1:]...)
			return
		}
	}
	s.collapsedSectorIDs = append(s.collapsedSectorIDs, sectorID)
}

// SetSectorFilter устанавливает фильтр по секторам (пустой = все сектора)
func (s *Store) SetSectorFilter(sectorIDs []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedSectorIDs = append([]string{}, sectorIDs...)
}

// SetStatusFilter устанавливает фильтр по статусам (пустой = все статусы)
func (s *Store) SetStatusFilter(statuses []domain.ReservationStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedStatuses = append([]domain.ReservationStatus{}, statuses...)
}

// SetSearchQuery устанавливает поисковую строку (имя или телефон клиента)
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
}

// ClearFilters сбрасывает все измерения фильтра разом. Идемпотентно.
func (s *Store) ClearFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedSectorIDs = []string{}
	s.selectedStatuses = []domain.ReservationStatus{}
	s.searchQuery = ""
}

// ReplaceReservations целиком заменяет коллекцию бронирований.
// Используется загрузкой тестовых данных (внешний коллаборатор).
func (s *Store) ReplaceReservations(reservations []*domain.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reservations = cloneReservations(reservations)
	s.selectedIDs = []string{}
	s.incMutation("replace")
	s.reportReservationsLocked()
}

// ResetToSeed возвращает бронирования к начальному набору
func (s *Store) ResetToSeed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reservations = cloneReservations(s.seedReservations)
	s.selectedIDs = []string{}
	s.incMutation("reset")
	s.reportReservationsLocked()
}

func (s *Store) findLocked(id string) *domain.Reservation {
	for _, res := range s.reservations {
		if res.ID == id {
			return res
		}
	}
	return nil
}

func (s *Store) incMutation(op string) {
	if s.metrics != nil {
		s.metrics.IncMutation(op)
	}
}

func (s *Store) reportReservations() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.reportReservationsLocked()
}

func (s *Store) reportReservationsLocked() {
	if s.metrics != nil {
		s.metrics.SetReservations(len(s.reservations))
	}
}

func cloneReservations(src []*domain.Reservation) []*domain.Reservation {
	out := make([]*domain.Reservation, len(src))
	for i, res := range src {
		copied := *res
		out[i] = &copied
	}
	return out
}
