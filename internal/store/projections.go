package store

import (
	"sort"
	"strings"

	"github.com/TomyMarengo/Woki-Challenge/internal/domain"
)

// Читающие проекции. Все они чистые производные текущего состояния,
// пересчитываются по запросу, без окна устаревания. Возвращаемые срезы -
// копии: держать их после следующей мутации безопасно.

// Reservations возвращает все бронирования
func (s *Store) Reservations() []*domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*domain.Reservation{}, s.reservations...)
}

// ByID возвращает бронирование по ID (nil, если не найдено)
func (s *Store) ByID(id string) *domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findLocked(id)
}

// ByTable возвращает бронирования указанного стола
func (s *Store) ByTable(tableID string) []*domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Reservation, 0)
	for _, res := range s.reservations {
		if res.TableID == tableID {
			out = append(out, res)
		}
	}
	return out
}

// Tables возвращает все столы
func (s *Store) Tables() []*domain.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*domain.Table{}, s.tables...)
}

// Sectors возвращает все сектора
func (s *Store) Sectors() []*domain.Sector {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*domain.Sector{}, s.sectors...)
}

// TableByID возвращает стол по ID (nil, если не найден)
func (s *Store) TableByID(tableID string) *domain.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tables {
		if t.ID == tableID {
			return t
		}
	}
	return nil
}

// SectorByID возвращает сектор по ID (nil, если не найден)
func (s *Store) SectorByID(sectorID string) *domain.Sector {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sec := range s.sectors {
		if sec.ID == sectorID {
			return sec
		}
	}
	return nil
}

// SelectedIDs возвращает текущее выделение
func (s *Store) SelectedIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.selectedIDs...)
}

// View возвращает снимок презентационного состояния
func (s *Store) View() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return View{
		CurrentDate:        s.currentDate,
		Zoom:               s.zoom,
		CollapsedSectorIDs: append([]string{}, s.collapsedSectorIDs...),
		SelectedSectorIDs:  append([]string{}, s.selectedSectorIDs...),
		SelectedStatuses:   append([]domain.ReservationStatus{}, s.selectedStatuses...),
		SearchQuery:        s.searchQuery,
	}
}

// VisibleTables возвращает столы, проходящие фильтр по секторам
func (s *Store) VisibleTables() []*domain.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visibleTablesLocked()
}

// VisibleReservations возвращает видимый набор: фильтр по сектору (через
// стол) И по статусу И регистронезависимый поиск по имени или телефону
// клиента. Пустое измерение фильтра означает "без ограничения".
func (s *Store) VisibleReservations() []*domain.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := append([]*domain.Reservation{}, s.reservations...)

	if len(s.selectedSectorIDs) > 0 {
		visibleTableIDs := make(map[string]struct{})
		for _, t := range s.visibleTablesLocked() {
			visibleTableIDs[t.ID] = struct{}{}
		}
		kept := filtered[:0]
		for _, res := range filtered {
			if _, ok := visibleTableIDs[res.TableID]; ok {
				kept = append(kept, res)
			}
		}
		filtered = kept
	}

	if len(s.selectedStatuses) > 0 {
		kept := filtered[:0]
		for _, res := range filtered {
			for _, status := range s.selectedStatuses {
				if res.Status == status {
					kept = append(kept, res)
					break
				}
			}
		}
		filtered = kept
	}

	if s.searchQuery != "" {
		query := strings.ToLower(s.searchQuery)
		kept := filtered[:0]
		for _, res := range filtered {
			if strings.Contains(strings.ToLower(res.Customer.Name), query) ||
				strings.Contains(strings.ToLower(res.Customer.Phone), query) {
				kept = append(kept, res)
			}
		}
		filtered = kept
	}

	return filtered
}

// SectorGroups группирует видимые столы по секторам: сектора и столы в
// порядке sortOrder, пустые группы опускаются
func (s *Store) SectorGroups() []SectorGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sectors := append([]*domain.Sector{}, s.sectors...)
	sort.SliceStable(sectors, func(i, j int) bool {
		return sectors[i].SortOrder < sectors[j].SortOrder
	})

	visible := s.visibleTablesLocked()

	groups := make([]SectorGroup, 0, len(sectors))
	for _, sector := range sectors {
		sectorTables := make([]*domain.Table, 0)
		for _, t := range visible {
			if t.SectorID == sector.ID {
				sectorTables = append(sectorTables, t)
			}
		}
		if len(sectorTables) == 0 {
			continue
		}
		sort.SliceStable(sectorTables, func(i, j int) bool {
			return sectorTables[i].SortOrder < sectorTables[j].SortOrder
		})
		groups = append(groups, SectorGroup{Sector: sector, Tables: sectorTables})
	}
	return groups
}

func (s *Store) visibleTablesLocked() []*domain.Table {
	if len(s.selectedSectorIDs) == 0 {
		return append([]*domain.Table{}, s.tables...)
	}
	out := make([]*domain.Table, 0)
	for _, t := range s.tables {
		for _, sectorID := range s.selectedSectorIDs {
			if t.SectorID == sectorID {
				out = append(out, t)
				break
			}
		}
	}
	return out
}
