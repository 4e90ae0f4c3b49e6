// Package seed стартовый набор данных зала и генератор синтетических
// бронирований. Внешний коллаборатор движка: ядро получает эти данные только
// через store.Seed.
package seed

import (
	"time"

	"github.com/TomyMarengo/Woki-Challenge/internal/domain"
	"github.com/TomyMarengo/Woki-Challenge/internal/store"
	"github.com/TomyMarengo/Woki-Challenge/internal/timegrid"
	"github.com/TomyMarengo/Woki-Challenge/pkg/ptr"
)

// Date сервисный день стартового набора
const Date = "2025-10-22"

// Sectors возвращает сектора зала
func Sectors() []*domain.Sector {
	return []*domain.Sector{
		{ID: "S1", Name: "Main Hall", Color: "#3B82F6", SortOrder: 0},
		{ID: "S2", Name: "Terrace", Color: "#10B981", SortOrder: 1},
		{ID: "S3", Name: "Private Room", Color: "#F59E0B", SortOrder: 2},
	}
}

// Tables возвращает столы по секторам
func Tables() []*domain.Table {
	return []*domain.Table{
		// Main Hall
		{ID: "T1", SectorID: "S1", Name: "Table 1", Capacity: domain.Capacity{Min: 2, Max: 2}, SortOrder: 0},
		{ID: "T2", SectorID: "S1", Name: "Table 2", Capacity: domain.Capacity{Min: 2, Max: 4}, SortOrder: 1},
		{ID: "T3", SectorID: "S1", Name: "Table 3", Capacity: domain.Capacity{Min: 4, Max: 6}, SortOrder: 2},
		{ID: "T4", SectorID: "S1", Name: "Table 4", Capacity: domain.Capacity{Min: 2, Max: 4}, SortOrder: 3},
		{ID: "T5", SectorID: "S1", Name: "Table 5", Capacity: domain.Capacity{Min: 4, Max: 6}, SortOrder: 4},

		// Terrace
		{ID: "T6", SectorID: "S2", Name: "Table 6", Capacity: domain.Capacity{Min: 2, Max: 4}, SortOrder: 0},
		{ID: "T7", SectorID: "S2", Name: "Table 7", Capacity: domain.Capacity{Min: 4, Max: 8}, SortOrder: 1},
		{ID: "T8", SectorID: "S2", Name: "Table 8", Capacity: domain.Capacity{Min: 2, Max: 2}, SortOrder: 2},

		// Private Room
		{ID: "T9", SectorID: "S3", Name: "Table 9", Capacity: domain.Capacity{Min: 6, Max: 10}, SortOrder: 0},
		{ID: "T10", SectorID: "S3", Name: "Table 10", Capacity: domain.Capacity{Min: 8, Max: 12}, SortOrder: 1},
	}
}

// Reservations возвращает стартовые бронирования
func Reservations() []*domain.Reservation {
	return []*domain.Reservation{
		{
			ID:      "RES_001",
			TableID: "T1",
			Customer: domain.Customer{
				Name: "John Doe", Phone: "+1 555-0101", Email: ptr.Ptr("john@example.com"),
			},
			PartySize:       2,
			StartTime:       at(12, 0),
			EndTime:         at(13, 30),
			DurationMinutes: 90,
			Status:          domain.StatusConfirmed,
			Priority:        domain.PriorityStandard,
			Source:          ptr.Ptr("web"),
			CreatedAt:       dayBefore(10, 0),
			UpdatedAt:       dayBefore(10, 0),
		},
		{
			ID:      "RES_002",
			TableID: "T3",
			Customer: domain.Customer{
				Name: "Jane Smith", Phone: "+1 555-0102", Email: ptr.Ptr("jane@example.com"),
			},
			PartySize:       6,
			StartTime:       at(13, 0),
			EndTime:         at(14, 30),
			DurationMinutes: 90,
			Status:          domain.StatusSeated,
			Priority:        domain.PriorityVIP,
			Notes:           ptr.Ptr("Birthday celebration"),
			Source:          ptr.Ptr("phone"),
			CreatedAt:       at(12, 30),
			UpdatedAt:       at(13, 5),
		},
		{
			ID:      "RES_003",
			TableID: "T7",
			Customer: domain.Customer{
				Name: "Robert Johnson", Phone: "+1 555-0103",
			},
			PartySize:       8,
			StartTime:       at(20, 0),
			EndTime:         at(21, 30),
			DurationMinutes: 90,
			Status:          domain.StatusConfirmed,
			Priority:        domain.PriorityLargeGroup,
			Source:          ptr.Ptr("app"),
			CreatedAt:       daysBefore(2, 14, 0),
			UpdatedAt:       daysBefore(2, 14, 0),
		},
		{
			ID:      "RES_004",
			TableID: "T2",
			Customer: domain.Customer{
				Name: "Emily Davis", Phone: "+1 555-0104", Email: ptr.Ptr("emily@example.com"),
			},
			PartySize:       4,
			StartTime:       at(19, 0),
			EndTime:         at(20, 30),
			DurationMinutes: 90,
			Status:          domain.StatusPending,
			Priority:        domain.PriorityStandard,
			Source:          ptr.Ptr("web"),
			CreatedAt:       at(8, 0),
			UpdatedAt:       at(8, 0),
		},
		{
			ID:      "RES_005",
			TableID: "T9",
			Customer: domain.Customer{
				Name: "Michael Brown", Phone: "+1 555-0105",
			},
			PartySize:       10,
			StartTime:       at(21, 0),
			EndTime:         at(23, 0),
			DurationMinutes: 120,
			Status:          domain.StatusConfirmed,
			Priority:        domain.PriorityLargeGroup,
			Notes:           ptr.Ptr("Corporate dinner"),
			Source:          ptr.Ptr("phone"),
			CreatedAt:       daysBefore(3, 16, 0),
			UpdatedAt:       daysBefore(3, 16, 0),
		},
	}
}

// Default собирает полный store.Seed стартового набора
func Default() store.Seed {
	return store.Seed{
		Date:         Date,
		Sectors:      Sectors(),
		Tables:       Tables(),
		Reservations: Reservations(),
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2025, time.October, 22, hour, minute, 0, 0, timegrid.Location)
}

func dayBefore(hour, minute int) time.Time {
	return daysBefore(1, hour, minute)
}

func daysBefore(days, hour, minute int) time.Time {
	return at(hour, minute).AddDate(0, 0, -days)
}
