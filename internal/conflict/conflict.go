// Package conflict решает, валидно ли кандидатное размещение бронирования
// относительно существующих бронирований, вместимости стола и окна
// обслуживания. Работает с неизменяемыми снимками, ничего не мутирует.
//
// Все результаты advisory: вызывающая сторона показывает предупреждение,
// но мутация никогда не блокируется.
package conflict

import (
	"fmt"
	"time"

	"github.com/TomyMarengo/Woki-Challenge/internal/domain"
	"github.com/TomyMarengo/Woki-Challenge/internal/timegrid"
)

// Decision результат составной проверки CanPlace
type Decision struct {
	Allowed bool
	Reason  domain.ConflictReason // пустая, когда Allowed
	Detail  string                // человекочитаемое описание для подсказки
}

// CheckPlacement проверяет кандидатное размещение (стол, интервал) против
// существующих бронирований. excludeID исключает само перемещаемое
// бронирование из сканирования (пустая строка - ничего не исключать).
//
// Проверка окна обслуживания использует НЕзажатую производную индекса слота:
// зажатие в timegrid существует только для безопасной пиксельной математики,
// а мгновение до открытия (например 10:00 при START_HOUR=11) должно быть
// помечено как outside_service_hours, а не молча принято как слот 0.
func CheckPlacement(
	tableID string,
	start, end time.Time,
	reservations []*domain.Reservation,
	excludeID string,
) domain.ConflictCheck {
	startSlot := timegrid.InstantToSlotUnclamped(start)
	// Конец производится из начала и длины интервала, а не из настенных часов
	// конца: мгновение ровно в закрытие нормализуется в полночь следующего дня,
	// и производная по часам дала бы отрицательный индекс вместо TotalSlots
	endSlot := startSlot + int(end.Sub(start)/time.Minute)/domain.SlotMinutes

	// Интервал полуоткрытый: конец ровно в закрытие (слот == TotalSlots)
	// занимает последний слот и остается внутри окна
	if !timegrid.IsWithinServiceHours(startSlot) || endSlot < 1 || endSlot > domain.TotalSlots {
		return domain.ConflictCheck{
			HasConflict:               true,
			ConflictingReservationIDs: []string{},
			Reason:                    domain.ReasonOutsideServiceHours,
		}
	}

	candidate := domain.Reservation{StartTime: start, EndTime: end}
	conflicting := make([]string, 0)
	for _, res := range reservations {
		if excludeID != "" && res.ID == excludeID {
			continue
		}
		// Строгое сравнение полуоткрытых интервалов: бронирования впритык
		// (конец одного == начало другого) не пересекаются
		if res.TableID == tableID && candidate.Overlaps(res) {
			conflicting = append(conflicting, res.ID)
		}
	}

	check := domain.ConflictCheck{
		HasConflict:               len(conflicting) > 0,
		ConflictingReservationIDs: conflicting,
	}
	if check.HasConflict {
		check.Reason = domain.ReasonOverlap
	}
	return check
}

// CheckCapacity проверяет размер группы против вместимости стола.
// Граничные значения (ровно min или ровно max) валидны.
func CheckCapacity(partySize int, table *domain.Table) domain.ConflictCheck {
	if !table.Fits(partySize) {
		return domain.ConflictCheck{
			HasConflict:               true,
			ConflictingReservationIDs: []string{},
			Reason:                    domain.ReasonCapacityExceeded,
		}
	}
	return domain.NoConflict()
}

// ValidateDuration проверяет, что длительность в границах и кратна слоту
func ValidateDuration(minutes int) bool {
	return minutes >= domain.MinDurationMinutes &&
		minutes <= domain.MaxDurationMinutes &&
		minutes%domain.SlotMinutes == 0
}

// CanPlace составная проверка для drag-and-drop: поиск стола, вместимость,
// затем пересечения и окно обслуживания. Возвращается причина первой
// провалившейся проверки.
func CanPlace(
	res *domain.Reservation,
	targetTableID string,
	newStart, newEnd time.Time,
	reservations []*domain.Reservation,
	tables []*domain.Table,
) Decision {
	var table *domain.Table
	for _, t := range tables {
		if t.ID == targetTableID {
			table = t
			break
		}
	}
	if table == nil {
		return Decision{
			Reason: domain.ReasonTableNotFound,
			Detail: "Table not found",
		}
	}

	if capacity := CheckCapacity(res.PartySize, table); capacity.HasConflict {
		return Decision{
			Reason: domain.ReasonCapacityExceeded,
			Detail: fmt.Sprintf("Party size %d exceeds table capacity (%d-%d)",
				res.PartySize, table.Capacity.Min, table.Capacity.Max),
		}
	}

	placement := CheckPlacement(targetTableID, newStart, newEnd, reservations, res.ID)
	if placement.HasConflict {
		if placement.Reason == domain.ReasonOutsideServiceHours {
			return Decision{
				Reason: domain.ReasonOutsideServiceHours,
				Detail: "Outside service hours",
			}
		}
		return Decision{
			Reason: domain.ReasonOverlap,
			Detail: "Time slot conflicts with another reservation",
		}
	}

	return Decision{Allowed: true}
}
