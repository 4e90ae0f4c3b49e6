// Package timegrid переводит время между настенными часами / мгновениями с
// таймзоной и целочисленными индексами слотов сетки одного сервисного дня.
// Все функции чистые и без состояния: остальные компоненты считают пересечения
// и арифметику только в пространстве слотов, где вычисления точные.
package timegrid

import (
	"fmt"
	"math"
	"time"

	"github.com/TomyMarengo/Woki-Challenge/internal/domain"
	"github.com/TomyMarengo/Woki-Challenge/pkg/types"
)

// Location фиксированный часовой пояс системы (UTC-3, без перехода на летнее время)
var Location = time.FixedZone("-03", domain.UTCOffsetHours*60*60)

// TimeToSlot переводит время дня (HH:MM) в индекс слота.
// Пример: "12:00" -> слот 4 (при начале работы в 11:00).
// Результат зажимается в [0, TotalSlots-1]: любое время дня дает валидный
// индекс для рендеринга. Выход за окно обслуживания - отдельная явная
// проверка (IsWithinServiceHours по незажатому индексу), не ошибка отсюда.
func TimeToSlot(t types.TimeString) int {
	return clampSlot(TimeToSlotUnclamped(t.Hour(), t.Minute()))
}

// TimeToSlotUnclamped переводит часы и минуты в индекс слота без зажатия.
// Время до открытия дает отрицательный индекс, после закрытия - индекс за
// пределами сетки. Авторитетная производная для проверки окна обслуживания
// в движке конфликтов.
func TimeToSlotUnclamped(hour, minute int) int {
	totalMinutes := hour*60 + minute
	startMinutes := domain.StartHour * 60
	return int(math.Floor(float64(totalMinutes-startMinutes) / float64(domain.SlotMinutes)))
}

// SlotToTime переводит индекс слота во время дня (HH:MM), по модулю суток
func SlotToTime(slot int) types.TimeString {
	totalMinutes := domain.StartHour*60 + slot*domain.SlotMinutes
	hours := (totalMinutes / 60) % 24
	minutes := totalMinutes % 60
	return types.TimeString(fmt.Sprintf("%02d:%02d", hours, minutes))
}

// InstantToSlot переводит мгновение в индекс слота (с зажатием).
// Используются только локальные час и минута в фиксированном поясе;
// календарная дата игнорируется (модель сетки - один день).
func InstantToSlot(t time.Time) int {
	local := t.In(Location)
	return clampSlot(TimeToSlotUnclamped(local.Hour(), local.Minute()))
}

// InstantToSlotUnclamped как InstantToSlot, но без зажатия
func InstantToSlotUnclamped(t time.Time) int {
	local := t.In(Location)
	return TimeToSlotUnclamped(local.Hour(), local.Minute())
}

// SlotToInstant собирает мгновение из календарной даты (YYYY-MM-DD) и индекса
// слота в фиксированном поясе, с точностью до секунды. Индекс за пределами
// сетки нормализуется арифметикой времени (слот 52 -> полночь следующего дня).
func SlotToInstant(date string, slot int) (time.Time, error) {
	base, err := time.ParseInLocation(domain.DateFormat, date, Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("timegrid: invalid date %q: %w", date, err)
	}
	totalMinutes := domain.StartHour*60 + slot*domain.SlotMinutes
	return base.Add(time.Duration(totalMinutes) * time.Minute), nil
}

// IsWithinServiceHours проверяет, что индекс слота внутри окна обслуживания
func IsWithinServiceHours(slot int) bool {
	return slot >= 0 && slot < domain.TotalSlots
}

// PixelToSlot переводит координату x в индекс слота при данной ширине слота
func PixelToSlot(x, slotWidth float64) int {
	return int(math.Floor(x / slotWidth))
}

// SlotToPixel переводит индекс слота в координату x
func SlotToPixel(slot int, slotWidth float64) float64 {
	return float64(slot) * slotWidth
}

// SlotWidth возвращает ширину слота в пикселях для данного зума
func SlotWidth(zoom float64) float64 {
	return domain.BaseSlotWidth * zoom
}

// CurrentSlot возвращает индекс слота для текущего момента.
// До открытия возвращает -1, после закрытия - TotalSlots: индикатор текущего
// времени за пределами сетки не рисуется.
func CurrentSlot(now time.Time) int {
	local := now.In(Location)
	if local.Hour() < domain.StartHour {
		return -1
	}
	if local.Hour() >= domain.EndHour {
		return domain.TotalSlots
	}
	return TimeToSlotUnclamped(local.Hour(), local.Minute())
}

// SnapDuration округляет длительность до кратной слоту и зажимает в допустимые
// границы [MinDurationMinutes, MaxDurationMinutes]
func SnapDuration(minutes int) int {
	snapped := int(math.Round(float64(minutes)/float64(domain.SlotMinutes))) * domain.SlotMinutes
	if snapped < domain.MinDurationMinutes {
		return domain.MinDurationMinutes
	}
	if snapped > domain.MaxDurationMinutes {
		return domain.MaxDurationMinutes
	}
	return snapped
}

// FormatTimeRange форматирует интервал как "HH:MM - HH:MM"
func FormatTimeRange(start, end time.Time) string {
	return fmt.Sprintf("%s - %s",
		start.In(Location).Format(domain.TimeFormat),
		end.In(Location).Format(domain.TimeFormat))
}

func clampSlot(slot int) int {
	if slot < 0 {
		return 0
	}
	if slot > domain.TotalSlots-1 {
		return domain.TotalSlots - 1
	}
	return slot
}
