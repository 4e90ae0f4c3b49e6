package types

import (
	"fmt"
	"time"
)

// TimeString время в формате HH:MM (без даты)
type TimeString string

// NewTimeString создает TimeString из time.Time (дата отбрасывается)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString валидирует строку формата HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse("15:04", s); err != nil {
		return "", fmt.Errorf("invalid time string format: %q", s)
	}
	return TimeString(s), nil
}

// MustTimeString как NewTimeStringFromString, но паникует при ошибке.
// Использовать только для констант и тестовых данных.
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// String возвращает строковое представление HH:MM
func (t TimeString) String() string {
	return string(t)
}

// Hour возвращает часы (0-23)
func (t TimeString) Hour() int {
	parsed, _ := time.Parse("15:04", string(t))
	return parsed.Hour()
}

// Minute возвращает минуты (0-59)
func (t TimeString) Minute() int {
	parsed, _ := time.Parse("15:04", string(t))
	return parsed.Minute()
}

// TotalMinutes возвращает количество минут от полуночи
func (t TimeString) TotalMinutes() int {
	return t.Hour()*60 + t.Minute()
}

// AddMinutes возвращает время, сдвинутое на minutes минут (по модулю суток)
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return "", fmt.Errorf("invalid time string format: %q", t)
	}
	return NewTimeString(parsed.Add(time.Duration(minutes) * time.Minute)), nil
}

// IsBefore строгое сравнение: t < other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.TotalMinutes() < other.TotalMinutes()
}

// IsAfter строгое сравнение: t > other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.TotalMinutes() > other.TotalMinutes()
}
