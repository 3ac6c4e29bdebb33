package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeString возвращается, когда строка не соответствует формату HH:MM
var ErrInvalidTimeString = errors.New("invalid time string format")

// minutesPerDay верхняя граница (24:00 допустимо только как конец интервала)
const minutesPerDay = 24 * 60

// TimeString время суток в формате "HH:MM"
type TimeString string

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит и нормализует строку вида "H:MM" или "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	hour, minute, err := split(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return fromMinutes(hour*60 + minute), nil
}

// Validate проверяет формат значения
func (t TimeString) Validate() error {
	_, _, err := split(string(t))
	return err
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут от начала суток
// Для некорректного значения возвращает -1
func (t TimeString) Minutes() int {
	hour, minute, err := split(string(t))
	if err != nil {
		return -1
	}
	return hour*60 + minute
}

// Hour возвращает час
func (t TimeString) Hour() int {
	hour, _, _ := split(string(t))
	return hour
}

// Minute возвращает минуты
func (t TimeString) Minute() int {
	_, minute, _ := split(string(t))
	return minute
}

// Units кодирует время в получасовые единицы: час*10, +5 если минут >= 30.
// 10:30 -> 105, 16:00 -> 160. Шаг между соседними получасами всегда 5.
func (t TimeString) Units() int {
	hour, minute, _ := split(string(t))
	units := hour * 10
	if minute >= 30 {
		units += 5
	}
	return units
}

// OnHalfHour возвращает true, если минуты равны 0 или 30
func (t TimeString) OnHalfHour() bool {
	minute := t.Minute()
	return minute == 0 || minute == 30
}

// AddMinutes возвращает время, сдвинутое на n минут
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	current := t.Minutes()
	if current < 0 {
		return "", ErrInvalidTimeString
	}
	shifted := current + n
	if shifted < 0 || shifted > minutesPerDay {
		return "", fmt.Errorf("%w: %s%+d minutes leaves the day", ErrInvalidTimeString, t, n)
	}
	return fromMinutes(shifted), nil
}

// IsBefore возвращает true, если t раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если t позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// Scan реализует sql.Scanner (Postgres отдает TIME как "HH:MM:SS")
func (t *TimeString) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case nil:
		*t = ""
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}

	if len(raw) > 5 {
		raw = raw[:5]
	}
	parsed, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

func split(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || parts[0] == "" || len(parts[1]) != 2 {
		return 0, 0, ErrInvalidTimeString
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 24 {
		return 0, 0, ErrInvalidTimeString
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, ErrInvalidTimeString
	}
	if hour == 24 && minute != 0 {
		return 0, 0, ErrInvalidTimeString
	}

	return hour, minute, nil
}

func fromMinutes(m int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}
