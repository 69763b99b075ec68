package types

import (
	"errors"
	"time"
)

// DateFormat формат даты в ISO 8601 (день, без времени)
const DateFormat = "2006-01-02"

// ErrInvalidDateFormat возвращается при некорректном формате даты
var ErrInvalidDateFormat = errors.New("types: invalid date string format, expected YYYY-MM-DD")

// DateString дата с точностью до дня в формате "YYYY-MM-DD".
// Используется для сериализации дат в JSON и для передачи через платежный редирект:
// round-trip через строку не теряет информацию на дневной гранулярности.
type DateString string

// NewDateString создает DateString из time.Time (время отбрасывается)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(DateFormat))
}

// NewDateStringFromString парсит и валидирует строку даты
func NewDateStringFromString(s string) (DateString, error) {
	if _, err := time.Parse(DateFormat, s); err != nil {
		return "", ErrInvalidDateFormat
	}
	return DateString(s), nil
}

// Validate проверяет формат даты
func (d DateString) Validate() error {
	if _, err := time.Parse(DateFormat, string(d)); err != nil {
		return ErrInvalidDateFormat
	}
	return nil
}

// IsZero возвращает true для пустой строки
func (d DateString) IsZero() bool {
	return d == ""
}

// Time конвертирует DateString в time.Time (полночь UTC)
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(DateFormat, string(d))
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// String возвращает строковое представление даты
func (d DateString) String() string {
	return string(d)
}
