// Package types общие типы-значения, используемые доменом и хранилищем
package types

import (
	"errors"
	"fmt"
	"time"
)

// Форматы времени начала записи
const (
	timeFormat        = "15:04"
	timeFormatSeconds = "15:04:05"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время начала записи в каноничном формате HH:MM.
// Хранится и сравнивается как строка, что делает слот (дата + время)
// детерминированным ключом без участия часовых поясов.
type TimeString string

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString разбирает строку формата HH:MM или HH:MM:SS
// и приводит её к каноничному виду HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	if t, err := time.Parse(timeFormat, s); err == nil {
		return TimeString(t.Format(timeFormat)), nil
	}
	if t, err := time.Parse(timeFormatSeconds, s); err == nil {
		return TimeString(t.Format(timeFormat)), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
}

// String возвращает строковое представление HH:MM
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение соответствует формату HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}
