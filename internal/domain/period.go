package domain

import (
	"errors"
	"strings"
)

// Period период агрегации статистики
type Period string

const (
	PeriodDay   Period = "DAY"
	PeriodWeek  Period = "WEEK"
	PeriodMonth Period = "MONTH"
	PeriodAll   Period = "ALL"
)

// ErrUnknownPeriod возвращается при неизвестном токене периода
var ErrUnknownPeriod = errors.New("unknown period")

// ParsePeriod разбирает токен периода (регистр не учитывается).
// Закрытое множество значений исключает подстановку произвольных строк
// в условия выборки.
func ParsePeriod(s string) (Period, error) {
	switch Period(strings.ToUpper(strings.TrimSpace(s))) {
	case PeriodDay:
		return PeriodDay, nil
	case PeriodWeek:
		return PeriodWeek, nil
	case PeriodMonth:
		return PeriodMonth, nil
	case PeriodAll:
		return PeriodAll, nil
	default:
		return "", ErrUnknownPeriod
	}
}
