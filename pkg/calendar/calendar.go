// Package calendar чистые функции распределения календарных дат по
// корзинам "день / неделя / месяц" для фильтрации и агрегации записей.
//
// Все даты трактуются как наивные локальные календарные даты: строка
// "2024-03-10" означает 10 марта по стенным часам, без каких-либо
// преобразований в UTC. Это исключает сдвиг на сутки на границе дня.
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateFormat формат календарной даты
const DateFormat = "2006-01-02"

// ErrInvalidDate возвращается при некорректной строке даты
var ErrInvalidDate = errors.New("calendar: invalid date")

// ParseDate разбирает дату из строки формата YYYY-MM-DD.
// Хвостовой компонент времени ("2024-03-10T14:00:00") отбрасывается.
// Результат — локальная календарная дата с нулевым временем.
func ParseDate(s string) (time.Time, error) {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		s = s[:i]
	}

	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	// time.Date нормализует переполнение (13-й месяц, 32-е число),
	// поэтому несовпадение после сборки означает некорректную дату
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	return date, nil
}

// WeekNumber вычисляет номер недели по правилу четверга: дата сдвигается
// к четвергу своей недели (неделя начинается с понедельника, воскресенье
// считается седьмым днем), номер недели — порядковый номер этого четверга
// в его году.
//
// Важно: год четверга может отличаться от года исходной даты (30 декабря
// может попасть в неделю 1 следующего года). Для фильтра "текущая неделя"
// сравнивать нужно и номер недели, и год ИСХОДНОЙ даты — см. SameWeek.
func WeekNumber(d time.Time) int {
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7
	}

	thursday := d.AddDate(0, 0, 4-weekday)
	return (thursday.YearDay() + 6) / 7
}

// SameDay возвращает true, если обе даты указывают на один календарный день
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// SameWeek возвращает true, если дата d попадает в ту же неделю, что и now.
// Сравнивается номер недели И год исходной даты: без проверки года запись
// от 30 декабря (неделя 1 следующего года) ошибочно совпала бы с первой
// неделей января.
func SameWeek(d, now time.Time) bool {
	return WeekNumber(d) == WeekNumber(now) && d.Year() == now.Year()
}

// SameMonth возвращает true, если дата d относится к тому же календарному
// месяцу и году, что и now
func SameMonth(d, now time.Time) bool {
	return d.Month() == now.Month() && d.Year() == now.Year()
}

// WeekdayIndex возвращает индекс дня недели: 0=воскресенье .. 6=суббота
func WeekdayIndex(d time.Time) int {
	return int(d.Weekday())
}
