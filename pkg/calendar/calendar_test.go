package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "plain date", input: "2024-03-10", want: date(2024, time.March, 10)},
		{name: "trailing time component", input: "2024-03-10T14:00:00", want: date(2024, time.March, 10)},
		{name: "trailing time with zone", input: "2024-03-10T14:00:00.000Z", want: date(2024, time.March, 10)},
		{name: "month out of range", input: "2024-13-01", wantErr: true},
		{name: "day out of range", input: "2024-02-30", wantErr: true},
		{name: "not a date", input: "tomorrow", wantErr: true},
		{name: "missing parts", input: "2024-03", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseDate_NoTimezoneShift(t *testing.T) {
	// Дата разбирается как локальная: день не должен "уехать" из-за UTC
	got, err := ParseDate("2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 1, got.Day())
	assert.Equal(t, time.Local, got.Location())
}

func TestWeekNumber(t *testing.T) {
	tests := []struct {
		name string
		d    time.Time
		want int
	}{
		{name: "first monday of 2024", d: date(2024, time.January, 1), want: 1},
		{name: "mid june saturday", d: date(2024, time.June, 15), want: 24},
		{name: "last saturday of 2024", d: date(2024, time.December, 28), want: 52},
		// 30 декабря 2024 (понедельник) относится к неделе 1 следующего года
		{name: "dec 30 rolls into week 1", d: date(2024, time.December, 30), want: 1},
		{name: "jan 1 2023 belongs to week 52", d: date(2023, time.January, 1), want: 52},
		{name: "thursday keeps its own week", d: date(2025, time.January, 2), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekNumber(tt.d))
		})
	}
}

func TestSameWeek_YearRolloverRegression(t *testing.T) {
	// Запись от 30 декабря 2024 вычисляется как неделя 1 (четверг — 2 января
	// 2025). В начале января 2025 номер недели совпадает с текущим, и без
	// сравнения по году исходной даты запись ошибочно попала бы в фильтр
	// "текущая неделя".
	appointment := date(2024, time.December, 30)
	now := date(2025, time.January, 2)

	require.Equal(t, WeekNumber(appointment), WeekNumber(now))
	assert.False(t, SameWeek(appointment, now))

	// В своей собственной неделе (конец декабря) запись тоже не совпадает
	// с текущей неделей января следующего года
	assert.True(t, SameWeek(appointment, date(2024, time.December, 31)))
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay(date(2024, time.March, 10), date(2024, time.March, 10)))
	assert.False(t, SameDay(date(2024, time.March, 10), date(2024, time.March, 11)))
	assert.False(t, SameDay(date(2024, time.March, 10), date(2023, time.March, 10)))
}

func TestSameMonth(t *testing.T) {
	assert.True(t, SameMonth(date(2024, time.March, 1), date(2024, time.March, 31)))
	assert.False(t, SameMonth(date(2024, time.March, 1), date(2024, time.April, 1)))
	// Одинаковый месяц, разные годы — не совпадение
	assert.False(t, SameMonth(date(2023, time.March, 10), date(2024, time.March, 10)))
}

func TestWeekdayIndex(t *testing.T) {
	// 10 марта 2024 — воскресенье
	assert.Equal(t, 0, WeekdayIndex(date(2024, time.March, 10)))
	// 11 марта 2024 — понедельник
	assert.Equal(t, 1, WeekdayIndex(date(2024, time.March, 11)))
	// 16 марта 2024 — суббота
	assert.Equal(t, 6, WeekdayIndex(date(2024, time.March, 16)))
}
