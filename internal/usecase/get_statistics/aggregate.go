package get_statistics

import (
	"time"

	"github.com/barbertime/appointment-service/internal/domain"
	"github.com/barbertime/appointment-service/pkg/calendar"
)

// matchesPeriod сообщает, попадает ли дата записи в период
// относительно текущего момента now
func matchesPeriod(date time.Time, period domain.Period, now time.Time) bool {
	switch period {
	case domain.PeriodDay:
		return calendar.SameDay(date, now)
	case domain.PeriodWeek:
		return calendar.SameWeek(date, now)
	case domain.PeriodMonth:
		return calendar.SameMonth(date, now)
	case domain.PeriodAll:
		return true
	default:
		return false
	}
}

// modeCounter считает моду по последовательности значений.
// При равенстве частот побеждает значение, встретившееся первым:
// обход идет в порядке вставки, смена лидера требует строгого
// превышения.
type modeCounter struct {
	counts map[string]int
	order  []string
}

func newModeCounter() *modeCounter {
	return &modeCounter{counts: make(map[string]int)}
}

func (m *modeCounter) add(value string) {
	if _, seen := m.counts[value]; !seen {
		m.order = append(m.order, value)
	}
	m.counts[value]++
}

// top возвращает самое частое значение или domain.EmptyValueLabel,
// если значений не было
func (m *modeCounter) top() string {
	top := domain.EmptyValueLabel
	best := 0
	for _, value := range m.order {
		if m.counts[value] > best {
			best = m.counts[value]
			top = value
		}
	}
	return top
}

// aggregatePeriod строит показатели за период по коллекции записей.
// Записи вне периода не учитываются ни в одном показателе.
func aggregatePeriod(appointments []*domain.Appointment, period domain.Period, now time.Time) PeriodStats {
	var stats PeriodStats

	services := newModeCounter()
	clients := newModeCounter()

	for _, appt := range appointments {
		if !matchesPeriod(appt.Date, period, now) {
			continue
		}

		stats.Count++

		// Выручка и топы считаются только по завершенным записям
		if !appt.IsCompleted() {
			continue
		}

		stats.Revenue += appt.Amount
		services.add(appt.Service)
		clients.add(appt.ClientName)
	}

	stats.TopService = services.top()
	stats.TopClient = clients.top()

	return stats
}

// weekdayHistogram распределение всех записей по дням недели,
// индекс 0 — воскресенье
func weekdayHistogram(appointments []*domain.Appointment) [7]int {
	var histogram [7]int
	for _, appt := range appointments {
		histogram[calendar.WeekdayIndex(appt.Date)]++
	}
	return histogram
}
