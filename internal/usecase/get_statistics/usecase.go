package get_statistics

import (
	"context"
	"fmt"

	"github.com/barbertime/appointment-service/internal/domain"
)

// UseCase use case для получения статистики по записям
type UseCase struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute возвращает показатели за один период
func (uc *UseCase) Execute(ctx context.Context, period domain.Period) (*PeriodStats, error) {
	uc.logger.Info("GetStatistics: period=%s", period)

	appointments, err := uc.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()
	stats := aggregatePeriod(appointments, period, now)

	return &stats, nil
}

// GetOverview возвращает сводную статистику по всем периодам
// и распределение записей по дням недели
func (uc *UseCase) GetOverview(ctx context.Context) (*Overview, error) {
	uc.logger.Info("GetStatistics: overview requested")

	appointments, err := uc.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()

	return &Overview{
		Today:            aggregatePeriod(appointments, domain.PeriodDay, now),
		Week:             aggregatePeriod(appointments, domain.PeriodWeek, now),
		Month:            aggregatePeriod(appointments, domain.PeriodMonth, now),
		All:              aggregatePeriod(appointments, domain.PeriodAll, now),
		WeekdayHistogram: weekdayHistogram(appointments),
	}, nil
}

// loadAll загружает все записи без фильтров. Недельный период не
// выражается простым диапазоном дат на границе года, поэтому
// агрегация делается в памяти по полной коллекции.
func (uc *UseCase) loadAll(ctx context.Context) ([]*domain.Appointment, error) {
	appointments, err := uc.appointmentRepo.List(ctx, domain.AppointmentsFilter{})
	if err != nil {
		uc.logger.Error("GetStatistics: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}
	return appointments, nil
}
