package get_statistics

import (
	"context"

	"github.com/barbertime/appointment-service/internal/domain"
	getStatistics "github.com/barbertime/appointment-service/internal/usecase/get_statistics"
)

type GetStatisticsUseCase interface {
	Execute(ctx context.Context, period domain.Period) (*getStatistics.PeriodStats, error)
	GetOverview(ctx context.Context) (*getStatistics.Overview, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
