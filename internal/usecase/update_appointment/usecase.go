package update_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/barbertime/appointment-service/internal/domain"
	appointmentRepo "github.com/barbertime/appointment-service/internal/infra/storage/appointment"
	"github.com/barbertime/appointment-service/pkg/ptr"
)

// UseCase use case для обновления записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case обновления записи.
// Проверка слота исключает саму обновляемую запись: перенос записи
// на ее собственные дату и время конфликтом не считается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: id=%d, date=%s, time=%s",
		req.ID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 2. Проверяем слот и обновляем запись атомарно
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := uc.appointmentRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to load appointment %d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to load appointment: %v", ErrInternal, err)
		}

		taken, err := uc.appointmentRepo.FindConflict(txCtx, req.Date, req.StartTime, ptr.Ptr(req.ID))
		if err != nil {
			uc.logger.Error("UpdateAppointment: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("UpdateAppointment: slot %s %s already taken",
				req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrSlotTaken
		}

		appt := &domain.Appointment{
			ID:         req.ID,
			ClientName: req.ClientName,
			Phone:      req.Phone,
			Date:       req.Date,
			StartTime:  req.StartTime,
			Service:    req.Service,
			Status:     req.Status,
			Amount:     req.Amount,
			CreatedAt:  current.CreatedAt,
		}

		updated, err := uc.appointmentRepo.Update(txCtx, appt)
		if err != nil {
			switch {
			case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
				return ErrAppointmentNotFound
			case errors.Is(err, appointmentRepo.ErrSlotTaken):
				uc.logger.Warn("UpdateAppointment: slot %s %s taken by concurrent write",
					req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotTaken
			default:
				uc.logger.Error("UpdateAppointment: failed to update appointment %d: %v", req.ID, err)
				return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
			}
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%d", result.ID)

	return fromDomain(result), nil
}
