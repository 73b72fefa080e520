package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/barbertime/appointment-service/internal/domain"
	appointmentRepo "github.com/barbertime/appointment-service/internal/infra/storage/appointment"
)

// UseCase use case для создания записи на услугу
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

// Execute выполняет use case создания записи.
// Проверка занятости слота и вставка выполняются в одной
// serializable-транзакции; уникальное ограничение в БД закрывает
// оставшееся окно гонки между конкурентными запросами.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%q, date=%s, time=%s, service=%q",
		req.ClientName, req.Date.Format(domain.DateFormat), req.StartTime, req.Service)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Статус по умолчанию — pending
	status := req.Status
	if status == "" {
		status = domain.StatusPending
	}

	var result *domain.Appointment

	// 3. Проверяем слот и создаем запись атомарно
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		taken, err := uc.appointmentRepo.FindConflict(txCtx, req.Date, req.StartTime, nil)
		if err != nil {
			uc.logger.Error("CreateAppointment: conflict check failed: %v", err)
			return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
		}
		if taken {
			uc.logger.Warn("CreateAppointment: slot %s %s already taken",
				req.Date.Format(domain.DateFormat), req.StartTime)
			return ErrSlotTaken
		}

		appt := &domain.Appointment{
			ClientName: req.ClientName,
			Phone:      req.Phone,
			Date:       req.Date,
			StartTime:  req.StartTime,
			Service:    req.Service,
			Status:     status,
			Amount:     req.Amount,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			// Ограничение uq_appointments_slot могло сработать раньше
			// нашей проверки при конкурентной вставке
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot %s %s taken by concurrent insert",
					req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d, slot=%s", result.ID, result.Slot())

	return fromDomain(result), nil
}
