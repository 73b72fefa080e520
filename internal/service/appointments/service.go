package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/barbertime/appointment-service/internal/domain"
	appointmentRepo "github.com/barbertime/appointment-service/internal/infra/storage/appointment"
	"github.com/barbertime/appointment-service/internal/service/appointments/models"
)

// Service сервис для работы с записями на услуги
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List получает все записи, отсортированные по дате и времени по возрастанию
func (s *Service) List(ctx context.Context) (*models.AppointmentListResponse, error) {
	appointments, err := s.appointmentRepo.List(ctx, domain.AppointmentsFilter{})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// Complete переводит запись в статус completed.
// Остальные поля не меняются; слот не затрагивается, поэтому проверка
// занятости не нужна. Обратного перехода completed -> pending нет.
func (s *Service) Complete(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("Complete: completing appointment id=%d", id)

	if err := s.appointmentRepo.UpdateStatus(ctx, id, domain.StatusCompleted); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Complete: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Complete: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Complete: failed to reload appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Complete - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("Complete: appointment id=%d completed", id)
	return models.FromDomainAppointment(appt), nil
}

// Delete удаляет запись. Удаление окончательное: отдельного статуса
// "отменена" в модели нет.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting appointment id=%d", id)

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: appointment id=%d deleted", id)
	return nil
}
