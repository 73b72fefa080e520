package domain

import (
	"time"

	"github.com/barbertime/appointment-service/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusCompleted AppointmentStatus = "completed"
)

// IsValid returns true if the status is one of the known values
func (s AppointmentStatus) IsValid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Appointment represents a client appointment in the barbershop calendar
type Appointment struct {
	ID         int64
	ClientName string
	Phone      string
	Date       time.Time        // календарная дата записи, без компонента времени
	StartTime  types.TimeString // время начала ("14:00")
	Service    string
	Status     AppointmentStatus
	Amount     float64 // стоимость услуги, нормализованная на входе

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCompleted returns true if the appointment has been completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == StatusCompleted
}

// Slot возвращает ключ слота (дата + время) для логов.
// Во всём календаре одновременно может существовать только одна запись
// на один слот — это главный инвариант системы.
func (a *Appointment) Slot() string {
	return a.Date.Format(DateFormat) + " " + a.StartTime.String()
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	StartDate *time.Time         // Начало периода (опционально)
	EndDate   *time.Time         // Конец периода (опционально)
	Status    *AppointmentStatus // Фильтр по статусу (опционально)
}
