package models

import (
	"time"

	"github.com/barbertime/appointment-service/internal/domain"
)

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID         int64   `json:"id"`
	ClientName string  `json:"clientName"`
	Phone      string  `json:"phone"`
	Date       string  `json:"date"` // "2024-03-10"
	Time       string  `json:"time"` // "14:00"
	Service    string  `json:"service"`
	Status     string  `json:"status"`
	Amount     float64 `json:"amount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:         a.ID,
		ClientName: a.ClientName,
		Phone:      a.Phone,
		Date:       a.Date.Format(domain.DateFormat),
		Time:       a.StartTime.String(),
		Service:    a.Service,
		Status:     string(a.Status),
		Amount:     a.Amount,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appt := range appointments {
		if apptResp := FromDomainAppointment(appt); apptResp != nil {
			resp.Appointments = append(resp.Appointments, *apptResp)
		}
	}

	return resp
}
