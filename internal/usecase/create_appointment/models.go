package create_appointment

import (
	"time"

	"github.com/barbertime/appointment-service/internal/domain"
	"github.com/barbertime/appointment-service/pkg/types"
)

// Request модель запроса на создание записи.
// Amount уже нормализован на границе HTTP (pkg/money) — здесь это
// каноничный float64, повторного разбора не происходит.
type Request struct {
	ClientName string                   // Имя клиента
	Phone      string                   // Телефон клиента
	Date       time.Time                // Дата записи (без времени)
	StartTime  types.TimeString         // Время начала (например, "14:00")
	Service    string                   // Название услуги
	Status     domain.AppointmentStatus // Статус (пустой -> pending)
	Amount     float64                  // Стоимость услуги
}

// Response модель ответа с созданной записью
type Response struct {
	ID         int64
	ClientName string
	Phone      string
	Date       time.Time
	StartTime  types.TimeString
	Service    string
	Status     string
	Amount     float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func fromDomain(appt *domain.Appointment) *Response {
	return &Response{
		ID:         appt.ID,
		ClientName: appt.ClientName,
		Phone:      appt.Phone,
		Date:       appt.Date,
		StartTime:  appt.StartTime,
		Service:    appt.Service,
		Status:     string(appt.Status),
		Amount:     appt.Amount,
		CreatedAt:  appt.CreatedAt,
		UpdatedAt:  appt.UpdatedAt,
	}
}
