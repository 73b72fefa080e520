package update_appointment

import (
	"time"

	"github.com/barbertime/appointment-service/internal/domain"
	"github.com/barbertime/appointment-service/pkg/types"
)

// Request модель запроса на обновление записи.
// Обновление полное: все поля записи перезаписываются значениями
// из запроса, частичных patch-обновлений нет.
type Request struct {
	ID         int64
	ClientName string
	Phone      string
	Date       time.Time
	StartTime  types.TimeString
	Service    string
	Status     domain.AppointmentStatus
	Amount     float64
}

// Response модель ответа с обновленной записью
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
