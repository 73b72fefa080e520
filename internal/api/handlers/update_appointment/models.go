package update_appointment

import (
	"time"

	"github.com/barbertime/appointment-service/internal/domain"
	updateAppointment "github.com/barbertime/appointment-service/internal/usecase/update_appointment"
	"github.com/barbertime/appointment-service/pkg/calendar"
	"github.com/barbertime/appointment-service/pkg/money"
	"github.com/barbertime/appointment-service/pkg/types"
)

// UpdateAppointmentRequest HTTP request model
type UpdateAppointmentRequest struct {
	ClientName string      `json:"clientName"`
	Phone      string      `json:"phone"`
	Date       string      `json:"date"` // "2024-03-10"
	StartTime  string      `json:"time"` // "14:00"
	Service    string      `json:"service"`
	Status     string      `json:"status"`
	Amount     interface{} `json:"amount"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID         int64   `json:"id"`
	ClientName string  `json:"clientName"`
	Phone      string  `json:"phone"`
	Date       string  `json:"date"`
	StartTime  string  `json:"time"`
	Service    string  `json:"service"`
	Status     string  `json:"status"`
	Amount     float64 `json:"amount"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest(id int64) (*updateAppointment.Request, error) {
	date, err := calendar.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &updateAppointment.Request{
		ID:         id,
		ClientName: r.ClientName,
		Phone:      r.Phone,
		Date:       date,
		StartTime:  startTime,
		Service:    r.Service,
		Status:     domain.AppointmentStatus(r.Status),
		Amount:     money.NormalizeAmount(r.Amount),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         resp.ID,
		ClientName: resp.ClientName,
		Phone:      resp.Phone,
		Date:       resp.Date.Format(domain.DateFormat),
		StartTime:  resp.StartTime.String(),
		Service:    resp.Service,
		Status:     resp.Status,
		Amount:     resp.Amount,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
