package update_appointment

import (
	"fmt"

	"github.com/barbertime/appointment-service/internal/domain"
)

func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if req.ClientName == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName exceeds %d characters", ErrInvalidInput, domain.MaxClientNameLength)
	}

	if req.Phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone exceeds %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if req.Service == "" {
		return fmt.Errorf("%w: service is required", ErrInvalidInput)
	}
	if len(req.Service) > domain.MaxServiceLength {
		return fmt.Errorf("%w: service exceeds %d characters", ErrInvalidInput, domain.MaxServiceLength)
	}

	// При полном обновлении статус обязателен
	if !req.Status.IsValid() {
		return fmt.Errorf("%w: invalid status %q", ErrInvalidInput, req.Status)
	}

	return nil
}
