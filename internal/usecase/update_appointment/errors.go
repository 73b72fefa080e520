package update_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствии обязательных полей
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrAppointmentNotFound возвращается, если запись не существует
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrSlotTaken возвращается, когда целевой слот занят другой записью
	ErrSlotTaken = errors.New("update_appointment: slot already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)
