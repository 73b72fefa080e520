package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствии обязательных полей
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrSlotTaken возвращается, когда слот (дата + время) уже занят
	ErrSlotTaken = errors.New("create_appointment: slot already taken")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
