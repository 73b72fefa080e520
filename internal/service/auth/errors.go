package auth

import "errors"

var (
	// ErrUsernameTaken возвращается, когда имя пользователя уже занято
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials возвращается при неверной паре логин/пароль
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth service: internal error")
)
