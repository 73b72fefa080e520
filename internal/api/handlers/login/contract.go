package login

import (
	"context"

	"github.com/barbertime/appointment-service/internal/service/auth"
)

type AuthService interface {
	Login(ctx context.Context, req *auth.LoginRequest) (*auth.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
