package signup

import (
	"context"

	"github.com/barbertime/appointment-service/internal/service/auth"
)

type AuthService interface {
	Signup(ctx context.Context, req *auth.SignupRequest) (*auth.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
