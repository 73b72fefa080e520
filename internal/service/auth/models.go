package auth

import (
	"time"

	"github.com/barbertime/appointment-service/internal/domain"
)

// SignupRequest запрос на регистрацию пользователя
type SignupRequest struct {
	Username string
	Phone    string
	Password string
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Username string
	Password string
}

// UserResponse ответ с данными пользователя (без пароля)
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}
