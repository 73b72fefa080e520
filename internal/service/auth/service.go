package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/barbertime/appointment-service/internal/domain"
	userRepo "github.com/barbertime/appointment-service/internal/infra/storage/user"
)

// Service сервис регистрации и входа.
// Вход — одноразовая проверка пары логин/пароль, без сессий и токенов.
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Signup регистрирует нового пользователя
func (s *Service) Signup(ctx context.Context, req *SignupRequest) (*UserResponse, error) {
	if req.Username == "" || req.Phone == "" || req.Password == "" {
		s.logger.Warn("Signup: missing required fields for username=%q", req.Username)
		return nil, fmt.Errorf("%w: username, phone and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Username: req.Username,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUsernameTaken) {
			s.logger.Warn("Signup: username=%q already taken", req.Username)
			return nil, ErrUsernameTaken
		}
		s.logger.Error("Signup: repository error for username=%q: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Signup - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Signup: user id=%d username=%q registered", user.ID, user.Username)
	return FromDomainUser(user), nil
}

// Login проверяет пару логин/пароль.
// Пароль сверяется как непрозрачная строка. Несуществующий пользователь
// и неверный пароль дают один и тот же ответ.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*UserResponse, error) {
	if req.Username == "" || req.Password == "" {
		s.logger.Warn("Login: missing required fields for username=%q", req.Username)
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: username=%q not found", req.Username)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for username=%q: %v", req.Username, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if user.Password != req.Password {
		s.logger.Warn("Login: wrong password for username=%q", req.Username)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Login: user id=%d username=%q logged in", user.ID, user.Username)
	return FromDomainUser(user), nil
}
