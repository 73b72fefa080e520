package login

import (
	"errors"
	"net/http"

	"github.com/barbertime/appointment-service/internal/api/handlers"
	"github.com/barbertime/appointment-service/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверный логин или пароль"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidInput):
			// Один и тот же ответ для неизвестного логина и неверного
			// пароля, чтобы не раскрывать существование пользователя
			h.logger.Warn("POST /auth/login - Invalid credentials: username=%q", req.Username)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /auth/login - Failed to login: username=%q, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - User logged in successfully: user_id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusOK, user)
}
