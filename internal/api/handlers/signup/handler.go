package signup

import (
	"errors"
	"net/http"

	"github.com/barbertime/appointment-service/internal/api/handlers"
	"github.com/barbertime/appointment-service/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "логин, телефон и пароль обязательны"
	msgUsernameTaken      = "пользователь с таким логином уже существует"
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

// Handle POST /auth/signup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req auth.SignupRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/signup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/signup - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, auth.ErrUsernameTaken):
			h.logger.Warn("POST /auth/signup - Username taken: username=%q", req.Username)
			handlers.RespondError(w, http.StatusConflict, msgUsernameTaken)

		default:
			h.logger.Error("POST /auth/signup - Failed to signup: username=%q, error=%v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/signup - User registered successfully: user_id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusCreated, user)
}
