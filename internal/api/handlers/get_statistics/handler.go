package get_statistics

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/barbertime/appointment-service/internal/api/handlers"
	"github.com/barbertime/appointment-service/internal/domain"
)

const msgInvalidPeriod = "некорректный период, ожидается day, week, month или all"

type Handler struct {
	useCase GetStatisticsUseCase
	logger  Logger
}

func NewHandler(useCase GetStatisticsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleOverview GET /api/v1/statistics
func (h *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.useCase.GetOverview(r.Context())
	if err != nil {
		h.logger.Error("GET /statistics - Failed to get statistics overview: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /statistics - Statistics overview retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, overview)
}

// HandleByPeriod GET /api/v1/statistics/{period}
func (h *Handler) HandleByPeriod(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	periodStr := vars["period"]

	period, err := domain.ParsePeriod(periodStr)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownPeriod) {
			h.logger.Warn("GET /statistics/{period} - Unknown period: %q", periodStr)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		h.logger.Error("GET /statistics/{period} - Failed to parse period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	stats, err := h.useCase.Execute(r.Context(), period)
	if err != nil {
		h.logger.Error("GET /statistics/{period} - Failed to get statistics: period=%s, error=%v", period, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /statistics/{period} - Statistics retrieved successfully: period=%s", period)
	handlers.RespondJSON(w, http.StatusOK, stats)
}
