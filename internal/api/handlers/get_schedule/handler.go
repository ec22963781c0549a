package get_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "расписание не найдено"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule
// Возвращает недельный шаблон исполнителя, от имени которого сделан запрос
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	executorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	week, err := h.service.GetWeek(r.Context(), executorID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrScheduleNotFound):
			h.logger.Warn("GET /schedule - Schedule not found: executor_id=%d", executorID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /schedule - Failed to get schedule: executor_id=%d, error=%v", executorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule - Schedule retrieved successfully: executor_id=%d", executorID)
	handlers.RespondJSON(w, http.StatusOK, week)
}
