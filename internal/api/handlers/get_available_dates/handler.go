package get_available_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailableDates "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_dates"
)

const (
	msgInvalidVariantID = "некорректный ID варианта услуги"
	msgMissingVariantID = "ID варианта услуги обязателен"
	msgInvalidOptionIDs = "некорректный список ID опций"
	msgVariantNotFound  = "вариант услуги не найден"
	msgInvalidInput     = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-dates
// Query params: serviceVariantId (required), optionIds (optional, "1,2,3")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Извлекаем serviceVariantId из query параметров
	variantIDStr := query.Get("serviceVariantId")
	if variantIDStr == "" {
		h.logger.Warn("GET /available-dates - Missing service variant ID")
		handlers.RespondBadRequest(w, msgMissingVariantID)
		return
	}

	variantID, err := strconv.ParseInt(variantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-dates - Invalid service variant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVariantID)
		return
	}

	// Извлекаем optionIds из query параметров
	optionIDs, err := ParseOptionIDs(query.Get("optionIds"))
	if err != nil {
		h.logger.Warn("GET /available-dates - Invalid option IDs: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOptionIDs)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getAvailableDates.Request{
		ServiceVariantID: variantID,
		OptionIDs:        optionIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDates.ErrVariantNotFound):
			h.logger.Warn("GET /available-dates - Variant not found: variant_id=%d", variantID)
			handlers.RespondNotFound(w, msgVariantNotFound)

		case errors.Is(err, getAvailableDates.ErrInvalidInput):
			h.logger.Warn("GET /available-dates - Invalid input: variant_id=%d, error=%v", variantID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /available-dates - Failed to get dates: variant_id=%d, error=%v", variantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /available-dates - Dates retrieved successfully: variant_id=%d, dates_count=%d",
		variantID, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, response)
}
