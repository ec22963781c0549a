package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

const (
	msgInvalidVariantID = "некорректный ID варианта услуги"
	msgMissingVariantID = "ID варианта услуги обязателен"
	msgInvalidOptionIDs = "некорректный список ID опций"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgVariantNotFound  = "вариант услуги не найден"
	msgDateTooFar       = "дата слишком далеко в будущем"
	msgInvalidInput     = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: serviceVariantId (required), date (required, YYYY-MM-DD),
// optionIds (optional, "1,2,3")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Извлекаем serviceVariantId из query параметров
	variantIDStr := query.Get("serviceVariantId")
	if variantIDStr == "" {
		h.logger.Warn("GET /available-slots - Missing service variant ID")
		handlers.RespondBadRequest(w, msgMissingVariantID)
		return
	}

	variantID, err := strconv.ParseInt(variantIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid service variant ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVariantID)
		return
	}

	// Извлекаем optionIds из query параметров
	optionIDs, err := ParseOptionIDs(query.Get("optionIds"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid option IDs: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOptionIDs)
		return
	}

	// Извлекаем date из query параметров
	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(0, variantID, optionIDs, dateStr)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrVariantNotFound):
			h.logger.Warn("GET /available-slots - Variant not found: variant_id=%d", variantID)
			handlers.RespondNotFound(w, msgVariantNotFound)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /available-slots - Date too far in future: variant_id=%d, date=%s", variantID, dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate),
			errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: variant_id=%d, error=%v", variantID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: variant_id=%d, date=%s, error=%v",
				variantID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /available-slots - Slots retrieved successfully: variant_id=%d, date=%s, slots_count=%d",
		variantID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
