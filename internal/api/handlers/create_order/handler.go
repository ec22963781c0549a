package create_order

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	createOrder "github.com/m04kA/SMC-AvailabilityService/internal/usecase/create_order"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgVariantNotFound    = "вариант услуги не найден"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgNotEnoughBonuses   = "недостаточно бонусов на счете"
	msgInvalidOrderDate   = "некорректная дата заказа"
	msgDateTooFar         = "дата заказа слишком далеко в будущем"
	msgInvalidInput       = "некорректные данные заказа"
)

type Handler struct {
	useCase CreateOrderUseCase
	logger  Logger
}

func NewHandler(useCase CreateOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /orders - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req CreateOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createOrder.ErrVariantNotFound):
			h.logger.Warn("POST /orders - Variant not found: user_id=%d, variant_id=%d", userID, req.ServiceVariantID)
			handlers.RespondNotFound(w, msgVariantNotFound)

		case errors.Is(err, createOrder.ErrSlotNotAvailable):
			// Конфликт, а не bad request: слот мог быть занят конкурентным заказом
			h.logger.Warn("POST /orders - Slot not available: user_id=%d, variant_id=%d", userID, req.ServiceVariantID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createOrder.ErrNotEnoughBonuses):
			h.logger.Warn("POST /orders - Not enough bonuses: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgNotEnoughBonuses)

		case errors.Is(err, createOrder.ErrInvalidDate):
			h.logger.Warn("POST /orders - Invalid order date: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidOrderDate)

		case errors.Is(err, createOrder.ErrDateTooFarInFuture):
			h.logger.Warn("POST /orders - Date too far in future: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createOrder.ErrInvalidInput):
			h.logger.Warn("POST /orders - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /orders - Failed to create order: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders - Order created successfully: order_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
