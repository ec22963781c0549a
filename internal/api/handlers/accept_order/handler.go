package accept_order

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/orders"
)

const (
	msgInvalidOrderID  = "некорректный ID заказа"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgNotFound        = "заказ не найден"
	msgAlreadyAccepted = "заказ уже взят другим исполнителем"
)

type Handler struct {
	service OrderService
	logger  Logger
}

func NewHandler(service OrderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/orders/{orderId}/accept
// Исполнитель забирает заказ из общей очереди (todo -> processed)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем orderId из URL
	vars := mux.Vars(r)
	orderIDStr := vars["orderId"]

	orderID, err := strconv.ParseInt(orderIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /orders/{id}/accept - Invalid order ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	executorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /orders/{id}/accept - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Назначаем исполнителя
	order, err := h.service.Accept(r.Context(), orderID, executorID)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			h.logger.Warn("PATCH /orders/{id}/accept - Order not found: order_id=%d", orderID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, orders.ErrAlreadyAccepted):
			// Гонка исполнителей: побеждает первый закоммитившийся
			h.logger.Warn("PATCH /orders/{id}/accept - Already accepted: order_id=%d, executor_id=%d",
				orderID, executorID)
			handlers.RespondConflict(w, msgAlreadyAccepted)

		default:
			h.logger.Error("PATCH /orders/{id}/accept - Failed to accept order: order_id=%d, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /orders/{id}/accept - Order accepted successfully: order_id=%d, executor_id=%d",
		orderID, executorID)
	handlers.RespondJSON(w, http.StatusOK, order)
}
