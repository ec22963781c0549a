package get_user_orders

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/orders/models"
)

type OrderService interface {
	GetUserOrders(ctx context.Context, userID int64) (*models.OrderListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
