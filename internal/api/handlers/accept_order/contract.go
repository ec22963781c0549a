package accept_order

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/orders/models"
)

type OrderService interface {
	Accept(ctx context.Context, orderID int64, executorID int64) (*models.OrderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
