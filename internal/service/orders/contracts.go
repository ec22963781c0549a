package orders

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetByUser(ctx context.Context, userID int64) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
	Assign(ctx context.Context, id int64, executorID int64) error
}

// BonusRepository интерфейс репозитория бонусного счета
type BonusRepository interface {
	Create(ctx context.Context, op *domain.BonusOperation) (*domain.BonusOperation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
