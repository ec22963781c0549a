package create_order

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetBusyInWindow(ctx context.Context, filter domain.OrdersFilter) ([]*domain.Order, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetQualifiedForDay(ctx context.Context, variantID int64, day domain.DayOfWeek) ([]domain.ExecutorDay, error)
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetVariant(ctx context.Context, id int64) (*domain.ServiceVariant, error)
	GetOptions(ctx context.Context, baseServiceID int64, optionIDs []int64) ([]*domain.ServiceOption, error)
}

// BonusRepository интерфейс репозитория бонусного счета
type BonusRepository interface {
	SumByUser(ctx context.Context, userID int64) (int, error)
	Create(ctx context.Context, op *domain.BonusOperation) (*domain.BonusOperation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
