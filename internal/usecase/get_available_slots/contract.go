package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	// GetBusyInWindow получает заказы, занимающие время в указанном окне
	GetBusyInWindow(ctx context.Context, filter domain.OrdersFilter) ([]*domain.Order, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	// GetQualifiedForDay получает исполнителей, допущенных к варианту услуги,
	// с их маркерами на указанный день недели
	GetQualifiedForDay(ctx context.Context, variantID int64, day domain.DayOfWeek) ([]domain.ExecutorDay, error)
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetVariant(ctx context.Context, id int64) (*domain.ServiceVariant, error)
	GetOptions(ctx context.Context, baseServiceID int64, optionIDs []int64) ([]*domain.ServiceOption, error)
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
