package update_schedule

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	// ReplaceWeek атомарно заменяет недельный шаблон исполнителя
	ReplaceWeek(ctx context.Context, executorID int64, days []*domain.ScheduleDay) error
	// GetWeekByExecutor получает недельный шаблон исполнителя
	GetWeekByExecutor(ctx context.Context, executorID int64) ([]*domain.ScheduleDay, error)
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
