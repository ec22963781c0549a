package update_schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// UseCase use case для замены недельного шаблона исполнителя
type UseCase struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case замены недельного шаблона
// Замена и чтение результата идут в одной транзакции: конкурентный
// резолвер никогда не увидит наполовину удаленный шаблон
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateSchedule: executor=%d, days=%d", req.ExecutorID, len(req.Days))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Конвертируем вход в доменную модель
	// Маркеры выходных дней отбрасываются на этом шаге
	days := toDomainDays(req)

	// Переменная для хранения результата
	var saved []*domain.ScheduleDay

	// 3. Заменяем шаблон и читаем результат в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.scheduleRepo.ReplaceWeek(txCtx, req.ExecutorID, days); err != nil {
			uc.logger.Error("UpdateSchedule: failed to replace week for executor=%d: %v", req.ExecutorID, err)
			return fmt.Errorf("%w: failed to replace week: %v", ErrInternal, err)
		}

		result, err := uc.scheduleRepo.GetWeekByExecutor(txCtx, req.ExecutorID)
		if err != nil {
			uc.logger.Error("UpdateSchedule: failed to read back week for executor=%d: %v", req.ExecutorID, err)
			return fmt.Errorf("%w: failed to read back week: %v", ErrInternal, err)
		}

		saved = result
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateSchedule: successfully replaced week for executor=%d", req.ExecutorID)

	return toResponse(req.ExecutorID, saved), nil
}

// toDomainDays конвертирует вход в доменную модель недельного шаблона
func toDomainDays(req *Request) []*domain.ScheduleDay {
	days := make([]*domain.ScheduleDay, 0, len(req.Days))

	for _, day := range req.Days {
		scheduleDay := &domain.ScheduleDay{
			ExecutorID: req.ExecutorID,
			DayOfWeek:  domain.DayOfWeek(day.DayOfWeek),
			IsDayOff:   day.IsDayOff,
		}

		if !day.IsDayOff {
			markers := make([]types.TimeString, 0, len(day.Markers))
			for _, marker := range day.Markers {
				markers = append(markers, types.TimeString(marker))
			}
			scheduleDay.Markers = markers
		}

		days = append(days, scheduleDay)
	}

	return days
}

// toResponse конвертирует сохраненный шаблон в response
func toResponse(executorID int64, days []*domain.ScheduleDay) *Response {
	resp := &Response{
		ExecutorID: executorID,
		Days:       make([]DayOutput, 0, len(days)),
	}

	for _, day := range days {
		markers := make([]string, 0, len(day.Markers))
		for _, marker := range day.Markers {
			markers = append(markers, marker.String())
		}

		resp.Days = append(resp.Days, DayOutput{
			DayOfWeek: string(day.DayOfWeek),
			IsDayOff:  day.IsDayOff,
			Markers:   markers,
		})
	}

	return resp
}
