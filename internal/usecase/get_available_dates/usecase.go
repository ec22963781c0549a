package get_available_dates

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

// UseCase use case для получения доступных дат в пределах горизонта
type UseCase struct {
	orderRepo    OrderRepository
	scheduleRepo ScheduleRepository
	catalogRepo  CatalogRepository
	timeProvider TimeProvider
	policy       Policy
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	orderRepo OrderRepository,
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	policy Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		orderRepo:    orderRepo,
		scheduleRepo: scheduleRepo,
		catalogRepo:  catalogRepo,
		timeProvider: &RealTimeProvider{},
		policy:       policy,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных дат
// Шаблоны исполнителей и занятые интервалы читаются один раз на весь
// горизонт, дальше резолвер работает в памяти день за днем
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: user=%d, variant=%d, options=%v",
		req.UserID, req.ServiceVariantID, req.OptionIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDates: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем вариант услуги
	variant, err := uc.catalogRepo.GetVariant(ctx, req.ServiceVariantID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrVariantNotFound) {
			uc.logger.Warn("GetAvailableDates: variant id=%d not found", req.ServiceVariantID)
			return nil, ErrVariantNotFound
		}
		uc.logger.Error("GetAvailableDates: failed to get variant id=%d: %v", req.ServiceVariantID, err)
		return nil, fmt.Errorf("%w: failed to get variant: %v", ErrInternal, err)
	}

	// 4. Получаем выбранные опции и считаем общую длительность
	options, err := uc.catalogRepo.GetOptions(ctx, variant.BaseServiceID, req.OptionIDs)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get options: %v", err)
		return nil, fmt.Errorf("%w: failed to get options: %v", ErrInternal, err)
	}

	requiredMinutes := domain.TotalDurationMinutes(variant, options)

	// 5. Получаем недельные шаблоны квалифицированных исполнителей
	weeks, err := uc.scheduleRepo.GetQualifiedWeeks(ctx, variant.ID)
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get qualified weeks: %v", err)
		return nil, fmt.Errorf("%w: failed to get qualified weeks: %v", ErrInternal, err)
	}

	if len(weeks) == 0 {
		uc.logger.Info("GetAvailableDates: no qualified executors for variant=%d", variant.ID)
		return &Response{
			ServiceVariantID: req.ServiceVariantID,
			Dates:            []string{},
		}, nil
	}

	// 6. Получаем занятые интервалы на весь горизонт одним запросом
	horizonStart := startOfDay(now)
	horizonEnd := horizonStart.AddDate(0, 0, uc.policy.HorizonDays)

	orders, err := uc.orderRepo.GetBusyInWindow(ctx, domain.OrdersFilter{
		WindowStart: ptr.Ptr(horizonStart),
		WindowEnd:   ptr.Ptr(horizonEnd),
		OnlyBusy:    true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableDates: failed to get busy orders: %v", err)
		return nil, fmt.Errorf("%w: failed to get busy orders: %v", ErrInternal, err)
	}

	busyIntervals := extractBusyIntervals(orders)

	// 7. Проходим горизонт день за днем. Для каждого дня достаточно
	// найти один допустимый старт - перечисление не требуется
	dates := make([]string, 0)

	for offset := 0; offset < uc.policy.HorizonDays; offset++ {
		day := horizonStart.AddDate(0, 0, offset)
		dayBusy := busyIntervalsForDay(busyIntervals, day)

		if dayHasAvailableStart(day, requiredMinutes, weeks, dayBusy, now, uc.policy) {
			dates = append(dates, day.Format(domain.DateFormat))
		}
	}

	uc.logger.Info("GetAvailableDates: resolved %d dates for variant=%d (duration=%d min, executors=%d)",
		len(dates), req.ServiceVariantID, requiredMinutes, len(weeks))

	return &Response{
		ServiceVariantID: req.ServiceVariantID,
		Dates:            dates,
	}, nil
}
