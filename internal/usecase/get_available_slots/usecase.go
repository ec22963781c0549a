package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

// UseCase use case для получения доступных слотов на дату
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

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, variant=%d, options=%v, date=%s",
		req.UserID, req.ServiceVariantID, req.OptionIDs, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты с учетом горизонта планирования
	if err := validateDate(req.Date, now, uc.policy.HorizonDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем вариант услуги
	variant, err := uc.catalogRepo.GetVariant(ctx, req.ServiceVariantID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrVariantNotFound) {
			uc.logger.Warn("GetAvailableSlots: variant id=%d not found", req.ServiceVariantID)
			return nil, ErrVariantNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get variant id=%d: %v", req.ServiceVariantID, err)
		return nil, fmt.Errorf("%w: failed to get variant: %v", ErrInternal, err)
	}

	// 5. Получаем выбранные опции и считаем общую длительность
	options, err := uc.catalogRepo.GetOptions(ctx, variant.BaseServiceID, req.OptionIDs)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get options: %v", err)
		return nil, fmt.Errorf("%w: failed to get options: %v", ErrInternal, err)
	}

	requiredMinutes := domain.TotalDurationMinutes(variant, options)

	// 6. Получаем квалифицированных исполнителей на день недели
	dayOfWeek := domain.DayOfWeekFromTime(req.Date)
	executors, err := uc.scheduleRepo.GetQualifiedForDay(ctx, variant.ID, dayOfWeek)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get qualified executors: %v", err)
		return nil, fmt.Errorf("%w: failed to get qualified executors: %v", ErrInternal, err)
	}

	if len(executors) == 0 {
		uc.logger.Info("GetAvailableSlots: no qualified executors for variant=%d on %s",
			variant.ID, dayOfWeek)
		return &Response{
			Date:             req.Date,
			ServiceVariantID: req.ServiceVariantID,
			Slots:            []Slot{},
		}, nil
	}

	// 7. Получаем занятые интервалы на этот день
	dayStart := startOfDay(req.Date)
	nextDay := dayStart.AddDate(0, 0, 1)

	orders, err := uc.orderRepo.GetBusyInWindow(ctx, domain.OrdersFilter{
		WindowStart: ptr.Ptr(dayStart),
		WindowEnd:   ptr.Ptr(nextDay),
		OnlyBusy:    true,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get busy orders: %v", err)
		return nil, fmt.Errorf("%w: failed to get busy orders: %v", ErrInternal, err)
	}

	busyIntervals := extractBusyIntervals(orders)

	// 8. Вычисляем допустимые старты
	starts := resolveSlots(req.Date, requiredMinutes, executors, busyIntervals, now, uc.policy)

	uc.logger.Info("GetAvailableSlots: resolved %d slots for variant=%d, date=%s (duration=%d min, executors=%d, busy=%d)",
		len(starts), req.ServiceVariantID, req.Date.Format(domain.DateFormat),
		requiredMinutes, len(executors), len(busyIntervals))

	return &Response{
		Date:             req.Date,
		ServiceVariantID: req.ServiceVariantID,
		Slots:            toSlots(starts),
	}, nil
}

// toSlots конвертирует моменты времени в слоты ответа
func toSlots(starts []time.Time) []Slot {
	slots := make([]Slot, len(starts))
	for i, start := range starts {
		slots[i] = Slot{Timestamp: start.UnixMilli()}
	}
	return slots
}
