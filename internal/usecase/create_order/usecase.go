package create_order

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

// UseCase use case для создания заказа
type UseCase struct {
	orderRepo    OrderRepository
	scheduleRepo ScheduleRepository
	catalogRepo  CatalogRepository
	bonusRepo    BonusRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	policy       Policy
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	orderRepo OrderRepository,
	scheduleRepo ScheduleRepository,
	catalogRepo CatalogRepository,
	bonusRepo BonusRepository,
	txManager TransactionManager,
	policy Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		orderRepo:    orderRepo,
		scheduleRepo: scheduleRepo,
		catalogRepo:  catalogRepo,
		bonusRepo:    bonusRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		policy:       policy,
		logger:       logger,
	}
}

// Execute выполняет use case создания заказа
// Проверка доступности слота, списание бонусов и вставка заказа выполняются
// в одной сериализуемой транзакции: конкурентный заказ на тот же слот
// получит конфликт, а не перезапишет бронь
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateOrder: user=%d, variant=%d, options=%v, startsAt=%s, bonus=%d",
		req.UserID, req.ServiceVariantID, req.OptionIDs, req.StartsAt.UTC().Format("2006-01-02 15:04"), req.Bonus)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateOrder: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация времени начала
	if err := validateStartsAt(req.StartsAt, now, uc.policy); err != nil {
		uc.logger.Warn("CreateOrder: startsAt validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем вариант услуги
	variant, err := uc.catalogRepo.GetVariant(ctx, req.ServiceVariantID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrVariantNotFound) {
			uc.logger.Warn("CreateOrder: variant id=%d not found", req.ServiceVariantID)
			return nil, ErrVariantNotFound
		}
		uc.logger.Error("CreateOrder: failed to get variant id=%d: %v", req.ServiceVariantID, err)
		return nil, fmt.Errorf("%w: failed to get variant: %v", ErrInternal, err)
	}

	// 5. Получаем выбранные опции, считаем длительность и цену
	options, err := uc.catalogRepo.GetOptions(ctx, variant.BaseServiceID, req.OptionIDs)
	if err != nil {
		uc.logger.Error("CreateOrder: failed to get options: %v", err)
		return nil, fmt.Errorf("%w: failed to get options: %v", ErrInternal, err)
	}

	requiredMinutes := domain.TotalDurationMinutes(variant, options)
	totalPrice := domain.TotalPrice(variant, options)

	// Переменная для хранения результата
	var result *domain.Order

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем занятые заказы дня с блокировкой (FOR UPDATE)
		dayStart := startOfDay(req.StartsAt)
		nextDay := dayStart.AddDate(0, 0, 1)

		orders, err := uc.orderRepo.GetBusyInWindow(txCtx, domain.OrdersFilter{
			WindowStart: ptr.Ptr(dayStart),
			WindowEnd:   ptr.Ptr(nextDay),
			OnlyBusy:    true,
		})
		if err != nil {
			uc.logger.Error("CreateOrder: failed to get busy orders: %v", err)
			return fmt.Errorf("%w: failed to get busy orders: %v", ErrInternal, err)
		}

		// 6.2. Получаем квалифицированных исполнителей на день недели
		dayOfWeek := domain.DayOfWeekFromTime(req.StartsAt)
		executors, err := uc.scheduleRepo.GetQualifiedForDay(txCtx, variant.ID, dayOfWeek)
		if err != nil {
			uc.logger.Error("CreateOrder: failed to get qualified executors: %v", err)
			return fmt.Errorf("%w: failed to get qualified executors: %v", ErrInternal, err)
		}

		// 6.3. Проверяем доступность запрошенного слота
		busyIntervals := extractBusyIntervals(orders)
		if !slotIsAvailable(req.StartsAt, requiredMinutes, executors, busyIntervals, uc.policy) {
			uc.logger.Warn("CreateOrder: slot %s is not available for variant=%d",
				req.StartsAt.UTC().Format("2006-01-02 15:04"), variant.ID)
			return ErrSlotNotAvailable
		}

		// 6.4. Проверяем баланс бонусов перед списанием
		if req.Bonus > 0 {
			balance, err := uc.bonusRepo.SumByUser(txCtx, req.UserID)
			if err != nil {
				uc.logger.Error("CreateOrder: failed to get bonus balance for user=%d: %v", req.UserID, err)
				return fmt.Errorf("%w: failed to get bonus balance: %v", ErrInternal, err)
			}

			if balance < req.Bonus {
				uc.logger.Warn("CreateOrder: user=%d has %d bonuses, requested %d", req.UserID, balance, req.Bonus)
				return ErrNotEnoughBonuses
			}
		}

		// 6.5. Создаем заказ с денормализацией данных услуги
		order := &domain.Order{
			UserID:           req.UserID,
			BaseServiceID:    variant.BaseServiceID,
			ServiceVariantID: variant.ID,
			OptionIDs:        req.OptionIDs,
			StartsAt:         req.StartsAt,
			DurationMinutes:  requiredMinutes,
			Status:           domain.StatusTodo,
			ServiceName:      variant.Name,
			TotalPrice:       totalPrice,
			Bonus:            req.Bonus,
			Notes:            req.Notes,
		}

		created, err := uc.orderRepo.Create(txCtx, order)
		if err != nil {
			uc.logger.Error("CreateOrder: failed to create order: %v", err)
			return fmt.Errorf("%w: failed to create order: %v", ErrInternal, err)
		}

		// 6.6. Списываем бонусы операцией с привязкой к заказу
		if req.Bonus > 0 {
			op := &domain.BonusOperation{
				UserID:  req.UserID,
				OrderID: ptr.Ptr(created.ID),
				Value:   -req.Bonus,
			}

			if _, err := uc.bonusRepo.Create(txCtx, op); err != nil {
				uc.logger.Error("CreateOrder: failed to debit bonuses for order=%d: %v", created.ID, err)
				return fmt.Errorf("%w: failed to debit bonuses: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateOrder: successfully created order id=%d (duration=%d min, price=%.2f)",
		result.ID, result.DurationMinutes, result.TotalPrice)

	// Конвертируем в response
	return &Response{
		ID:               result.ID,
		UserID:           result.UserID,
		ExecutorID:       result.ExecutorID,
		BaseServiceID:    result.BaseServiceID,
		ServiceVariantID: result.ServiceVariantID,
		OptionIDs:        result.OptionIDs,
		StartsAt:         result.StartsAt,
		DurationMinutes:  result.DurationMinutes,
		Status:           string(result.Status),
		ServiceName:      result.ServiceName,
		TotalPrice:       result.TotalPrice,
		Bonus:            result.Bonus,
		Notes:            result.Notes,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}
