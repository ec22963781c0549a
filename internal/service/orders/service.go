package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	orderRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/order"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/orders/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

// Service сервис для работы с заказами
type Service struct {
	orderRepo OrderRepository
	bonusRepo BonusRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса заказов
func NewService(
	orderRepo OrderRepository,
	bonusRepo BonusRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		orderRepo: orderRepo,
		bonusRepo: bonusRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetByID получает заказ по ID
// Заказ видят владелец и назначенный исполнитель. Неназначенный заказ
// в статусе todo виден любому пользователю - исполнители выбирают
// заказы из общей очереди
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.OrderResponse, error) {
	s.logger.Info("GetByID: fetching order id=%d for user=%d", id, userID)

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("GetByID: order id=%d not found", id)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("GetByID: repository error for order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := checkOrderAccess(order, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to order id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched order id=%d", id)
	return models.FromDomainOrder(order), nil
}

// GetUserOrders получает заказы пользователя - и как клиента, и как исполнителя
func (s *Service) GetUserOrders(ctx context.Context, userID int64) (*models.OrderListResponse, error) {
	s.logger.Info("GetUserOrders: fetching orders for user=%d", userID)

	orders, err := s.orderRepo.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserOrders: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserOrders - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserOrders: successfully fetched %d orders for user=%d", len(orders), userID)
	return models.FromDomainOrderList(orders), nil
}

// Cancel отменяет заказ
// Отменить заказ может только его владелец. Списанные бонусы возвращаются
// на счет в той же транзакции, что и смена статуса
func (s *Service) Cancel(ctx context.Context, orderID int64, userID int64) error {
	s.logger.Info("Cancel: cancelling order id=%d by user=%d", orderID, userID)

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("Cancel: order id=%d not found", orderID)
			return ErrOrderNotFound
		}
		s.logger.Error("Cancel: repository error for order id=%d: %v", orderID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if order.UserID != userID {
		s.logger.Warn("Cancel: access denied for user=%d to cancel order id=%d", userID, orderID)
		return ErrAccessDenied
	}

	if !order.CanBeCancelled() {
		s.logger.Warn("Cancel: order id=%d cannot be cancelled, status=%s", orderID, order.Status)
		return ErrCannotCancel
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.orderRepo.UpdateStatus(txCtx, orderID, domain.StatusCanceled); err != nil {
			if errors.Is(err, orderRepo.ErrOrderNotFound) {
				return ErrOrderNotFound
			}
			return fmt.Errorf("%w: Cancel - update status: %v", ErrInternal, err)
		}

		// Возвращаем списанные бонусы
		if order.Bonus > 0 {
			op := &domain.BonusOperation{
				UserID:  order.UserID,
				OrderID: ptr.Ptr(order.ID),
				Value:   order.Bonus,
			}

			if _, err := s.bonusRepo.Create(txCtx, op); err != nil {
				return fmt.Errorf("%w: Cancel - refund bonuses: %v", ErrInternal, err)
			}
		}

		return nil
	})

	if err != nil {
		s.logger.Error("Cancel: failed to cancel order id=%d: %v", orderID, err)
		return err
	}

	s.logger.Info("Cancel: successfully cancelled order id=%d (refunded %d bonuses)", orderID, order.Bonus)
	return nil
}

// Accept назначает исполнителя на заказ (todo -> processed)
// Гонку двух исполнителей разрешает условное обновление в репозитории:
// повторная попытка получает ErrAlreadyAccepted
func (s *Service) Accept(ctx context.Context, orderID int64, executorID int64) (*models.OrderResponse, error) {
	s.logger.Info("Accept: executor=%d accepting order id=%d", executorID, orderID)

	if err := s.orderRepo.Assign(ctx, orderID, executorID); err != nil {
		if errors.Is(err, orderRepo.ErrAlreadyAccepted) {
			// Различаем "нет такого заказа" и "заказ уже взят"
			if _, getErr := s.orderRepo.GetByID(ctx, orderID); errors.Is(getErr, orderRepo.ErrOrderNotFound) {
				s.logger.Warn("Accept: order id=%d not found", orderID)
				return nil, ErrOrderNotFound
			}
			s.logger.Warn("Accept: order id=%d is already accepted", orderID)
			return nil, ErrAlreadyAccepted
		}
		s.logger.Error("Accept: repository error for order id=%d: %v", orderID, err)
		return nil, fmt.Errorf("%w: Accept - repository error: %v", ErrInternal, err)
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		s.logger.Error("Accept: failed to fetch accepted order id=%d: %v", orderID, err)
		return nil, fmt.Errorf("%w: Accept - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Accept: executor=%d successfully accepted order id=%d", executorID, orderID)
	return models.FromDomainOrder(order), nil
}

// checkOrderAccess проверяет доступ пользователя к заказу
func checkOrderAccess(order *domain.Order, userID int64) error {
	if order.UserID == userID {
		return nil
	}

	if order.ExecutorID != nil && *order.ExecutorID == userID {
		return nil
	}

	// Неназначенный заказ в общей очереди
	if order.CanBeAccepted() {
		return nil
	}

	return ErrAccessDenied
}
