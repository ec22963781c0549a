package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	orderRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/order"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

type stubOrderRepo struct {
	order     *domain.Order
	getErr    error
	list      []*domain.Order
	assignErr error
	status    *domain.OrderStatus
	assigned  *int64
}

func (s *stubOrderRepo) GetByID(_ context.Context, _ int64) (*domain.Order, error) {
	return s.order, s.getErr
}

func (s *stubOrderRepo) GetByUser(_ context.Context, _ int64) ([]*domain.Order, error) {
	return s.list, nil
}

func (s *stubOrderRepo) UpdateStatus(_ context.Context, _ int64, status domain.OrderStatus) error {
	s.status = &status
	return nil
}

func (s *stubOrderRepo) Assign(_ context.Context, _ int64, executorID int64) error {
	if s.assignErr != nil {
		return s.assignErr
	}
	s.assigned = &executorID
	return nil
}

type stubBonusRepo struct {
	ops []*domain.BonusOperation
}

func (s *stubBonusRepo) Create(_ context.Context, op *domain.BonusOperation) (*domain.BonusOperation, error) {
	s.ops = append(s.ops, op)
	return op, nil
}

type stubTxManager struct{}

func (stubTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testOrder() *domain.Order {
	return &domain.Order{
		ID:               100,
		UserID:           5,
		BaseServiceID:    1,
		ServiceVariantID: 10,
		StartsAt:         time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		DurationMinutes:  90,
		Status:           domain.StatusTodo,
		Bonus:            50,
	}
}

func newTestService(orders *stubOrderRepo, bonus *stubBonusRepo) *Service {
	return NewService(orders, bonus, stubTxManager{}, nopLogger{})
}

func TestService_GetByID_Access(t *testing.T) {
	repo := &stubOrderRepo{order: testOrder()}
	svc := newTestService(repo, &stubBonusRepo{})

	// Владелец видит заказ
	resp, err := svc.GetByID(context.Background(), 100, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)

	// Неназначенный todo-заказ в общей очереди виден любому
	_, err = svc.GetByID(context.Background(), 100, 99)
	assert.NoError(t, err)

	// Назначенный заказ видят только владелец и исполнитель
	repo.order.ExecutorID = ptr.Ptr(int64(7))
	repo.order.Status = domain.StatusProcessed

	_, err = svc.GetByID(context.Background(), 100, 7)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 100, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := &stubOrderRepo{getErr: orderRepo.ErrOrderNotFound}
	svc := newTestService(repo, &stubBonusRepo{})

	_, err := svc.GetByID(context.Background(), 100, 5)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestService_GetUserOrders(t *testing.T) {
	repo := &stubOrderRepo{list: []*domain.Order{testOrder()}}
	svc := newTestService(repo, &stubBonusRepo{})

	resp, err := svc.GetUserOrders(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, resp.Orders, 1)
	// nil-опции нормализуются в пустой список
	assert.NotNil(t, resp.Orders[0].OptionIDs)
}

func TestService_Cancel(t *testing.T) {
	repo := &stubOrderRepo{order: testOrder()}
	bonus := &stubBonusRepo{}
	svc := newTestService(repo, bonus)

	err := svc.Cancel(context.Background(), 100, 5)

	require.NoError(t, err)
	require.NotNil(t, repo.status)
	assert.Equal(t, domain.StatusCanceled, *repo.status)

	// Списанные бонусы возвращены операцией с привязкой к заказу
	require.Len(t, bonus.ops, 1)
	assert.Equal(t, 50, bonus.ops[0].Value)
	require.NotNil(t, bonus.ops[0].OrderID)
	assert.Equal(t, int64(100), *bonus.ops[0].OrderID)
}

func TestService_Cancel_NoRefundWithoutBonus(t *testing.T) {
	order := testOrder()
	order.Bonus = 0
	repo := &stubOrderRepo{order: order}
	bonus := &stubBonusRepo{}
	svc := newTestService(repo, bonus)

	require.NoError(t, svc.Cancel(context.Background(), 100, 5))
	assert.Empty(t, bonus.ops)
}

func TestService_Cancel_OwnerOnly(t *testing.T) {
	repo := &stubOrderRepo{order: testOrder()}
	svc := newTestService(repo, &stubBonusRepo{})

	err := svc.Cancel(context.Background(), 100, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, repo.status)
}

func TestService_Cancel_CompletedOrder(t *testing.T) {
	order := testOrder()
	order.Status = domain.StatusCompleted
	repo := &stubOrderRepo{order: order}
	svc := newTestService(repo, &stubBonusRepo{})

	err := svc.Cancel(context.Background(), 100, 5)
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_Accept(t *testing.T) {
	order := testOrder()
	repo := &stubOrderRepo{order: order}
	svc := newTestService(repo, &stubBonusRepo{})

	resp, err := svc.Accept(context.Background(), 100, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	require.NotNil(t, repo.assigned)
	assert.Equal(t, int64(7), *repo.assigned)
}

func TestService_Accept_AlreadyAccepted(t *testing.T) {
	// Заказ существует, но условное обновление не прошло
	repo := &stubOrderRepo{order: testOrder(), assignErr: orderRepo.ErrAlreadyAccepted}
	svc := newTestService(repo, &stubBonusRepo{})

	_, err := svc.Accept(context.Background(), 100, 7)
	assert.ErrorIs(t, err, ErrAlreadyAccepted)
}

func TestService_Accept_NotFound(t *testing.T) {
	repo := &stubOrderRepo{getErr: orderRepo.ErrOrderNotFound, assignErr: orderRepo.ErrAlreadyAccepted}
	svc := newTestService(repo, &stubBonusRepo{})

	_, err := svc.Accept(context.Background(), 100, 7)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
