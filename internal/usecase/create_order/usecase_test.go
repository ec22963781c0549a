package create_order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

type stubOrderRepo struct {
	busy    []*domain.Order
	created *domain.Order
}

func (s *stubOrderRepo) GetBusyInWindow(_ context.Context, _ domain.OrdersFilter) ([]*domain.Order, error) {
	return s.busy, nil
}

func (s *stubOrderRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	created := *order
	created.ID = 100
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.created = &created
	return &created, nil
}

type stubScheduleRepo struct {
	executors []domain.ExecutorDay
}

func (s *stubScheduleRepo) GetQualifiedForDay(_ context.Context, _ int64, _ domain.DayOfWeek) ([]domain.ExecutorDay, error) {
	return s.executors, nil
}

type stubCatalogRepo struct {
	variant *domain.ServiceVariant
	options []*domain.ServiceOption
}

func (s *stubCatalogRepo) GetVariant(_ context.Context, _ int64) (*domain.ServiceVariant, error) {
	return s.variant, nil
}

func (s *stubCatalogRepo) GetOptions(_ context.Context, _ int64, _ []int64) ([]*domain.ServiceOption, error) {
	return s.options, nil
}

type stubBonusRepo struct {
	balance  int
	sumCalls int
	ops      []*domain.BonusOperation
}

func (s *stubBonusRepo) SumByUser(_ context.Context, _ int64) (int, error) {
	s.sumCalls++
	return s.balance, nil
}

func (s *stubBonusRepo) Create(_ context.Context, op *domain.BonusOperation) (*domain.BonusOperation, error) {
	s.ops = append(s.ops, op)
	return op, nil
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubTime struct {
	now time.Time
}

func (s stubTime) Now() time.Time {
	return s.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type testEnv struct {
	orders   *stubOrderRepo
	schedule *stubScheduleRepo
	catalog  *stubCatalogRepo
	bonus    *stubBonusRepo
	uc       *UseCase
}

func newTestEnv() *testEnv {
	env := &testEnv{
		orders: &stubOrderRepo{},
		schedule: &stubScheduleRepo{executors: []domain.ExecutorDay{
			{ExecutorID: 1, Markers: markers("09:00", "10:00", "11:00")},
		}},
		catalog: &stubCatalogRepo{
			variant: &domain.ServiceVariant{ID: 10, BaseServiceID: 1, Name: "Базовая мойка", DurationMinutes: 60, Price: 100},
			options: []*domain.ServiceOption{{ID: 20, BaseServiceID: 1, DurationMinutes: 30, Price: 20}},
		},
		bonus: &stubBonusRepo{balance: 100},
	}

	env.uc = NewUseCase(env.orders, env.schedule, env.catalog, env.bonus, stubTxManager{}, testPolicy(), nopLogger{})
	env.uc.timeProvider = stubTime{now: yesterday}

	return env
}

func TestUseCase_Execute(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), &Request{
		UserID:           5,
		ServiceVariantID: 10,
		OptionIDs:        []int64{20},
		StartsAt:         at(9, 0),
		Bonus:            50,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "todo", resp.Status)
	assert.Equal(t, 90, resp.DurationMinutes)
	assert.InDelta(t, 120.0, resp.TotalPrice, 0.001)
	assert.Equal(t, "Базовая мойка", resp.ServiceName)

	// Списание привязано к созданному заказу
	require.Len(t, env.bonus.ops, 1)
	op := env.bonus.ops[0]
	assert.Equal(t, -50, op.Value)
	require.NotNil(t, op.OrderID)
	assert.Equal(t, int64(100), *op.OrderID)
}

func TestUseCase_Execute_SlotNotAvailable(t *testing.T) {
	env := newTestEnv()
	env.orders.busy = []*domain.Order{
		{StartsAt: at(9, 0), DurationMinutes: 60, Status: domain.StatusTodo},
	}

	_, err := env.uc.Execute(context.Background(), &Request{
		UserID:           5,
		ServiceVariantID: 10,
		StartsAt:         at(9, 0),
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, env.orders.created)
}

func TestUseCase_Execute_NotEnoughBonuses(t *testing.T) {
	env := newTestEnv()
	env.bonus.balance = 30

	_, err := env.uc.Execute(context.Background(), &Request{
		UserID:           5,
		ServiceVariantID: 10,
		StartsAt:         at(9, 0),
		Bonus:            50,
	})

	assert.ErrorIs(t, err, ErrNotEnoughBonuses)
	assert.Nil(t, env.orders.created)
}

func TestUseCase_Execute_ZeroBonusSkipsBalanceCheck(t *testing.T) {
	env := newTestEnv()

	_, err := env.uc.Execute(context.Background(), &Request{
		UserID:           5,
		ServiceVariantID: 10,
		StartsAt:         at(9, 0),
	})

	require.NoError(t, err)
	assert.Zero(t, env.bonus.sumCalls)
	assert.Empty(t, env.bonus.ops)
}

func TestUseCase_Execute_StartsAtValidation(t *testing.T) {
	env := newTestEnv()
	env.uc.timeProvider = stubTime{now: at(8, 30)}

	// Меньше минимального запаса времени
	_, err := env.uc.Execute(context.Background(), &Request{
		UserID:           5,
		ServiceVariantID: 10,
		StartsAt:         at(9, 0),
	})
	assert.ErrorIs(t, err, ErrInvalidDate)

	// За пределами горизонта планирования
	_, err = env.uc.Execute(context.Background(), &Request{
		UserID:           5,
		ServiceVariantID: 10,
		StartsAt:         at(9, 0).AddDate(0, 0, 31),
	})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestValidateRequest(t *testing.T) {
	longNotes := make([]byte, domain.MaxNotesLength+1)
	for i := range longNotes {
		longNotes[i] = 'a'
	}
	notes := string(longNotes)

	cases := []struct {
		name string
		req  Request
	}{
		{"zero user", Request{ServiceVariantID: 10, StartsAt: at(9, 0)}},
		{"zero variant", Request{UserID: 5, StartsAt: at(9, 0)}},
		{"negative option", Request{UserID: 5, ServiceVariantID: 10, OptionIDs: []int64{-1}, StartsAt: at(9, 0)}},
		{"zero startsAt", Request{UserID: 5, ServiceVariantID: 10}},
		{"negative bonus", Request{UserID: 5, ServiceVariantID: 10, StartsAt: at(9, 0), Bonus: -1}},
		{"too long notes", Request{UserID: 5, ServiceVariantID: 10, StartsAt: at(9, 0), Notes: &notes}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, validateRequest(&tc.req), ErrInvalidInput)
		})
	}
}
