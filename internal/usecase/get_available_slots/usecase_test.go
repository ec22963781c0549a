package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/catalog"
)

type stubOrderRepo struct {
	orders []*domain.Order
	err    error
	calls  int
}

func (s *stubOrderRepo) GetBusyInWindow(_ context.Context, _ domain.OrdersFilter) ([]*domain.Order, error) {
	s.calls++
	return s.orders, s.err
}

type stubScheduleRepo struct {
	executors []domain.ExecutorDay
	err       error
}

func (s *stubScheduleRepo) GetQualifiedForDay(_ context.Context, _ int64, _ domain.DayOfWeek) ([]domain.ExecutorDay, error) {
	return s.executors, s.err
}

type stubCatalogRepo struct {
	variant    *domain.ServiceVariant
	variantErr error
	options    []*domain.ServiceOption
	optionsErr error
}

func (s *stubCatalogRepo) GetVariant(_ context.Context, _ int64) (*domain.ServiceVariant, error) {
	return s.variant, s.variantErr
}

func (s *stubCatalogRepo) GetOptions(_ context.Context, _ int64, _ []int64) ([]*domain.ServiceOption, error) {
	return s.options, s.optionsErr
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

func newTestUseCase(orders *stubOrderRepo, schedule *stubScheduleRepo, catalog *stubCatalogRepo, now time.Time) *UseCase {
	uc := NewUseCase(orders, schedule, catalog, testPolicy(), nopLogger{})
	uc.timeProvider = stubTime{now: now}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	orders := &stubOrderRepo{orders: []*domain.Order{
		{StartsAt: at(9, 0), DurationMinutes: 60, Status: domain.StatusTodo},
	}}
	schedule := &stubScheduleRepo{executors: []domain.ExecutorDay{
		{ExecutorID: 1, Markers: markers("08:00", "09:00", "10:00", "11:00")},
	}}
	catalog := &stubCatalogRepo{
		variant: &domain.ServiceVariant{ID: 10, BaseServiceID: 1, DurationMinutes: 60},
		options: []*domain.ServiceOption{{ID: 20, BaseServiceID: 1, DurationMinutes: 30}},
	}

	uc := newTestUseCase(orders, schedule, catalog, yesterday)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:           5,
		ServiceVariantID: 10,
		OptionIDs:        []int64{20},
		Date:             testDay,
	})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, at(10, 0).UnixMilli(), resp.Slots[0].Timestamp)
	assert.Equal(t, int64(10), resp.ServiceVariantID)
}

func TestUseCase_Execute_VariantNotFound(t *testing.T) {
	catalog := &stubCatalogRepo{variantErr: catalogRepo.ErrVariantNotFound}
	uc := newTestUseCase(&stubOrderRepo{}, &stubScheduleRepo{}, catalog, yesterday)

	_, err := uc.Execute(context.Background(), &Request{ServiceVariantID: 10, Date: testDay})

	assert.ErrorIs(t, err, ErrVariantNotFound)
}

func TestUseCase_Execute_DateValidation(t *testing.T) {
	catalog := &stubCatalogRepo{variant: &domain.ServiceVariant{ID: 10, DurationMinutes: 60}}
	uc := newTestUseCase(&stubOrderRepo{}, &stubScheduleRepo{}, catalog, at(12, 0))

	// Вчерашняя дата
	_, err := uc.Execute(context.Background(), &Request{ServiceVariantID: 10, Date: testDay.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, ErrInvalidDate)

	// За пределами горизонта планирования
	_, err = uc.Execute(context.Background(), &Request{ServiceVariantID: 10, Date: testDay.AddDate(0, 0, 31)})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&stubOrderRepo{}, &stubScheduleRepo{}, &stubCatalogRepo{}, yesterday)

	_, err := uc.Execute(context.Background(), &Request{ServiceVariantID: 0, Date: testDay})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceVariantID: 10, OptionIDs: []int64{-1}, Date: testDay})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_NoQualifiedExecutors(t *testing.T) {
	orders := &stubOrderRepo{}
	catalog := &stubCatalogRepo{variant: &domain.ServiceVariant{ID: 10, DurationMinutes: 60}}
	uc := newTestUseCase(orders, &stubScheduleRepo{}, catalog, yesterday)

	resp, err := uc.Execute(context.Background(), &Request{ServiceVariantID: 10, Date: testDay})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	// Без исполнителей занятые интервалы не запрашиваются
	assert.Zero(t, orders.calls)
}
