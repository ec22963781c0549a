package get_available_dates

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
	calls  int
}

func (s *stubOrderRepo) GetBusyInWindow(_ context.Context, _ domain.OrdersFilter) ([]*domain.Order, error) {
	s.calls++
	return s.orders, nil
}

type stubScheduleRepo struct {
	weeks []*domain.ExecutorWeek
}

func (s *stubScheduleRepo) GetQualifiedWeeks(_ context.Context, _ int64) ([]*domain.ExecutorWeek, error) {
	return s.weeks, nil
}

type stubCatalogRepo struct {
	variant    *domain.ServiceVariant
	variantErr error
	options    []*domain.ServiceOption
}

func (s *stubCatalogRepo) GetVariant(_ context.Context, _ int64) (*domain.ServiceVariant, error) {
	return s.variant, s.variantErr
}

func (s *stubCatalogRepo) GetOptions(_ context.Context, _ int64, _ []int64) ([]*domain.ServiceOption, error) {
	return s.options, nil
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

func TestUseCase_Execute(t *testing.T) {
	orders := &stubOrderRepo{}
	schedule := &stubScheduleRepo{weeks: []*domain.ExecutorWeek{
		week(1, map[domain.DayOfWeek]*domain.ScheduleDay{
			domain.Monday: {DayOfWeek: domain.Monday, Markers: markers("09:00", "10:00")},
		}),
	}}
	catalog := &stubCatalogRepo{variant: &domain.ServiceVariant{ID: 10, BaseServiceID: 1, DurationMinutes: 60}}

	uc := NewUseCase(orders, schedule, catalog, testPolicy(), nopLogger{})
	uc.timeProvider = stubTime{now: yesterday}

	resp, err := uc.Execute(context.Background(), &Request{UserID: 5, ServiceVariantID: 10})

	require.NoError(t, err)
	// Горизонт 30 дней с 2026-03-01: понедельники 02, 09, 16, 23, 30 марта
	assert.Equal(t, []string{"2026-03-02", "2026-03-09", "2026-03-16", "2026-03-23", "2026-03-30"}, resp.Dates)
	// Занятые интервалы читаются одним запросом на весь горизонт
	assert.Equal(t, 1, orders.calls)
}

func TestUseCase_Execute_VariantNotFound(t *testing.T) {
	catalog := &stubCatalogRepo{variantErr: catalogRepo.ErrVariantNotFound}
	uc := NewUseCase(&stubOrderRepo{}, &stubScheduleRepo{}, catalog, testPolicy(), nopLogger{})
	uc.timeProvider = stubTime{now: yesterday}

	_, err := uc.Execute(context.Background(), &Request{ServiceVariantID: 10})

	assert.ErrorIs(t, err, ErrVariantNotFound)
}

func TestUseCase_Execute_NoQualifiedExecutors(t *testing.T) {
	orders := &stubOrderRepo{}
	catalog := &stubCatalogRepo{variant: &domain.ServiceVariant{ID: 10, DurationMinutes: 60}}
	uc := NewUseCase(orders, &stubScheduleRepo{}, catalog, testPolicy(), nopLogger{})
	uc.timeProvider = stubTime{now: yesterday}

	resp, err := uc.Execute(context.Background(), &Request{ServiceVariantID: 10})

	require.NoError(t, err)
	assert.Empty(t, resp.Dates)
	assert.Zero(t, orders.calls)
}
