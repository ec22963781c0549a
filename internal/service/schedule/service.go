package schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedule/models"
)

// Service сервис для чтения расписаний исполнителей
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// GetWeek получает недельный шаблон исполнителя
func (s *Service) GetWeek(ctx context.Context, executorID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetWeek: fetching schedule for executor=%d", executorID)

	days, err := s.scheduleRepo.GetWeekByExecutor(ctx, executorID)
	if err != nil {
		s.logger.Error("GetWeek: repository error for executor=%d: %v", executorID, err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	if len(days) == 0 {
		s.logger.Warn("GetWeek: schedule for executor=%d not found", executorID)
		return nil, ErrScheduleNotFound
	}

	s.logger.Info("GetWeek: successfully fetched %d days for executor=%d", len(days), executorID)
	return models.FromDomainWeek(executorID, days), nil
}
