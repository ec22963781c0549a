package update_schedule

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// validateRequest валидирует входные данные запроса
// Шаблон принимается только целиком: ровно 7 различных дней недели.
// Рабочий день обязан иметь хотя бы один маркер, маркеры выходного дня
// допускаются во входе, но не сохраняются
func validateRequest(req *Request) error {
	if req.ExecutorID <= 0 {
		return fmt.Errorf("%w: executorID must be positive", ErrInvalidInput)
	}

	if len(req.Days) != domain.WeekDaysCount {
		return fmt.Errorf("%w: exactly %d days are required, got %d",
			ErrInvalidInput, domain.WeekDaysCount, len(req.Days))
	}

	seen := make(map[domain.DayOfWeek]struct{}, domain.WeekDaysCount)

	for _, day := range req.Days {
		dayOfWeek := domain.DayOfWeek(day.DayOfWeek)
		if !dayOfWeek.IsValid() {
			return fmt.Errorf("%w: unknown day of week %q", ErrInvalidInput, day.DayOfWeek)
		}

		if _, ok := seen[dayOfWeek]; ok {
			return fmt.Errorf("%w: duplicate day of week %q", ErrInvalidInput, day.DayOfWeek)
		}
		seen[dayOfWeek] = struct{}{}

		if day.IsDayOff {
			continue
		}

		if len(day.Markers) == 0 {
			return fmt.Errorf("%w: working day %q must have at least one marker",
				ErrInvalidInput, day.DayOfWeek)
		}

		markerSeen := make(map[string]struct{}, len(day.Markers))
		for _, marker := range day.Markers {
			if _, err := types.NewTimeStringFromString(marker); err != nil {
				return fmt.Errorf("%w: invalid marker %q for day %q",
					ErrInvalidInput, marker, day.DayOfWeek)
			}

			if _, ok := markerSeen[marker]; ok {
				return fmt.Errorf("%w: duplicate marker %q for day %q",
					ErrInvalidInput, marker, day.DayOfWeek)
			}
			markerSeen[marker] = struct{}{}
		}
	}

	return nil
}
