package create_order

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ServiceVariantID <= 0 {
		return fmt.Errorf("%w: serviceVariantID must be positive", ErrInvalidInput)
	}

	for _, optionID := range req.OptionIDs {
		if optionID <= 0 {
			return fmt.Errorf("%w: optionID must be positive", ErrInvalidInput)
		}
	}

	if req.StartsAt.IsZero() {
		return fmt.Errorf("%w: startsAt is required", ErrInvalidInput)
	}

	if req.Bonus < 0 {
		return fmt.Errorf("%w: bonus must not be negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateStartsAt проверяет, что время начала попадает в окно планирования
// и соблюдает минимальный запас времени
func validateStartsAt(startsAt time.Time, now time.Time, policy Policy) error {
	if isDateInPast(startsAt, now) {
		return ErrInvalidDate
	}

	if startsAt.Before(now.Add(time.Duration(policy.MinNoticeMinutes) * time.Minute)) {
		return ErrInvalidDate
	}

	if policy.HorizonDays > 0 {
		maxDate := startOfDay(now).AddDate(0, 0, policy.HorizonDays)
		if startOfDay(startsAt).After(maxDate) {
			return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, policy.HorizonDays)
		}
	}

	return nil
}
