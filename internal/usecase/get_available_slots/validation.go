package get_available_slots

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceVariantID <= 0 {
		return fmt.Errorf("%w: serviceVariantID must be positive", ErrInvalidInput)
	}

	for _, optionID := range req.OptionIDs {
		if optionID <= 0 {
			return fmt.Errorf("%w: optionID must be positive", ErrInvalidInput)
		}
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно планирования
func validateDate(requestDate time.Time, now time.Time, horizonDays int) error {
	if isDateInPast(requestDate, now) {
		return ErrInvalidDate
	}

	// Если horizonDays = 0, нет ограничений на дату
	if horizonDays == 0 {
		return nil
	}

	maxDate := startOfDay(now).AddDate(0, 0, horizonDays)
	if startOfDay(requestDate).After(maxDate) {
		return fmt.Errorf("%w: can only query %d days in advance", ErrDateTooFarInFuture, horizonDays)
	}

	return nil
}
