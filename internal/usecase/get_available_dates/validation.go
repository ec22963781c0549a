package get_available_dates

import (
	"fmt"
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

	return nil
}
