package get_available_dates

import (
	"strconv"
	"strings"

	getAvailableDates "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	ServiceVariantID int64    `json:"serviceVariantId"`
	Dates            []string `json:"dates"` // даты YYYY-MM-DD, по возрастанию
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	return &AvailableDatesResponse{
		ServiceVariantID: resp.ServiceVariantID,
		Dates:            resp.Dates,
	}
}

// ParseOptionIDs разбирает список ID опций из query параметра
// Формат: "1,2,3"; пустая строка - отсутствие опций
func ParseOptionIDs(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))

	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
