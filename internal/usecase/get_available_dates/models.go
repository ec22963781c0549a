package get_available_dates

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса на получение доступных дат
type Request struct {
	UserID           int64   // ID пользователя (для логирования, не влияет на результат)
	ServiceVariantID int64   // ID варианта услуги
	OptionIDs        []int64 // ID выбранных опций (может быть пустым)
}

// Response модель ответа со списком доступных дат
type Response struct {
	ServiceVariantID int64    // ID варианта услуги
	Dates            []string // Даты в формате YYYY-MM-DD, по возрастанию
}

// Policy политика резолвера доступности
// Значения берутся из конфигурации сервиса, см. SchedulingConfig
type Policy struct {
	MarkerStepMinutes int // шаг между маркерами исполнителей
	DayEndHour        int // час UTC, после которого работа не может закончиться (24 = конец суток)
	MinNoticeMinutes  int // минимальное время до начала заказа при запросе на сегодня
	HorizonDays       int // глубина проверки дат в будущее
}

// DefaultPolicy политика по умолчанию
func DefaultPolicy() Policy {
	return Policy{
		MarkerStepMinutes: domain.DefaultMarkerStepMinutes,
		DayEndHour:        domain.DefaultDayEndHour,
		MinNoticeMinutes:  domain.DefaultMinNoticeMinutes,
		HorizonDays:       domain.DefaultHorizonDays,
	}
}
