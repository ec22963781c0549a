package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID           int64     // ID пользователя (для логирования, не влияет на результат)
	ServiceVariantID int64     // ID варианта услуги
	OptionIDs        []int64   // ID выбранных опций (может быть пустым)
	Date             time.Time // Дата для получения слотов (без времени, UTC)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date             time.Time // Дата, на которую запрашивались слоты
	ServiceVariantID int64     // ID варианта услуги
	Slots            []Slot    // Список доступных стартов, по возрастанию
}

// Slot момент, в который заказ может быть начат хотя бы одним исполнителем
type Slot struct {
	Timestamp int64 // Время начала в миллисекундах epoch (UTC)
}

// Policy политика резолвера доступности
// Значения берутся из конфигурации сервиса, см. SchedulingConfig
type Policy struct {
	MarkerStepMinutes int // шаг между маркерами исполнителей
	DayEndHour        int // час UTC, после которого работа не может закончиться (24 = конец суток)
	MinNoticeMinutes  int // минимальное время до начала заказа при запросе на сегодня
	HorizonDays       int // максимальная глубина запроса в будущее
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
