package create_order

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса на создание заказа
type Request struct {
	UserID           int64     // ID клиента
	ServiceVariantID int64     // ID варианта услуги
	OptionIDs        []int64   // ID выбранных опций (может быть пустым)
	StartsAt         time.Time // Абсолютное время начала (UTC)
	Bonus            int       // Количество бонусов к списанию (0 - без списания)
	Notes            *string   // Заметки клиента
}

// Response модель ответа с созданным заказом
type Response struct {
	ID               int64
	UserID           int64
	ExecutorID       *int64
	BaseServiceID    int64
	ServiceVariantID int64
	OptionIDs        []int64
	StartsAt         time.Time
	DurationMinutes  int
	Status           string
	ServiceName      string
	TotalPrice       float64
	Bonus            int
	Notes            *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Policy политика резолвера доступности
// Значения берутся из конфигурации сервиса, см. SchedulingConfig
type Policy struct {
	MarkerStepMinutes int // шаг между маркерами исполнителей
	DayEndHour        int // час UTC, после которого работа не может закончиться (24 = конец суток)
	MinNoticeMinutes  int // минимальное время до начала заказа при бронировании на сегодня
	HorizonDays       int // максимальная глубина бронирования в будущее
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
