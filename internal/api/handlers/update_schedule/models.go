package update_schedule

import (
	updateSchedule "github.com/m04kA/SMC-AvailabilityService/internal/usecase/update_schedule"
)

// UpdateScheduleRequest HTTP request model
// Шаблон передается целиком: все 7 дней недели
type UpdateScheduleRequest struct {
	Days []ScheduleDay `json:"days"`
}

// ScheduleDay один день недельного шаблона
type ScheduleDay struct {
	DayOfWeek string   `json:"dayOfWeek"` // MON..SUN
	IsDayOff  bool     `json:"isDayOff"`
	Markers   []string `json:"markers"` // "HH:MM"
}

// ScheduleResponse HTTP response model с сохраненным шаблоном
type ScheduleResponse struct {
	ExecutorID int64         `json:"executorId"`
	Days       []ScheduleDay `json:"days"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateScheduleRequest) ToUseCaseRequest(executorID int64) *updateSchedule.Request {
	days := make([]updateSchedule.DayInput, 0, len(r.Days))
	for _, day := range r.Days {
		days = append(days, updateSchedule.DayInput{
			DayOfWeek: day.DayOfWeek,
			IsDayOff:  day.IsDayOff,
			Markers:   day.Markers,
		})
	}

	return &updateSchedule.Request{
		ExecutorID: executorID,
		Days:       days,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateSchedule.Response) *ScheduleResponse {
	days := make([]ScheduleDay, 0, len(resp.Days))
	for _, day := range resp.Days {
		days = append(days, ScheduleDay{
			DayOfWeek: day.DayOfWeek,
			IsDayOff:  day.IsDayOff,
			Markers:   day.Markers,
		})
	}

	return &ScheduleResponse{
		ExecutorID: resp.ExecutorID,
		Days:       days,
	}
}
