package models

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Response модели

// ScheduleResponse ответ с недельным шаблоном исполнителя
type ScheduleResponse struct {
	ExecutorID int64                 `json:"executorId"`
	Days       []ScheduleDayResponse `json:"days"`
}

// ScheduleDayResponse один день недельного шаблона
type ScheduleDayResponse struct {
	DayOfWeek string   `json:"dayOfWeek"`
	IsDayOff  bool     `json:"isDayOff"`
	Markers   []string `json:"markers"`
}

// Методы конвертации

// FromDomainWeek конвертирует недельный шаблон в DTO
func FromDomainWeek(executorID int64, days []*domain.ScheduleDay) *ScheduleResponse {
	resp := &ScheduleResponse{
		ExecutorID: executorID,
		Days:       make([]ScheduleDayResponse, 0, len(days)),
	}

	for _, day := range days {
		markers := make([]string, 0, len(day.Markers))
		for _, marker := range day.Markers {
			markers = append(markers, marker.String())
		}

		resp.Days = append(resp.Days, ScheduleDayResponse{
			DayOfWeek: string(day.DayOfWeek),
			IsDayOff:  day.IsDayOff,
			Markers:   markers,
		})
	}

	return resp
}
