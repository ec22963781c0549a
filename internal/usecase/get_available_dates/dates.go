package get_available_dates

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// dayHasAvailableStart проверяет, есть ли на день хотя бы один допустимый
// старт хотя бы у одного исполнителя. Возвращает true при первом найденном
// старте, не перечисляя остальные: резолвер дат отвечает на вопрос
// "пригоден ли день вообще", а не "сколько на нем слотов"
func dayHasAvailableStart(
	day time.Time,
	requiredMinutes int,
	weeks []*domain.ExecutorWeek,
	busyIntervals []domain.Interval,
	now time.Time,
	policy Policy,
) bool {
	dayOfWeek := domain.DayOfWeekFromTime(day)

	for _, week := range weeks {
		markers := week.WorkingMarkers(dayOfWeek)
		if len(markers) == 0 {
			continue
		}

		if executorHasStart(day, requiredMinutes, markers, busyIntervals, now, policy) {
			return true
		}
	}

	return false
}

// executorHasStart проверяет наличие хотя бы одного допустимого старта
// у одного исполнителя. Те же условия, что у резолвера слотов:
// работа до dayEnd, непрерывное покрытие маркерами с точным шагом,
// отсутствие пересечений с занятыми полуинтервалами, минимальный
// запас времени для сегодняшнего дня
func executorHasStart(
	day time.Time,
	requiredMinutes int,
	markers []types.TimeString,
	busyIntervals []domain.Interval,
	now time.Time,
	policy Policy,
) bool {
	dayStart := startOfDay(day)
	dayEnd := dayStart.Add(time.Duration(policy.DayEndHour) * time.Hour)

	needed := (requiredMinutes + policy.MarkerStepMinutes - 1) / policy.MarkerStepMinutes
	if needed < 1 {
		needed = 1
	}

	minutes, ok := sortedMarkerMinutes(markers)
	if !ok {
		return false
	}

	sameDay := isSameDay(dayStart, now)
	minStart := now.Add(time.Duration(policy.MinNoticeMinutes) * time.Minute)

	for i := range minutes {
		if i+needed > len(minutes) {
			return false
		}

		t := dayStart.Add(time.Duration(minutes[i]) * time.Minute)
		tEnd := t.Add(time.Duration(requiredMinutes) * time.Minute)

		// Маркеры отсортированы: все последующие старты заканчиваются еще позже
		if tEnd.After(dayEnd) {
			return false
		}

		if sameDay && t.Before(minStart) {
			continue
		}

		if !hasContiguousCoverage(minutes, i, needed, policy.MarkerStepMinutes) {
			continue
		}

		if overlapsAny(domain.Interval{Start: t, End: tEnd}, busyIntervals) {
			continue
		}

		return true
	}

	return false
}

// busyIntervalsForDay выбирает занятые интервалы, начинающиеся в указанный день
func busyIntervalsForDay(intervals []domain.Interval, day time.Time) []domain.Interval {
	result := make([]domain.Interval, 0)
	for _, interval := range intervals {
		if interval.SameDay(day) {
			result = append(result, interval)
		}
	}
	return result
}

// hasContiguousCoverage проверяет, что needed маркеров начиная с индекса from
// идут подряд с шагом ровно step минут
func hasContiguousCoverage(minutes []int, from, needed, step int) bool {
	for k := 1; k < needed; k++ {
		if minutes[from+k]-minutes[from+k-1] != step {
			return false
		}
	}
	return true
}

// overlapsAny проверяет пересечение кандидата с занятыми интервалами
func overlapsAny(candidate domain.Interval, busyIntervals []domain.Interval) bool {
	for _, busy := range busyIntervals {
		if candidate.Overlaps(busy) {
			return true
		}
	}
	return false
}

// extractBusyIntervals превращает заказы в занятые полуинтервалы
func extractBusyIntervals(orders []*domain.Order) []domain.Interval {
	intervals := make([]domain.Interval, 0, len(orders))
	for _, order := range orders {
		if !order.OccupiesTime() {
			continue
		}
		intervals = append(intervals, order.BusyInterval())
	}
	return intervals
}

// sortedMarkerMinutes переводит маркеры в минуты от начала суток
func sortedMarkerMinutes(markers []types.TimeString) ([]int, bool) {
	minutes := make([]int, 0, len(markers))
	for _, marker := range markers {
		m, err := marker.Minutes()
		if err != nil {
			return nil, false
		}
		minutes = append(minutes, m)
	}
	sort.Ints(minutes)
	return minutes, true
}

// startOfDay возвращает начало календарного дня (UTC)
func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню (UTC)
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.UTC().Date()
	y2, m2, d2 := date2.UTC().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
