package create_order

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// slotIsAvailable проверяет, что запрошенный старт доступен хотя бы
// у одного квалифицированного исполнителя. Условия те же, что у резолвера
// слотов: работа до dayEnd, непрерывное покрытие маркерами с точным шагом,
// отсутствие пересечений с занятыми полуинтервалами
func slotIsAvailable(
	startsAt time.Time,
	requiredMinutes int,
	executors []domain.ExecutorDay,
	busyIntervals []domain.Interval,
	policy Policy,
) bool {
	dayStart := startOfDay(startsAt)
	dayEnd := dayStart.Add(time.Duration(policy.DayEndHour) * time.Hour)

	tEnd := startsAt.Add(time.Duration(requiredMinutes) * time.Minute)
	if tEnd.After(dayEnd) {
		return false
	}

	// Старт должен попадать на маркер с точностью до минуты
	startMinutes := int(startsAt.Sub(dayStart) / time.Minute)
	if dayStart.Add(time.Duration(startMinutes)*time.Minute) != startsAt {
		return false
	}

	if overlapsAny(domain.Interval{Start: startsAt, End: tEnd}, busyIntervals) {
		return false
	}

	needed := (requiredMinutes + policy.MarkerStepMinutes - 1) / policy.MarkerStepMinutes
	if needed < 1 {
		needed = 1
	}

	for _, executor := range executors {
		minutes, ok := sortedMarkerMinutes(executor.Markers)
		if !ok {
			continue
		}

		from := sort.SearchInts(minutes, startMinutes)
		if from >= len(minutes) || minutes[from] != startMinutes {
			continue
		}

		if from+needed > len(minutes) {
			continue
		}

		if hasContiguousCoverage(minutes, from, needed, policy.MarkerStepMinutes) {
			return true
		}
	}

	return false
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
// Интервалы полуоткрытые: касание границ конфликтом не считается
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

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня, UTC)
func isDateInPast(date, now time.Time) bool {
	return startOfDay(date).Before(startOfDay(now))
}
