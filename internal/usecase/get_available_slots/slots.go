package get_available_slots

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// resolveSlots вычисляет все допустимые старты заказа на день
// Результат - объединение стартов по всем исполнителям, без дубликатов,
// по возрастанию. Резолвер чистый: вся работа идет над переданными данными
func resolveSlots(
	day time.Time,
	requiredMinutes int,
	executors []domain.ExecutorDay,
	busyIntervals []domain.Interval,
	now time.Time,
	policy Policy,
) []time.Time {
	dayStart := startOfDay(day)
	dayEnd := dayStart.Add(time.Duration(policy.DayEndHour) * time.Hour)

	seen := make(map[int64]struct{})
	starts := make([]time.Time, 0)

	for _, executor := range executors {
		executorStarts := resolveExecutorSlots(
			dayStart,
			dayEnd,
			requiredMinutes,
			executor.Markers,
			busyIntervals,
			now,
			policy,
		)

		for _, start := range executorStarts {
			key := start.UnixMilli()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			starts = append(starts, start)
		}
	}

	sort.Slice(starts, func(i, j int) bool {
		return starts[i].Before(starts[j])
	})

	return starts
}

// resolveExecutorSlots вычисляет допустимые старты одного исполнителя
//
// Маркер годится в качестве старта, если:
//  1. работа целиком помещается до dayEnd;
//  2. интервал [t, t+required) непрерывно покрыт маркерами исполнителя
//     с шагом ровно policy.MarkerStepMinutes - резолвер НЕ интерполирует
//     пропуски, разрыв в маркерах означает недоступность;
//  3. интервал не пересекается ни с одним занятым интервалом
//     (строгая проверка полуинтервалов: касание границ - не конфликт);
//  4. для запроса на сегодня старт не раньше now + MinNoticeMinutes
func resolveExecutorSlots(
	dayStart time.Time,
	dayEnd time.Time,
	requiredMinutes int,
	markers []types.TimeString,
	busyIntervals []domain.Interval,
	now time.Time,
	policy Policy,
) []time.Time {
	if len(markers) == 0 {
		return nil
	}

	// Количество маркеров, которые должны непрерывно покрыть требуемую
	// длительность: ceil(required / step)
	needed := (requiredMinutes + policy.MarkerStepMinutes - 1) / policy.MarkerStepMinutes
	if needed < 1 {
		needed = 1
	}

	minutes, ok := sortedMarkerMinutes(markers)
	if !ok {
		return nil
	}

	sameDay := isSameDay(dayStart, now)
	minStart := now.Add(time.Duration(policy.MinNoticeMinutes) * time.Minute)

	starts := make([]time.Time, 0)

	for i := range minutes {
		// Дальше по списку маркеров не хватит на покрытие
		if i+needed > len(minutes) {
			break
		}

		t := dayStart.Add(time.Duration(minutes[i]) * time.Minute)
		tEnd := t.Add(time.Duration(requiredMinutes) * time.Minute)

		// Маркеры отсортированы: все последующие старты заканчиваются еще позже
		if tEnd.After(dayEnd) {
			break
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

		starts = append(starts, t)
	}

	return starts
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
// Интервалы полуоткрытые: [10:00, 11:00) не блокирует старт ровно в 11:00
func overlapsAny(candidate domain.Interval, busyIntervals []domain.Interval) bool {
	for _, busy := range busyIntervals {
		if candidate.Overlaps(busy) {
			return true
		}
	}
	return false
}

// extractBusyIntervals превращает заказы в занятые полуинтервалы
// Заказы в статусах completed/canceled время не занимают
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
// и сортирует по возрастанию. Некорректный маркер отбрасывает весь
// день исполнителя - хранилище такого отдавать не должно
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

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня, UTC)
func isDateInPast(date, now time.Time) bool {
	return startOfDay(date).Before(startOfDay(now))
}
