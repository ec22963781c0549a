package domain

import "time"

// Interval полуинтервал [Start, End) в абсолютном времени (UTC)
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps returns true if two half-open intervals truly overlap
// Касание границ (End одного == Start другого) пересечением НЕ является
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Contains returns true if t falls inside the half-open interval
func (i Interval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && t.Before(i.End)
}

// SameDay returns true if the interval starts on the given calendar day (UTC)
func (i Interval) SameDay(day time.Time) bool {
	y1, m1, d1 := i.Start.UTC().Date()
	y2, m2, d2 := day.UTC().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
