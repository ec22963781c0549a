package domain

import (
	"time"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	StatusTodo      OrderStatus = "todo"      // создан, ждет исполнителя
	StatusProcessed OrderStatus = "processed" // взят исполнителем в работу
	StatusCompleted OrderStatus = "completed"
	StatusCanceled  OrderStatus = "canceled"
)

// Order represents a client order for a service variant with add-on options
type Order struct {
	ID               int64
	UserID           int64
	ExecutorID       *int64 // NULL, пока заказ не взят исполнителем
	BaseServiceID    int64
	ServiceVariantID int64
	OptionIDs        []int64
	StartsAt         time.Time // абсолютное время начала (UTC)
	DurationMinutes  int       // суммарная длительность: вариант + все опции
	Status           OrderStatus

	// Denormalized data for history
	ServiceName string
	TotalPrice  float64
	Bonus       int // списанные бонусы
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesTime returns true if the order blocks time on the schedule
// Завершенные и отмененные заказы не занимают время
func (o *Order) OccupiesTime() bool {
	return o.Status != StatusCompleted && o.Status != StatusCanceled
}

// CanBeCancelled returns true if the order can be cancelled
func (o *Order) CanBeCancelled() bool {
	return o.Status == StatusTodo || o.Status == StatusProcessed
}

// CanBeAccepted returns true if an executor can claim the order
func (o *Order) CanBeAccepted() bool {
	return o.Status == StatusTodo && o.ExecutorID == nil
}

// BusyInterval returns the half-open interval [StartsAt, StartsAt+Duration)
// occupied by the order
func (o *Order) BusyInterval() Interval {
	return Interval{
		Start: o.StartsAt,
		End:   o.StartsAt.Add(time.Duration(o.DurationMinutes) * time.Minute),
	}
}

// OrdersFilter фильтр для выборки заказов
type OrdersFilter struct {
	WindowStart *time.Time // Начало окна по StartsAt (включительно)
	WindowEnd   *time.Time // Конец окна по StartsAt (исключительно)
	OnlyBusy    bool       // Только заказы, занимающие время (не completed/canceled)
}
