package domain

// Default scheduling policy values
const (
	DefaultHorizonDays       = 30
	DefaultMarkerStepMinutes = 60
	DefaultDayEndHour        = 24 // конец календарного дня (UTC)
	DefaultMinNoticeMinutes  = 0
)

// Business validation constants
const (
	MinMarkerStepMinutes = 5
	MaxMarkerStepMinutes = 240
	MaxNotesLength       = 500
	WeekDaysCount        = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BusyStatuses статусы заказов, занимающих время в расписании
// Используются экстрактором занятых интервалов
var BusyStatuses = []OrderStatus{
	StatusTodo,
	StatusProcessed,
}

// FreeStatuses статусы заказов, не занимающих время
var FreeStatuses = []OrderStatus{
	StatusCompleted,
	StatusCanceled,
}
