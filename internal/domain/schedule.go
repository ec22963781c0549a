package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// DayOfWeek день недели еженедельного шаблона расписания
type DayOfWeek string

const (
	Monday    DayOfWeek = "MON"
	Tuesday   DayOfWeek = "TUE"
	Wednesday DayOfWeek = "WED"
	Thursday  DayOfWeek = "THU"
	Friday    DayOfWeek = "FRI"
	Saturday  DayOfWeek = "SAT"
	Sunday    DayOfWeek = "SUN"
)

// WeekDays все дни недели в порядке шаблона (понедельник первый)
var WeekDays = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// IsValid returns true for one of the seven known values
func (d DayOfWeek) IsValid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

// DayOfWeekFromTime возвращает день недели для даты
func DayOfWeekFromTime(t time.Time) DayOfWeek {
	switch t.UTC().Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// ScheduleDay один день еженедельного шаблона исполнителя
// Инвариант: если IsDayOff == true, маркеров нет; иначе - один или больше
type ScheduleDay struct {
	ID         int64
	ExecutorID int64
	DayOfWeek  DayOfWeek
	IsDayOff   bool
	// Markers временные маркеры - моменты дня (UTC), в которые исполнитель
	// готов НАЧАТЬ заказ. Маркеры дискретны, промежутки между ними значимы
	Markers []types.TimeString
}

// ExecutorDay квалифицированный исполнитель с отсортированными маркерами
// на один конкретный день недели
type ExecutorDay struct {
	ExecutorID int64
	Markers    []types.TimeString
}

// ExecutorWeek квалифицированный исполнитель с полным недельным шаблоном
// Используется резолвером дат, чтобы не ходить в БД на каждый день горизонта
type ExecutorWeek struct {
	ExecutorID int64
	Days       map[DayOfWeek]*ScheduleDay
}

// WorkingMarkers возвращает маркеры исполнителя на день недели
// Возвращает nil для выходного дня и для дня без строки шаблона.
// Маркеры выходного дня игнорируются, даже если они есть в хранилище
func (w *ExecutorWeek) WorkingMarkers(day DayOfWeek) []types.TimeString {
	scheduleDay, ok := w.Days[day]
	if !ok || scheduleDay.IsDayOff {
		return nil
	}
	return scheduleDay.Markers
}

// ApplicationStatus статус заявки исполнителя
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationApproved ApplicationStatus = "APPROVED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

// Application заявка пользователя на роль исполнителя
// Исполнитель допускается к заказам варианта только при статусе APPROVED
// и наличии варианта в списке сертифицированных
type Application struct {
	ID         int64
	UserID     int64
	Status     ApplicationStatus
	VariantIDs []int64
}
