package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда у исполнителя нет расписания
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
