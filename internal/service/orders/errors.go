package orders

import "errors"

var (
	// ErrOrderNotFound возвращается, когда заказ не найден
	ErrOrderNotFound = errors.New("order not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда заказ не может быть отменен
	ErrCannotCancel = errors.New("order cannot be cancelled")

	// ErrAlreadyAccepted возвращается, когда заказ уже взят другим исполнителем
	ErrAlreadyAccepted = errors.New("order is already accepted")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
