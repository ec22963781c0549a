package create_order

import "errors"

var (
	// ErrVariantNotFound возвращается, когда вариант услуги не найден
	ErrVariantNotFound = errors.New("service variant not found")

	// ErrSlotNotAvailable возвращается, когда запрошенный слот недоступен
	// (занят, не покрыт маркерами или был занят конкурентным заказом)
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrNotEnoughBonuses возвращается, когда на счете недостаточно бонусов
	ErrNotEnoughBonuses = errors.New("not enough bonuses")

	// ErrInvalidDate возвращается при некорректной дате заказа
	ErrInvalidDate = errors.New("invalid order date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт планирования
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
