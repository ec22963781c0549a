package domain

import "time"

// BonusOperation операция по бонусному счету пользователя
// Отрицательное значение - списание при создании заказа,
// положительное - начисление или возврат при отмене
type BonusOperation struct {
	ID        int64
	UserID    int64
	OrderID   *int64
	Value     int
	CreatedAt time.Time
}
