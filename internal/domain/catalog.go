package domain

// ServiceVariant тариф базовой услуги с фиксированной длительностью и ценой
// Ссылки заказов на вариант неизменяемы: редактирование варианта влияет
// только на будущие заказы (у существующих длительность денормализована)
type ServiceVariant struct {
	ID              int64
	BaseServiceID   int64
	Name            string
	DurationMinutes int
	Price           float64
}

// ServiceOption дополнительная опция базовой услуги
type ServiceOption struct {
	ID              int64
	BaseServiceID   int64
	Name            string
	DurationMinutes int
	Price           float64
}

// TotalDurationMinutes суммарная длительность заказа в минутах:
// базовая длительность варианта + сумма длительностей выбранных опций
func TotalDurationMinutes(variant *ServiceVariant, options []*ServiceOption) int {
	total := variant.DurationMinutes
	for _, option := range options {
		total += option.DurationMinutes
	}
	return total
}

// TotalPrice суммарная цена заказа: цена варианта + цены опций
func TotalPrice(variant *ServiceVariant, options []*ServiceOption) float64 {
	total := variant.Price
	for _, option := range options {
		total += option.Price
	}
	return total
}
