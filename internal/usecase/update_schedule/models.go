package update_schedule

// Request модель запроса на замену недельного шаблона
// Шаблон заменяется целиком: всегда передаются все 7 дней
type Request struct {
	ExecutorID int64      // ID исполнителя
	Days       []DayInput // Полный недельный шаблон (ровно 7 дней)
}

// DayInput один день шаблона
type DayInput struct {
	DayOfWeek string   // День недели: MON..SUN
	IsDayOff  bool     // Выходной день
	Markers   []string // Временные маркеры "HH:MM"; для выходного игнорируются
}

// Response модель ответа с сохраненным шаблоном
type Response struct {
	ExecutorID int64
	Days       []DayOutput
}

// DayOutput один сохраненный день шаблона
type DayOutput struct {
	DayOfWeek string
	IsDayOff  bool
	Markers   []string
}
