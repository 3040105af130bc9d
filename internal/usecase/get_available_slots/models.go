package get_available_slots

// Request модель запроса доступных слотов
type Request struct {
	AnimationID *string // опционально: только слоты этой анимации
	FromDate    *string // опционально, включительно, YYYY-MM-DD
	ToDate      *string // опционально, включительно, YYYY-MM-DD
}

// SlotItem один доступный слот в ответе
type SlotItem struct {
	AnimationID    string `json:"animationId"`
	AnimationTitle string `json:"animationTitle"`
	Date           string `json:"date"` // YYYY-MM-DD
	Time           int    `json:"time"`
}

// MonthCount количество различимых слотов за один месяц учебного года
type MonthCount struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1-12
	Count int `json:"count"`
}

// Response модель ответа: слоты плюс витринные счетчики, где
// послеобеденные часы одного дня считаются одним слотом
type Response struct {
	SchoolYear    string       `json:"schoolYear"`
	Slots         []SlotItem   `json:"slots"`
	DistinctCount int          `json:"distinctCount"`
	ByMonth       []MonthCount `json:"byMonth"`
}
