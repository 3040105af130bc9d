package create_booking

// Request модель запроса на создание бронирования
type Request struct {
	AnimationID string // ID анимации
	Date        string // Дата в формате YYYY-MM-DD
	Time        int    // Час начала слота

	TeacherName string // ФИО преподавателя
	ClassLevel  string // Класс (PS..CM2)
	Commune     string // Коммуна школы
	SchoolName  string // Название школы
	PhoneNumber string // Контактный телефон
	Email       string // Контактный email

	StudentCount int // Число учеников
	AdultCount   int // Число сопровождающих взрослых

	BusInfo       string // Пожелания по автобусу (свободный текст)
	NoBusRequired bool   // Школа добирается сама, автобус не нужен
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             string `json:"id"`
	AnimationID    string `json:"animationId"`
	AnimationTitle string `json:"animationTitle"`
	Date           string `json:"date"`
	Time           int    `json:"time"`

	TeacherName string `json:"teacherName"`
	ClassLevel  string `json:"classLevel"`
	Commune     string `json:"commune"`
	SchoolName  string `json:"schoolName"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email"`

	StudentCount int `json:"studentCount"`
	AdultCount   int `json:"adultCount"`

	BusInfo       string `json:"busInfo"`
	NoBusRequired bool   `json:"noBusRequired"`
	BusStatus     string `json:"busStatus,omitempty"`
}
