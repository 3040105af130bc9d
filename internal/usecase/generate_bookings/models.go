package generate_bookings

// Request модель запроса на генерацию случайных бронирований
type Request struct {
	Count  int      // сколько бронирований сгенерировать
	Months []string // опционально: только эти месяцы, "YYYY-MM"
}

// Предел одной генерации, защита от случайного заполнения всего года
const MaxCount = 100

// Response отчет о генерации. Generated может быть меньше Requested,
// когда свободных слотов не хватило; Saved меньше Generated, когда часть
// записей не удалось сохранить
type Response struct {
	Requested int      `json:"requested"`
	Generated int      `json:"generated"`
	Saved     int      `json:"saved"`
	IDs       []string `json:"ids"`
}
