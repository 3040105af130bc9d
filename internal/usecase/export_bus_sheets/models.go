package export_bus_sheets

// Request модель запроса на выгрузку маршрутных листов
type Request struct {
	FromDate *string // включительно, YYYY-MM-DD
	ToDate   *string // включительно, YYYY-MM-DD
}

// Response готовый PDF с именем файла для Content-Disposition
type Response struct {
	FileName string
	PDF      []byte
	Count    int // сколько бронирований попало в документ
}
