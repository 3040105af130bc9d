package mailer

// Message полезная нагрузка транзакционного письма
type Message struct {
	From     string            `json:"from"`
	To       string            `json:"to"`
	Subject  string            `json:"subject"`
	Template string            `json:"template"`
	Params   map[string]string `json:"params,omitempty"`
}

// Шаблоны писем, известные почтовому сервису
const (
	TemplateBookingConfirmation = "booking-confirmation"
	TemplateAdminNotification   = "admin-new-booking"
)

// ErrorResponse модель ошибки почтового сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
