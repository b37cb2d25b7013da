package mailer

// Kind вид письма о бронировании
type Kind string

const (
	// KindReceived заявка принята: письмо гостю + уведомление ресторану
	KindReceived Kind = "received"
	// KindConfirmed бронь подтверждена персоналом
	KindConfirmed Kind = "confirmed"
	// KindDeclined бронь отклонена
	KindDeclined Kind = "declined"
)

// IsValid returns true for a known email kind.
func (k Kind) IsValid() bool {
	return k == KindReceived || k == KindConfirmed || k == KindDeclined
}

// ReservationPayload данные бронирования для подстановки в шаблон
type ReservationPayload struct {
	Name            string
	Email           string
	Phone           *string
	Guests          int
	Date            string // "Sunday, June 1, 2025" либо "2025-06-01"
	Time            string
	SpecialRequests *string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// sendRequest тело запроса к Resend API
type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type email struct {
	to      string
	subject string
	html    string
}
