package domain

// DateFormat формат календарной даты (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// EmptyValueLabel значение-заглушка для "самой частой услуги" и
// "самого частого клиента", когда за период нет завершенных записей.
// Выводится пользователю как есть.
const EmptyValueLabel = "-"

// Business validation constants
const (
	MaxClientNameLength = 200
	MaxPhoneLength      = 30
	MaxServiceLength    = 200
)
