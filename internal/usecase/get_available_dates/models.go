package get_available_dates

import "time"

// Request модель запроса списка дат
type Request struct {
	Days *int // Количество дней начиная с сегодня; nil = значение по умолчанию
}

// Response модель ответа
type Response struct {
	Dates []time.Time // Полночь каждой даты в часовом поясе сервиса, по возрастанию
}
