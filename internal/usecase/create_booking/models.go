package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID int64     // ID клиента
	SalonID    int64     // ID салона
	StartTime  time.Time // Начало визита (локальное время салона)
	ServiceIDs []int64   // Выбранные услуги
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	CustomerID int64
	SalonID    int64
	StartTime  time.Time
	EndTime    time.Time
	ServiceIDs []int64
	TotalPrice float64
	Status     string

	// Денормализованные данные для ответа клиенту
	SalonName       string
	DurationMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time
}
