package offeringservice

// ServiceOffering модель услуги из каталога ServiceOfferingService
type ServiceOffering struct {
	ID              int64   `json:"id"`
	SalonID         int64   `json:"salon_id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
}

// ErrorResponse модель ошибки от ServiceOfferingService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
