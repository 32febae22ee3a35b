package domain

// SalonReport агрегированная статистика по бронированиям салона.
// Никогда не сохраняется, пересчитывается на каждый запрос.
//
// TotalEarnings суммирует цены ВСЕХ бронирований, включая отменённые;
// стоимость отменённых одновременно попадает и в TotalRefund.
// Семантика исходной отчётности сохранена намеренно.
type SalonReport struct {
	SalonID           int64
	SalonName         string
	TotalEarnings     float64
	TotalBookings     int
	CancelledBookings int
	TotalRefund       float64
}

// ChartPoint точка графика: дневная корзина и агрегированное значение
type ChartPoint struct {
	Day   string  // "2006-01-02"
	Value float64 // сумма выручки или количество бронирований
}
