package domain

import (
	"math"
	"time"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a salon appointment in the system
type Booking struct {
	ID         int64
	CustomerID int64
	SalonID    int64
	StartTime  time.Time
	EndTime    time.Time
	ServiceIDs []int64 // выбранные услуги, порядок не важен

	// Итоговая цена: сумма цен услуг, округлённая до 2 знаков
	TotalPrice float64

	Status        BookingStatus
	PaymentStatus *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsConfirmed returns true if the booking has been confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// DurationMinutes returns the total duration of the booking in minutes
func (b *Booking) DurationMinutes() int {
	return int(b.EndTime.Sub(b.StartTime) / time.Minute)
}

// Day returns the calendar-date bucket key of the booking's start time
func (b *Booking) Day() string {
	return b.StartTime.Format(DateFormat)
}

// ValidStatuses список всех допустимых статусов бронирования
var ValidStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}

// IsValidStatus returns true if the status is a known booking status
func IsValidStatus(s BookingStatus) bool {
	for _, valid := range ValidStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// RoundPrice округляет цену до 2 знаков после запятой (стандартное округление)
func RoundPrice(p float64) float64 {
	return math.Round(p*100) / 100
}
