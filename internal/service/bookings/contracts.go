package bookings

import (
	"context"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCustomerID(ctx context.Context, customerID int64) ([]*domain.Booking, error)
	GetBySalonID(ctx context.Context, salonID int64) ([]*domain.Booking, error)
	GetBySalonAndDate(ctx context.Context, salonID int64, date time.Time) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	UpdatePaymentStatus(ctx context.Context, id int64, paymentStatus string) error
}

// EventPublisher интерфейс публикации событий в брокер
type EventPublisher interface {
	PublishJSON(ctx context.Context, exchange, key string, v interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
