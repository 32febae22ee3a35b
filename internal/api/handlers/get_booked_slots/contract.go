package get_booked_slots

import (
	"context"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetBookedSlots(ctx context.Context, salonID int64, date time.Time) (*models.BookedSlotsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
