package get_booking_count_chart

import (
	"context"

	"github.com/m04kA/Salon-BookingService/internal/service/reports/models"
)

type ReportService interface {
	GetBookingCountChart(ctx context.Context, salonID int64) ([]models.BookingCountPoint, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
