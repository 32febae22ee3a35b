package get_salon_report

import (
	"context"

	"github.com/m04kA/Salon-BookingService/internal/service/reports/models"
)

type ReportService interface {
	GetSalonReport(ctx context.Context, salonID int64) (*models.SalonReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
