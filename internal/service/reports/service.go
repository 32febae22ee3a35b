package reports

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/integrations/salonservice"
	"github.com/m04kA/Salon-BookingService/internal/service/reports/models"
)

// Service сервис отчётности по бронированиям салона.
// Все отчёты эфемерные: пересчитываются из текущего набора бронирований
// на каждый запрос и нигде не сохраняются
type Service struct {
	bookingRepo BookingRepository
	salonClient SalonServiceClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса отчётности
func NewService(
	bookingRepo BookingRepository,
	salonClient SalonServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		salonClient: salonClient,
		logger:      logger,
	}
}

// GetSalonReport строит агрегированный отчёт по салону
func (s *Service) GetSalonReport(ctx context.Context, salonID int64) (*models.SalonReportResponse, error) {
	s.logger.Info("GetSalonReport: salon=%d", salonID)

	salon, err := s.salonClient.GetSalon(ctx, salonID)
	if err != nil {
		if errors.Is(err, salonservice.ErrSalonNotFound) {
			s.logger.Warn("GetSalonReport: salon id=%d not found", salonID)
			return nil, ErrSalonNotFound
		}
		s.logger.Error("GetSalonReport: failed to get salon id=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetBySalonID(ctx, salonID)
	if err != nil {
		s.logger.Error("GetSalonReport: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetSalonReport - repository error: %v", ErrInternal, err)
	}

	report := computeSalonReport(bookings)
	report.SalonID = salon.ID
	report.SalonName = salon.Name

	s.logger.Info("GetSalonReport: salon=%d, bookings=%d, earnings=%.2f",
		salonID, report.TotalBookings, report.TotalEarnings)

	return models.FromDomainReport(report), nil
}

// GetEarningsChart строит дневной ряд выручки салона
func (s *Service) GetEarningsChart(ctx context.Context, salonID int64) ([]models.EarningsPoint, error) {
	s.logger.Info("GetEarningsChart: salon=%d", salonID)

	bookings, err := s.bookingRepo.GetBySalonID(ctx, salonID)
	if err != nil {
		s.logger.Error("GetEarningsChart: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetEarningsChart - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEarningsSeries(earningsSeries(bookings)), nil
}

// GetBookingCountChart строит дневной ряд количества бронирований салона
func (s *Service) GetBookingCountChart(ctx context.Context, salonID int64) ([]models.BookingCountPoint, error) {
	s.logger.Info("GetBookingCountChart: salon=%d", salonID)

	bookings, err := s.bookingRepo.GetBySalonID(ctx, salonID)
	if err != nil {
		s.logger.Error("GetBookingCountChart: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetBookingCountChart - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingCountSeries(bookingCountSeries(bookings)), nil
}
