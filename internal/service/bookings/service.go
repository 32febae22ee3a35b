package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/infra/messaging/rabbit"
	bookingRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Salon-BookingService/internal/service/bookings/models"
)

// paymentStatusSuccess значение payment_status после успешной оплаты
const paymentStatusSuccess = "success"

// Service сервис для работы с жизненным циклом бронирований
type Service struct {
	bookingRepo BookingRepository
	publisher   EventPublisher
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetByCustomer получает историю бронирований клиента
func (s *Service) GetByCustomer(ctx context.Context, customerID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetByCustomer: fetching bookings for customer=%d", customerID)

	bookings, err := s.bookingRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.Error("GetByCustomer: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetByCustomer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByCustomer: fetched %d bookings for customer=%d", len(bookings), customerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetBySalon получает все бронирования салона
func (s *Service) GetBySalon(ctx context.Context, salonID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetBySalon: fetching bookings for salon=%d", salonID)

	bookings, err := s.bookingRepo.GetBySalonID(ctx, salonID)
	if err != nil {
		s.logger.Error("GetBySalon: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetBySalon - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBySalon: fetched %d bookings for salon=%d", len(bookings), salonID)
	return models.FromDomainBookingList(bookings), nil
}

// GetByDate получает бронирования салона на дату.
// Если дата не указана (nil), возвращает все бронирования салона.
// Бронирование попадает в выборку, если его начало ИЛИ конец
// приходится на указанную календарную дату
func (s *Service) GetByDate(ctx context.Context, salonID int64, date *time.Time) (*models.BookingListResponse, error) {
	if date == nil {
		return s.GetBySalon(ctx, salonID)
	}

	s.logger.Info("GetByDate: fetching bookings for salon=%d, date=%s",
		salonID, date.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.GetBySalonAndDate(ctx, salonID, *date)
	if err != nil {
		s.logger.Error("GetByDate: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetBookedSlots получает занятые интервалы салона на дату
func (s *Service) GetBookedSlots(ctx context.Context, salonID int64, date time.Time) (*models.BookedSlotsResponse, error) {
	s.logger.Info("GetBookedSlots: salon=%d, date=%s", salonID, date.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.GetBySalonAndDate(ctx, salonID, date)
	if err != nil {
		s.logger.Error("GetBookedSlots: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetBookedSlots - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookedSlots(bookings), nil
}

// UpdateStatus обновляет статус бронирования.
// Переходы намеренно не ограничиваются таблицей допустимых переходов -
// операция используется и для административных корректировок.
// Повторная установка того же статуса не является ошибкой
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, status string) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, status)

	newStatus := domain.BookingStatus(status)
	if !domain.IsValidStatus(newStatus) {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", status, bookingID)
		return nil, ErrInvalidStatus
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to reload booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - reload error: %v", ErrInternal, err)
	}

	s.publishStatusChanged(ctx, booking)

	s.logger.Info("UpdateStatus: booking id=%d is now %s", bookingID, newStatus)
	return models.FromDomainBooking(booking), nil
}

// ConfirmFromPayment подтверждает бронирование после успешной оплаты.
// Отсутствие бронирования НЕ ошибка: платёжные коллбеки могут приходить
// повторно или с опозданием и не должны фейлить вызывающую сторону.
// Возвращает (nil, nil), если бронирование не найдено
func (s *Service) ConfirmFromPayment(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	s.logger.Info("ConfirmFromPayment: booking id=%d", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("ConfirmFromPayment: booking id=%d not found, skipping", bookingID)
			return nil, nil
		}
		s.logger.Error("ConfirmFromPayment: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ConfirmFromPayment - repository error: %v", ErrInternal, err)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusConfirmed); err != nil {
		s.logger.Error("ConfirmFromPayment: failed to update status for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ConfirmFromPayment - update status: %v", ErrInternal, err)
	}

	if err := s.bookingRepo.UpdatePaymentStatus(ctx, bookingID, paymentStatusSuccess); err != nil {
		s.logger.Error("ConfirmFromPayment: failed to update payment status for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ConfirmFromPayment - update payment status: %v", ErrInternal, err)
	}

	booking.Status = domain.StatusConfirmed
	paymentStatus := paymentStatusSuccess
	booking.PaymentStatus = &paymentStatus

	s.publishStatusChanged(ctx, booking)

	s.logger.Info("ConfirmFromPayment: booking id=%d confirmed", bookingID)
	return models.FromDomainBooking(booking), nil
}

// publishStatusChanged уведомляет downstream-сервисы о смене статуса.
// Ошибки публикации логируются, но не фейлят операцию
func (s *Service) publishStatusChanged(ctx context.Context, b *domain.Booking) {
	if s.publisher == nil {
		return
	}

	payload := map[string]interface{}{
		"booking_id":  b.ID,
		"customer_id": b.CustomerID,
		"salon_id":    b.SalonID,
		"status":      string(b.Status),
	}

	if err := s.publisher.PublishJSON(ctx, rabbit.NotificationExchange, rabbit.KeyNotificationSend, payload); err != nil {
		s.logger.Error("publishStatusChanged: failed to publish notification for booking id=%d: %v", b.ID, err)
	}
}
