package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/infra/messaging/rabbit"
	offeringClient "github.com/m04kA/Salon-BookingService/internal/integrations/offeringservice"
	salonClient "github.com/m04kA/Salon-BookingService/internal/integrations/salonservice"
	userClient "github.com/m04kA/Salon-BookingService/internal/integrations/userservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	salonClient    SalonServiceClient
	userClient     UserServiceClient
	offeringClient OfferingServiceClient
	txManager      TransactionManager
	publisher      EventPublisher
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	salonClient SalonServiceClient,
	userClient UserServiceClient,
	offeringClient OfferingServiceClient,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		salonClient:    salonClient,
		userClient:     userClient,
		offeringClient: offeringClient,
		txManager:      txManager,
		publisher:      publisher,
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности и вставка выполняются в одной сериализуемой
// транзакции с блокировкой бронирований салона, иначе два параллельных
// запроса могут пройти проверку до того, как один из них будет сохранён
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, salon=%d, start=%s, services=%v",
		req.CustomerID, req.SalonID, req.StartTime.Format(domain.DateTimeFormat), req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	serviceIDs := uniqueServiceIDs(req.ServiceIDs)

	// 2. Проверяем, что клиент существует
	if _, err := uc.userClient.GetUser(ctx, req.CustomerID); err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// 3. Получаем салон с рабочими часами
	salon, err := uc.salonClient.GetSalon(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonClient.ErrSalonNotFound) {
			uc.logger.Warn("CreateBooking: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("CreateBooking: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	// 4. Резолвим услуги из каталога
	offerings, err := uc.offeringClient.GetServicesByIDs(ctx, serviceIDs)
	if err != nil {
		if errors.Is(err, offeringClient.ErrOfferingsNotFound) {
			uc.logger.Warn("CreateBooking: services %v not found", serviceIDs)
			return nil, ErrServicesNotFound
		}
		uc.logger.Error("CreateBooking: failed to get services %v: %v", serviceIDs, err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	// 5. Вычисляем длительность и цену
	duration := totalDuration(offerings)
	if duration <= 0 {
		uc.logger.Warn("CreateBooking: zero total duration for services %v", serviceIDs)
		return nil, fmt.Errorf("%w: total duration must be positive", ErrInvalidInput)
	}

	start := req.StartTime
	end := start.Add(time.Duration(duration) * time.Minute)
	price := totalPrice(offerings)

	// 6. Проверка доступности и вставка в одной сериализуемой транзакции
	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Все бронирования салона с блокировкой (FOR UPDATE)
		existing, err := uc.bookingRepo.GetBySalonID(txCtx, req.SalonID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get salon bookings: %v", err)
			return fmt.Errorf("%w: failed to get salon bookings: %v", ErrInternal, err)
		}

		// 6.2. Рабочие часы и конфликты интервалов
		if err := checkAvailability(salon, start, end, existing); err != nil {
			uc.logger.Warn("CreateBooking: slot check failed for salon=%d, start=%s: %v",
				req.SalonID, start.Format(domain.DateTimeFormat), err)
			return err
		}

		// 6.3. Создаем бронирование в начальном статусе pending
		booking := &domain.Booking{
			CustomerID: req.CustomerID,
			SalonID:    req.SalonID,
			StartTime:  start,
			EndTime:    end,
			ServiceIDs: serviceIDs,
			TotalPrice: price,
			Status:     domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 7. Публикуем события после коммита (fire-and-forget)
	uc.publishEvents(ctx, result)

	return &Response{
		ID:              result.ID,
		CustomerID:      result.CustomerID,
		SalonID:         result.SalonID,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		ServiceIDs:      result.ServiceIDs,
		TotalPrice:      result.TotalPrice,
		Status:          string(result.Status),
		SalonName:       salon.Name,
		DurationMinutes: duration,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// publishEvents публикует события о созданном бронировании.
// Ошибки публикации логируются, но не фейлят уже закоммиченное бронирование
func (uc *UseCase) publishEvents(ctx context.Context, b *domain.Booking) {
	if uc.publisher == nil {
		return
	}

	payload := map[string]interface{}{
		"booking_id":  b.ID,
		"customer_id": b.CustomerID,
		"salon_id":    b.SalonID,
		"start_time":  b.StartTime.Format(domain.DateTimeFormat),
		"end_time":    b.EndTime.Format(domain.DateTimeFormat),
		"total_price": b.TotalPrice,
		"status":      string(b.Status),
	}

	events := []struct {
		exchange string
		key      string
	}{
		{rabbit.BookingExchange, rabbit.KeyBookingCreated},
		{rabbit.BookingExchange, rabbit.KeyPaymentProcess},
		{rabbit.NotificationExchange, rabbit.KeyNotificationSend},
	}

	for _, ev := range events {
		if err := uc.publisher.PublishJSON(ctx, ev.exchange, ev.key, payload); err != nil {
			uc.logger.Error("CreateBooking: failed to publish %s for booking id=%d: %v",
				ev.key, b.ID, err)
		}
	}
}
