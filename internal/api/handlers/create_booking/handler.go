package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/Salon-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidStartTime     = "некорректный формат времени начала, ожидается YYYY-MM-DDTHH:MM:SS"
	msgSlotNotAvailable     = "выбранный временной слот уже занят"
	msgOutsideBusinessHours = "время визита выходит за рабочие часы салона"
	msgNoServicesSelected   = "не выбрана ни одна услуга"
	msgInvalidInput         = "некорректные данные бронирования"
	msgCustomerNotFound     = "клиент не найден"
	msgSalonNotFound        = "салон не найден"
	msgServicesNotFound     = "услуга не найдена"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: customer_id=%d, salon_id=%d", req.CustomerID, req.SalonID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrOutsideBusinessHours):
			h.logger.Warn("POST /bookings - Outside business hours: customer_id=%d, salon_id=%d", req.CustomerID, req.SalonID)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createBooking.ErrNoServicesSelected):
			h.logger.Warn("POST /bookings - No services selected: customer_id=%d, salon_id=%d", req.CustomerID, req.SalonID)
			handlers.RespondBadRequest(w, msgNoServicesSelected)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: customer_id=%d, salon_id=%d, error=%v", req.CustomerID, req.SalonID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrCustomerNotFound):
			h.logger.Warn("POST /bookings - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createBooking.ErrSalonNotFound):
			h.logger.Warn("POST /bookings - Salon not found: salon_id=%d", req.SalonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, createBooking.ErrServicesNotFound):
			h.logger.Warn("POST /bookings - Services not found: customer_id=%d, salon_id=%d", req.CustomerID, req.SalonID)
			handlers.RespondNotFound(w, msgServicesNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer_id=%d, salon_id=%d, error=%v",
				req.CustomerID, req.SalonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, customer_id=%d, salon_id=%d",
		result.ID, req.CustomerID, req.SalonID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
