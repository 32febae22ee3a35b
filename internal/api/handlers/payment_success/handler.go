package payment_success

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/payment-success
// Внутренний коллбек платёжного сервиса. Отсутствие бронирования
// не считается ошибкой: возвращается 200 с пустым телом
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingIDStr := vars["bookingId"]

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/payment-success - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	booking, err := h.service.ConfirmFromPayment(r.Context(), bookingID)
	if err != nil {
		h.logger.Error("POST /bookings/{id}/payment-success - Failed to confirm booking: booking_id=%d, error=%v",
			bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	if booking == nil {
		h.logger.Warn("POST /bookings/{id}/payment-success - Booking not found, no-op: booking_id=%d", bookingID)
		handlers.RespondJSON(w, http.StatusOK, nil)
		return
	}

	h.logger.Info("POST /bookings/{id}/payment-success - Booking confirmed: booking_id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
