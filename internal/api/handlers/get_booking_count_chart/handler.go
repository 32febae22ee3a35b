package get_booking_count_chart

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
)

const (
	msgInvalidSalonID = "некорректный ID салона"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/chart/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	salonIDStr := vars["salonId"]

	salonID, err := strconv.ParseInt(salonIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{salonId}/chart/bookings - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	points, err := h.service.GetBookingCountChart(r.Context(), salonID)
	if err != nil {
		h.logger.Error("GET /salons/{salonId}/chart/bookings - Failed to build chart: salon_id=%d, error=%v",
			salonID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /salons/{salonId}/chart/bookings - Chart built successfully: salon_id=%d, points=%d",
		salonID, len(points))
	handlers.RespondJSON(w, http.StatusOK, points)
}
