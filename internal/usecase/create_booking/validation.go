package create_booking

import (
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/integrations/offeringservice"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Бронирование без услуг не имеет ни длительности, ни цены
	if len(req.ServiceIDs) == 0 {
		return ErrNoServicesSelected
	}

	if len(req.ServiceIDs) > domain.MaxServicesPerBooking {
		return fmt.Errorf("%w: too many services, max %d", ErrInvalidInput, domain.MaxServicesPerBooking)
	}

	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
	}

	return nil
}

// totalDuration суммарная длительность услуг в минутах
func totalDuration(offerings []offeringservice.ServiceOffering) int {
	total := 0
	for _, o := range offerings {
		total += o.DurationMinutes
	}
	return total
}

// totalPrice суммарная цена услуг, округлённая до 2 знаков
func totalPrice(offerings []offeringservice.ServiceOffering) float64 {
	total := 0.0
	for _, o := range offerings {
		total += o.Price
	}
	return domain.RoundPrice(total)
}

// uniqueServiceIDs убирает дубликаты, сохраняя порядок первого вхождения
func uniqueServiceIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
