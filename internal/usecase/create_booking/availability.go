package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/integrations/salonservice"
)

// checkAvailability проверяет, что интервал [start, end] можно забронировать:
// он укладывается в рабочие часы салона и не конфликтует ни с одним
// существующим бронированием. Чистая функция без побочных эффектов
func checkAvailability(salon *salonservice.Salon, start, end time.Time, existing []*domain.Booking) error {
	open, err := salon.OpenTime.AtDate(start)
	if err != nil {
		return fmt.Errorf("%w: invalid salon open time: %v", ErrInternal, err)
	}
	close, err := salon.CloseTime.AtDate(start)
	if err != nil {
		return fmt.Errorf("%w: invalid salon close time: %v", ErrInternal, err)
	}

	// Начало ровно в момент открытия и конец ровно в момент закрытия допустимы
	if start.Before(open) || end.After(close) {
		return ErrOutsideBusinessHours
	}

	for _, b := range existing {
		if intervalsConflict(start, end, b.StartTime, b.EndTime) {
			return ErrSlotNotAvailable
		}
	}

	return nil
}

// intervalsConflict проверяет конфликт двух интервалов.
// Политика намеренно консервативная: кроме строгого пересечения конфликтом
// считается и точное касание границ (бронирования "впритык" отклоняются).
//
// Примеры:
// - 10:00-10:30 и 10:15-10:45 → конфликт (пересечение)
// - 10:00-10:30 и 10:30-11:00 → конфликт (касание границы)
// - 10:00-10:30 и 10:31-11:00 → нет конфликта (есть зазор)
func intervalsConflict(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !e1.Before(s2)
}
