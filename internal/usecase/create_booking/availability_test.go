package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/integrations/salonservice"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

func testSalon(open, close string) *salonservice.Salon {
	return &salonservice.Salon{
		ID:        1,
		Name:      "Test Salon",
		OpenTime:  types.TimeString(open),
		CloseTime: types.TimeString(close),
	}
}

func at(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateTimeFormat, value)
	require.NoError(t, err)
	return parsed
}

func booking(start, end time.Time, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:        1,
		SalonID:   1,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

func TestCheckAvailability_WithinBusinessHours(t *testing.T) {
	salon := testSalon("09:00", "18:00")

	err := checkAvailability(salon,
		at(t, "2025-10-15T10:00:00"),
		at(t, "2025-10-15T10:30:00"),
		nil,
	)

	assert.NoError(t, err)
}

func TestCheckAvailability_ExactOpenCloseBoundariesAllowed(t *testing.T) {
	salon := testSalon("09:00", "18:00")

	// Начало ровно в открытие
	err := checkAvailability(salon,
		at(t, "2025-10-15T09:00:00"),
		at(t, "2025-10-15T09:30:00"),
		nil,
	)
	assert.NoError(t, err)

	// Конец ровно в закрытие
	err = checkAvailability(salon,
		at(t, "2025-10-15T17:30:00"),
		at(t, "2025-10-15T18:00:00"),
		nil,
	)
	assert.NoError(t, err)
}

func TestCheckAvailability_OutsideBusinessHours(t *testing.T) {
	salon := testSalon("09:00", "18:00")

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"before opening", "2025-10-15T08:30:00", "2025-10-15T09:30:00"},
		{"after closing", "2025-10-15T17:45:00", "2025-10-15T18:15:00"},
		{"entirely before", "2025-10-15T07:00:00", "2025-10-15T08:00:00"},
		{"entirely after", "2025-10-15T19:00:00", "2025-10-15T20:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkAvailability(salon, at(t, tt.start), at(t, tt.end), nil)
			assert.ErrorIs(t, err, ErrOutsideBusinessHours)
		})
	}
}

func TestCheckAvailability_ConflictWithExisting(t *testing.T) {
	salon := testSalon("09:00", "18:00")
	existing := []*domain.Booking{
		booking(at(t, "2025-10-15T10:00:00"), at(t, "2025-10-15T10:30:00"), domain.StatusPending),
	}

	tests := []struct {
		name     string
		start    string
		end      string
		conflict bool
	}{
		{"exact overlap", "2025-10-15T10:00:00", "2025-10-15T10:30:00", true},
		{"partial overlap", "2025-10-15T10:15:00", "2025-10-15T10:45:00", true},
		{"contains existing", "2025-10-15T09:30:00", "2025-10-15T11:00:00", true},
		{"inside existing", "2025-10-15T10:10:00", "2025-10-15T10:20:00", true},
		{"touches end boundary", "2025-10-15T10:30:00", "2025-10-15T11:00:00", true},
		{"touches start boundary", "2025-10-15T09:30:00", "2025-10-15T10:00:00", true},
		{"one minute gap after", "2025-10-15T10:31:00", "2025-10-15T11:00:00", false},
		{"one minute gap before", "2025-10-15T09:00:00", "2025-10-15T09:59:00", false},
		{"different time entirely", "2025-10-15T14:00:00", "2025-10-15T15:00:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkAvailability(salon, at(t, tt.start), at(t, tt.end), existing)
			if tt.conflict {
				assert.ErrorIs(t, err, ErrSlotNotAvailable)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckAvailability_CancelledBookingsStillBlock(t *testing.T) {
	salon := testSalon("09:00", "18:00")
	existing := []*domain.Booking{
		booking(at(t, "2025-10-15T10:00:00"), at(t, "2025-10-15T10:30:00"), domain.StatusCancelled),
	}

	// Отменённые бронирования участвуют в проверке конфликтов
	err := checkAvailability(salon,
		at(t, "2025-10-15T10:00:00"),
		at(t, "2025-10-15T10:30:00"),
		existing,
	)

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestIntervalsConflict(t *testing.T) {
	s := at(t, "2025-10-15T10:00:00")
	e := at(t, "2025-10-15T10:30:00")

	assert.True(t, intervalsConflict(s, e, s, e))
	assert.True(t, intervalsConflict(s, e, e, e.Add(30*time.Minute)))
	assert.True(t, intervalsConflict(e, e.Add(30*time.Minute), s, e))
	assert.False(t, intervalsConflict(s, e, e.Add(time.Minute), e.Add(31*time.Minute)))
}
