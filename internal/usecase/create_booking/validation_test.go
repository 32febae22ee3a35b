package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/Salon-BookingService/internal/integrations/offeringservice"
)

func validRequest() *Request {
	return &Request{
		CustomerID: 1,
		SalonID:    2,
		StartTime:  time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC),
		ServiceIDs: []int64{10, 20},
	}
}

func TestValidateRequest_Valid(t *testing.T) {
	assert.NoError(t, validateRequest(validRequest()))
}

func TestValidateRequest_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"zero customer", func(r *Request) { r.CustomerID = 0 }, ErrInvalidInput},
		{"negative salon", func(r *Request) { r.SalonID = -1 }, ErrInvalidInput},
		{"zero start time", func(r *Request) { r.StartTime = time.Time{} }, ErrInvalidInput},
		{"no services", func(r *Request) { r.ServiceIDs = nil }, ErrNoServicesSelected},
		{"empty services", func(r *Request) { r.ServiceIDs = []int64{} }, ErrNoServicesSelected},
		{"negative service id", func(r *Request) { r.ServiceIDs = []int64{10, -5} }, ErrInvalidInput},
		{"too many services", func(r *Request) {
			r.ServiceIDs = make([]int64, 21)
			for i := range r.ServiceIDs {
				r.ServiceIDs[i] = int64(i + 1)
			}
		}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			assert.ErrorIs(t, validateRequest(req), tt.wantErr)
		})
	}
}

func TestTotalDurationAndPrice(t *testing.T) {
	offerings := []offeringservice.ServiceOffering{
		{ID: 1, DurationMinutes: 30, Price: 50.25},
		{ID: 2, DurationMinutes: 45, Price: 30.50},
	}

	assert.Equal(t, 75, totalDuration(offerings))
	assert.InDelta(t, 80.75, totalPrice(offerings), 0.001)
}

func TestUniqueServiceIDs(t *testing.T) {
	assert.Equal(t, []int64{3, 1, 2}, uniqueServiceIDs([]int64{3, 1, 3, 2, 1}))
	assert.Equal(t, []int64{7}, uniqueServiceIDs([]int64{7, 7, 7}))
}
