package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/Salon-BookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp *createBooking.Response
	err  error

	gotReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	NewHandler(uc, noopLogger{}).Handle(rec, req)
	return rec
}

func validBody() CreateBookingRequest {
	return CreateBookingRequest{
		CustomerID: 1,
		SalonID:    2,
		StartTime:  "2025-10-15T10:00:00",
		ServiceIDs: []int64{10, 20},
	}
}

func TestHandle_Created(t *testing.T) {
	start := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:              42,
		CustomerID:      1,
		SalonID:         2,
		StartTime:       start,
		EndTime:         start.Add(time.Hour),
		ServiceIDs:      []int64{10, 20},
		TotalPrice:      80.00,
		Status:          "pending",
		SalonName:       "Test Salon",
		DurationMinutes: 60,
		CreatedAt:       start,
		UpdatedAt:       start,
	}}

	rec := doRequest(t, uc, validBody())

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, start, uc.gotReq.StartTime)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2025-10-15T10:00:00", resp.StartTime)
	assert.Equal(t, "2025-10-15T11:00:00", resp.EndTime)
	assert.Equal(t, "pending", resp.Status)
}

func TestHandle_InvalidStartTime(t *testing.T) {
	body := validBody()
	body.StartTime = "15.10.2025 10:00"

	rec := doRequest(t, &fakeUseCase{}, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"slot conflict", createBooking.ErrSlotNotAvailable, http.StatusConflict},
		{"outside business hours", createBooking.ErrOutsideBusinessHours, http.StatusBadRequest},
		{"no services", createBooking.ErrNoServicesSelected, http.StatusBadRequest},
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"customer not found", createBooking.ErrCustomerNotFound, http.StatusNotFound},
		{"salon not found", createBooking.ErrSalonNotFound, http.StatusNotFound},
		{"services not found", createBooking.ErrServicesNotFound, http.StatusNotFound},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, validBody())
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
