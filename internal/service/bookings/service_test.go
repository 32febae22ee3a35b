package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/booking"
)

// Фейк репозитория: in-memory map бронирований

type fakeRepo struct {
	bookings map[int64]*domain.Booking

	updateStatusCalls int
}

func newFakeRepo(bookings ...*domain.Booking) *fakeRepo {
	m := make(map[int64]*domain.Booking, len(bookings))
	for _, b := range bookings {
		m[b.ID] = b
	}
	return &fakeRepo{bookings: m}
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) GetByCustomerID(_ context.Context, customerID int64) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.CustomerID == customerID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeRepo) GetBySalonID(_ context.Context, salonID int64) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.SalonID == salonID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeRepo) GetBySalonAndDate(_ context.Context, salonID int64, date time.Time) ([]*domain.Booking, error) {
	day := date.Format(domain.DateFormat)
	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.SalonID != salonID {
			continue
		}
		if b.StartTime.Format(domain.DateFormat) == day || b.EndTime.Format(domain.DateFormat) == day {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	f.updateStatusCalls++
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeRepo) UpdatePaymentStatus(_ context.Context, id int64, paymentStatus string) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.PaymentStatus = &paymentStatus
	return nil
}

type fakePublisher struct {
	published []string
}

func (f *fakePublisher) PublishJSON(_ context.Context, _ string, key string, _ interface{}) error {
	f.published = append(f.published, key)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateTimeFormat, value)
	require.NoError(t, err)
	return parsed
}

func pendingBooking(id, customerID, salonID int64, start string, t *testing.T) *domain.Booking {
	startTime := ts(t, start)
	return &domain.Booking{
		ID:         id,
		CustomerID: customerID,
		SalonID:    salonID,
		StartTime:  startTime,
		EndTime:    startTime.Add(30 * time.Minute),
		ServiceIDs: []int64{10},
		TotalPrice: 50.00,
		Status:     domain.StatusPending,
	}
}

func TestGetByID(t *testing.T) {
	repo := newFakeRepo(pendingBooking(1, 100, 200, "2025-10-15T10:00:00", t))
	svc := NewService(repo, &fakePublisher{}, noopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "pending", resp.Status)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByDate_NilDateReturnsAll(t *testing.T) {
	repo := newFakeRepo(
		pendingBooking(1, 100, 200, "2025-10-15T10:00:00", t),
		pendingBooking(2, 100, 200, "2025-10-16T10:00:00", t),
	)
	svc := NewService(repo, &fakePublisher{}, noopLogger{})

	resp, err := svc.GetByDate(context.Background(), 200, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.TotalBookings)
}

func TestGetByDate_FiltersByDay(t *testing.T) {
	repo := newFakeRepo(
		pendingBooking(1, 100, 200, "2025-10-15T10:00:00", t),
		pendingBooking(2, 100, 200, "2025-10-16T10:00:00", t),
	)
	svc := NewService(repo, &fakePublisher{}, noopLogger{})

	date := ts(t, "2025-10-15T00:00:00")
	resp, err := svc.GetByDate(context.Background(), 200, &date)
	require.NoError(t, err)
	require.Equal(t, 1, resp.TotalBookings)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
}

func TestGetBookedSlots(t *testing.T) {
	repo := newFakeRepo(pendingBooking(1, 100, 200, "2025-10-15T10:00:00", t))
	svc := NewService(repo, &fakePublisher{}, noopLogger{})

	resp, err := svc.GetBookedSlots(context.Background(), 200, ts(t, "2025-10-15T00:00:00"))
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "2025-10-15T10:00:00", resp.Slots[0].StartTime)
	assert.Equal(t, "2025-10-15T10:30:00", resp.Slots[0].EndTime)
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeRepo(pendingBooking(1, 100, 200, "2025-10-15T10:00:00", t))
	pub := &fakePublisher{}
	svc := NewService(repo, pub, noopLogger{})

	resp, err := svc.UpdateStatus(context.Background(), 1, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Len(t, pub.published, 1)
}

func TestUpdateStatus_RepeatedSameStatusIsNoError(t *testing.T) {
	repo := newFakeRepo(pendingBooking(1, 100, 200, "2025-10-15T10:00:00", t))
	svc := NewService(repo, &fakePublisher{}, noopLogger{})

	first, err := svc.UpdateStatus(context.Background(), 1, "confirmed")
	require.NoError(t, err)

	second, err := svc.UpdateStatus(context.Background(), 1, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, first.Status, second.Status)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := newFakeRepo(pendingBooking(1, 100, 200, "2025-10-15T10:00:00", t))
	svc := NewService(repo, &fakePublisher{}, noopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 1, "shipped")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Zero(t, repo.updateStatusCalls)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakePublisher{}, noopLogger{})

	_, err := svc.UpdateStatus(context.Background(), 99, "confirmed")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestConfirmFromPayment(t *testing.T) {
	repo := newFakeRepo(pendingBooking(1, 100, 200, "2025-10-15T10:00:00", t))
	pub := &fakePublisher{}
	svc := NewService(repo, pub, noopLogger{})

	resp, err := svc.ConfirmFromPayment(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "confirmed", resp.Status)
	require.NotNil(t, resp.PaymentStatus)
	assert.Equal(t, "success", *resp.PaymentStatus)
	assert.Len(t, pub.published, 1)
}

func TestConfirmFromPayment_AbsentBookingIsNoOp(t *testing.T) {
	pub := &fakePublisher{}
	svc := NewService(newFakeRepo(), pub, noopLogger{})

	resp, err := svc.ConfirmFromPayment(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, resp)
	assert.Empty(t, pub.published)
}

func TestConfirmFromPayment_Repeated(t *testing.T) {
	repo := newFakeRepo(pendingBooking(1, 100, 200, "2025-10-15T10:00:00", t))
	svc := NewService(repo, &fakePublisher{}, noopLogger{})

	_, err := svc.ConfirmFromPayment(context.Background(), 1)
	require.NoError(t, err)

	// Повторный коллбек оставляет бронирование подтверждённым
	resp, err := svc.ConfirmFromPayment(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
}
