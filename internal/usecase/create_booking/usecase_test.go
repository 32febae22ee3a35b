package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/integrations/offeringservice"
	"github.com/m04kA/Salon-BookingService/internal/integrations/salonservice"
	"github.com/m04kA/Salon-BookingService/internal/integrations/userservice"
)

// Фейки зависимостей use case

type fakeBookingRepo struct {
	existing []*domain.Booking
	created  *domain.Booking
	salonErr error
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	stored := *b
	stored.ID = 42
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
}

func (f *fakeBookingRepo) GetBySalonID(_ context.Context, _ int64) ([]*domain.Booking, error) {
	return f.existing, f.salonErr
}

type fakeSalonClient struct {
	salon *salonservice.Salon
	err   error
}

func (f *fakeSalonClient) GetSalon(_ context.Context, _ int64) (*salonservice.Salon, error) {
	return f.salon, f.err
}

type fakeUserClient struct {
	err error
}

func (f *fakeUserClient) GetUser(_ context.Context, userID int64) (*userservice.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &userservice.User{ID: userID}, nil
}

type fakeOfferingClient struct {
	offerings []offeringservice.ServiceOffering
	err       error
}

func (f *fakeOfferingClient) GetServicesByIDs(_ context.Context, _ []int64) ([]offeringservice.ServiceOffering, error) {
	return f.offerings, f.err
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

func newTestUseCase(repo *fakeBookingRepo, pub *fakePublisher) *UseCase {
	return NewUseCase(
		repo,
		&fakeSalonClient{salon: testSalon("09:00", "18:00")},
		&fakeUserClient{},
		&fakeOfferingClient{offerings: []offeringservice.ServiceOffering{
			{ID: 10, DurationMinutes: 30, Price: 50.00},
			{ID: 20, DurationMinutes: 30, Price: 30.00},
		}},
		&fakeTxManager{},
		pub,
		noopLogger{},
	)
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{}
	pub := &fakePublisher{}
	uc := newTestUseCase(repo, pub)

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID: 1,
		SalonID:    2,
		StartTime:  at(t, "2025-10-15T10:00:00"),
		ServiceIDs: []int64{10, 20},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, at(t, "2025-10-15T11:00:00"), resp.EndTime) // 30 + 30 минут
	assert.InDelta(t, 80.00, resp.TotalPrice, 0.001)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, "Test Salon", resp.SalonName)

	// booking.created, payment.process, notification.send
	assert.Len(t, pub.published, 3)
}

func TestExecute_DeduplicatesServiceIDs(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakePublisher{})

	resp, err := uc.Execute(context.Background(), &Request{
		CustomerID: 1,
		SalonID:    2,
		StartTime:  at(t, "2025-10-15T10:00:00"),
		ServiceIDs: []int64{10, 20, 10},
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{10, 20}, resp.ServiceIDs)
}

func TestExecute_SlotConflict(t *testing.T) {
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			booking(at(t, "2025-10-15T10:30:00"), at(t, "2025-10-15T11:30:00"), domain.StatusConfirmed),
		},
	}
	pub := &fakePublisher{}
	uc := newTestUseCase(repo, pub)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 1,
		SalonID:    2,
		StartTime:  at(t, "2025-10-15T10:00:00"),
		ServiceIDs: []int64{10, 20},
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, repo.created)
	assert.Empty(t, pub.published)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeSalonClient{salon: testSalon("09:00", "18:00")},
		&fakeUserClient{err: userservice.ErrUserNotFound},
		&fakeOfferingClient{},
		&fakeTxManager{},
		&fakePublisher{},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 99,
		SalonID:    2,
		StartTime:  at(t, "2025-10-15T10:00:00"),
		ServiceIDs: []int64{10},
	})

	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestExecute_SalonNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeSalonClient{err: salonservice.ErrSalonNotFound},
		&fakeUserClient{},
		&fakeOfferingClient{},
		&fakeTxManager{},
		&fakePublisher{},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 1,
		SalonID:    99,
		StartTime:  at(t, "2025-10-15T10:00:00"),
		ServiceIDs: []int64{10},
	})

	assert.ErrorIs(t, err, ErrSalonNotFound)
}

func TestExecute_ServicesNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeSalonClient{salon: testSalon("09:00", "18:00")},
		&fakeUserClient{},
		&fakeOfferingClient{err: offeringservice.ErrOfferingsNotFound},
		&fakeTxManager{},
		&fakePublisher{},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 1,
		SalonID:    2,
		StartTime:  at(t, "2025-10-15T10:00:00"),
		ServiceIDs: []int64{10},
	})

	assert.ErrorIs(t, err, ErrServicesNotFound)
}

func TestExecute_NoServicesSelected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakePublisher{})

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 1,
		SalonID:    2,
		StartTime:  at(t, "2025-10-15T10:00:00"),
		ServiceIDs: nil,
	})

	assert.ErrorIs(t, err, ErrNoServicesSelected)
}

func TestExecute_ZeroDurationRejected(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeSalonClient{salon: testSalon("09:00", "18:00")},
		&fakeUserClient{},
		&fakeOfferingClient{offerings: []offeringservice.ServiceOffering{
			{ID: 10, DurationMinutes: 0, Price: 10.00},
		}},
		&fakeTxManager{},
		&fakePublisher{},
		noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		CustomerID: 1,
		SalonID:    2,
		StartTime:  at(t, "2025-10-15T10:00:00"),
		ServiceIDs: []int64{10},
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
