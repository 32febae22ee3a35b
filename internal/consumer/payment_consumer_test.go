package consumer

import (
	"context"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/Salon-BookingService/internal/service/bookings/models"
)

type fakeConfirmer struct {
	confirmed []int64
	err       error
}

func (f *fakeConfirmer) ConfirmFromPayment(_ context.Context, bookingID int64) (*models.BookingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.confirmed = append(f.confirmed, bookingID)
	return &models.BookingResponse{ID: bookingID, Status: "confirmed"}, nil
}

type fakeEventsRepo struct {
	processed map[string]bool
}

func (f *fakeEventsRepo) MarkProcessed(_ context.Context, eventID, _ string) (bool, error) {
	if f.processed == nil {
		f.processed = make(map[string]bool)
	}
	if f.processed[eventID] {
		return false, nil
	}
	f.processed[eventID] = true
	return true, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestConsumer(confirmer *fakeConfirmer, repo *fakeEventsRepo) *PaymentConsumer {
	return NewPaymentConsumer(nil, confirmer, repo, noopLogger{}, nil)
}

func delivery(body string) amqp.Delivery {
	return amqp.Delivery{Body: []byte(body), RoutingKey: "payment.success"}
}

func TestHandle_ConfirmsBooking(t *testing.T) {
	confirmer := &fakeConfirmer{}
	c := newTestConsumer(confirmer, &fakeEventsRepo{})

	c.handle(context.Background(), delivery(`{"eventId":"evt-1","event":"payment.success","bookingId":42}`))

	assert.Equal(t, []int64{42}, confirmer.confirmed)
}

func TestHandle_DuplicateEventSkipped(t *testing.T) {
	confirmer := &fakeConfirmer{}
	c := newTestConsumer(confirmer, &fakeEventsRepo{})

	msg := `{"eventId":"evt-1","event":"payment.success","bookingId":42}`
	c.handle(context.Background(), delivery(msg))
	c.handle(context.Background(), delivery(msg))

	// Повторная доставка того же события не подтверждает дважды
	assert.Equal(t, []int64{42}, confirmer.confirmed)
}

func TestHandle_MalformedMessage(t *testing.T) {
	confirmer := &fakeConfirmer{}
	c := newTestConsumer(confirmer, &fakeEventsRepo{})

	c.handle(context.Background(), delivery(`not-json`))

	assert.Empty(t, confirmer.confirmed)
}

func TestHandle_MissingBookingID(t *testing.T) {
	confirmer := &fakeConfirmer{}
	c := newTestConsumer(confirmer, &fakeEventsRepo{})

	c.handle(context.Background(), delivery(`{"eventId":"evt-2","event":"payment.success"}`))

	assert.Empty(t, confirmer.confirmed)
}

func TestHandle_UnexpectedEventType(t *testing.T) {
	confirmer := &fakeConfirmer{}
	c := newTestConsumer(confirmer, &fakeEventsRepo{})

	c.handle(context.Background(), delivery(`{"eventId":"evt-3","event":"payment.failed","bookingId":42}`))

	assert.Empty(t, confirmer.confirmed)
}
