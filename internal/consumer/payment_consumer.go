package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/Salon-BookingService/internal/infra/messaging/rabbit"
	"github.com/m04kA/Salon-BookingService/internal/service/bookings/models"
	"github.com/m04kA/Salon-BookingService/pkg/metrics"
)

// PaymentConfirmer подтверждает бронирование после успешной оплаты
type PaymentConfirmer interface {
	ConfirmFromPayment(ctx context.Context, bookingID int64) (*models.BookingResponse, error)
}

// EventsRepository хранит идентификаторы обработанных событий
type EventsRepository interface {
	MarkProcessed(ctx context.Context, eventID, routingKey string) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// paymentEvent событие об оплате из очереди платёжного сервиса
type paymentEvent struct {
	EventID   string `json:"eventId"`
	Event     string `json:"event"`
	BookingID int64  `json:"bookingId"`
	PaymentID int64  `json:"paymentId"`
}

// PaymentConsumer обрабатывает события payment.success из очереди
// booking-payment-events. Повторные доставки отсекаются по eventId,
// битые сообщения отправляются в DLQ через nack без requeue
type PaymentConsumer struct {
	source     *rabbit.Consumer
	confirmer  PaymentConfirmer
	eventsRepo EventsRepository
	logger     Logger
	metrics    *metrics.Metrics
}

// NewPaymentConsumer создает новый экземпляр консьюмера платёжных событий
func NewPaymentConsumer(
	source *rabbit.Consumer,
	confirmer PaymentConfirmer,
	eventsRepo EventsRepository,
	logger Logger,
	m *metrics.Metrics,
) *PaymentConsumer {
	return &PaymentConsumer{
		source:     source,
		confirmer:  confirmer,
		eventsRepo: eventsRepo,
		logger:     logger,
		metrics:    m,
	}
}

// Run читает события до отмены контекста. Блокирующий вызов,
// запускается в отдельной горутине из main
func (c *PaymentConsumer) Run(ctx context.Context) error {
	deliveries, err := c.source.Deliveries(ctx)
	if err != nil {
		return fmt.Errorf("consumer: subscribe to %s: %w", rabbit.PaymentEventsQueue, err)
	}

	c.logger.Info("PaymentConsumer: started, queue=%s", rabbit.PaymentEventsQueue)

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("PaymentConsumer: stopped")
			return nil
		case d, ok := <-deliveries:
			if !ok {
				c.logger.Warn("PaymentConsumer: deliveries channel closed")
				return nil
			}
			c.handle(ctx, d)
		}
	}
}

func (c *PaymentConsumer) handle(ctx context.Context, d amqp.Delivery) {
	var event paymentEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		c.logger.Error("PaymentConsumer: malformed message, routing to DLQ: %v", err)
		c.observe(d.RoutingKey, "malformed")
		_ = d.Nack(false, false)
		return
	}

	if event.Event != "" && event.Event != "payment.success" {
		c.logger.Warn("PaymentConsumer: unexpected event type %q, skipping", event.Event)
		c.observe(d.RoutingKey, "skipped")
		_ = d.Ack(false)
		return
	}

	if event.BookingID <= 0 {
		c.logger.Error("PaymentConsumer: event without bookingId, routing to DLQ")
		c.observe(d.RoutingKey, "malformed")
		_ = d.Nack(false, false)
		return
	}

	eventID := event.EventID
	if eventID == "" {
		eventID = d.MessageId
	}

	if eventID != "" {
		first, err := c.eventsRepo.MarkProcessed(ctx, eventID, d.RoutingKey)
		if err != nil {
			c.logger.Error("PaymentConsumer: failed to mark event %s: %v", eventID, err)
			c.observe(d.RoutingKey, "error")
			_ = d.Nack(false, true)
			return
		}
		if !first {
			c.logger.Info("PaymentConsumer: event %s already processed, skipping", eventID)
			c.observe(d.RoutingKey, "duplicate")
			_ = d.Ack(false)
			return
		}
	}

	if _, err := c.confirmer.ConfirmFromPayment(ctx, event.BookingID); err != nil {
		c.logger.Error("PaymentConsumer: failed to confirm booking id=%d: %v", event.BookingID, err)
		c.observe(d.RoutingKey, "error")
		_ = d.Nack(false, true)
		return
	}

	c.logger.Info("PaymentConsumer: booking id=%d confirmed from payment id=%d",
		event.BookingID, event.PaymentID)
	c.observe(d.RoutingKey, "success")
	_ = d.Ack(false)
}

func (c *PaymentConsumer) observe(routingKey, status string) {
	if c.metrics != nil {
		c.metrics.EventsConsumedTotal.WithLabelValues(routingKey, status).Inc()
	}
}
