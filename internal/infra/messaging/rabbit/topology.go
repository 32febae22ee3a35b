package rabbit

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Exchanges
const (
	BookingExchange      = "booking.exchange"
	NotificationExchange = "notification.exchange"

	BookingDLX      = "booking.dlx"
	PaymentDLX      = "payment.dlx"
	NotificationDLX = "notification.dlx"
)

// Queues
const (
	BookingQueue      = "booking-queue"
	PaymentQueue      = "payment-queue"
	NotificationQueue = "notification-queue"

	// PaymentEventsQueue очередь входящих платёжных событий для этого сервиса
	PaymentEventsQueue = "booking-payment-events"
)

// Routing keys
const (
	KeyBookingCreated   = "booking.created"
	KeyPaymentProcess   = "payment.process"
	KeyNotificationSend = "notification.send"
	KeyPaymentSuccess   = "payment.success"
)

// DeclareTopology декларирует exchanges, очереди и bindings.
// Все очереди durable, с dead-letter exchange: недоставленные сообщения
// уходят в <queue>.dlq через соответствующий DLX
func DeclareTopology(ch *amqp.Channel) error {
	// Основные exchanges
	for _, ex := range []string{BookingExchange, NotificationExchange} {
		if err := ch.ExchangeDeclare(ex, "topic", true, false, false, false, nil); err != nil {
			return fmt.Errorf("rabbit: declare exchange %s: %w", ex, err)
		}
	}

	// Dead letter exchanges
	for _, dlx := range []string{BookingDLX, PaymentDLX, NotificationDLX} {
		if err := ch.ExchangeDeclare(dlx, "direct", true, false, false, false, nil); err != nil {
			return fmt.Errorf("rabbit: declare dlx %s: %w", dlx, err)
		}
	}

	queues := []struct {
		name     string
		dlx      string
		exchange string
		key      string
	}{
		{BookingQueue, BookingDLX, BookingExchange, KeyBookingCreated},
		{PaymentQueue, PaymentDLX, BookingExchange, KeyPaymentProcess},
		{NotificationQueue, NotificationDLX, NotificationExchange, KeyNotificationSend},
		{PaymentEventsQueue, PaymentDLX, BookingExchange, KeyPaymentSuccess},
	}

	for _, q := range queues {
		args := amqp.Table{
			"x-dead-letter-exchange":    q.dlx,
			"x-dead-letter-routing-key": q.name,
		}
		if _, err := ch.QueueDeclare(q.name, true, false, false, false, args); err != nil {
			return fmt.Errorf("rabbit: declare queue %s: %w", q.name, err)
		}
		if err := ch.QueueBind(q.name, q.key, q.exchange, false, nil); err != nil {
			return fmt.Errorf("rabbit: bind %s to %s with %s: %w", q.name, q.exchange, q.key, err)
		}

		// Dead letter queue и её binding
		dlq := q.name + ".dlq"
		if _, err := ch.QueueDeclare(dlq, true, false, false, false, nil); err != nil {
			return fmt.Errorf("rabbit: declare dlq %s: %w", dlq, err)
		}
		if err := ch.QueueBind(dlq, q.name, q.dlx, false, nil); err != nil {
			return fmt.Errorf("rabbit: bind dlq %s: %w", dlq, err)
		}
	}

	return nil
}
