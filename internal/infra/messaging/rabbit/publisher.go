package rabbit

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/Salon-BookingService/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикует события сервиса в RabbitMQ
type Publisher struct {
	conn    *amqp.Connection
	ch      *amqp.Channel
	log     Logger
	metrics *metrics.Metrics // может быть nil, если метрики выключены
}

// NewPublisher подключается к брокеру и декларирует топологию
func NewPublisher(url string, log Logger, m *metrics.Metrics) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbit: dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbit: open channel: %w", err)
	}
	if err := DeclareTopology(ch); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return &Publisher{conn: conn, ch: ch, log: log, metrics: m}, nil
}

// PublishJSON сериализует payload в JSON и публикует его с указанным
// routing key. Сообщения persistent - доставка переживает рестарт брокера
func (p *Publisher) PublishJSON(ctx context.Context, exchange, key string, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("rabbit: marshal payload for %s: %w", key, err)
	}

	err = p.ch.PublishWithContext(ctx, exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})

	if p.metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		p.metrics.EventsPublishedTotal.WithLabelValues(key, status).Inc()
	}

	if err != nil {
		return fmt.Errorf("rabbit: publish %s: %w", key, err)
	}
	return nil
}

// Close закрывает канал и соединение
func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
