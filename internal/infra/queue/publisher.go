package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/ds611b/practicas/internal/config"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher sends JSON messages to one durable topic exchange.
type Publisher struct {
	conn     *amqp.Connection
	exchange string
	log      *zap.Logger

	mu sync.Mutex
	ch *amqp.Channel
}

// Dial connects to rabbitmq.url. It returns nil, nil when the URL is empty.
func Dial(cfg *config.Config, log *zap.Logger) (*Publisher, error) {
	if cfg.RabbitMQ.URL == "" {
		return nil, nil
	}
	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	p, err := NewPublisher(conn, cfg.RabbitMQ.Exchange, log)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return p, nil
}

func NewPublisher(conn *amqp.Connection, exchange string, log *zap.Logger) (*Publisher, error) {
	p := &Publisher{conn: conn, exchange: exchange, log: log}
	if _, err := p.channel(); err != nil {
		return nil, err
	}
	return p, nil
}

// channel returns the open channel, reopening it after the broker closed it.
func (p *Publisher) channel() (*amqp.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	if p.conn.IsClosed() {
		return nil, amqp.ErrClosed
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(p.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", p.exchange, err)
	}
	p.ch = ch
	return ch, nil
}

func (p *Publisher) PublishJSON(ctx context.Context, routingKey string, v any) error {
	body, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", routingKey, err)
	}

	ch, err := p.channel()
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Type:         routingKey,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
	p.log.Debug("event published", zap.String("exchange", p.exchange), zap.String("routing_key", routingKey))
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.ch != nil {
		errs = append(errs, p.ch.Close())
	}
	errs = append(errs, p.conn.Close())
	return errors.Join(errs...)
}
