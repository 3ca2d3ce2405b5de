package mq

import (
	"context"

	"github.com/VJVAIRAVAN/smart-meet-cliq/internal/config"
	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher pushes email-dispatch events onto a topic exchange. The store
// never sends mail itself; the external dispatcher consumes these events and
// sweeps pending/failed rows.
type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
	log  *zap.Logger
	cfg  *config.Config
}

// NewPublisher returns nil when the queue is disabled; services tolerate a
// nil publisher and skip publishing.
func NewPublisher(cfg *config.Config, log *zap.Logger) (*Publisher, error) {
	if !cfg.RabbitMQ.Enabled {
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(cfg.RabbitMQ.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return &Publisher{conn: conn, ch: ch, log: log, cfg: cfg}, nil
}

// Close releases the channel first, then the owning connection.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	if err := p.ch.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}

func (p *Publisher) PublishJSON(ctx context.Context, routingKey string, body any) error {
	b, err := sonic.Marshal(body)
	if err != nil {
		return err
	}

	err = p.ch.PublishWithContext(ctx, p.cfg.RabbitMQ.Exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         b,
	})
	if err != nil {
		p.log.Error("publish failed",
			zap.String("exchange", p.cfg.RabbitMQ.Exchange),
			zap.String("routing_key", routingKey),
			zap.Error(err))
		return err
	}
	return nil
}
