package queue

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/streadway/amqp"

	"citytransit/internal/config"
	"citytransit/pkg/logger"
)

// TicketEvent is the message published when a ticket changes state.
type TicketEvent struct {
	TicketID      string    `json:"ticket_id"`
	UserID        string    `json:"user_id"`
	TicketClass   string    `json:"ticket_class"`
	TransportMode string    `json:"transport_mode"`
	Fare          float64   `json:"fare"`
	Timestamp     time.Time `json:"timestamp"`
}

type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	config  *config.QueueConfig
	log     *logger.Logger
	mu      sync.RWMutex
	healthy bool
}

func NewPublisher(cfg *config.QueueConfig, log *logger.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}

	if err := channel.ExchangeDeclare(
		cfg.Exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	for _, key := range []string{cfg.PurchasedKey, cfg.RedeemedKey} {
		queue, err := channel.QueueDeclare(key, true, false, false, false, nil)
		if err != nil {
			channel.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to declare queue %s: %w", key, err)
		}
		if err := channel.QueueBind(queue.Name, key, cfg.Exchange, false, nil); err != nil {
			channel.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to bind queue %s: %w", key, err)
		}
	}

	log.Info("Connected to RabbitMQ")

	return &Publisher{
		conn:    conn,
		channel: channel,
		config:  cfg,
		log:     log,
		healthy: true,
	}, nil
}

func (p *Publisher) PublishTicketPurchased(event TicketEvent) error {
	return p.publish(p.config.PurchasedKey, event)
}

func (p *Publisher) PublishTicketRedeemed(event TicketEvent) error {
	return p.publish(p.config.RedeemedKey, event)
}

func (p *Publisher) publish(routingKey string, event TicketEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.channel == nil {
		return fmt.Errorf("RabbitMQ channel is nil")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.channel.Publish(
		p.config.Exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	); err != nil {
		p.healthy = false
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.log.WithFields(map[string]interface{}{
		"ticket_id":   event.TicketID,
		"user_id":     event.UserID,
		"routing_key": routingKey,
	}).Info("Published ticket event")

	return nil
}

func (p *Publisher) HealthCheck() error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.healthy || p.conn == nil || p.conn.IsClosed() {
		return fmt.Errorf("RabbitMQ connection is not healthy")
	}

	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			p.log.WithError(err).Warn("Failed to close RabbitMQ channel")
		}
	}

	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			p.log.WithError(err).Warn("Failed to close RabbitMQ connection")
		}
	}

	return nil
}
