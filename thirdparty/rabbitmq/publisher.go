package rabbitmq

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/multierr"
)

type MessagePublisher interface {
	PublishNotification(ctx context.Context, msg model.NotificationMessage) error
	PublishOTP(ctx context.Context, msg model.OTPMessage) error
}

type Publisher struct {
	mu      sync.Mutex
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func NewPublisher(url string) (*Publisher, error) {
	conn, channel, err := dial(url)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

// NotificationRoutingKey returns the topic key for an event, e.g. notification.order_received.
func NotificationRoutingKey(event constant.NotificationEvent) string {
	return "notification." + string(event)
}

func (p *Publisher) PublishNotification(ctx context.Context, msg model.NotificationMessage) error {
	return p.publish(ctx, NotificationRoutingKey(msg.Event), msg, 0)
}

// PublishOTP expires the message together with the code it carries.
func (p *Publisher) PublishOTP(ctx context.Context, msg model.OTPMessage) error {
	return p.publish(ctx, constant.OTPRoutingKey, msg, time.Until(msg.ExpiresAt))
}

func (p *Publisher) publish(ctx context.Context, routingKey string, payload any, ttl time.Duration) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	pub := amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	}
	if ttl > 0 {
		pub.Expiration = formatMillis(ttl)
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channel.PublishWithContext(ctx,
		constant.EventsExchange, // exchange
		routingKey,              // routing key
		false,                   // mandatory
		false,                   // immediate
		pub,
	)
}

func (p *Publisher) Close() error {
	var err error
	if p.channel != nil {
		err = multierr.Append(err, p.channel.Close())
	}
	if p.conn != nil {
		err = multierr.Append(err, p.conn.Close())
	}
	return err
}

func formatMillis(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10)
}
