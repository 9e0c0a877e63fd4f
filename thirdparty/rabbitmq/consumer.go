package rabbitmq

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const InternalNotificationPath = "/internal/v1/notifications"

// Consumer drains the notification queue into the internal notifications API.
type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	apiURL  string
	apiKey  string
	client  *http.Client
}

func NewConsumer(url, apiURL, apiKey string) (*Consumer, error) {
	conn, channel, err := dial(url)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		conn:    conn,
		channel: channel,
		apiURL:  apiURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// Run blocks until ctx is cancelled or the broker closes the delivery channel.
func (c *Consumer) Run(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		constant.NotificationQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return errors.New("delivery channel closed")
			}
			c.handle(ctx, msg)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var payload model.NotificationMessage
	if err := json.Unmarshal(msg.Body, &payload); err != nil || payload.UserID == 0 {
		logger.Warn("[Consumer] dropping malformed notification", zap.ByteString("body", msg.Body))
		_ = msg.Ack(false)
		return
	}

	if err := c.deliver(ctx, payload); err != nil {
		logger.Error("[Consumer] deliver notification", zap.Uint64("user_id", payload.UserID), zap.String("error", err.Error()))
		// Negative ack to requeue
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
	logger.Debug("[Consumer] notification delivered", zap.Uint64("user_id", payload.UserID), zap.String("event", string(payload.Event)))
}

func (c *Consumer) deliver(ctx context.Context, payload model.NotificationMessage) error {
	body, err := json.Marshal(model.CreateNotificationRequest{
		UserID:  payload.UserID,
		Event:   payload.Event,
		Title:   payload.Title,
		Message: payload.Message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+InternalNotificationPath, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "notification-consumer")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 500 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

func (c *Consumer) Close() error {
	var err error
	if c.channel != nil {
		err = multierr.Append(err, c.channel.Close())
	}
	if c.conn != nil {
		err = multierr.Append(err, c.conn.Close())
	}
	return err
}
