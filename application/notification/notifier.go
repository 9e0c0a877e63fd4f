package notification

import (
	"context"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/muhammadheryan/marketplace/thirdparty/rabbitmq"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

// Notifier fans domain events out to users. Delivery is best-effort and never fails the caller.
type Notifier interface {
	Notify(ctx context.Context, userID uint64, event constant.NotificationEvent, message string)
}

type notifier struct {
	publisher rabbitmq.MessagePublisher
}

// NewNotifier accepts a nil publisher, in which case events are only logged.
func NewNotifier(publisher rabbitmq.MessagePublisher) Notifier {
	return &notifier{publisher: publisher}
}

func (n *notifier) Notify(ctx context.Context, userID uint64, event constant.NotificationEvent, message string) {
	if n.publisher == nil {
		logger.Debug("[Notify] no publisher configured", zap.Uint64("user_id", userID), zap.String("event", string(event)))
		return
	}

	msg := model.NotificationMessage{
		UserID:  userID,
		Event:   event,
		Title:   constant.NotificationTitle[event],
		Message: message,
	}
	if err := n.publisher.PublishNotification(ctx, msg); err != nil {
		logger.Error("[Notify] publish notification", zap.Uint64("user_id", userID), zap.String("event", string(event)), zap.String("error", err.Error()))
	}
}
