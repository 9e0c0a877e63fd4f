package notification

import (
	"context"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	notificationrepo "github.com/muhammadheryan/marketplace/repository/notification"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"github.com/muhammadheryan/marketplace/utils/pagination"
	"go.uber.org/zap"
)

type NotificationApp interface {
	Create(ctx context.Context, req *model.CreateNotificationRequest) (*model.NotificationEntity, error)
	List(ctx context.Context, filter *model.NotificationFilter) (*model.NotificationListResponse, error)
	MarkRead(ctx context.Context, userID, id uint64) error
}

type notificationAppImpl struct {
	notificationRepo notificationrepo.NotificationRepository
}

func NewNotificationApp(notificationRepo notificationrepo.NotificationRepository) NotificationApp {
	return &notificationAppImpl{notificationRepo: notificationRepo}
}

func (s *notificationAppImpl) Create(ctx context.Context, req *model.CreateNotificationRequest) (*model.NotificationEntity, error) {
	if _, ok := constant.NotificationTitle[req.Event]; !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	entity := &model.NotificationEntity{
		UserID:  req.UserID,
		Event:   req.Event,
		Title:   req.Title,
		Message: req.Message,
	}
	if err := s.notificationRepo.Insert(ctx, entity); err != nil {
		logger.Error("[CreateNotification] insert", zap.Uint64("user_id", req.UserID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *notificationAppImpl) List(ctx context.Context, filter *model.NotificationFilter) (*model.NotificationListResponse, error) {
	filter.Page, filter.PerPage = pagination.Normalize(filter.Page, filter.PerPage)

	items, total, err := s.notificationRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListNotifications] list", zap.Uint64("user_id", filter.UserID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.NotificationListResponse{
		Items:      items,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}, nil
}

func (s *notificationAppImpl) MarkRead(ctx context.Context, userID, id uint64) error {
	ok, err := s.notificationRepo.MarkRead(ctx, userID, id)
	if err != nil {
		logger.Error("[MarkNotificationRead] mark read", zap.Uint64("id", id), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}
