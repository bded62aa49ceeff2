package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"hireflow/internal/entity"
	"hireflow/internal/repo/persistent"
	"hireflow/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Pusher delivers a payload to a user's live connection, reporting whether
// anything was connected. *realtime.Registry satisfies it.
type Pusher interface {
	Push(userID string, payload interface{}) bool
}

type CreateNotificationInput struct {
	SenderID   *string
	ReceiverID string
	Message    string
	Type       entity.NotificationType
	EntityType *string
	EntityID   *string
	Actions    []string
}

type NotificationUseCase interface {
	Create(in CreateNotificationInput) (*entity.Notification, error)
	ResolveActions(entityID, entityType, message string) ([]*entity.Notification, error)
	GetNotifications(receiverID string, limit, offset int) ([]*entity.Notification, int64, error)
	GetUnreadCount(receiverID string) (int64, error)
	MarkRead(id string) error
	MarkAllRead(receiverID string) error
	Delete(id string) error
}

type notificationUseCase struct {
	notificationRepo persistent.NotificationRepository
	registry         Pusher
	redisClient      *redis.Client
	logger           *logger.Logger
}

func NewNotificationUseCase(
	notificationRepo persistent.NotificationRepository,
	registry Pusher,
	redisClient *redis.Client,
	log *logger.Logger,
) NotificationUseCase {
	return &notificationUseCase{
		notificationRepo: notificationRepo,
		registry:         registry,
		redisClient:      redisClient,
		logger:           log,
	}
}

// Create persists the notification and attempts a live push. The push result
// is informational only: durability never depends on live delivery.
func (uc *notificationUseCase) Create(in CreateNotificationInput) (*entity.Notification, error) {
	notificationType := in.Type
	if notificationType == "" {
		notificationType = entity.NotificationInfo
	}

	notification := &entity.Notification{
		SenderID:   in.SenderID,
		ReceiverID: in.ReceiverID,
		Message:    in.Message,
		Type:       notificationType,
		EntityType: in.EntityType,
		EntityID:   in.EntityID,
		Actions:    in.Actions,
		CreatedAt:  time.Now().UTC(),
	}

	if err := uc.notificationRepo.Create(notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	if notification.SenderID != nil {
		name, err := uc.notificationRepo.GetSenderName(*notification.SenderID)
		if err != nil {
			uc.logger.Warn("Failed to resolve sender name for %s: %v", *notification.SenderID, err)
		} else {
			notification.SenderName = name
		}
	}

	uc.invalidateUnreadCount(notification.ReceiverID)

	delivered := uc.registry.Push(notification.ReceiverID, notification)
	uc.logger.Info("Notification %s created for user %s (live delivery: %t)", notification.ID, notification.ReceiverID, delivered)

	return notification, nil
}

// ResolveActions closes every outstanding actionable notification for an
// entity in one set-based update and returns the updated records.
func (uc *notificationUseCase) ResolveActions(entityID, entityType, message string) ([]*entity.Notification, error) {
	resolved, err := uc.notificationRepo.ResolveActions(entityID, entityType, message)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve notifications for %s %s: %w", entityType, entityID, err)
	}

	for _, notification := range resolved {
		uc.invalidateUnreadCount(notification.ReceiverID)
	}

	uc.logger.Info("Resolved %d actionable notifications for %s %s", len(resolved), entityType, entityID)
	return resolved, nil
}

func (uc *notificationUseCase) GetNotifications(receiverID string, limit, offset int) ([]*entity.Notification, int64, error) {
	return uc.notificationRepo.ListByReceiver(receiverID, limit, offset)
}

func (uc *notificationUseCase) GetUnreadCount(receiverID string) (int64, error) {
	if uc.redisClient != nil {
		ctx := context.Background()
		cached, err := uc.redisClient.Get(ctx, unreadCountKey(receiverID)).Result()
		if err == nil {
			if count, parseErr := strconv.ParseInt(cached, 10, 64); parseErr == nil {
				return count, nil
			}
		} else if err != redis.Nil {
			uc.logger.Warn("Failed to read unread count cache for %s: %v", receiverID, err)
		}
	}

	count, err := uc.notificationRepo.CountUnread(receiverID)
	if err != nil {
		return 0, err
	}

	if uc.redisClient != nil {
		ctx := context.Background()
		if err := uc.redisClient.Set(ctx, unreadCountKey(receiverID), count, 5*time.Minute).Err(); err != nil {
			uc.logger.Warn("Failed to cache unread count for %s: %v", receiverID, err)
		}
	}

	return count, nil
}

func (uc *notificationUseCase) MarkRead(id string) error {
	notification, err := uc.notificationRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := uc.notificationRepo.MarkRead(id); err != nil {
		return err
	}
	uc.invalidateUnreadCount(notification.ReceiverID)
	return nil
}

func (uc *notificationUseCase) MarkAllRead(receiverID string) error {
	if err := uc.notificationRepo.MarkAllRead(receiverID); err != nil {
		return err
	}
	uc.invalidateUnreadCount(receiverID)
	return nil
}

func (uc *notificationUseCase) Delete(id string) error {
	notification, err := uc.notificationRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := uc.notificationRepo.Delete(id); err != nil {
		return err
	}
	uc.invalidateUnreadCount(notification.ReceiverID)
	return nil
}

func (uc *notificationUseCase) invalidateUnreadCount(receiverID string) {
	if uc.redisClient == nil {
		return
	}
	ctx := context.Background()
	if err := uc.redisClient.Del(ctx, unreadCountKey(receiverID)).Err(); err != nil {
		uc.logger.Warn("Failed to invalidate unread count cache for %s: %v", receiverID, err)
	}
}

func unreadCountKey(receiverID string) string {
	return fmt.Sprintf("unread_count:%s", receiverID)
}
