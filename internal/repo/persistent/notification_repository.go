package persistent

import (
	"errors"
	"fmt"

	"hireflow/internal/entity"
	"hireflow/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *entity.Notification) error
	GetByID(id string) (*entity.Notification, error)
	ListByReceiver(receiverID string, limit, offset int) ([]*entity.Notification, int64, error)
	CountUnread(receiverID string) (int64, error)
	MarkRead(id string) error
	MarkAllRead(receiverID string) error
	Delete(id string) error
	ResolveActions(entityID, entityType, message string) ([]*entity.Notification, error)
	GetSenderName(senderID string) (string, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *entity.Notification) error {
	notificationModel := ToNotificationModel(notification)
	if err := r.db.Create(notificationModel).Error; err != nil {
		return err
	}
	*notification = *ToNotificationEntity(notificationModel)
	return nil
}

func (r *notificationRepository) GetByID(id string) (*entity.Notification, error) {
	var notificationModel model.NotificationModel
	if err := r.db.Where("id = ?", id).First(&notificationModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("notification %s: %w", id, entity.ErrNotFound)
		}
		return nil, err
	}
	return ToNotificationEntity(&notificationModel), nil
}

func (r *notificationRepository) ListByReceiver(receiverID string, limit, offset int) ([]*entity.Notification, int64, error) {
	query := r.db.Model(&model.NotificationModel{}).Where("receiver_id = ?", receiverID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notificationModels []model.NotificationModel
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&notificationModels).Error; err != nil {
		return nil, 0, err
	}

	notifications := make([]*entity.Notification, len(notificationModels))
	for i := range notificationModels {
		notifications[i] = ToNotificationEntity(&notificationModels[i])
	}
	return notifications, total, nil
}

func (r *notificationRepository) CountUnread(receiverID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.NotificationModel{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Count(&count).Error
	return count, err
}

func (r *notificationRepository) MarkRead(id string) error {
	result := r.db.Model(&model.NotificationModel{}).Where("id = ?", id).Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification %s: %w", id, entity.ErrNotFound)
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(receiverID string) error {
	return r.db.Model(&model.NotificationModel{}).
		Where("receiver_id = ? AND is_read = ?", receiverID, false).
		Update("is_read", true).Error
}

func (r *notificationRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&model.NotificationModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("notification %s: %w", id, entity.ErrNotFound)
	}
	return nil
}

// ResolveActions flips every outstanding actionable notification for an
// entity into an informational record in one set-based update, then returns
// the updated rows. Updating zero rows is not an error; the operation is
// idempotent.
func (r *notificationRepository) ResolveActions(entityID, entityType, message string) ([]*entity.Notification, error) {
	var ids []string
	err := r.db.Model(&model.NotificationModel{}).
		Where("entity_id = ? AND entity_type = ? AND type = ?", entityID, entityType, string(entity.NotificationActionRequired)).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*entity.Notification{}, nil
	}

	err = r.db.Model(&model.NotificationModel{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"type":    string(entity.NotificationInfo),
			"actions": nil,
			"message": message,
			"is_read": false,
		}).Error
	if err != nil {
		return nil, err
	}

	var notificationModels []model.NotificationModel
	if err := r.db.Where("id IN ?", ids).Find(&notificationModels).Error; err != nil {
		return nil, err
	}

	notifications := make([]*entity.Notification, len(notificationModels))
	for i := range notificationModels {
		notifications[i] = ToNotificationEntity(&notificationModels[i])
	}
	return notifications, nil
}

func (r *notificationRepository) GetSenderName(senderID string) (string, error) {
	var userModel model.UserModel
	err := r.db.Where("id = ?", senderID).Select("username").First(&userModel).Error
	if err != nil {
		return "", err
	}
	return userModel.Username, nil
}
