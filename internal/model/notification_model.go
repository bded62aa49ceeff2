package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type NotificationModel struct {
	ID         string         `gorm:"type:uuid;primary_key" json:"id"`
	SenderID   *string        `gorm:"type:uuid" json:"sender_id"`
	ReceiverID string         `gorm:"type:uuid;not null;index" json:"receiver_id"`
	Message    string         `gorm:"type:text;not null" json:"message"`
	Type       string         `gorm:"type:varchar(20);not null;default:'INFO'" json:"type"`
	EntityType *string        `gorm:"type:varchar(40);index:idx_notifications_entity" json:"entity_type"`
	EntityID   *string        `gorm:"type:uuid;index:idx_notifications_entity" json:"entity_id"`
	Actions    pq.StringArray `gorm:"type:text[]" json:"actions"`
	IsRead     bool           `gorm:"default:false" json:"is_read"`
	CreatedAt  time.Time      `json:"created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (n *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}
