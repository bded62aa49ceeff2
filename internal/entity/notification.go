package entity

import "time"

type NotificationType string

const (
	NotificationInfo           NotificationType = "INFO"
	NotificationActionRequired NotificationType = "ACTION_REQUIRED"
)

// Action verbs an actionable notification permits.
const (
	ActionApprove = "APPROVE"
	ActionReject  = "REJECT"
)

// Notification is either an open task (ACTION_REQUIRED, with actions) or an
// informational audit entry (INFO). Resolution flips the former into the
// latter in place; notifications are never deleted by the workflow.
type Notification struct {
	ID         string           `json:"id"`
	SenderID   *string          `json:"senderId"`
	SenderName string           `json:"senderName,omitempty"`
	ReceiverID string           `json:"receiverId"`
	Message    string           `json:"message"`
	Type       NotificationType `json:"type"`
	EntityType *string          `json:"entityType"`
	EntityID   *string          `json:"entityId"`
	Actions    []string         `json:"actions"`
	IsRead     bool             `json:"isRead"`
	CreatedAt  time.Time        `json:"createdAt"`
}
