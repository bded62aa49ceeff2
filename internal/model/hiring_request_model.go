package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HiringRequestModel struct {
	ID              string     `gorm:"type:uuid;primary_key" json:"id"`
	Title           string     `gorm:"not null" json:"title"`
	Description     string     `json:"description"`
	ContractType    string     `gorm:"type:varchar(50)" json:"contract_type"`
	DepartmentID    string     `gorm:"type:uuid;index" json:"department_id"`
	RequesterID     string     `gorm:"type:uuid;not null;index" json:"requester_id"`
	ApproverID      *string    `gorm:"type:uuid" json:"approver_id"`
	Status          string     `gorm:"type:varchar(40);not null;index" json:"status"`
	RejectionReason string     `gorm:"type:text" json:"rejection_reason"`
	ApprovedAt      *time.Time `json:"approved_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (HiringRequestModel) TableName() string {
	return "hiring_requests"
}

func (h *HiringRequestModel) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	return nil
}
