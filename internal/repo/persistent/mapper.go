package persistent

import (
	"hireflow/internal/entity"
	"hireflow/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Username:  m.Username,
		Password:  m.Password,
		Role:      m.Role,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToHiringRequestEntity(m *model.HiringRequestModel) *entity.HiringRequest {
	if m == nil {
		return nil
	}

	approverID := ""
	if m.ApproverID != nil {
		approverID = *m.ApproverID
	}

	return &entity.HiringRequest{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		ContractType:    m.ContractType,
		DepartmentID:    m.DepartmentID,
		RequesterID:     m.RequesterID,
		ApproverID:      approverID,
		Status:          entity.RequestStatus(m.Status),
		RejectionReason: m.RejectionReason,
		ApprovedAt:      m.ApprovedAt,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToHiringRequestModel(e *entity.HiringRequest) *model.HiringRequestModel {
	if e == nil {
		return nil
	}

	var approverID *string
	if e.ApproverID != "" {
		id := e.ApproverID
		approverID = &id
	}

	return &model.HiringRequestModel{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		ContractType:    e.ContractType,
		DepartmentID:    e.DepartmentID,
		RequesterID:     e.RequesterID,
		ApproverID:      approverID,
		Status:          string(e.Status),
		RejectionReason: e.RejectionReason,
		ApprovedAt:      e.ApprovedAt,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToNotificationEntity(m *model.NotificationModel) *entity.Notification {
	if m == nil {
		return nil
	}

	var actions []string
	if m.Actions != nil {
		actions = []string(m.Actions)
	}

	return &entity.Notification{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Message:    m.Message,
		Type:       entity.NotificationType(m.Type),
		EntityType: m.EntityType,
		EntityID:   m.EntityID,
		Actions:    actions,
		IsRead:     m.IsRead,
		CreatedAt:  m.CreatedAt,
	}
}

func ToNotificationModel(e *entity.Notification) *model.NotificationModel {
	if e == nil {
		return nil
	}

	var actions []string
	if e.Actions != nil {
		actions = e.Actions
	}

	return &model.NotificationModel{
		ID:         e.ID,
		SenderID:   e.SenderID,
		ReceiverID: e.ReceiverID,
		Message:    e.Message,
		Type:       string(e.Type),
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		Actions:    actions,
		IsRead:     e.IsRead,
		CreatedAt:  e.CreatedAt,
	}
}
