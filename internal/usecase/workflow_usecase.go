package usecase

import (
	"fmt"
	"time"

	"hireflow/internal/entity"
	"hireflow/internal/repo/persistent"
	"hireflow/pkg/logger"
)

type CreateHiringRequestInput struct {
	RequesterID  string
	Title        string
	Description  string
	ContractType string
	DepartmentID string
}

type UpdateHiringRequestInput struct {
	Status          *entity.RequestStatus
	RejectionReason *string
	ApproverID      *string
	Title           *string
	Description     *string
	ContractType    *string
}

type WorkflowUseCase interface {
	Create(in CreateHiringRequestInput) (*entity.HiringRequest, error)
	Update(id string, in UpdateHiringRequestInput) (*entity.HiringRequest, error)
	GetByID(id string) (*entity.HiringRequest, error)
	List(limit, offset int) ([]*entity.HiringRequest, int64, error)
}

// workflowUseCase owns the approval state machine: it computes the initial
// stage and fan-out on creation, and on every status change resolves the
// prior stage's actionable notifications and fans out the next stage's.
//
// Transition hooks match on the new status value only. Callers may jump
// stages; no adjacency table is enforced.
type workflowUseCase struct {
	requestRepo persistent.HiringRequestRepository
	userRepo    persistent.UserRepository
	resolver    ApproverResolver
	notifier    NotificationUseCase
	logger      *logger.Logger
}

func NewWorkflowUseCase(
	requestRepo persistent.HiringRequestRepository,
	userRepo persistent.UserRepository,
	resolver ApproverResolver,
	notifier NotificationUseCase,
	log *logger.Logger,
) WorkflowUseCase {
	return &workflowUseCase{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		resolver:    resolver,
		notifier:    notifier,
		logger:      log,
	}
}

func (uc *workflowUseCase) Create(in CreateHiringRequestInput) (*entity.HiringRequest, error) {
	if in.RequesterID == "" {
		return nil, fmt.Errorf("requesterId is required: %w", entity.ErrValidation)
	}

	requester, err := uc.userRepo.GetByID(in.RequesterID)
	if err != nil {
		return nil, err
	}

	var status entity.RequestStatus
	var approvers []*entity.User

	if requester.CanonicalRole().IsHRFamily() {
		// HR staff requests skip the Responsable RH stage and go straight
		// to the HR director.
		status = entity.StatusPendingHRDirector
		approvers, err = uc.resolver.Resolve(entity.RoleDRH)
	} else {
		status = entity.StatusPendingResponsableRH
		approvers, err = uc.resolver.Resolve(entity.RoleResponsableRH, entity.RoleResponsableRecrutement)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve approvers: %w", err)
	}

	request := &entity.HiringRequest{
		Title:        in.Title,
		Description:  in.Description,
		ContractType: in.ContractType,
		DepartmentID: in.DepartmentID,
		RequesterID:  requester.ID,
		Status:       status,
	}

	if err := uc.requestRepo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create hiring request: %w", err)
	}

	if len(approvers) == 0 {
		// Not fatal: the request exists and can be manually routed.
		uc.logger.Warn("No approvers found for hiring request %s (status %s)", request.ID, request.Status)
	}

	uc.fanOutActionRequired(request, requester, approvers)

	return request, nil
}

func (uc *workflowUseCase) Update(id string, in UpdateHiringRequestInput) (*entity.HiringRequest, error) {
	request, err := uc.requestRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	previousStatus := request.Status
	applyFieldUpdates(request, in)

	statusChanged := in.Status != nil && *in.Status != previousStatus
	if statusChanged && *in.Status == entity.StatusApproved {
		now := time.Now().UTC()
		request.ApprovedAt = &now
	}

	if err := uc.requestRepo.Update(request); err != nil {
		return nil, fmt.Errorf("failed to update hiring request: %w", err)
	}

	if !statusChanged {
		return request, nil
	}

	// Notification side effects are best effort: failures are logged and
	// never fail or roll back the status update itself.
	actor := uc.lookupActor(in.ApproverID)

	switch request.Status {
	case entity.StatusPendingPlantManager:
		uc.onPendingPlantManager(request, actor)
	case entity.StatusApproved:
		uc.onApproved(request, actor)
	case entity.StatusRejected:
		uc.onRejected(request, actor)
	default:
		// No notification side effects defined for other target statuses.
		uc.logger.Info("Hiring request %s moved to %s with no notification hooks", request.ID, request.Status)
	}

	return request, nil
}

func (uc *workflowUseCase) GetByID(id string) (*entity.HiringRequest, error) {
	return uc.requestRepo.GetByID(id)
}

func (uc *workflowUseCase) List(limit, offset int) ([]*entity.HiringRequest, int64, error) {
	return uc.requestRepo.List(limit, offset)
}

// fanOutActionRequired creates one actionable notification per approver.
// Each creation is independently fallible and attempts its own live push.
func (uc *workflowUseCase) fanOutActionRequired(request *entity.HiringRequest, requester *entity.User, approvers []*entity.User) {
	entityType := entity.EntityTypeHiringRequest
	requesterName := requester.Username
	if requesterName == "" {
		requesterName = requester.ID
	}

	for _, approver := range approvers {
		_, err := uc.notifier.Create(CreateNotificationInput{
			SenderID:   &request.RequesterID,
			ReceiverID: approver.ID,
			Message:    fmt.Sprintf("%s submitted a hiring request: %s", requesterName, request.Title),
			Type:       entity.NotificationActionRequired,
			EntityType: &entityType,
			EntityID:   &request.ID,
			Actions:    []string{entity.ActionApprove, entity.ActionReject},
		})
		if err != nil {
			uc.logger.Error("Failed to notify approver %s for hiring request %s: %v", approver.ID, request.ID, err)
		}
	}
}

func (uc *workflowUseCase) onPendingPlantManager(request *entity.HiringRequest, actor actorInfo) {
	label := "Responsable RH"
	if actor.role == entity.RoleDRH {
		label = "HR Director"
	}

	resolution := fmt.Sprintf("Validated by %s (%s)", actor.name, label)
	if _, err := uc.notifier.ResolveActions(request.ID, entity.EntityTypeHiringRequest, resolution); err != nil {
		uc.logger.Error("Failed to resolve notifications for hiring request %s: %v", request.ID, err)
	}

	plantManagers, err := uc.resolver.Resolve(entity.RolePlantManager)
	if err != nil {
		uc.logger.Error("Failed to resolve plant managers for hiring request %s: %v", request.ID, err)
		plantManagers = nil
	}
	if len(plantManagers) == 0 {
		uc.logger.Warn("No plant managers found for hiring request %s", request.ID)
	}

	entityType := entity.EntityTypeHiringRequest
	for _, manager := range plantManagers {
		_, err := uc.notifier.Create(CreateNotificationInput{
			SenderID:   actor.id,
			ReceiverID: manager.ID,
			Message:    fmt.Sprintf("Hiring request awaiting your approval: %s", request.Title),
			Type:       entity.NotificationActionRequired,
			EntityType: &entityType,
			EntityID:   &request.ID,
			Actions:    []string{entity.ActionApprove, entity.ActionReject},
		})
		if err != nil {
			uc.logger.Error("Failed to notify plant manager %s for hiring request %s: %v", manager.ID, request.ID, err)
		}
	}

	uc.notifyRequester(request, actor.id, fmt.Sprintf("Your hiring request %q was validated by %s", request.Title, actor.name))
}

func (uc *workflowUseCase) onApproved(request *entity.HiringRequest, actor actorInfo) {
	uc.notifyRecruitment(request, actor.id, fmt.Sprintf("Hiring request %q has been approved; recruitment can proceed", request.Title))
	uc.notifyRequester(request, actor.id, fmt.Sprintf("Your hiring request %q has been approved", request.Title))

	resolution := fmt.Sprintf("Approved by Direction (%s)", actor.name)
	if _, err := uc.notifier.ResolveActions(request.ID, entity.EntityTypeHiringRequest, resolution); err != nil {
		uc.logger.Error("Failed to resolve notifications for hiring request %s: %v", request.ID, err)
	}
}

func (uc *workflowUseCase) onRejected(request *entity.HiringRequest, actor actorInfo) {
	message := fmt.Sprintf("Your hiring request %q was rejected", request.Title)
	if request.RejectionReason != "" {
		message = fmt.Sprintf("Your hiring request %q was rejected: %s", request.Title, request.RejectionReason)
	}
	uc.notifyRequester(request, actor.id, message)
	uc.notifyRecruitment(request, actor.id, fmt.Sprintf("Hiring request %q was rejected", request.Title))

	resolution := fmt.Sprintf("Rejected by %s", actor.name)
	if _, err := uc.notifier.ResolveActions(request.ID, entity.EntityTypeHiringRequest, resolution); err != nil {
		uc.logger.Error("Failed to resolve notifications for hiring request %s: %v", request.ID, err)
	}
}

func (uc *workflowUseCase) notifyRequester(request *entity.HiringRequest, senderID *string, message string) {
	entityType := entity.EntityTypeHiringRequest
	_, err := uc.notifier.Create(CreateNotificationInput{
		SenderID:   senderID,
		ReceiverID: request.RequesterID,
		Message:    message,
		Type:       entity.NotificationInfo,
		EntityType: &entityType,
		EntityID:   &request.ID,
	})
	if err != nil {
		uc.logger.Error("Failed to notify requester %s for hiring request %s: %v", request.RequesterID, request.ID, err)
	}
}

func (uc *workflowUseCase) notifyRecruitment(request *entity.HiringRequest, senderID *string, message string) {
	recruiters, err := uc.resolver.Resolve(entity.RoleResponsableRecrutement)
	if err != nil {
		uc.logger.Error("Failed to resolve recruitment staff for hiring request %s: %v", request.ID, err)
		return
	}

	entityType := entity.EntityTypeHiringRequest
	for _, recruiter := range recruiters {
		_, err := uc.notifier.Create(CreateNotificationInput{
			SenderID:   senderID,
			ReceiverID: recruiter.ID,
			Message:    message,
			Type:       entity.NotificationInfo,
			EntityType: &entityType,
			EntityID:   &request.ID,
		})
		if err != nil {
			uc.logger.Error("Failed to notify recruiter %s for hiring request %s: %v", recruiter.ID, request.ID, err)
		}
	}
}

type actorInfo struct {
	id   *string
	name string
	role entity.Role
}

// lookupActor resolves the acting approver for transition messages. A missing
// or unknown actor degrades to its raw id; the transition itself never fails
// on actor lookup.
func (uc *workflowUseCase) lookupActor(approverID *string) actorInfo {
	if approverID == nil || *approverID == "" {
		return actorInfo{name: "Unknown", role: entity.RoleUnknown}
	}

	actor, err := uc.userRepo.GetByID(*approverID)
	if err != nil {
		uc.logger.Warn("Failed to load acting approver %s: %v", *approverID, err)
		return actorInfo{id: approverID, name: *approverID, role: entity.RoleUnknown}
	}

	name := actor.Username
	if name == "" {
		name = actor.ID
	}
	return actorInfo{id: approverID, name: name, role: actor.CanonicalRole()}
}

func applyFieldUpdates(request *entity.HiringRequest, in UpdateHiringRequestInput) {
	if in.Title != nil {
		request.Title = *in.Title
	}
	if in.Description != nil {
		request.Description = *in.Description
	}
	if in.ContractType != nil {
		request.ContractType = *in.ContractType
	}
	if in.RejectionReason != nil {
		request.RejectionReason = *in.RejectionReason
	}
	if in.ApproverID != nil {
		request.ApproverID = *in.ApproverID
	}
	if in.Status != nil {
		request.Status = *in.Status
	}
	// A rejection reason only accompanies a rejected request.
	if request.Status != entity.StatusRejected {
		request.RejectionReason = ""
	}
}
