package entity

import "time"

// RequestStatus is a workflow stage of a hiring request. The values carry
// spaces because the front end consumes them verbatim.
type RequestStatus string

const (
	StatusPendingHR            RequestStatus = "Pending HR"
	StatusPendingHRDirector    RequestStatus = "Pending HR Director"
	StatusPendingResponsableRH RequestStatus = "Pending Responsable RH"
	StatusPendingPlantManager  RequestStatus = "Pending Plant Manager"
	StatusApproved             RequestStatus = "Approved"
	StatusRejected             RequestStatus = "Rejected"
)

// IsTerminal reports whether no further approval can act on the request.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// EntityTypeHiringRequest tags notifications that belong to a hiring request.
const EntityTypeHiringRequest = "HIRING_REQUEST"

type HiringRequest struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	ContractType    string        `json:"contractType"`
	DepartmentID    string        `json:"departmentId"`
	RequesterID     string        `json:"requesterId"`
	ApproverID      string        `json:"approverId"`
	Status          RequestStatus `json:"status"`
	RejectionReason string        `json:"rejectionReason"`
	ApprovedAt      *time.Time    `json:"approvedAt"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}
