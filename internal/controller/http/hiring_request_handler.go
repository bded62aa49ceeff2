package http

import (
	"errors"
	"net/http"
	"strconv"

	"hireflow/internal/entity"
	"hireflow/internal/usecase"
	"hireflow/pkg/logger"

	"github.com/gin-gonic/gin"
)

type HiringRequestHandler struct {
	workflowUseCase usecase.WorkflowUseCase
	logger          *logger.Logger
}

func NewHiringRequestHandler(workflowUseCase usecase.WorkflowUseCase, log *logger.Logger) *HiringRequestHandler {
	return &HiringRequestHandler{
		workflowUseCase: workflowUseCase,
		logger:          log,
	}
}

type CreateHiringRequestRequest struct {
	RequesterID  string `json:"requesterId" binding:"required"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ContractType string `json:"contractType"`
	DepartmentID string `json:"departmentId"`
}

type UpdateHiringRequestRequest struct {
	Status          *string `json:"status"`
	RejectionReason *string `json:"rejectionReason"`
	ApproverID      *string `json:"approverId"`
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	ContractType    *string `json:"contractType"`
}

// CreateHiringRequest godoc
// @Summary      Create a hiring request
// @Description  Creates a hiring request, computes its initial workflow stage and notifies the stage's approvers
// @Tags         hiring-requests
// @Accept       json
// @Produce      json
// @Param        request body CreateHiringRequestRequest true "Hiring request"
// @Success      201  {object}  entity.HiringRequest
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /hiring-requests [post]
func (h *HiringRequestHandler) CreateHiringRequest(c *gin.Context) {
	var req CreateHiringRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "requesterId is required"})
		return
	}

	request, err := h.workflowUseCase.Create(usecase.CreateHiringRequestInput{
		RequesterID:  req.RequesterID,
		Title:        req.Title,
		Description:  req.Description,
		ContractType: req.ContractType,
		DepartmentID: req.DepartmentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, entity.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Requester not found"})
		default:
			h.logger.Error("Failed to create hiring request: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create hiring request"})
		}
		return
	}

	c.JSON(http.StatusCreated, request)
}

// UpdateHiringRequest godoc
// @Summary      Update a hiring request
// @Description  Updates fields of a hiring request; a status change runs the workflow transition hooks
// @Tags         hiring-requests
// @Accept       json
// @Produce      json
// @Param        id path string true "Hiring request ID"
// @Param        request body UpdateHiringRequestRequest true "Fields to update"
// @Success      200  {object}  entity.HiringRequest
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /hiring-requests/{id} [put]
func (h *HiringRequestHandler) UpdateHiringRequest(c *gin.Context) {
	id := c.Param("id")

	var req UpdateHiringRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := usecase.UpdateHiringRequestInput{
		RejectionReason: req.RejectionReason,
		ApproverID:      req.ApproverID,
		Title:           req.Title,
		Description:     req.Description,
		ContractType:    req.ContractType,
	}
	if req.Status != nil {
		status := entity.RequestStatus(*req.Status)
		input.Status = &status
	}

	request, err := h.workflowUseCase.Update(id, input)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hiring request not found"})
			return
		}
		h.logger.Error("Failed to update hiring request %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update hiring request"})
		return
	}

	c.JSON(http.StatusOK, request)
}

// GetHiringRequest godoc
// @Summary      Get a hiring request
// @Tags         hiring-requests
// @Produce      json
// @Param        id path string true "Hiring request ID"
// @Success      200  {object}  entity.HiringRequest
// @Failure      404  {object}  map[string]string
// @Router       /hiring-requests/{id} [get]
func (h *HiringRequestHandler) GetHiringRequest(c *gin.Context) {
	id := c.Param("id")

	request, err := h.workflowUseCase.GetByID(id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hiring request not found"})
			return
		}
		h.logger.Error("Failed to get hiring request %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get hiring request"})
		return
	}

	c.JSON(http.StatusOK, request)
}

// ListHiringRequests godoc
// @Summary      List hiring requests
// @Tags         hiring-requests
// @Produce      json
// @Param        limit query int false "Number of requests to return (max 100)"
// @Param        offset query int false "Offset for pagination"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /hiring-requests [get]
func (h *HiringRequestHandler) ListHiringRequests(c *gin.Context) {
	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 && parsedLimit <= 100 {
			limit = parsedLimit
		}
	}

	offset := 0
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if parsedOffset, err := strconv.Atoi(offsetStr); err == nil && parsedOffset >= 0 {
			offset = parsedOffset
		}
	}

	requests, total, err := h.workflowUseCase.List(limit, offset)
	if err != nil {
		h.logger.Error("Failed to list hiring requests: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list hiring requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"requests": requests,
		"count":    len(requests),
		"total":    total,
		"offset":   offset,
	})
}
