// Package handlers exposes the checklist engine over HTTP.
package handlers

import (
	"net/http"
	"time"

	apperrors "github.com/PackPilot/packpilot-backend/errors"
	"github.com/PackPilot/packpilot-backend/logger"
	"github.com/PackPilot/packpilot-backend/services"
	"github.com/PackPilot/packpilot-backend/types"
	"github.com/gin-gonic/gin"
)

// ChecklistHandler handles checklist lifecycle requests.
type ChecklistHandler struct {
	checklistService *services.ChecklistService
}

func NewChecklistHandler(checklistService *services.ChecklistService) *ChecklistHandler {
	return &ChecklistHandler{checklistService: checklistService}
}

// CreateChecklistRequest is the request body for checklist generation.
type CreateChecklistRequest struct {
	Destination     string    `json:"destination" binding:"required"`
	StartDate       time.Time `json:"startDate" binding:"required"`
	EndDate         time.Time `json:"endDate" binding:"required"`
	Purpose         string    `json:"purpose" binding:"required"`
	TransportMethod string    `json:"transportMethod,omitempty"`
	Accommodation   string    `json:"accommodation,omitempty"`
	UserID          string    `json:"userId" binding:"required"`
}

// AddItemRequest is the request body for adding a checklist item.
type AddItemRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category,omitempty"`
}

// RescheduleRequest is the request body for moving a trip's dates.
type RescheduleRequest struct {
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

// CreateChecklist generates and persists a checklist for a trip.
func (h *ChecklistHandler) CreateChecklist(c *gin.Context) {
	log := logger.GetLogger()

	var req CreateChecklistRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	tripReq, err := types.NewTripRequest(req.Destination, req.StartDate, req.EndDate, types.TripPurpose(req.Purpose), req.UserID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if req.TransportMethod != "" {
		method := types.TransportMethod(req.TransportMethod)
		if !method.IsValid() {
			_ = c.Error(apperrors.ValidationFailed("invalid transport method", req.TransportMethod))
			return
		}
		tripReq.TransportMethod = method
	}
	tripReq.Accommodation = req.Accommodation

	checklist, err := h.checklistService.GenerateChecklist(c.Request.Context(), tripReq)
	if err != nil {
		_ = c.Error(err)
		return
	}

	log.Infow("Checklist created", "checklistId", checklist.ID, "destination", checklist.Destination)
	c.JSON(http.StatusCreated, checklist)
}

// GetChecklist returns a checklist by id.
func (h *ChecklistHandler) GetChecklist(c *gin.Context) {
	checklist, err := h.checklistService.GetChecklist(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, checklist)
}

// ListChecklists returns the requesting user's checklists, newest first.
func (h *ChecklistHandler) ListChecklists(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		_ = c.Error(apperrors.ValidationFailed("userId query parameter is required", ""))
		return
	}

	checklists, err := h.checklistService.ListChecklists(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"checklists": checklists})
}

// DeleteChecklist removes a checklist.
func (h *ChecklistHandler) DeleteChecklist(c *gin.Context) {
	if err := h.checklistService.DeleteChecklist(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetChecklistMarkdown returns the checklist's markdown serialization.
func (h *ChecklistHandler) GetChecklistMarkdown(c *gin.Context) {
	checklist, err := h.checklistService.GetChecklist(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(checklist.ToMarkdown()))
}

// ToggleItem flips an item's checked state.
func (h *ChecklistHandler) ToggleItem(c *gin.Context) {
	checked, err := h.checklistService.ToggleItem(c.Request.Context(), c.Param("id"), c.Param("itemId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"itemId": c.Param("itemId"), "checked": checked})
}

// AddItem appends a user-added item to a checklist.
func (h *ChecklistHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	item, err := h.checklistService.AddItem(c.Request.Context(), c.Param("id"), req.Name, types.NormalizeCategory(req.Category))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// RemoveItem deletes an item from a checklist.
func (h *ChecklistHandler) RemoveItem(c *gin.Context) {
	if err := h.checklistService.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("itemId")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Reschedule moves the trip dates and reports the resulting adjustments.
func (h *ChecklistHandler) Reschedule(c *gin.Context) {
	var req RescheduleRequest
	if !bindJSONOrError(c, &req) {
		return
	}

	adjustments, err := h.checklistService.Reschedule(c.Request.Context(), c.Param("id"), req.StartDate, req.EndDate)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"adjustments": adjustments})
}

// bindJSONOrError binds the JSON body and sets a validation error if binding
// fails. Returns true if binding succeeded.
func bindJSONOrError(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(apperrors.ValidationFailed("invalid_request_payload", err.Error()))
		return false
	}
	return true
}
