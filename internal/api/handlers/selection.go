package handlers

import (
	"net/http"

	apperrors "admin-dashboard-backend/internal/errors"
	"admin-dashboard-backend/internal/service"
	"admin-dashboard-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// SelectionHandler handles HTTP requests for the focus/navigation state
type SelectionHandler struct {
	service service.DirectoryServiceInterface
}

// NewSelectionHandler creates a new selection handler
func NewSelectionHandler(service service.DirectoryServiceInterface) *SelectionHandler {
	return &SelectionHandler{service: service}
}

// SelectRequest represents a request to focus a single entity
type SelectRequest struct {
	Kind store.SelectionKind `json:"kind" binding:"required"`
	ID   string              `json:"id" binding:"required"`
}

// GetSelection handles GET /api/v1/selection
// @Summary Get current selection
// @Description Get the currently focused entity, if any
// @Tags selection
// @Accept json
// @Produce json
// @Success 200 {object} store.Selection "Current selection state"
// @Router /selection [get]
func (h *SelectionHandler) GetSelection(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.CurrentSelection())
}

// Select handles PUT /api/v1/selection
// @Summary Select an entity
// @Description Focus a single user or account; selecting one kind clears the other
// @Tags selection
// @Accept json
// @Produce json
// @Param request body SelectRequest true "Entity to focus"
// @Success 200 {object} store.Selection "New selection state"
// @Failure 400 {object} map[string]interface{} "Invalid request body or kind"
// @Failure 404 {object} map[string]interface{} "Entity not found"
// @Router /selection [put]
func (h *SelectionHandler) Select(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	var err error
	switch req.Kind {
	case store.SelectionUser:
		err = h.service.SelectUser(req.ID)
	case store.SelectionAccount:
		err = h.service.SelectAccount(req.ID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be 'user' or 'account'"})
		return
	}

	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to select entity", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.service.CurrentSelection())
}

// ClearSelection handles DELETE /api/v1/selection
// @Summary Clear selection
// @Description Clear any focused entity, the "home" action
// @Tags selection
// @Accept json
// @Produce json
// @Success 204 "Selection cleared"
// @Router /selection [delete]
func (h *SelectionHandler) ClearSelection(c *gin.Context) {
	h.service.ClearSelection()
	c.Status(http.StatusNoContent)
}
