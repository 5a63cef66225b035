package handlers

import (
	"errors"
	"net/http"

	apperrors "admin-dashboard-backend/internal/errors"
	"admin-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	service service.DirectoryServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.DirectoryServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsers handles GET /api/v1/users
// @Summary List users
// @Description Get the flat user list, optionally filtered by a case-insensitive search over email, first name, last name and account name
// @Tags users
// @Accept json
// @Produce json
// @Param search query string false "Search term"
// @Success 200 {object} service.UserListResponse "Filtered user list"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListUsers(c.Query("search")))
}

// ListUsersGrouped handles GET /api/v1/users/grouped
// @Summary List users grouped by account
// @Description Get the account-grouped user view; the search filter applies before grouping. The response total counts groups, not users.
// @Tags users
// @Accept json
// @Produce json
// @Param search query string false "Search term"
// @Success 200 {object} service.GroupedUserListResponse "Grouped user list"
// @Router /users/grouped [get]
func (h *UserHandler) ListUsersGrouped(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListUsersGrouped(c.Query("search")))
}

// GetUser handles GET /api/v1/users/:id
// @Summary Get user by ID
// @Description Get a single user profile
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User "User profile"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.service.GetUser(c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/v1/users/:id
// @Summary Delete user
// @Description Remove a user. Deleting an id that does not exist is a no-op, not an error.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 204 "User removed (or was already absent)"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	h.service.DeleteUser(c.Param("id"))
	c.Status(http.StatusNoContent)
}
