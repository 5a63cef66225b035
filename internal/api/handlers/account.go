package handlers

import (
	"errors"
	"net/http"

	apperrors "admin-dashboard-backend/internal/errors"
	"admin-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles HTTP requests for accounts
type AccountHandler struct {
	service service.DirectoryServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(service service.DirectoryServiceInterface) *AccountHandler {
	return &AccountHandler{service: service}
}

// ListAccounts handles GET /api/v1/accounts
// @Summary List accounts
// @Description Get all accounts in insertion order
// @Tags accounts
// @Accept json
// @Produce json
// @Success 200 {object} service.AccountListResponse "Account list"
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListAccounts())
}

// GetAccount handles GET /api/v1/accounts/:id
// @Summary Get account by ID
// @Description Get the account profile view: the account, its member users and the derived usage ratios
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} service.AccountDetailResponse "Account profile"
// @Failure 404 {object} map[string]interface{} "Account not found"
// @Router /accounts/{id} [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	detail, err := h.service.GetAccount(c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get account", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// CreateAccount handles POST /api/v1/accounts
// @Summary Create account with initial admin
// @Description Create a new account from partial input together with its initial admin user; omitted fields are filled with defaults and plan-tier limits
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body service.CreateAccountWithAdminRequest true "Partial account and admin input"
// @Success 201 {object} service.CreateAccountWithAdminResponse "Created account and admin"
// @Failure 400 {object} map[string]interface{} "Missing required fields"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req service.CreateAccountWithAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	pair, err := h.service.CreateAccountWithAdmin(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, pair)
}

// DeleteAccount handles DELETE /api/v1/accounts/:id
// @Summary Delete account
// @Description Remove an account and, by cascade, every user referencing it. Deleting an id that does not exist is a no-op, not an error.
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Success 204 "Account and its users removed (or account was already absent)"
// @Router /accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	h.service.DeleteAccount(c.Param("id"))
	c.Status(http.StatusNoContent)
}
