package auth

import (
	"net/http"

	apperrors "admin-dashboard-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RefreshTokenRequest represents a request carrying a refresh token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ValidateTokenRequest represents a token validation request
type ValidateTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// StartSSO handles GET /api/auth/sso/start
// @Summary Start SSO sign-in
// @Description Resolve the SSO provider for the given company domain and return its authorization URL
// @Tags auth
// @Accept json
// @Produce json
// @Param domain query string true "Company domain the SSO provider is registered under"
// @Success 200 {object} AuthStartResponse "Authorization URL"
// @Failure 400 {object} map[string]interface{} "Missing domain"
// @Failure 401 {object} map[string]interface{} "No provider for domain"
// @Router /auth/sso/start [get]
func (h *AuthHandler) StartSSO(c *gin.Context) {
	domain := c.Query("domain")
	if domain == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "domain query parameter is required"})
		return
	}

	url, err := h.service.StartSSO(domain, uuid.NewString())
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthStartResponse{URL: url})
}

// CallbackSSO handles GET /api/auth/sso/callback
// @Summary Complete SSO sign-in
// @Description Exchange the provider authorization code for a dashboard session
// @Tags auth
// @Accept json
// @Produce json
// @Param domain query string true "Company domain"
// @Param code query string true "Authorization code returned by the provider"
// @Success 200 {object} SessionResponse "Issued session"
// @Failure 400 {object} map[string]interface{} "Missing parameters"
// @Failure 401 {object} map[string]interface{} "SSO negotiation failed"
// @Router /auth/sso/callback [get]
func (h *AuthHandler) CallbackSSO(c *gin.Context) {
	domain := c.Query("domain")
	code := c.Query("code")
	if domain == "" || code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "domain and code query parameters are required"})
		return
	}

	session, err := h.service.CompleteSSO(c.Request.Context(), domain, code)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete sign-in", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

// SkipLogin handles POST /api/auth/skip
// @Summary Skip login for demo
// @Description Issue a demo session without contacting any SSO provider
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} SessionResponse "Issued demo session"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /auth/skip [post]
func (h *AuthHandler) SkipLogin(c *gin.Context) {
	session, err := h.service.SkipLogin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue demo session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

// Refresh handles POST /api/auth/refresh
// @Summary Refresh a session
// @Description Exchange a refresh token for a new session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} SessionResponse "New session"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	session, err := h.service.Refresh(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, session)
}

// Logout handles POST /api/auth/logout
// @Summary Log out
// @Description Invalidate the given refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} map[string]interface{} "Logged out"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	h.service.Logout(req.RefreshToken)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// ValidateToken handles POST /api/auth/validate
// @Summary Validate a session token
// @Description Check whether a session token is valid and return its claims
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ValidateTokenRequest true "Session token"
// @Success 200 {object} AuthValidateResponse "Validation result"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Router /auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	var req ValidateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	claims, err := h.service.ValidateJWT(req.Token)
	if err != nil {
		c.JSON(http.StatusOK, AuthValidateResponse{Valid: false})
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}
