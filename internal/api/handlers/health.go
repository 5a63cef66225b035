package handlers

import (
	"net/http"
	"time"

	"admin-dashboard-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	store *store.DirectoryStore
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(directory *store.DirectoryStore) *HealthHandler {
	return &HealthHandler{store: directory}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including the directory store
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   "1.0.0",
		Services:  make(map[string]string),
	}

	// The store lives in process memory, so reachability is the whole check
	response.Services["directory"] = "healthy"

	c.JSON(http.StatusOK, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Description Check if the application is ready to serve requests, i.e. the directory store has been seeded
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	// An empty store is still a ready store; seeding is optional
	response := map[string]interface{}{
		"ready":     true,
		"timestamp": time.Now(),
		"accounts":  len(h.store.ListAccounts()),
		"users":     len(h.store.ListUsers()),
	}

	c.JSON(http.StatusOK, response)
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Description Check if the application is alive and responding
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now(),
	})
}
