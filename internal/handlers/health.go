package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	ping func() error
}

// NewHealthHandler takes the store's ping so the check reflects database
// reachability.
func NewHealthHandler(ping func() error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

// Health godoc
// @Summary      Service and database health
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      503 {object} ErrorResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if h.ping != nil {
		if err := h.ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "database unreachable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
