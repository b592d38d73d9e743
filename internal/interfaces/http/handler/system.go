package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SystemHandler handles health and readiness probes
type SystemHandler struct {
	BaseHandler
	db        *gorm.DB
	startedAt time.Time
	version   string
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(db *gorm.DB, version string) *SystemHandler {
	return &SystemHandler{
		db:        db,
		startedAt: time.Now(),
		version:   version,
	}
}

// Health is the liveness probe; it answers as long as the process runs
func (h *SystemHandler) Health(c *gin.Context) {
	h.Success(c, gin.H{
		"status":  "ok",
		"version": h.version,
		"uptime":  time.Since(h.startedAt).Round(time.Second).String(),
	})
}

// Ready is the readiness probe; it fails while the database is unreachable
func (h *SystemHandler) Ready(c *gin.Context) {
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unavailable",
				"reason": "database unreachable",
			})
			return
		}
	}

	h.Success(c, gin.H{"status": "ready"})
}
