package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-shamim-ahamed/vpn/internal/asndb"
)

type HealthHandler struct {
	DB        *asndb.DB
	StartTime time.Time
}

func NewHealthHandler(db *asndb.DB) *HealthHandler {
	return &HealthHandler{
		DB:        db,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	database := gin.H{"status": "unavailable"}
	if h.DB != nil {
		meta := h.DB.Metadata()
		database = gin.H{
			"status":     "loaded",
			"build_time": meta.BuildTime.Format(time.RFC3339),
			"node_count": meta.NodeCount,
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"runtime":      "go",
		"uptime":       time.Since(h.StartTime).String(),
		"asn_database": database,
		"memory": gin.H{
			"alloc_mb":       memStats.Alloc / 1024 / 1024,
			"sys_mb":         memStats.Sys / 1024 / 1024,
			"num_goroutines": runtime.NumGoroutine(),
		},
	})
}
