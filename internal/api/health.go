package api

import "github.com/gin-gonic/gin"

// HealthHandler provides liveness and readiness endpoints.
//
//   - /healthz: basic liveness probe, always 200.
//   - /readyz: readiness; degrades to 503 only when the optional scan-log
//     database is configured and unreachable. Without a database the
//     service is ready as soon as it is up.
type HealthHandler struct {
	dbPing func() error // nil when the scan log is disabled
}

// NewHealthHandler constructs a HealthHandler. dbPing is typically
// (*sql.DB).Ping, or nil when no database is configured.
func NewHealthHandler(dbPing func() error) *HealthHandler {
	return &HealthHandler{dbPing: dbPing}
}

// Register mounts /healthz and /readyz on the router.
func (h *HealthHandler) Register(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/readyz", func(c *gin.Context) {
		if h.dbPing != nil && h.dbPing() != nil {
			c.JSON(503, gin.H{"status": "degraded"})
			return
		}
		c.JSON(200, gin.H{"status": "ready"})
	})
}
