package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gopkg.in/gin-gonic/gin.v1"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthCheckHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	err := c.MustGet("CMS_CLIENT").(Pinger).Ping(ctx)

	if ctx.Err() == context.DeadlineExceeded {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "timeout",
		})
		return
	}

	if err != nil {
		c.JSON(http.StatusFailedDependency, gin.H{
			"status": "error",
			"error":  fmt.Sprintf("CMS ping: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
