package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func BuildExpirePoolsHandler(pm PoolMaintainer) gin.HandlerFunc {
	return func(c *gin.Context) {
		maxIdle, err := time.ParseDuration(c.DefaultQuery("max_idle", "0s"))
		if err != nil || maxIdle < 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid max_idle"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"discarded": pm.ExpireIdle(maxIdle)})
	}
}
