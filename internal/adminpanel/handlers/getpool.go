package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/javi11/poolkeeper/internal/serverinfo"
	"github.com/javi11/poolkeeper/pkg/resourcepool"
)

func BuildGetPoolHandler(si serverinfo.ServerInfo) gin.HandlerFunc {
	return func(c *gin.Context) {
		info, ok := si.GetPoolInfo(resourcepool.Key(c.Param("key")))
		if !ok {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "pool not found"})
			return
		}

		c.JSON(http.StatusOK, info)
	}
}
