package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/javi11/poolkeeper/pkg/resourcepool"
)

func BuildRetirePoolHandler(pm PoolMaintainer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := pm.Retire(resourcepool.Key(c.Param("key")))
		if !ok {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "pool not found"})
			return
		}

		// The pool is gone either way, close errors are only reported.
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"error": err.Error()})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
