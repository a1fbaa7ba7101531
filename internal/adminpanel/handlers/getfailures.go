package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/javi11/poolkeeper/internal/failurelog"
	"github.com/javi11/poolkeeper/internal/utils"
)

const (
	defaultFailuresLimit = 20
	maxFailuresLimit     = 500
)

func BuildGetFailuresHandler(fl failurelog.FailureLog) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultFailuresLimit)))
		if err != nil || limit <= 0 || limit > maxFailuresLimit {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}

		offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
		if err != nil || offset < 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
			return
		}

		var filters *failurelog.Filters
		if poolKey, target := c.Query("pool_key"), c.Query("target"); poolKey != "" || target != "" {
			filters = &failurelog.Filters{
				PoolKey: utils.Filter{Value: poolKey, Mode: utils.FilterModeStartWith},
				Target:  utils.Filter{Value: target, Mode: utils.FilterModeContains},
			}
		}

		result, err := fl.List(c, limit, offset, filters, nil)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
