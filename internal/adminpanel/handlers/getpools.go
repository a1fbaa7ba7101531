package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/javi11/poolkeeper/internal/serverinfo"
)

type getPoolsResponse struct {
	Global serverinfo.GlobalInfo `json:"global"`
	Pools  []serverinfo.PoolInfo `json:"pools"`
}

func BuildGetPoolsHandler(si serverinfo.ServerInfo) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, getPoolsResponse{
			Global: si.GetGlobalInfo(),
			Pools:  si.GetPoolsInfo(),
		})
	}
}
