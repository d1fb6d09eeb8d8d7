package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/connectivity"
)

type networkRequest struct {
	IsOnline *bool `json:"isOnline" binding:"required"`
}

func getNetworkHandler(network *connectivity.Observer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"isOnline": network.IsOnline()})
	}
}

// setNetworkHandler records the connectivity state reported by the
// client. The server trusts the report; it does not probe.
func setNetworkHandler(network *connectivity.Observer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req networkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		network.Set(*req.IsOnline)
		c.JSON(http.StatusOK, gin.H{"isOnline": network.IsOnline()})
	}
}
