package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adunare/community-site-go/service"
)

// Health reports liveness and which persistence backend is in use.
func Health(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		backend := "local"
		if svc.IsRemoteActive() {
			backend = "remote"
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": backend})
	}
}
