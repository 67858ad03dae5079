package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adunare/community-site-go/service"
)

// ---------------- LIST ----------------
func ListContent(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		blocks, err := svc.ListContent(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch content"})
			return
		}

		c.JSON(http.StatusOK, blocks)
	}
}

// ---------------- UPDATE ----------------
func UpdateContent(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var fields map[string]any
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := svc.UpdateContent(ctx, c.Param("id"), fields); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "content block not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update content"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "content updated"})
	}
}
