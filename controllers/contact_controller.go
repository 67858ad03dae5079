package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adunare/community-site-go/service"
)

// ---------------- SUBMIT ----------------
func SubmitContact(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name    string `json:"name" binding:"required"`
			Email   string `json:"email" binding:"required,email"`
			Message string `json:"message" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		if _, err := svc.SubmitContact(ctx, input.Name, input.Email, input.Message); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not submit message"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "thanks, we got your message"})
	}
}
