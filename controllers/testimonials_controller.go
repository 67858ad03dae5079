package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adunare/community-site-go/middleware"
	"github.com/adunare/community-site-go/service"
)

// ---------------- LIST ----------------
func ListTestimonials(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		includePending := c.Query("pending") == "1" &&
			c.GetString(middleware.ContextRole) == "admin"

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		items, err := svc.ListTestimonials(ctx, includePending)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch testimonials"})
			return
		}

		c.JSON(http.StatusOK, items)
	}
}

// ---------------- CREATE ----------------
func CreateTestimonial(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Author string `json:"author" binding:"required"`
			Role   string `json:"role"`
			Text   string `json:"text" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		t, err := svc.AddTestimonial(ctx, input.Author, input.Role, input.Text)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not add testimonial"})
			return
		}

		c.JSON(http.StatusCreated, t)
	}
}

// ---------------- APPROVAL ----------------
func ToggleTestimonialApproval(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := svc.ToggleTestimonialApproval(ctx, c.Param("id")); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "testimonial not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not toggle approval"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "approval toggled"})
	}
}

// ---------------- DELETE ----------------
func DeleteTestimonial(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := svc.DeleteTestimonial(ctx, c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete testimonial"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "testimonial deleted", "id": c.Param("id")})
	}
}
