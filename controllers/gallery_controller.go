package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adunare/community-site-go/middleware"
	"github.com/adunare/community-site-go/models"
	"github.com/adunare/community-site-go/service"
)

// ---------------- LIST ----------------
// Public callers see approved media only; admins can ask for the moderation
// view with ?pending=1.
func ListGallery(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		includePending := c.Query("pending") == "1" &&
			c.GetString(middleware.ContextRole) == "admin"

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		items, err := svc.ListGallery(ctx, includePending)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch gallery"})
			return
		}

		c.JSON(http.StatusOK, items)
	}
}

// ---------------- CREATE ----------------
func CreateGalleryItem(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.GalleryItem
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.URL == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
			return
		}
		input.UploadedBy = c.GetString(middleware.ContextUserID)

		// Binary uploads can be large; allow time for object storage.
		ctx, cancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
		defer cancel()

		item, err := svc.AddGalleryItem(ctx, input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "could not add gallery item",
				"details": err.Error(),
			})
			return
		}

		c.JSON(http.StatusCreated, item)
	}
}

// ---------------- UPDATE ----------------
func UpdateGalleryItem(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var fields map[string]any
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := svc.UpdateGalleryItem(ctx, c.Param("id"), fields); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "gallery item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update gallery item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "gallery item updated"})
	}
}

// ---------------- DELETE ----------------
func DeleteGalleryItem(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := svc.DeleteGalleryItem(ctx, c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete gallery item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "gallery item deleted", "id": c.Param("id")})
	}
}

// ---------------- APPROVAL ----------------
func ToggleGalleryApproval(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := svc.ToggleGalleryApproval(ctx, c.Param("id")); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "gallery item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not toggle approval"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "approval toggled"})
	}
}

// ---------------- SYNC ----------------
func SyncInstagram(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		items, err := svc.SyncInstagram(ctx)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "could not fetch instagram feed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"imported": items})
	}
}
