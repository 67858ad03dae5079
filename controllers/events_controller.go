package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adunare/community-site-go/middleware"
	"github.com/adunare/community-site-go/models"
	"github.com/adunare/community-site-go/service"
	"github.com/adunare/community-site-go/utils"
)

// ---------------- LIST ----------------
func ListEvents(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		events, err := svc.ListEvents(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch events"})
			return
		}
		if events == nil {
			events = []models.Event{}
		}

		body, err := json.Marshal(events)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not encode events"})
			return
		}

		etag := utils.ETag(body)
		if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
			c.Status(http.StatusNotModified)
			return
		}
		c.Header("ETag", etag)

		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
	}
}

// ---------------- GET ----------------
func GetEvent(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		event, err := svc.GetEvent(ctx, c.Param("id"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch event"})
			return
		}

		c.JSON(http.StatusOK, event)
	}
}

// ---------------- CREATE / UPDATE ----------------
func SaveEvent(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.Event
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if id := c.Param("id"); id != "" {
			input.ID = id
		}
		if input.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		saved, err := svc.SaveEvent(ctx, input)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save event"})
			return
		}

		status := http.StatusOK
		if input.ID == "" {
			status = http.StatusCreated
		}
		c.JSON(status, saved)
	}
}

// ---------------- DELETE ----------------
func DeleteEvent(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := svc.DeleteEvent(ctx, c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete event"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "event deleted", "id": c.Param("id")})
	}
}

// ---------------- RSVP ----------------
func ToggleRSVP(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.ContextUserID)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		added, err := svc.ToggleRSVP(ctx, c.Param("id"), userID)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "event or user not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update RSVP"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"attending": added})
	}
}
