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
func ListUsers(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		users, err := svc.ListUsers(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch users"})
			return
		}

		c.JSON(http.StatusOK, users)
	}
}

// ---------------- ME ----------------
func CurrentUser(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		user, err := svc.GetUser(ctx, c.GetString(middleware.ContextUserID))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// ---------------- GET ----------------
func GetUser(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		user, err := svc.GetUser(ctx, c.Param("id"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch user"})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

// ---------------- UPDATE ----------------
func UpdateUser(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var fields map[string]any
		if err := c.ShouldBindJSON(&fields); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Only admins may change roles.
		if _, ok := fields["role"]; ok && c.GetString(middleware.ContextRole) != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "only admins can change roles"})
			return
		}

		// Members may only edit their own profile.
		id := c.Param("id")
		if c.GetString(middleware.ContextRole) != "admin" && id != c.GetString(middleware.ContextUserID) {
			c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := svc.UpdateUser(ctx, id, fields); err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			case errors.Is(err, service.ErrInvalidRole):
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update user"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "user updated"})
	}
}

// ---------------- DELETE ----------------
func DeleteUser(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := svc.DeleteUser(ctx, c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "user deleted", "id": c.Param("id")})
	}
}
