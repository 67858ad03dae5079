package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adunare/community-site-go/config"
	"github.com/adunare/community-site-go/middleware"
	"github.com/adunare/community-site-go/service"
)

// ---------------- REGISTER ----------------
func Register(cfg *config.Config, svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name     string `json:"name"`
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required,min=8"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		principal, err := svc.SignUp(ctx, input.Email, input.Password, input.Name)
		if err != nil {
			if errors.Is(err, service.ErrEmailTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not register"})
			return
		}

		user, err := svc.ResolveIdentity(ctx, principal)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create profile"})
			return
		}

		token, err := middleware.GenerateToken(cfg.JWT, user.ID, string(user.Role))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
	}
}

// ---------------- LOGIN ----------------
func Login(cfg *config.Config, svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		principal, err := svc.SignIn(ctx, input.Email, input.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not sign in"})
			return
		}

		user, err := svc.ResolveIdentity(ctx, principal)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not resolve profile"})
			return
		}

		token, err := middleware.GenerateToken(cfg.JWT, user.ID, string(user.Role))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}
