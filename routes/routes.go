package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/adunare/community-site-go/config"
	"github.com/adunare/community-site-go/controllers"
	"github.com/adunare/community-site-go/middleware"
	"github.com/adunare/community-site-go/service"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config, svc *service.Service) {
	// public
	r.GET("/health", controllers.Health(svc))
	r.POST("/auth/register", controllers.Register(cfg, svc))
	r.POST("/auth/login", controllers.Login(cfg, svc))
	r.GET("/events", controllers.ListEvents(svc))
	r.GET("/events/:id", controllers.GetEvent(svc))
	r.GET("/gallery", middleware.OptionalAuth(cfg), controllers.ListGallery(svc))
	r.GET("/testimonials", controllers.ListTestimonials(svc))
	r.GET("/content", controllers.ListContent(svc))
	r.POST("/contact", controllers.SubmitContact(svc))

	// protected
	auth := middleware.AuthMiddleware(cfg)
	admin := middleware.RequireRole("admin")

	me := r.Group("/me")
	me.Use(auth)
	{
		me.GET("", controllers.CurrentUser(svc))
	}

	users := r.Group("/users")
	users.Use(auth)
	{
		users.GET("", admin, controllers.ListUsers(svc))
		users.GET("/:id", admin, controllers.GetUser(svc))
		users.PATCH("/:id", controllers.UpdateUser(svc))
		users.DELETE("/:id", admin, controllers.DeleteUser(svc))
	}

	events := r.Group("/events")
	events.Use(auth)
	{
		events.POST("", admin, controllers.SaveEvent(svc))
		events.PUT("/:id", admin, controllers.SaveEvent(svc))
		events.DELETE("/:id", admin, controllers.DeleteEvent(svc))
		events.POST("/:id/rsvp", controllers.ToggleRSVP(svc))
	}

	gallery := r.Group("/gallery")
	gallery.Use(auth)
	{
		gallery.POST("", controllers.CreateGalleryItem(svc))
		gallery.PATCH("/:id", admin, controllers.UpdateGalleryItem(svc))
		gallery.DELETE("/:id", admin, controllers.DeleteGalleryItem(svc))
		gallery.POST("/:id/approval", admin, controllers.ToggleGalleryApproval(svc))
		gallery.POST("/sync", admin, controllers.SyncInstagram(svc))
	}

	testimonials := r.Group("/testimonials")
	testimonials.Use(auth)
	{
		testimonials.POST("", controllers.CreateTestimonial(svc))
		testimonials.POST("/:id/approval", admin, controllers.ToggleTestimonialApproval(svc))
		testimonials.DELETE("/:id", admin, controllers.DeleteTestimonial(svc))
	}

	content := r.Group("/content")
	content.Use(auth)
	{
		content.PUT("/:id", admin, controllers.UpdateContent(svc))
	}
}
