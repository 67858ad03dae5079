package main

import (
	"context"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adunare/community-site-go/config"
	"github.com/adunare/community-site-go/middleware"
	"github.com/adunare/community-site-go/routes"
	"github.com/adunare/community-site-go/service"
	"github.com/adunare/community-site-go/store"
	"github.com/adunare/community-site-go/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg.Server.Environment)
	defer logger.Sync()

	svc := buildService(cfg, logger)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(cors.New(corsConfig(cfg)))

	routes.SetupRoutes(r, cfg, svc)

	addr := ":" + cfg.Server.Port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// buildService selects the persistence backend once, here. A configured
// remote store that fails to initialize is logged and the local fallback
// takes over; there is always a working backend.
func buildService(cfg *config.Config, logger *zap.Logger) *service.Service {
	var (
		st           store.Store
		remoteActive bool
	)

	if cfg.Mongo.Configured() {
		mongoStore, err := store.Dial(context.Background(), cfg.Mongo.URI, cfg.Mongo.DBName)
		if err != nil {
			logger.Warn("remote store unavailable, using local fallback", zap.Error(err))
		} else {
			st = mongoStore
			remoteActive = true
			logger.Info("using remote document store", zap.String("db", cfg.Mongo.DBName))
		}
	}

	if st == nil {
		st = store.NewLocal(cfg.Local.DataFile, logger, service.DemoSeeds(logger))
		logger.Info("using local fallback store", zap.String("file", cfg.Local.DataFile))
	}

	opts := []service.Option{
		service.WithLogger(logger),
		service.WithRemoteActive(remoteActive),
		service.WithNotifier(utils.NewMailer(cfg.Email, logger)),
		service.WithContactRecipient(cfg.Email.AdminAddress),
		service.WithInstagramFeed(cfg.Instagram.FeedURL),
	}

	if cfg.Cloudinary.Configured() {
		uploader, err := utils.NewCloudinary(cfg.Cloudinary)
		if err != nil {
			logger.Warn("object storage unavailable, keeping inline media", zap.Error(err))
		} else {
			opts = append(opts, service.WithUploader(uploader))
		}
	}

	return service.New(st, opts...)
}

func newLogger(environment string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return logger
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")

	origins := strings.Split(cfg.Server.CORSAllowedOrigins, ",")
	if len(origins) == 1 && origins[0] == "*" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
