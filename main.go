package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"taskmarket-server/config"
	"taskmarket-server/database"
	"taskmarket-server/middleware"
	"taskmarket-server/models"
	"taskmarket-server/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using system environment variables")
	}

	config.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if config.AppConfig.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if err := database.Initialize(); err != nil {
		logrus.WithError(err).Fatal("failed to initialize database")
	}

	if err := seedAdminUser(database.DB); err != nil {
		logrus.WithError(err).Fatal("failed to seed admin account")
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.CORSMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC(),
		})
	})

	api := router.Group("/api/v1")
	{
		authRoutes := api.Group("/auth")
		authRoutes.Use(middleware.AuthRateLimitMiddleware())
		routes.RegisterAuthRoutes(authRoutes)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/me", routes.GetProfile)

			routes.RegisterTaskRoutes(protected)
			routes.RegisterTaskRequestRoutes(protected)
			routes.RegisterRatingRoutes(protected)
			routes.RegisterWorkerRoutes(protected)

			adminRoutes := protected.Group("/admin")
			adminRoutes.Use(middleware.RequireRole(models.RoleAdmin))
			routes.RegisterAdminRoutes(adminRoutes)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = config.AppConfig.Server.Port
	}

	logrus.WithField("port", port).Info("server starting")
	if err := router.Run("0.0.0.0:" + port); err != nil {
		logrus.WithError(err).Fatal("failed to start server")
	}
}
