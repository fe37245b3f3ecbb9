package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ashmitmorwal3/neighbourtalk/internal/cache"
	"github.com/ashmitmorwal3/neighbourtalk/internal/config"
	"github.com/ashmitmorwal3/neighbourtalk/internal/database"
	"github.com/ashmitmorwal3/neighbourtalk/internal/handlers"
	"github.com/ashmitmorwal3/neighbourtalk/internal/middleware"
	"github.com/ashmitmorwal3/neighbourtalk/internal/realtime"
	"github.com/ashmitmorwal3/neighbourtalk/internal/store"
)

func main() {
	config.Load()

	if config.AppEnv.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureUserIndexes(db); err != nil {
		log.Printf("user index warning: %v", err)
	}
	if err := database.EnsureAlertIndexes(db); err != nil {
		log.Printf("alert index warning: %v", err)
	}

	var alertCache store.AlertCache
	if config.AppEnv.RedisAddr != "" {
		redisCache, err := cache.New(config.AppEnv.RedisAddr)
		if err != nil {
			log.Printf("redis unavailable, alert cache disabled: %v", err)
		} else {
			defer redisCache.Close()
			alertCache = redisCache
			log.Println("Redis connected to:", config.AppEnv.RedisAddr)
		}
	}

	alerts := store.NewAlertStore(db, alertCache)

	hub := realtime.NewHub()
	go hub.Run()

	r := gin.Default()
	r.Use(middleware.CORS(config.AppEnv.ClientURL))

	r.GET("/api/health", handlers.Health(db))
	r.GET("/ws", handlers.AlertsWS(hub, config.AppEnv.ClientURL))

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", handlers.Register(db, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))
		auth.POST("/login", handlers.Login(db, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))

		protected := auth.Group("")
		protected.Use(middleware.UserAuth(config.AppEnv.JWTSecret))
		{
			protected.GET("/profile", handlers.GetProfile(db))
			protected.PUT("/profile", handlers.UpdateProfile(db))
			protected.PUT("/change-password", handlers.ChangePassword(db))
		}
	}

	api := r.Group("/api/alerts")
	{
		api.GET("", handlers.GetAlerts(alerts))
		api.GET("/nearby", handlers.GetNearbyAlerts(alerts))

		protected := api.Group("")
		protected.Use(middleware.UserAuth(config.AppEnv.JWTSecret))
		{
			protected.POST("", handlers.CreateAlert(db, alerts))
			protected.GET("/my-alerts", handlers.GetMyAlerts(alerts))
			protected.DELETE("/:id", handlers.DeleteAlert(alerts))
		}
	}

	r.Run(":" + config.AppEnv.Port)
}
