package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/thereayou/portfolio-backend/internal/database"
	"github.com/thereayou/portfolio-backend/internal/handlers"
	"github.com/thereayou/portfolio-backend/internal/session"
)

const sessionTTL = 30 * 24 * time.Hour

type Server struct {
	Router   *gin.Engine
	DB       *database.Database
	Redis    *redis.Client
	Sessions *session.Manager
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			logrus.Info(".env not found, using environment variables")
		}
	}

	db, err := database.Connect()
	if err != nil {
		logrus.Fatalf("Postgres connect failed: %v", err)
	}
	logrus.Info("Postgres connected")

	redisOpts, err := redis.ParseURL(os.Getenv("REDIS_URL"))
	if err != nil {
		logrus.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logrus.Fatalf("Redis connect failed: %v", err)
	}
	logrus.Info("Redis connected")

	// absence of the secret is a startup error, never a runtime fallback
	sessions, err := session.NewManager(rdb, os.Getenv("SESSION_SECRET"), sessionTTL)
	if err != nil {
		logrus.Fatalf("session manager: %v", err)
	}

	cookieSecure := os.Getenv("COOKIE_SECURE") == "true"
	h := handlers.New(db, sessions, cookieSecure)

	router := gin.Default()
	router.Use(corsMiddleware())
	h.Register(router, sessions)

	return &Server{
		Router:   router,
		DB:       db,
		Redis:    rdb,
		Sessions: sessions,
	}
}

func corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if origin := os.Getenv("CORS_ORIGIN"); origin != "" {
		cfg.AllowOrigins = []string{origin}
	} else {
		cfg.AllowOrigins = []string{"http://localhost:3000"}
	}
	cfg.AllowCredentials = true
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	return cors.New(cfg)
}

func (s *Server) Run() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.Infof("Server starting on port %s", port)
	if err := s.Router.Run(":" + port); err != nil {
		logrus.Fatalf("Server run error: %v", err)
	}
}
