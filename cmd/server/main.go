package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/cecobask/socialdeck-api/internal/application/services"
	"github.com/cecobask/socialdeck-api/internal/config"
	"github.com/cecobask/socialdeck-api/internal/db"
	"github.com/cecobask/socialdeck-api/internal/delivery/gql"
	"github.com/cecobask/socialdeck-api/internal/infrastructure"
	"github.com/cecobask/socialdeck-api/internal/infrastructure/mongodb"
	"github.com/cecobask/socialdeck-api/internal/messaging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables.")
	}
	cfg := config.Load()

	if err := db.Connect(cfg.MongoURI); err != nil {
		log.Fatal("❌ Failed to connect to MongoDB:", err)
	}
	defer db.Disconnect(context.Background())

	userRepo := mongodb.NewUserRepository(db.GetCollection(cfg.MongoDBName, "users"))
	postRepo := mongodb.NewPostRepository(db.GetCollection(cfg.MongoDBName, "posts"))
	if err := userRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatal("❌ Failed to create indexes:", err)
	}

	sessions := infrastructure.NewSessionStore(cfg)
	defer sessions.Close()

	publisher, err := messaging.Connect(cfg.NatsURL)
	if err != nil {
		log.Fatal("❌ Failed to connect to NATS:", err)
	}
	defer publisher.Close()

	jwtService := infrastructure.NewJWTService(cfg.JWTSecretKey, cfg.TokenTTL)
	rateLimiter := infrastructure.NewRateLimiter(cfg.RateLimitWindow, cfg.RateLimitMax)

	authService := services.NewAuthService(userRepo, jwtService, rateLimiter)
	userService := services.NewUserService(userRepo, postRepo)
	postService := services.NewPostService(postRepo, publisher)

	resolver := gql.NewResolver(authService, userService, postService, sessions, cfg)
	schema, err := gql.NewSchema(resolver)
	if err != nil {
		log.Fatal("❌ Failed to build schema:", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc:  func(origin string) (bool, error) { return true, nil },
		AllowCredentials: true,
	}))
	e.Use(gql.IdentityMiddleware(cfg, sessions, jwtService))

	graphqlHandler := gql.NewHTTPHandler(&schema)
	e.POST("/graphql", graphqlHandler)
	e.GET("/graphql", graphqlHandler)
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	go func() {
		log.Printf("🚀 Server ready at http://localhost:%s/graphql", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("❌ Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatal("❌ Shutdown error:", err)
	}
}
