package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/hyperionhq/hyperion/internal/auth"
	"github.com/hyperionhq/hyperion/internal/config"
	"github.com/hyperionhq/hyperion/internal/db"
	"github.com/hyperionhq/hyperion/internal/handlers"
	"github.com/hyperionhq/hyperion/internal/logger"
	"github.com/hyperionhq/hyperion/internal/middleware"
	"github.com/hyperionhq/hyperion/internal/store/postgres"
	"github.com/hyperionhq/hyperion/internal/worker"
)

func main() {
	log := logger.New(0)

	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found")
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatal("config", "error", err.Error())
	}

	dbConn, err := db.Connect(cfg.Database.DSN())
	if err != nil {
		log.Fatal("db connect", "error", err.Error())
	}
	defer dbConn.Close()

	tokens, err := auth.NewTokenManager(cfg.Auth.SecretKey, cfg.Auth.Algorithm)
	if err != nil {
		log.Fatal("token manager", "error", err.Error())
	}

	userStore := postgres.NewUserRepository(dbConn)
	authService := auth.NewService(userStore, auth.NewHasher(), tokens, log)

	queue := worker.NewQueue(cfg.Redis.Addr())
	defer queue.Close()

	h := handlers.NewHandler(dbConn, authService, userStore, queue)

	r := chi.NewRouter()

	// Public
	r.Get("/healthz", h.Health)
	r.Post("/token", h.Auth.Token)
	r.Post("/register", h.Auth.Register)
	r.Get("/math", h.Math.Math)

	// Protected
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(authService))

		r.Get("/users", h.Users.GetUsers)
		r.Get("/users/{id}", h.Users.GetUserByID)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen", "error", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", "error", err.Error())
	}

	log.Info("server exited")
}
