package main

import (
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"github.com/hyperionhq/hyperion/internal/config"
	"github.com/hyperionhq/hyperion/internal/logger"
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

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.Redis.Addr()},
		asynq.Config{Concurrency: 10},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(worker.TypeMathAdd, worker.HandleAddTask)

	log.Info("worker started", "broker", cfg.Redis.Addr())
	if err := srv.Run(mux); err != nil {
		log.Fatal("worker", "error", err.Error())
	}
}
