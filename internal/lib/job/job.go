// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue: tasks are enqueued through
// asynq.Client and executed by worker goroutines run by asynq.Server.
// Failed tasks are retried with backoff according to per-task options.
package job

import (
	"github.com/chanakya-dev/campustore/internal/config"
	"github.com/chanakya-dev/campustore/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// JobService holds the Asynq client (enqueue side) and server (worker
// side), plus the dependencies task handlers need.
type JobService struct {
	// Client enqueues tasks into Redis.
	Client *asynq.Client

	server *asynq.Server
	logger *zerolog.Logger

	// emailClient is used by email task handlers. Set in InitHandlers.
	emailClient *email.Client
}

// NewJobService creates a JobService backed by the configured Redis.
//
// Queue weights split the 10 workers across priorities, so roughly 6
// slots serve critical tasks, 3 default, and 1 low.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// InitHandlers initializes the dependencies task handlers use. It must
// run before Start, otherwise email tasks fail on a nil client.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.emailClient = email.NewClient(cfg, logger)
}

// Start registers task handlers and starts the worker server.
// asynq.Server.Start runs workers in background goroutines and
// returns; it does not block.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)

	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}

	return nil
}

// Stop gracefully shuts down the worker server, waiting for in-flight
// tasks, then closes the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	j.Client.Close()
}
