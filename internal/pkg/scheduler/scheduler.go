package scheduler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"marketplace-service/config"
	"marketplace-service/internal/pkg/log"

	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
)

const (
	TypeNotificationSweep = "notification:sweep"
)

type Scheduler struct {
	Log log.Logger
}

func redisOpt(cfg *config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
}

func (s *Scheduler) StartMonitoring(cfg *config.RedisConfig, port string) {
	ctx := context.Background()
	h := asynqmon.New(asynqmon.Options{
		RootPath:     "/monitoring",
		RedisConnOpt: redisOpt(cfg),
	})

	mux := http.NewServeMux()
	mux.Handle(h.RootPath()+"/", h)

	err := http.ListenAndServe(":"+port, mux)
	s.Log.Error(ctx, "error start monitoring scheduler", err)
}

// StartPeriodic enqueues taskType every interval. Unique keeps a slow run from
// piling up duplicates in the queue.
func (s *Scheduler) StartPeriodic(cfg *config.RedisConfig, interval time.Duration, taskType string) {
	ctx := context.Background()
	scheduler := asynq.NewScheduler(redisOpt(cfg), &asynq.SchedulerOpts{Location: time.UTC})

	_, err := scheduler.Register(
		fmt.Sprintf("@every %s", interval),
		asynq.NewTask(taskType, nil),
		asynq.Unique(interval),
		asynq.MaxRetry(0),
	)
	if err != nil {
		s.Log.Error(ctx, "error register periodic task", err)
		return
	}

	if err := scheduler.Run(); err != nil {
		s.Log.Error(ctx, "error start periodic scheduler", err)
	}
}

func (s *Scheduler) StartHandler(cfg *config.RedisConfig, concurrency int, taskTypes []string, handlerFunc []func(ctx context.Context, t *asynq.Task) error) {
	ctx := context.Background()
	srv := asynq.NewServer(
		redisOpt(cfg),
		asynq.Config{
			Concurrency: concurrency,
			Queues: map[string]int{
				"default": 10,
			},
		},
	)
	mux := asynq.NewServeMux()

	for i, taskType := range taskTypes {
		mux = s.registerHandlers(mux, taskType, handlerFunc[i])
	}

	if err := srv.Run(mux); err != nil {
		s.Log.Error(ctx, "error start handler scheduler", err)
	}
}

func (s *Scheduler) registerHandlers(mux *asynq.ServeMux, typeTask string, handlerFunc func(ctx context.Context, t *asynq.Task) error) *asynq.ServeMux {
	mux.HandleFunc(typeTask, handlerFunc)
	return mux
}
