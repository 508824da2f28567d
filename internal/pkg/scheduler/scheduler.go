package scheduler

import (
	"context"
	"net/http"

	"limo-booking-service/config"

	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

const (
	monitoringRootPath = "/monitoring"
	defaultQueue       = "default"
)

type Scheduler struct {
	Log *otelzap.Logger
}

func redisOpt(cfg *config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: cfg.Addr(), Password: cfg.Password, DB: cfg.DB}
}

// StartMonitoring serves the asynqmon dashboard. It blocks.
func (s *Scheduler) StartMonitoring(cfg *config.RedisConfig, schedulerCfg *config.SchedulerConfig) {
	h := asynqmon.New(asynqmon.Options{
		RootPath:     monitoringRootPath,
		RedisConnOpt: redisOpt(cfg),
		ReadOnly:     true,
	})

	mux := http.NewServeMux()
	// net/http.ServeMux needs the trailing slash to match sub paths
	mux.Handle(h.RootPath()+"/", h)

	err := http.ListenAndServe(":"+schedulerCfg.MonitoringPort, mux)
	s.Log.Ctx(context.Background()).Error("error start monitoring scheduler", zap.Error(err))
}

func (s *Scheduler) InitClient(cfg *config.RedisConfig) *asynq.Client {
	return asynq.NewClient(redisOpt(cfg))
}

func (s *Scheduler) InitInspector(cfg *config.RedisConfig) *asynq.Inspector {
	return asynq.NewInspector(redisOpt(cfg))
}

// StartHandler runs the task server until it is shut down. taskTypes and
// handlerFunc are matched by index.
func (s *Scheduler) StartHandler(cfg *config.RedisConfig, schedulerCfg *config.SchedulerConfig, taskTypes []string, handlerFunc []func(ctx context.Context, t *asynq.Task) error) {
	srv := asynq.NewServer(
		redisOpt(cfg),
		asynq.Config{
			Concurrency: schedulerCfg.Concurrency,
			Queues: map[string]int{
				defaultQueue: 10,
			},
			Logger: s.Log.Logger.Sugar(),
		},
	)

	if err := srv.Run(NewServeMux(taskTypes, handlerFunc)); err != nil {
		s.Log.Ctx(context.Background()).Error("error start handler scheduler", zap.Error(err))
	}
}

func NewServeMux(taskTypes []string, handlerFunc []func(ctx context.Context, t *asynq.Task) error) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	for i, taskType := range taskTypes {
		// mux maps a type to a handler
		mux.HandleFunc(taskType, handlerFunc[i])
	}
	return mux
}
