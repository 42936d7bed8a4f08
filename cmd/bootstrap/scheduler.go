package bootstrap

import (
	"context"
	"log/slog"

	"jobradar/internal/jobboard"
	"jobradar/internal/notify"
	"jobradar/internal/pkg/clock"
	"jobradar/internal/pkg/config"
	"jobradar/internal/scheduler"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewScheduler,
	),
	fx.Invoke(StartScheduler),
)

func NewScheduler(
	cfg config.Config,
	agg *jobboard.Aggregator,
	cleaner scheduler.PostingCleaner,
	dispatcher *notify.Dispatcher,
	clk clock.Clock,
	logger *slog.Logger,
) *scheduler.Scheduler {
	return scheduler.New(cfg.Scheduler, agg, cleaner, dispatcher, clk, logger)
}

func StartScheduler(lc fx.Lifecycle, sched *scheduler.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return sched.Start(context.Background())
		},
		OnStop: func(_ context.Context) error {
			sched.Stop()
			return nil
		},
	})
}
