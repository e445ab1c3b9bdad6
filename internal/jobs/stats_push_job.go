package jobs

import (
	"context"
	"log/slog"

	"parcelhub/internal/core/application/usecases/queries"
	"parcelhub/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StatsPushJob periodically recomputes the headline parcel counters and
// pushes them to the agents audience.
type StatsPushJob struct {
	handler  queries.GetParcelStatsQueryHandler
	notifier ports.Notifier
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatsPushJob creates the stats push job with the given cron schedule.
func NewStatsPushJob(
	handler queries.GetParcelStatsQueryHandler,
	notifier ports.Notifier,
	schedule string,
	logger *slog.Logger,
) *StatsPushJob {
	return &StatsPushJob{
		handler:  handler,
		notifier: notifier,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stats_push_job"),
	}
}

// Start begins the periodic stats push.
func (j *StatsPushJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		stats, handleErr := j.handler.Handle(ctx, queries.NewGetParcelStatsQuery())
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stats push job failed", "error", handleErr)
			return
		}

		j.notifier.NotifyAgents(ports.EventStatsSnapshot, stats)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stats push job started", "schedule", j.schedule)
	return nil
}

// Stop stops the stats push job.
func (j *StatsPushJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stats push job stopped")
}
