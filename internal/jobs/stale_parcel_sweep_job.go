package jobs

import (
	"context"
	"log/slog"
	"time"

	"parcelhub/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// StaleParcelSweepJob periodically reports parcels stuck in a non-terminal
// status past a threshold. It never mutates state; a stuck parcel is an
// operator call, not an automatic failure.
type StaleParcelSweepJob struct {
	handler   queries.GetStaleParcelsQueryHandler
	threshold time.Duration
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleParcelSweepJob creates the sweep job with the given schedule and
// staleness threshold.
func NewStaleParcelSweepJob(
	handler queries.GetStaleParcelsQueryHandler,
	threshold time.Duration,
	schedule string,
	logger *slog.Logger,
) *StaleParcelSweepJob {
	return &StaleParcelSweepJob{
		handler:   handler,
		threshold: threshold,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "stale_parcel_sweep_job"),
	}
}

// Start begins the periodic sweep.
func (j *StaleParcelSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetStaleParcelsQuery(j.threshold)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Stale parcel sweep misconfigured", "error", queryErr)
			return
		}

		stale, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale parcel sweep failed", "error", handleErr)
			return
		}

		for _, p := range stale {
			j.logger.WarnContext(ctx, "Parcel stuck in non-terminal status",
				"parcel", p.ID.String(),
				"status", p.Status,
				"updatedAt", p.UpdatedAt,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale parcel sweep started",
		"schedule", j.schedule, "threshold", j.threshold)
	return nil
}

// Stop stops the sweep job.
func (j *StaleParcelSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale parcel sweep stopped")
}
