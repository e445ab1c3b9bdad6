package jobs

import "fmt"

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statsPushJob        *StatsPushJob
	staleParcelSweepJob *StaleParcelSweepJob
}

// NewJobManager creates a job manager owning the given jobs.
func NewJobManager(statsPushJob *StatsPushJob, staleParcelSweepJob *StaleParcelSweepJob) *JobManager {
	return &JobManager{
		statsPushJob:        statsPushJob,
		staleParcelSweepJob: staleParcelSweepJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.statsPushJob.Start(); err != nil {
		return fmt.Errorf("failed to start stats push job: %w", err)
	}

	if err := jm.staleParcelSweepJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.statsPushJob.Stop()
		return fmt.Errorf("failed to start stale parcel sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statsPushJob.Stop()
	jm.staleParcelSweepJob.Stop()
}
