// Package jobs provides scheduled background tasks for the parcel service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3:
//
// 1. StatsPushJob - periodically pushes the aggregate parcel counters to the
// agents audience over the realtime channel, so agent dashboards stay fresh
// without polling.
//
// 2. StaleParcelSweepJob - periodically flags parcels sitting in a
// non-terminal status past a threshold. The sweep only reports; operators
// decide whether a stuck parcel has actually failed.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(statsJob, sweepJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
