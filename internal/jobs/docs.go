// Package jobs runs the scheduled delivery tasks on github.com/robfig/cron/v3.
//
// Each job calls a command handler, so a scheduled run behaves exactly like
// the same operation requested over HTTP:
//
//   - CourierAssignmentJob assigns the oldest order ready for delivery to the
//     first courier able to carry it. Runs every five seconds.
//   - CourierReleaseJob makes busy couriers available again once they hold no
//     active delivery. Runs once a minute.
//
// JobManager starts and stops both:
//
//	manager := jobs.NewJobManager(autoAssignHandler, releaseIdleHandler, logger)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// Runs of the same job never overlap and a panicking run is recovered.
// The assignment job treats "nothing to assign" as a normal outcome and
// logs only real failures.
package jobs
