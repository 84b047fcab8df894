package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	courierAssignmentJob *CourierAssignmentJob
	courierReleaseJob    *CourierReleaseJob
}

// NewJobManager creates a job manager running both jobs on their default schedules.
func NewJobManager(
	autoAssignHandler AutoAssignHandler,
	releaseIdleHandler ReleaseIdleHandler,
	logger *slog.Logger,
) *JobManager {
	return NewJobManagerWithSchedules(autoAssignHandler, AssignmentSchedule, releaseIdleHandler, ReleaseSchedule, logger)
}

// NewJobManagerWithSchedules creates a job manager with explicit cron
// expressions (seconds field first).
func NewJobManagerWithSchedules(
	autoAssignHandler AutoAssignHandler,
	assignmentSchedule string,
	releaseIdleHandler ReleaseIdleHandler,
	releaseSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		courierAssignmentJob: NewCourierAssignmentJob(autoAssignHandler, assignmentSchedule, logger),
		courierReleaseJob:    NewCourierReleaseJob(releaseIdleHandler, releaseSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.courierAssignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start courier assignment job: %w", err)
	}

	if err := jm.courierReleaseJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.courierAssignmentJob.Stop()
		return fmt.Errorf("failed to start courier release job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.courierReleaseJob.Stop()
	jm.courierAssignmentJob.Stop()
}
