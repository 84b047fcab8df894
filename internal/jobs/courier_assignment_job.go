package jobs

import (
	"context"
	"errors"
	"log/slog"

	"deliverysystem/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AssignmentSchedule runs the assignment job every five seconds.
const AssignmentSchedule = "*/5 * * * * *"

// AutoAssignHandler is the use case behind CourierAssignmentJob.
type AutoAssignHandler interface {
	Handle(ctx context.Context, command commands.AutoAssignCourierCommand) error
}

// CourierAssignmentJob manages the scheduled assignment of couriers to orders.
type CourierAssignmentJob struct {
	handler  AutoAssignHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCourierAssignmentJob creates a new job for assigning couriers on schedule.
func NewCourierAssignmentJob(handler AutoAssignHandler, schedule string, logger *slog.Logger) *CourierAssignmentJob {
	logger = logger.With("component", "courier_assignment_job")
	return &CourierAssignmentJob{
		handler:  handler,
		schedule: schedule,
		cron:     newCron(logger),
		logger:   logger,
	}
}

// Run performs a single assignment attempt.
func (j *CourierAssignmentJob) Run(ctx context.Context) {
	cmd := commands.NewAutoAssignCourierCommand()

	err := j.handler.Handle(ctx, cmd)
	switch {
	case err == nil:
		j.logger.InfoContext(ctx, "Courier assigned to the oldest ready order")
	case errors.Is(err, commands.ErrNoOrderFound), errors.Is(err, commands.ErrNoFreeCouriersFound):
		// Nothing to do until orders or couriers change.
	default:
		j.logger.ErrorContext(ctx, "Courier assignment job failed", "error", err)
	}
}

// Start schedules Run and starts the scheduler.
func (j *CourierAssignmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier assignment job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running assignment to finish.
func (j *CourierAssignmentJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Courier assignment job stopped")
}
