package jobs

import (
	"context"
	"log/slog"

	"deliverysystem/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReleaseSchedule runs the release job at the start of every minute.
const ReleaseSchedule = "0 * * * * *"

// ReleaseIdleHandler is the use case behind CourierReleaseJob.
type ReleaseIdleHandler interface {
	Handle(ctx context.Context, command commands.ReleaseIdleCouriersCommand) error
}

// CourierReleaseJob periodically frees couriers that are marked busy but
// have no active delivery.
type CourierReleaseJob struct {
	handler  ReleaseIdleHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewCourierReleaseJob(handler ReleaseIdleHandler, schedule string, logger *slog.Logger) *CourierReleaseJob {
	logger = logger.With("component", "courier_release_job")
	return &CourierReleaseJob{
		handler:  handler,
		schedule: schedule,
		cron:     newCron(logger),
		logger:   logger,
	}
}

// Run performs a single release pass.
func (j *CourierReleaseJob) Run(ctx context.Context) {
	if err := j.handler.Handle(ctx, commands.NewReleaseIdleCouriersCommand()); err != nil {
		j.logger.ErrorContext(ctx, "Courier release job failed", "error", err)
	}
}

func (j *CourierReleaseJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Courier release job started", "schedule", j.schedule)
	return nil
}

func (j *CourierReleaseJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Courier release job stopped")
}
