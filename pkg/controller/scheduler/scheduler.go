package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/javagrunt/javagrunt/pkg/domain/interfaces"
	"github.com/javagrunt/javagrunt/pkg/domain/types"
	"github.com/javagrunt/javagrunt/pkg/utils/errutil"
	"github.com/javagrunt/javagrunt/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/robfig/cron/v3"
)

// DefaultSchedule runs the advisor every four hours. The first field is seconds.
const DefaultSchedule = "0 0 */4 * * *"

// Scheduler runs advisor cycles on a cron schedule
type Scheduler struct {
	uc       interfaces.UseCase
	cron     *cron.Cron
	schedule string
}

// New parses schedule and registers the advisor job. It does not start the scheduler.
func New(uc interfaces.UseCase, schedule string) (*Scheduler, error) {
	x := &Scheduler{
		uc:       uc,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
	}

	if _, err := x.cron.AddFunc(schedule, x.tick); err != nil {
		return nil, goerr.Wrap(fmt.Errorf("%w: %w", types.ErrInvalidOption, err), "invalid schedule", goerr.V("schedule", schedule))
	}
	return x, nil
}

// Start runs the scheduler in its own goroutine
func (x *Scheduler) Start(ctx context.Context) {
	logging.From(ctx).Info("Starting advisor scheduler", slog.String("schedule", x.schedule))
	x.cron.Start()
}

// Stop prevents new runs and waits for a running one to finish or ctx to expire
func (x *Scheduler) Stop(ctx context.Context) {
	select {
	case <-x.cron.Stop().Done():
	case <-ctx.Done():
		logging.From(ctx).Warn("Advisor scheduler did not stop in time")
	}
}

func (x *Scheduler) tick() {
	ctx := context.Background()
	_, ctx = logging.CtxRequestID(ctx)
	x.run(ctx)
}

func (x *Scheduler) run(ctx context.Context) {
	logging.From(ctx).Info("Scheduled advisor cycle started")
	if err := x.uc.RunAdvisor(ctx); err != nil {
		if errors.Is(err, types.ErrAdvisorRunning) {
			logging.From(ctx).Warn("Skipping scheduled advisor cycle, another cycle is running")
			return
		}
		errutil.HandleError(ctx, "scheduled advisor cycle failed", err)
	}
}
