package scheduler

import "context"

func (x *Scheduler) RunForTest(ctx context.Context) {
	x.run(ctx)
}

func (x *Scheduler) EntriesForTest() int {
	return len(x.cron.Entries())
}
