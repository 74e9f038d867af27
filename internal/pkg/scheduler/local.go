package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartLocal runs fn in-process every interval. Singleton mode skips a tick
// while the previous run is still going.
func (s *Scheduler) StartLocal(ctx context.Context, interval time.Duration, name string, fn func(ctx context.Context) error) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if err := fn(ctx); err != nil {
				s.Log.Error(ctx, "error run "+name, err)
			}
		}),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	return sched, nil
}
