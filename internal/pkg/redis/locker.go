package redis

import (
	"context"
	"errors"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

// ErrNotObtained is returned when another holder owns the lock.
var ErrNotObtained = errors.New("lock not obtained")

type Lock interface {
	Release(ctx context.Context) error
}

type Locker interface {
	// Obtain tries once to take key for ttl. It does not wait for the holder.
	Obtain(ctx context.Context, key string, ttl time.Duration) (Lock, error)
}

type locker struct {
	rs *redsync.Redsync
}

func NewLocker(client *redis.Client) Locker {
	return &locker{rs: redsync.New(goredis.NewPool(client))}
}

func (l *locker) Obtain(ctx context.Context, key string, ttl time.Duration) (Lock, error) {
	mutex := l.rs.NewMutex(key, redsync.WithExpiry(ttl), redsync.WithTries(1))
	if err := mutex.LockContext(ctx); err != nil {
		var taken *redsync.ErrTaken
		if errors.Is(err, redsync.ErrFailed) || errors.As(err, &taken) {
			return nil, ErrNotObtained
		}
		return nil, err
	}
	return &lock{mutex: mutex}, nil
}

type lock struct {
	mutex *redsync.Mutex
}

func (l *lock) Release(ctx context.Context) error {
	_, err := l.mutex.UnlockContext(ctx)
	return err
}
