package usecases_test

import (
	"context"
	"sync"
	"time"

	"marketplace-service/internal/pkg/redis"
)

type memTx struct {
	mu sync.Mutex
}

func (m *memTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fakeLocker struct {
	mu       sync.Mutex
	held     map[string]bool
	err      error
	released int
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: map[string]bool{}}
}

type fakeLock struct {
	l   *fakeLocker
	key string
}

func (f *fakeLock) Release(ctx context.Context) error {
	f.l.mu.Lock()
	defer f.l.mu.Unlock()
	delete(f.l.held, f.key)
	f.l.released++
	return nil
}

func (f *fakeLocker) Obtain(ctx context.Context, key string, ttl time.Duration) (redis.Lock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if f.held[key] {
		return nil, redis.ErrNotObtained
	}
	f.held[key] = true
	return &fakeLock{l: f, key: key}, nil
}
