package usecases_test

import (
	"context"
	"sync"
	"time"

	"marketplace-service/internal/module/notification/models/entity"
	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/redis"

	"github.com/ThreeDotsLabs/watermill/message"
)

type memTx struct {
	mu sync.Mutex
}

func (m *memTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type mockPublisher struct {
	mu     sync.Mutex
	err    error
	topics map[string]int
}

func newMockPublisher() *mockPublisher {
	return &mockPublisher{topics: map[string]int{}}
}

func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.topics[topic] += len(messages)
	return nil
}

func (m *mockPublisher) Close() error {
	return nil
}

func (m *mockPublisher) count(topic string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.topics[topic]
}

// fakeLocker hands out the lock unless held is set; err overrides both.
type fakeLocker struct {
	mu   sync.Mutex
	held bool
	err  error
	// leaky always grants the lock, as if redis had lost it.
	leaky bool
}

type fakeLock struct {
	l *fakeLocker
}

func (f *fakeLock) Release(ctx context.Context) error {
	f.l.mu.Lock()
	defer f.l.mu.Unlock()
	f.l.held = false
	return nil
}

func (f *fakeLocker) Obtain(ctx context.Context, key string, ttl time.Duration) (redis.Lock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if f.held && !f.leaky {
		return nil, redis.ErrNotObtained
	}
	f.held = true
	return &fakeLock{l: f}, nil
}

// memRepo keeps scheduled rows and the inbox in memory. ClaimDue only hands
// out pending rows, which is what SKIP LOCKED plus the status filter give.
type memRepo struct {
	mu        sync.Mutex
	inbox     []entity.Notification
	scheduled []*entity.Scheduled
}

func (r *memRepo) InsertNotification(ctx context.Context, n entity.Notification) (entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n.ID = int64(len(r.inbox) + 1)
	n.CreatedAt = time.Now()
	r.inbox = append(r.inbox, n)
	return n, nil
}

func (r *memRepo) FindNotifications(ctx context.Context, userID int64, unreadOnly bool, limit int, offset int) ([]entity.Notification, error) {
	return nil, errors.InternalServerError("not implemented")
}

func (r *memRepo) CountUnread(ctx context.Context, userID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var c int64
	for _, n := range r.inbox {
		if n.UserID == userID && !n.IsRead {
			c++
		}
	}
	return c, nil
}

func (r *memRepo) MarkRead(ctx context.Context, userID int64, id int64) (entity.Notification, error) {
	return entity.Notification{}, errors.InternalServerError("not implemented")
}

func (r *memRepo) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	return 0, errors.InternalServerError("not implemented")
}

func (r *memRepo) InsertScheduled(ctx context.Context, s entity.Scheduled) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.scheduled {
		if existing.IdempotencyKey == s.IdempotencyKey {
			return false, nil
		}
	}
	s.ID = int64(len(r.scheduled) + 1)
	r.scheduled = append(r.scheduled, &s)
	return true, nil
}

func (r *memRepo) CancelScheduledByBooking(ctx context.Context, bookingID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, s := range r.scheduled {
		if s.BookingID.Valid && s.BookingID.Int64 == bookingID && s.Status == entity.ScheduledPending {
			s.Status = entity.ScheduledCancelled
			n++
		}
	}
	return n, nil
}

func (r *memRepo) ClaimDue(ctx context.Context, now time.Time, limit int) ([]entity.Scheduled, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Scheduled{}
	for _, s := range r.scheduled {
		if len(out) == limit {
			break
		}
		if s.Status == entity.ScheduledPending && !s.DueAt.After(now) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *memRepo) MarkSent(ctx context.Context, id int64, sentAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.scheduled {
		if s.ID == id {
			if s.Status != entity.ScheduledPending {
				return errors.Conflict("scheduled notification is no longer pending")
			}
			s.Status = entity.ScheduledSent
			s.Attempts++
			return nil
		}
	}
	return errors.NotFound("scheduled notification not found")
}

func (r *memRepo) delivered(userID int64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := 0
	for _, n := range r.inbox {
		if n.UserID == userID {
			c++
		}
	}
	return c
}
