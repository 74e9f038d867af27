package usecases_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"marketplace-service/internal/module/notification/mocks"
	"marketplace-service/internal/module/notification/models/entity"
	"marketplace-service/internal/module/notification/models/request"
	"marketplace-service/internal/module/notification/models/response"
	"marketplace-service/internal/module/notification/usecases"
	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/log"
	log_internal "marketplace-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill-amqp/pkg/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	uc        usecases.Usecase
	repoMock  *mocks.Repositories
	logMock   log.Logger
	publisher *mockPublisher
	locker    *fakeLocker
)

func setup() {
	repoMock = new(mocks.Repositories)
	publisher = newMockPublisher()
	locker = &fakeLocker{}
	logMock = log_internal.GetLogger()
	uc = usecases.New(repoMock, &memTx{}, publisher, locker, logMock, usecases.Options{SweepBatch: 2, SweepLockTTL: time.Second})
}

func teardown() {
	repoMock = nil
	publisher = nil
	locker = nil
	uc = nil
}

func TestEmit(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	req := request.Emit{UserID: 7, Title: "New booking", Message: `You have a new booking request for "Plumbing"`, Type: entity.TypeBooking}

	t.Run("success", func(t *testing.T) {
		repoMock.On("InsertNotification", ctx, entity.Notification{UserID: 7, Title: req.Title, Message: req.Message, Type: req.Type}).
			Return(entity.Notification{ID: 1, UserID: 7, Title: req.Title, Message: req.Message, Type: req.Type, CreatedAt: time.Now()}, nil).Once()

		resp, err := uc.Emit(ctx, req)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.False(t, resp.Queued)
		assert.Equal(t, 1, publisher.count(usecases.TopicEvents))
	})

	t.Run("insert failure goes to retry queue", func(t *testing.T) {
		repoMock.On("InsertNotification", ctx, mock.Anything).
			Return(entity.Notification{}, errors.InternalServerError("error insert notification")).Once()

		resp, err := uc.Emit(ctx, req)
		assert.NoError(t, err)
		assert.True(t, resp.Queued)
		assert.Equal(t, 1, publisher.count(usecases.TopicRetry))
	})

	t.Run("insert and queue failure", func(t *testing.T) {
		publisher.err = fmt.Errorf("broker down")
		defer func() { publisher.err = nil }()

		repoMock.On("InsertNotification", ctx, mock.Anything).
			Return(entity.Notification{}, errors.InternalServerError("error insert notification")).Once()

		_, err := uc.Emit(ctx, req)
		assert.Equal(t, errors.InternalServerError("error insert notification"), err)
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := uc.Emit(ctx, request.Emit{UserID: 7, Message: "x", Type: "booking"})
		assert.True(t, errors.Is(err, errors.KindValidation))
	})
}

func TestEmitWithoutBroker(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	req := request.Emit{UserID: 1, Title: "Booking accepted", Message: "Your booking was accepted", Type: entity.TypeBooking}

	// the broker constructor failed and handed back a nil *amqp.Publisher
	var broker *amqp.Publisher
	uc = usecases.New(repoMock, &memTx{}, broker, locker, logMock, usecases.Options{})

	t.Run("stored notification survives missing broker", func(t *testing.T) {
		repoMock.On("InsertNotification", ctx, entity.Notification{UserID: 1, Title: req.Title, Message: req.Message, Type: req.Type}).
			Return(entity.Notification{ID: 3, UserID: 1, Title: req.Title, Message: req.Message, Type: req.Type, CreatedAt: time.Now()}, nil).Once()

		var err error
		assert.NotPanics(t, func() {
			var resp response.Notification
			resp, err = uc.Emit(ctx, req)
			assert.Equal(t, int64(3), resp.ID)
		})
		assert.NoError(t, err)
	})

	t.Run("insert failure cannot be queued", func(t *testing.T) {
		repoMock.On("InsertNotification", ctx, mock.Anything).
			Return(entity.Notification{}, errors.InternalServerError("error insert notification")).Once()

		var err error
		assert.NotPanics(t, func() {
			_, err = uc.Emit(ctx, req)
		})
		assert.Equal(t, errors.InternalServerError("error insert notification"), err)
	})
}

func TestConsumeRetry(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	req := request.Emit{UserID: 7, Title: "Booking confirmed", Message: "ok", Type: entity.TypeBooking}

	repoMock.On("InsertNotification", ctx, mock.Anything).Return(entity.Notification{}, errors.InternalServerError("still down")).Once()
	assert.Error(t, uc.ConsumeRetry(ctx, req))
	assert.Equal(t, 0, publisher.count(usecases.TopicRetry))

	repoMock.On("InsertNotification", ctx, mock.Anything).Return(entity.Notification{ID: 3, UserID: 7}, nil).Once()
	assert.NoError(t, uc.ConsumeRetry(ctx, req))
	assert.Equal(t, 1, publisher.count(usecases.TopicEvents))
}

func TestSchedule(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	due := time.Date(2024, 5, 31, 10, 0, 0, 0, time.UTC)
	req := request.Schedule{
		Key:       "booking:1:reminder",
		UserID:    7,
		BookingID: 1,
		Title:     "Upcoming booking",
		Message:   "Reminder",
		Type:      entity.TypeReminder,
		DueAt:     due,
	}

	t.Run("created", func(t *testing.T) {
		repoMock.On("InsertScheduled", ctx, mock.MatchedBy(func(s entity.Scheduled) bool {
			return s.IdempotencyKey == req.Key && s.BookingID.Valid && s.BookingID.Int64 == 1 &&
				s.DueAt.Equal(due) && s.Status == entity.ScheduledPending
		})).Return(true, nil).Once()

		created, err := uc.Schedule(ctx, req)
		assert.NoError(t, err)
		assert.True(t, created)
	})

	t.Run("same key twice", func(t *testing.T) {
		repoMock.On("InsertScheduled", ctx, mock.Anything).Return(false, nil).Once()

		created, err := uc.Schedule(ctx, req)
		assert.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("missing key", func(t *testing.T) {
		bad := req
		bad.Key = ""
		_, err := uc.Schedule(ctx, bad)
		assert.True(t, errors.Is(err, errors.KindValidation))
	})
}

func TestSweep(t *testing.T) {
	ctx := context.Background()
	row := func(id int64) entity.Scheduled {
		return entity.Scheduled{ID: id, UserID: 7, Title: "Upcoming booking", Message: "m", Type: entity.TypeReminder, Status: entity.ScheduledPending}
	}

	t.Run("lock held elsewhere", func(t *testing.T) {
		setup()
		defer teardown()
		locker.held = true

		resp, err := uc.Sweep(ctx)
		assert.NoError(t, err)
		assert.True(t, resp.Skipped)
		repoMock.AssertNotCalled(t, "ClaimDue", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("delivers until a short batch", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("ClaimDue", ctx, mock.Anything, 2).Return([]entity.Scheduled{row(1), row(2)}, nil).Once()
		repoMock.On("ClaimDue", ctx, mock.Anything, 2).Return([]entity.Scheduled{row(3)}, nil).Once()
		repoMock.On("InsertNotification", ctx, mock.Anything).Return(entity.Notification{ID: 10, UserID: 7}, nil).Times(3)
		repoMock.On("MarkSent", ctx, mock.Anything, mock.Anything).Return(nil).Times(3)

		resp, err := uc.Sweep(ctx)
		assert.NoError(t, err)
		assert.Equal(t, 3, resp.Delivered)
		assert.False(t, locker.held)
		assert.Equal(t, 3, publisher.count(usecases.TopicEvents))
		repoMock.AssertExpectations(t)
	})

	t.Run("failed batch is reported and left due", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("ClaimDue", ctx, mock.Anything, 2).Return([]entity.Scheduled{row(1)}, nil).Once()
		repoMock.On("InsertNotification", ctx, mock.Anything).Return(entity.Notification{}, errors.InternalServerError("error insert notification")).Once()

		resp, err := uc.Sweep(ctx)
		assert.Error(t, err)
		assert.Equal(t, 0, resp.Delivered)
		repoMock.AssertNotCalled(t, "MarkSent", mock.Anything, mock.Anything, mock.Anything)
		assert.Equal(t, 0, publisher.count(usecases.TopicEvents))
	})

	t.Run("redis unavailable still sweeps", func(t *testing.T) {
		setup()
		defer teardown()
		locker.err = fmt.Errorf("dial tcp: connection refused")

		repoMock.On("ClaimDue", ctx, mock.Anything, 2).Return([]entity.Scheduled{}, nil).Once()

		resp, err := uc.Sweep(ctx)
		assert.NoError(t, err)
		assert.False(t, resp.Skipped)
		repoMock.AssertExpectations(t)
	})
}

// Overlapping sweeps with a lock that does not exclude anyone still deliver
// each due row exactly once.
func TestSweepOverlapDoesNotDoubleSend(t *testing.T) {
	repo := &memRepo{}
	l := &fakeLocker{leaky: true}
	pub := newMockPublisher()
	u := usecases.New(repo, &memTx{}, pub, l, log_internal.GetLogger(), usecases.Options{SweepBatch: 3, SweepLockTTL: time.Second})

	ctx := context.Background()
	past := time.Now().Add(-time.Minute)
	for i := 1; i <= 10; i++ {
		created, err := u.Schedule(ctx, request.Schedule{
			Key: fmt.Sprintf("booking:%d:reminder", i), UserID: 7, BookingID: int64(i),
			Title: "Upcoming booking", Message: "m", Type: entity.TypeReminder, DueAt: past,
		})
		require.NoError(t, err)
		require.True(t, created)
	}
	_, err := u.Schedule(ctx, request.Schedule{
		Key: "booking:99:reminder", UserID: 7, BookingID: 99,
		Title: "Upcoming booking", Message: "later", Type: entity.TypeReminder, DueAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	total := 0
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := u.Sweep(ctx)
			assert.NoError(t, err)
			mu.Lock()
			total += resp.Delivered
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, total)
	assert.Equal(t, 10, repo.delivered(7))

	// a later sweep finds nothing new
	resp, err := u.Sweep(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, resp.Delivered)
}

func TestCancelScheduled(t *testing.T) {
	repo := &memRepo{}
	u := usecases.New(repo, &memTx{}, newMockPublisher(), &fakeLocker{}, log_internal.GetLogger(), usecases.Options{})
	ctx := context.Background()

	_, err := u.Schedule(ctx, request.Schedule{
		Key: "booking:5:reminder", UserID: 7, BookingID: 5,
		Title: "Upcoming booking", Message: "m", Type: entity.TypeReminder, DueAt: time.Now().Add(-time.Minute),
	})
	require.NoError(t, err)

	n, err := u.CancelScheduled(ctx, 5)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	resp, err := u.Sweep(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, resp.Delivered)
	assert.Equal(t, 0, repo.delivered(7))
}

func TestUnreadCount(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	repoMock.On("CountUnread", ctx, int64(7)).Return(int64(4), nil).Once()

	resp, err := uc.UnreadCount(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, int64(4), resp.Count)
}

func TestMarkRead(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	repoMock.On("MarkRead", ctx, int64(7), int64(99)).Return(entity.Notification{}, errors.NotFound("notification not found")).Once()

	_, err := uc.MarkRead(ctx, 7, 99)
	assert.Equal(t, errors.NotFound("notification not found"), err)
}
