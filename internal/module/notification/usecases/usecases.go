package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"strings"
	"time"

	"marketplace-service/internal/module/notification/models/entity"
	"marketplace-service/internal/module/notification/models/request"
	"marketplace-service/internal/module/notification/models/response"
	"marketplace-service/internal/module/notification/repositories"
	"marketplace-service/internal/pkg/database"
	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/log"
	"marketplace-service/internal/pkg/redis"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"go.elastic.co/apm"
)

const (
	TopicEvents   = "notification_events"
	TopicRetry    = "notification_retry"
	TopicPoisoned = "notification_poisoned"

	sweepLockKey = "lock:notification:sweep"
	// sweepMaxBatches bounds one run; whatever is left stays due for the next tick.
	sweepMaxBatches = 50
)

type Options struct {
	SweepBatch   int
	SweepLockTTL time.Duration
}

type usecase struct {
	repo    repositories.Repositories
	tx      database.Transactor
	publish message.Publisher
	locker  redis.Locker
	log     log.Logger
	opts    Options
	now     func() time.Time
}

type Usecase interface {
	// dispatch
	Emit(ctx context.Context, req request.Emit) (response.Notification, error)
	ConsumeRetry(ctx context.Context, req request.Emit) error
	Schedule(ctx context.Context, req request.Schedule) (bool, error)
	CancelScheduled(ctx context.Context, bookingID int64) (int64, error)
	Sweep(ctx context.Context) (response.Sweep, error)
	// inbox
	List(ctx context.Context, userID int64, req request.List) ([]response.Notification, error)
	MarkRead(ctx context.Context, userID int64, id int64) (response.Notification, error)
	MarkAllRead(ctx context.Context, userID int64) (response.ReadAll, error)
	UnreadCount(ctx context.Context, userID int64) (response.UnreadCount, error)
}

// isNilPublisher catches a nil broker pointer wrapped in a non-nil interface.
func isNilPublisher(p message.Publisher) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func New(repo repositories.Repositories, tx database.Transactor, publish message.Publisher, locker redis.Locker, log log.Logger, opts Options) Usecase {
	if opts.SweepBatch <= 0 {
		opts.SweepBatch = 100
	}
	if opts.SweepLockTTL <= 0 {
		opts.SweepLockTTL = 55 * time.Second
	}
	if isNilPublisher(publish) {
		publish = nil
	}
	return &usecase{
		repo:    repo,
		tx:      tx,
		publish: publish,
		locker:  locker,
		log:     log,
		opts:    opts,
		now:     time.Now,
	}
}

func validateEmit(req request.Emit) error {
	if req.UserID <= 0 {
		return errors.ValidationError("user_id: required")
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Message) == "" || req.Type == "" {
		return errors.ValidationError("title, message and type are required")
	}
	return nil
}

// Emit appends an unread notification. When the insert fails the request is
// handed to the retry queue and reported as queued; only a failure of both is
// returned to the caller.
func (u *usecase) Emit(ctx context.Context, req request.Emit) (response.Notification, error) {
	span, ctx := apm.StartSpan(ctx, "notification.Emit", "usecase")
	defer span.End()

	if err := validateEmit(req); err != nil {
		return response.Notification{}, err
	}

	n, err := u.repo.InsertNotification(ctx, entity.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
	})
	if err != nil {
		u.log.Error(ctx, fmt.Sprintf("error emit notification to user %d, queueing retry", req.UserID), err)
		if qerr := u.publishJSON(TopicRetry, req); qerr != nil {
			u.log.Error(ctx, "error queue notification retry", qerr)
			return response.Notification{}, err
		}
		return response.Notification{UserID: req.UserID, Title: req.Title, Message: req.Message, Type: req.Type, Queued: true}, nil
	}

	u.announce(ctx, n)
	return toResponse(n), nil
}

// ConsumeRetry is the retry queue's handler. Errors go back to the router so
// its retry and poison middleware decide what happens next.
func (u *usecase) ConsumeRetry(ctx context.Context, req request.Emit) error {
	if err := validateEmit(req); err != nil {
		return err
	}

	n, err := u.repo.InsertNotification(ctx, entity.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
	})
	if err != nil {
		return err
	}

	u.announce(ctx, n)
	return nil
}

func (u *usecase) Schedule(ctx context.Context, req request.Schedule) (bool, error) {
	span, ctx := apm.StartSpan(ctx, "notification.Schedule", "usecase")
	defer span.End()

	if req.Key == "" {
		return false, errors.ValidationError("key: required")
	}
	if err := validateEmit(request.Emit{UserID: req.UserID, Title: req.Title, Message: req.Message, Type: req.Type}); err != nil {
		return false, err
	}
	if req.DueAt.IsZero() {
		return false, errors.ValidationError("due_at: required")
	}

	s := entity.Scheduled{
		IdempotencyKey: req.Key,
		UserID:         req.UserID,
		Title:          req.Title,
		Message:        req.Message,
		Type:           req.Type,
		DueAt:          req.DueAt.UTC(),
		Status:         entity.ScheduledPending,
	}
	if req.BookingID > 0 {
		s.BookingID = sql.NullInt64{Int64: req.BookingID, Valid: true}
	}

	created, err := u.repo.InsertScheduled(ctx, s)
	if err != nil {
		return false, err
	}
	if !created {
		u.log.Info(ctx, fmt.Sprintf("scheduled notification %s already exists", req.Key))
	}
	return created, nil
}

func (u *usecase) CancelScheduled(ctx context.Context, bookingID int64) (int64, error) {
	span, ctx := apm.StartSpan(ctx, "notification.CancelScheduled", "usecase")
	defer span.End()

	return u.repo.CancelScheduledByBooking(ctx, bookingID)
}

// Sweep delivers every scheduled notification that is due. Overlapping runs
// are kept apart twice: by a redis lock that makes a second run bail out, and
// by SKIP LOCKED row claims in case the lock is lost mid-run. A skipped or
// failed run leaves the rows pending for the next one.
func (u *usecase) Sweep(ctx context.Context) (response.Sweep, error) {
	span, ctx := apm.StartSpan(ctx, "notification.Sweep", "usecase")
	defer span.End()

	lock, err := u.locker.Obtain(ctx, sweepLockKey, u.opts.SweepLockTTL)
	switch {
	case err == redis.ErrNotObtained:
		u.log.Info(ctx, "notification sweep already running, skipping")
		return response.Sweep{Skipped: true}, nil
	case err != nil:
		u.log.Warn(ctx, "error obtain sweep lock, relying on row claims", err)
	default:
		defer func() {
			if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
				u.log.Warn(ctx, "error release sweep lock", err)
			}
		}()
	}

	var out response.Sweep
	for i := 0; i < sweepMaxBatches; i++ {
		delivered, err := u.sweepBatch(ctx)
		out.Delivered += len(delivered)
		for _, n := range delivered {
			u.announce(ctx, n)
		}
		if err != nil {
			u.log.Error(ctx, "error sweep scheduled notifications", err)
			return out, err
		}
		if len(delivered) < u.opts.SweepBatch {
			break
		}
	}

	if out.Delivered > 0 {
		u.log.Info(ctx, fmt.Sprintf("notification sweep delivered %d", out.Delivered))
	}
	return out, nil
}

// sweepBatch claims one batch and delivers it in a single transaction.
func (u *usecase) sweepBatch(ctx context.Context) ([]entity.Notification, error) {
	var delivered []entity.Notification
	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		now := u.now().UTC()
		due, err := u.repo.ClaimDue(ctx, now, u.opts.SweepBatch)
		if err != nil {
			return err
		}

		for _, s := range due {
			n, err := u.repo.InsertNotification(ctx, s.Notification())
			if err != nil {
				return err
			}
			if err := u.repo.MarkSent(ctx, s.ID, now); err != nil {
				return err
			}
			delivered = append(delivered, n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return delivered, nil
}

func (u *usecase) List(ctx context.Context, userID int64, req request.List) ([]response.Notification, error) {
	span, ctx := apm.StartSpan(ctx, "notification.List", "usecase")
	defer span.End()

	limit := req.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	ns, err := u.repo.FindNotifications(ctx, userID, req.UnreadOnly, limit, req.Offset)
	if err != nil {
		return nil, err
	}

	out := make([]response.Notification, 0, len(ns))
	for _, n := range ns {
		out = append(out, toResponse(n))
	}
	return out, nil
}

func (u *usecase) MarkRead(ctx context.Context, userID int64, id int64) (response.Notification, error) {
	span, ctx := apm.StartSpan(ctx, "notification.MarkRead", "usecase")
	defer span.End()

	n, err := u.repo.MarkRead(ctx, userID, id)
	if err != nil {
		return response.Notification{}, err
	}
	return toResponse(n), nil
}

func (u *usecase) MarkAllRead(ctx context.Context, userID int64) (response.ReadAll, error) {
	span, ctx := apm.StartSpan(ctx, "notification.MarkAllRead", "usecase")
	defer span.End()

	updated, err := u.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return response.ReadAll{}, err
	}
	return response.ReadAll{Updated: updated}, nil
}

func (u *usecase) UnreadCount(ctx context.Context, userID int64) (response.UnreadCount, error) {
	span, ctx := apm.StartSpan(ctx, "notification.UnreadCount", "usecase")
	defer span.End()

	count, err := u.repo.CountUnread(ctx, userID)
	if err != nil {
		return response.UnreadCount{}, err
	}
	return response.UnreadCount{Count: count}, nil
}

// announce publishes a stored notification for downstream consumers. A broker
// failure is logged only: the notification is already in the inbox.
func (u *usecase) announce(ctx context.Context, n entity.Notification) {
	if err := u.publishJSON(TopicEvents, toResponse(n)); err != nil {
		u.log.Warn(ctx, fmt.Sprintf("error publish notification %d", n.ID), err)
	}
}

func (u *usecase) publishJSON(topic string, v interface{}) error {
	if u.publish == nil {
		return errors.InternalServerError("no publisher configured")
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return u.publish.Publish(topic, message.NewMessage(watermill.NewUUID(), payload))
}

func toResponse(n entity.Notification) response.Notification {
	resp := response.Notification{
		ID:      n.ID,
		UserID:  n.UserID,
		Title:   n.Title,
		Message: n.Message,
		Type:    n.Type,
		IsRead:  n.IsRead,
	}
	if !n.CreatedAt.IsZero() {
		resp.CreatedAt = n.CreatedAt.Format(time.RFC3339)
	}
	return resp
}
