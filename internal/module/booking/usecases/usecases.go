package usecases

import (
	"context"
	"fmt"
	"time"

	"marketplace-service/internal/module/booking/models/entity"
	"marketplace-service/internal/module/booking/models/request"
	"marketplace-service/internal/module/booking/models/response"
	"marketplace-service/internal/module/booking/repositories"
	notifreq "marketplace-service/internal/module/notification/models/request"
	notifresp "marketplace-service/internal/module/notification/models/response"
	walletreq "marketplace-service/internal/module/wallet/models/request"
	walletresp "marketplace-service/internal/module/wallet/models/response"
	"marketplace-service/internal/pkg/database"
	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/log"
	"marketplace-service/internal/pkg/redis"

	"github.com/shopspring/decimal"
	"go.elastic.co/apm"
)

// Ledger credits a provider for a completed booking.
type Ledger interface {
	Credit(ctx context.Context, req walletreq.Credit) (walletresp.Credit, error)
}

// Dispatcher delivers the notification side of a transition.
type Dispatcher interface {
	Emit(ctx context.Context, req notifreq.Emit) (notifresp.Notification, error)
	Schedule(ctx context.Context, req notifreq.Schedule) (bool, error)
	CancelScheduled(ctx context.Context, bookingID int64) (int64, error)
}

type Options struct {
	CommissionRate decimal.Decimal
	PaymentMethod  string
	ReminderLead   time.Duration
	Location       *time.Location
	SlotLockTTL    time.Duration
}

type usecase struct {
	repo       repositories.Repositories
	tx         database.Transactor
	locker     redis.Locker
	ledger     Ledger
	dispatcher Dispatcher
	log        log.Logger
	opts       Options
	now        func() time.Time
}

type Usecase interface {
	// client
	Create(ctx context.Context, clientID int64, req *request.CreateBooking) (response.Booking, error)
	Cancel(ctx context.Context, id int64, actorID int64, reason string) (response.Booking, error)
	ListClient(ctx context.Context, clientID int64, req request.ListBookings) ([]response.Booking, error)
	// provider
	Accept(ctx context.Context, id int64, actorID int64) (response.Booking, error)
	Reject(ctx context.Context, id int64, actorID int64) (response.Booking, error)
	Complete(ctx context.Context, id int64, actorID int64) (response.Booking, error)
	ListProvider(ctx context.Context, userID int64, req request.ListBookings) ([]response.Booking, error)
	// shared
	Get(ctx context.Context, id int64, actorID int64, role string) (response.Booking, error)
	Stats(ctx context.Context, actorID int64, role string) (response.Stats, error)
}

func New(repo repositories.Repositories, tx database.Transactor, locker redis.Locker, ledger Ledger, dispatcher Dispatcher, log log.Logger, opts Options) Usecase {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.SlotLockTTL <= 0 {
		opts.SlotLockTTL = 10 * time.Second
	}
	if opts.PaymentMethod == "" {
		opts.PaymentMethod = "cash"
	}
	return &usecase{
		repo:       repo,
		tx:         tx,
		locker:     locker,
		ledger:     ledger,
		dispatcher: dispatcher,
		log:        log,
		opts:       opts,
		now:        time.Now,
	}
}

func (u *usecase) Create(ctx context.Context, clientID int64, req *request.CreateBooking) (response.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "booking.Create", "usecase")
	defer span.End()

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return response.Booking{}, errors.ValidationError("date: must be YYYY-MM-DD")
	}
	clock, err := time.Parse("15:04", req.Time)
	if err != nil {
		return response.Booking{}, errors.ValidationError("time: must be HH:MM")
	}

	service, err := u.repo.FindActiveService(ctx, req.ServiceID)
	if err != nil {
		return response.Booking{}, err
	}
	if service.ProviderUserID == clientID {
		return response.Booking{}, errors.Conflict("you cannot book your own service")
	}

	slotDate, slotTime := date.Format("2006-01-02"), clock.Format("15:04")
	lockKey := fmt.Sprintf("lock:booking:slot:%d:%s:%s", service.ProviderID, slotDate, slotTime)
	lock, err := u.locker.Obtain(ctx, lockKey, u.opts.SlotLockTTL)
	switch {
	case err == redis.ErrNotObtained:
		return response.Booking{}, errors.SlotTaken("this slot is no longer available")
	case err != nil:
		// the unique slot index still holds without redis
		u.log.Warn(ctx, "error obtain booking slot lock", err)
	default:
		defer func() {
			if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
				u.log.Warn(ctx, "error release booking slot lock", err)
			}
		}()
	}

	taken, err := u.repo.SlotTaken(ctx, service.ProviderID, slotDate, slotTime)
	if err != nil {
		return response.Booking{}, err
	}
	if taken {
		return response.Booking{}, errors.SlotTaken("this slot is no longer available")
	}

	booking, err := u.repo.InsertBooking(ctx, entity.Booking{
		ClientID:   clientID,
		ServiceID:  service.ID,
		ProviderID: service.ProviderID,
		Date:       date,
		Time:       slotTime,
		TotalPrice: service.Price,
		Notes:      req.Notes,
		Status:     entity.StatusPending,
	})
	if err != nil {
		return response.Booking{}, err
	}

	d := entity.Detail{
		Booking:        booking,
		ProviderUserID: service.ProviderUserID,
		ServiceTitle:   service.Title,
		Duration:       service.Duration,
	}
	u.dispatch(ctx, booking.ID, entity.CreatedEffects(d))

	return toResponse(d), nil
}

func (u *usecase) Accept(ctx context.Context, id int64, actorID int64) (response.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "booking.Accept", "usecase")
	defer span.End()

	return u.transition(ctx, id, entity.ActionAccept, actorID, "")
}

func (u *usecase) Reject(ctx context.Context, id int64, actorID int64) (response.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "booking.Reject", "usecase")
	defer span.End()

	return u.transition(ctx, id, entity.ActionReject, actorID, "")
}

func (u *usecase) Cancel(ctx context.Context, id int64, actorID int64, reason string) (response.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "booking.Cancel", "usecase")
	defer span.End()

	return u.transition(ctx, id, entity.ActionCancel, actorID, reason)
}

func (u *usecase) Complete(ctx context.Context, id int64, actorID int64) (response.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "booking.Complete", "usecase")
	defer span.End()

	return u.transition(ctx, id, entity.ActionComplete, actorID, "")
}

// transition applies one action under the booking row lock. The ledger credit
// shares the transaction; notifications run only after it commits.
func (u *usecase) transition(ctx context.Context, id int64, action entity.Action, actorID int64, reason string) (response.Booking, error) {
	var (
		updated entity.Detail
		after   []entity.Effect
	)

	err := u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		d, err := u.repo.LockDetail(ctx, id)
		if err != nil {
			return err
		}

		next, effects, err := entity.Apply(d, entity.Transition{
			Action:       action,
			ActorID:      actorID,
			Reason:       reason,
			Now:          u.now(),
			ReminderLead: u.opts.ReminderLead,
			Location:     u.opts.Location,
		})
		if err != nil {
			return err
		}

		if err := u.repo.UpdateStatus(ctx, next); err != nil {
			return err
		}

		for _, e := range effects {
			if e.Kind != entity.EffectCredit {
				after = append(after, e)
				continue
			}
			credit, err := u.ledger.Credit(ctx, walletreq.Credit{
				ProviderUserID: e.UserID,
				BookingID:      d.ID,
				GrossAmount:    d.TotalPrice,
				CommissionRate: u.opts.CommissionRate,
				Method:         u.opts.PaymentMethod,
			})
			if err != nil {
				return err
			}
			if credit.AlreadyCredited {
				u.log.Warn(ctx, fmt.Sprintf("booking %d was already credited", d.ID))
			}
		}

		d.Booking = next
		updated = d
		return nil
	})
	if err != nil {
		return response.Booking{}, err
	}

	u.dispatch(ctx, id, after)
	return toResponse(updated), nil
}

// dispatch runs post-commit effects. Failures are logged and never undo the
// transition that produced them.
func (u *usecase) dispatch(ctx context.Context, bookingID int64, effects []entity.Effect) {
	for _, e := range effects {
		var err error
		switch e.Kind {
		case entity.EffectNotify:
			_, err = u.dispatcher.Emit(ctx, notifreq.Emit{
				UserID:  e.UserID,
				Title:   e.Title,
				Message: e.Message,
				Type:    e.Type,
			})
		case entity.EffectScheduleReminder:
			_, err = u.dispatcher.Schedule(ctx, notifreq.Schedule{
				Key:       e.Key,
				UserID:    e.UserID,
				BookingID: bookingID,
				Title:     e.Title,
				Message:   e.Message,
				Type:      e.Type,
				DueAt:     e.DueAt,
			})
		case entity.EffectCancelReminders:
			_, err = u.dispatcher.CancelScheduled(ctx, bookingID)
		}
		if err != nil {
			u.log.Error(ctx, fmt.Sprintf("error dispatch %s for booking %d", e.Kind, bookingID), err)
		}
	}
}

func (u *usecase) ListClient(ctx context.Context, clientID int64, req request.ListBookings) ([]response.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "booking.ListClient", "usecase")
	defer span.End()

	ds, err := u.repo.FindByClient(ctx, clientID, req.Status)
	if err != nil {
		return nil, err
	}
	return toResponses(ds), nil
}

func (u *usecase) ListProvider(ctx context.Context, userID int64, req request.ListBookings) ([]response.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "booking.ListProvider", "usecase")
	defer span.End()

	providerID, err := u.repo.FindProviderIDByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ds, err := u.repo.FindByProvider(ctx, providerID, req.Status)
	if err != nil {
		return nil, err
	}
	return toResponses(ds), nil
}

func (u *usecase) Get(ctx context.Context, id int64, actorID int64, role string) (response.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "booking.Get", "usecase")
	defer span.End()

	d, err := u.repo.FindDetail(ctx, id)
	if err != nil {
		return response.Booking{}, err
	}
	if d.ClientID != actorID && d.ProviderUserID != actorID && role != "admin" {
		return response.Booking{}, errors.Forbidden("not a participant of this booking")
	}
	return toResponse(d), nil
}

func (u *usecase) Stats(ctx context.Context, actorID int64, role string) (response.Stats, error) {
	span, ctx := apm.StartSpan(ctx, "booking.Stats", "usecase")
	defer span.End()

	switch role {
	case "client":
		s, err := u.repo.ClientStats(ctx, actorID)
		if err != nil {
			return response.Stats{}, err
		}
		return toStats(s, false), nil
	case "provider":
		providerID, err := u.repo.FindProviderIDByUserID(ctx, actorID)
		if errors.Is(err, errors.KindNotFound) {
			return toStats(entity.Stats{}, true), nil
		}
		if err != nil {
			return response.Stats{}, err
		}
		s, err := u.repo.ProviderStats(ctx, providerID)
		if err != nil {
			return response.Stats{}, err
		}
		return toStats(s, true), nil
	default:
		return response.Stats{}, nil
	}
}

func toStats(s entity.Stats, withEarnings bool) response.Stats {
	out := response.Stats{
		Total:     s.Total,
		Pending:   s.Pending,
		Accepted:  s.Accepted,
		Completed: s.Completed,
		Cancelled: s.Cancelled,
	}
	if withEarnings {
		earnings := s.TotalEarnings
		out.TotalEarnings = &earnings
	}
	return out
}

func toResponses(ds []entity.Detail) []response.Booking {
	out := make([]response.Booking, 0, len(ds))
	for _, d := range ds {
		out = append(out, toResponse(d))
	}
	return out
}

func toResponse(d entity.Detail) response.Booking {
	clock := d.Time
	if len(clock) > 5 {
		clock = clock[:5]
	}

	resp := response.Booking{
		ID:             d.ID,
		ClientID:       d.ClientID,
		ServiceID:      d.ServiceID,
		ProviderID:     d.ProviderID,
		Date:           d.Date.Format("2006-01-02"),
		Time:           clock,
		TotalPrice:     d.TotalPrice,
		Notes:          d.Notes,
		Status:         string(d.Status),
		ServiceTitle:   d.ServiceTitle,
		Duration:       d.Duration,
		ClientName:     d.ClientName,
		ClientEmail:    d.ClientEmail,
		ClientPhone:    d.ClientPhone.String,
		ClientAvatar:   d.ClientAvatar.String,
		ProviderName:   d.ProviderName,
		ProviderPhone:  d.ProviderPhone.String,
		ProviderAvatar: d.ProviderAvatar.String,
		ProviderAddr:   d.ProviderAddr.String,
	}
	if !d.CreatedAt.IsZero() {
		resp.CreatedAt = d.CreatedAt.Format(time.RFC3339)
	}
	return resp
}
