package entity

import (
	"fmt"
	"time"

	"marketplace-service/internal/pkg/errors"
)

type Action string

const (
	ActionAccept   Action = "accept"
	ActionReject   Action = "reject"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"
)

const NotificationType = "booking"

type EffectKind string

const (
	EffectNotify           EffectKind = "notify"
	EffectScheduleReminder EffectKind = "schedule_reminder"
	EffectCancelReminders  EffectKind = "cancel_reminders"
	// EffectCredit is applied inside the transition's transaction, the others after commit.
	EffectCredit EffectKind = "credit"
)

type Effect struct {
	Kind    EffectKind
	UserID  int64
	Title   string
	Message string
	Type    string
	Key     string
	DueAt   time.Time
}

type Transition struct {
	Action  Action
	ActorID int64
	Reason  string
	Now     time.Time
	// ReminderLead is how long before the start the client is reminded.
	ReminderLead time.Duration
	Location     *time.Location
}

func ReminderKey(bookingID int64) string {
	return fmt.Sprintf("booking:%d:reminder", bookingID)
}

// Apply checks t against the booking and returns the booking as it should be
// stored plus the effects to run. On error nothing is returned to persist.
func Apply(d Detail, t Transition) (Booking, []Effect, error) {
	next := d.Booking

	target, err := authorize(d, t)
	if err != nil {
		return Booking{}, nil, err
	}
	// a provider may only turn down a request it has not accepted yet
	if !d.Status.CanTransitionTo(target) || (t.Action == ActionReject && d.Status != StatusPending) {
		return Booking{}, nil, errors.InvalidTransition(
			fmt.Sprintf("booking %d cannot go from %s to %s", d.ID, d.Status, target))
	}
	next.Status = target

	var effects []Effect
	switch t.Action {
	case ActionAccept:
		effects = append(effects, notify(d.ClientID, "Booking confirmed",
			fmt.Sprintf("Your booking for %q has been accepted", d.ServiceTitle)))
		if reminder, ok := reminderFor(d, t); ok {
			effects = append(effects, reminder)
		}
	case ActionReject:
		next.Notes = appendNote(d.Notes, "Rejected by the provider")
		effects = append(effects,
			notify(d.ClientID, "Booking rejected",
				fmt.Sprintf("Your booking for %q has been rejected", d.ServiceTitle)),
			Effect{Kind: EffectCancelReminders},
		)
	case ActionCancel:
		reason := t.Reason
		if reason == "" {
			reason = "Cancelled by the client"
		}
		next.Notes = appendNote(d.Notes, reason)
		effects = append(effects,
			notify(d.ProviderUserID, "Booking cancelled",
				fmt.Sprintf("The booking for %q has been cancelled by the client", d.ServiceTitle)),
			Effect{Kind: EffectCancelReminders},
		)
	case ActionComplete:
		effects = append(effects,
			Effect{Kind: EffectCredit, UserID: d.ProviderUserID},
			notify(d.ClientID, "Service completed",
				fmt.Sprintf("The service %q is completed. Leave a review!", d.ServiceTitle)),
			Effect{Kind: EffectCancelReminders},
		)
	}

	return next, effects, nil
}

// CreatedEffects are the effects of a new pending booking.
func CreatedEffects(d Detail) []Effect {
	return []Effect{
		notify(d.ProviderUserID, "New booking",
			fmt.Sprintf("You have a new booking request for %q", d.ServiceTitle)),
	}
}

func authorize(d Detail, t Transition) (Status, error) {
	switch t.Action {
	case ActionAccept, ActionReject, ActionComplete:
		if t.ActorID != d.ProviderUserID {
			return "", errors.Forbidden(fmt.Sprintf("only the provider can %s this booking", t.Action))
		}
		if t.Action == ActionAccept {
			return StatusAccepted, nil
		}
		if t.Action == ActionComplete {
			return StatusCompleted, nil
		}
		return StatusCancelled, nil
	case ActionCancel:
		if t.ActorID != d.ClientID {
			return "", errors.Forbidden("only the client can cancel this booking")
		}
		return StatusCancelled, nil
	default:
		return "", errors.BadRequest(fmt.Sprintf("unknown action %q", t.Action))
	}
}

func reminderFor(d Detail, t Transition) (Effect, bool) {
	loc := t.Location
	if loc == nil {
		loc = time.UTC
	}
	startsAt, err := d.StartsAt(loc)
	if err != nil || !startsAt.After(t.Now) {
		return Effect{}, false
	}

	due := startsAt.Add(-t.ReminderLead)
	if due.Before(t.Now) {
		due = t.Now
	}

	return Effect{
		Kind:   EffectScheduleReminder,
		UserID: d.ClientID,
		Title:  "Upcoming booking",
		Message: fmt.Sprintf("Reminder: %q is booked for %s at %s",
			d.ServiceTitle, startsAt.Format("2006-01-02"), startsAt.Format("15:04")),
		Type:  "reminder",
		Key:   ReminderKey(d.ID),
		DueAt: due,
	}, true
}

func notify(userID int64, title, message string) Effect {
	return Effect{Kind: EffectNotify, UserID: userID, Title: title, Message: message, Type: NotificationType}
}

func appendNote(notes, note string) string {
	if notes == "" {
		return note
	}
	return notes + "\n" + note
}
