package entity_test

import (
	"testing"
	"time"

	"marketplace-service/internal/module/booking/models/entity"
	"marketplace-service/internal/pkg/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	clientID   = int64(10)
	providerID = int64(20)
	strangerID = int64(99)
)

func detail(status entity.Status) entity.Detail {
	return entity.Detail{
		Booking: entity.Booking{
			ID:         1,
			ClientID:   clientID,
			ServiceID:  3,
			ProviderID: 4,
			Date:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			Time:       "10:00:00",
			TotalPrice: decimal.RequireFromString("100.00"),
			Status:     status,
		},
		ProviderUserID: providerID,
		ServiceTitle:   "Plumbing",
	}
}

func TestStatusGraph(t *testing.T) {
	all := []entity.Status{entity.StatusPending, entity.StatusAccepted, entity.StatusCompleted, entity.StatusCancelled}
	allowed := map[[2]entity.Status]bool{
		{entity.StatusPending, entity.StatusAccepted}:   true,
		{entity.StatusPending, entity.StatusCancelled}:  true,
		{entity.StatusAccepted, entity.StatusCompleted}: true,
		{entity.StatusAccepted, entity.StatusCancelled}: true,
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[[2]entity.Status{from, to}], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}

	assert.True(t, entity.StatusCompleted.IsTerminal())
	assert.True(t, entity.StatusCancelled.IsTerminal())
	assert.False(t, entity.StatusPending.IsTerminal())
	assert.False(t, entity.Status("archived").IsValid())
}

func TestApply(t *testing.T) {
	now := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		from          entity.Status
		action        entity.Action
		actor         int64
		expected      entity.Status
		expectedKinds []entity.EffectKind
		expectedErr   errors.Kind
	}{
		{"accept pending", entity.StatusPending, entity.ActionAccept, providerID, entity.StatusAccepted,
			[]entity.EffectKind{entity.EffectNotify, entity.EffectScheduleReminder}, ""},
		{"reject pending", entity.StatusPending, entity.ActionReject, providerID, entity.StatusCancelled,
			[]entity.EffectKind{entity.EffectNotify, entity.EffectCancelReminders}, ""},
		{"cancel pending", entity.StatusPending, entity.ActionCancel, clientID, entity.StatusCancelled,
			[]entity.EffectKind{entity.EffectNotify, entity.EffectCancelReminders}, ""},
		{"cancel accepted", entity.StatusAccepted, entity.ActionCancel, clientID, entity.StatusCancelled,
			[]entity.EffectKind{entity.EffectNotify, entity.EffectCancelReminders}, ""},
		{"complete accepted", entity.StatusAccepted, entity.ActionComplete, providerID, entity.StatusCompleted,
			[]entity.EffectKind{entity.EffectCredit, entity.EffectNotify, entity.EffectCancelReminders}, ""},
		{"complete pending", entity.StatusPending, entity.ActionComplete, providerID, "", nil, errors.KindInvalidTransition},
		{"reject accepted", entity.StatusAccepted, entity.ActionReject, providerID, "", nil, errors.KindInvalidTransition},
		{"accept accepted", entity.StatusAccepted, entity.ActionAccept, providerID, "", nil, errors.KindInvalidTransition},
		{"cancel completed", entity.StatusCompleted, entity.ActionCancel, clientID, "", nil, errors.KindInvalidTransition},
		{"cancel cancelled", entity.StatusCancelled, entity.ActionCancel, clientID, "", nil, errors.KindInvalidTransition},
		{"complete completed", entity.StatusCompleted, entity.ActionComplete, providerID, "", nil, errors.KindInvalidTransition},
		{"client accepts", entity.StatusPending, entity.ActionAccept, clientID, "", nil, errors.KindForbidden},
		{"stranger cancels", entity.StatusPending, entity.ActionCancel, strangerID, "", nil, errors.KindForbidden},
		{"provider cancels", entity.StatusPending, entity.ActionCancel, providerID, "", nil, errors.KindForbidden},
		{"stranger completes terminal", entity.StatusCompleted, entity.ActionComplete, strangerID, "", nil, errors.KindForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := detail(tc.from)
			next, effects, err := entity.Apply(d, entity.Transition{
				Action:       tc.action,
				ActorID:      tc.actor,
				Now:          now,
				ReminderLead: 24 * time.Hour,
			})

			if tc.expectedErr != "" {
				require.Error(t, err)
				assert.Equal(t, tc.expectedErr, errors.KindOf(err))
				assert.Nil(t, effects)
				assert.Equal(t, tc.from, d.Status)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, next.Status)
			kinds := make([]entity.EffectKind, 0, len(effects))
			for _, e := range effects {
				kinds = append(kinds, e.Kind)
			}
			assert.Equal(t, tc.expectedKinds, kinds)
			assert.True(t, next.TotalPrice.Equal(d.TotalPrice))
		})
	}
}

func TestApplyNotes(t *testing.T) {
	d := detail(entity.StatusPending)
	d.Notes = "please ring twice"

	next, _, err := entity.Apply(d, entity.Transition{Action: entity.ActionReject, ActorID: providerID})
	require.NoError(t, err)
	assert.Equal(t, "please ring twice\nRejected by the provider", next.Notes)

	next, effects, err := entity.Apply(detail(entity.StatusAccepted), entity.Transition{Action: entity.ActionCancel, ActorID: clientID, Reason: "sick"})
	require.NoError(t, err)
	assert.Equal(t, "sick", next.Notes)
	assert.Equal(t, providerID, effects[0].UserID)

	next, _, err = entity.Apply(detail(entity.StatusPending), entity.Transition{Action: entity.ActionCancel, ActorID: clientID})
	require.NoError(t, err)
	assert.Equal(t, "Cancelled by the client", next.Notes)
}

func TestReminder(t *testing.T) {
	d := detail(entity.StatusPending)

	t.Run("lead before start", func(t *testing.T) {
		now := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
		_, effects, err := entity.Apply(d, entity.Transition{Action: entity.ActionAccept, ActorID: providerID, Now: now, ReminderLead: 24 * time.Hour})
		require.NoError(t, err)
		require.Len(t, effects, 2)
		r := effects[1]
		assert.Equal(t, "booking:1:reminder", r.Key)
		assert.Equal(t, clientID, r.UserID)
		assert.Equal(t, time.Date(2024, 5, 31, 10, 0, 0, 0, time.UTC), r.DueAt)
	})

	t.Run("inside the lead window", func(t *testing.T) {
		now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
		_, effects, err := entity.Apply(d, entity.Transition{Action: entity.ActionAccept, ActorID: providerID, Now: now, ReminderLead: 24 * time.Hour})
		require.NoError(t, err)
		require.Len(t, effects, 2)
		assert.Equal(t, now, effects[1].DueAt)
	})

	t.Run("already started", func(t *testing.T) {
		now := time.Date(2024, 6, 1, 11, 0, 0, 0, time.UTC)
		_, effects, err := entity.Apply(d, entity.Transition{Action: entity.ActionAccept, ActorID: providerID, Now: now, ReminderLead: 24 * time.Hour})
		require.NoError(t, err)
		assert.Len(t, effects, 1)
	})
}
