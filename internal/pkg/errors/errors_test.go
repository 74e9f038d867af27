package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"marketplace-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedKind errors.Kind
		expectedCode int
	}{
		{"not found", errors.NotFound("booking not found"), errors.KindNotFound, http.StatusNotFound},
		{"forbidden", errors.Forbidden("not your booking"), errors.KindForbidden, http.StatusForbidden},
		{"invalid transition", errors.InvalidTransition("booking is not pending"), errors.KindInvalidTransition, http.StatusConflict},
		{"slot taken", errors.SlotTaken("slot already booked"), errors.KindSlotTaken, http.StatusConflict},
		{"insufficient funds", errors.InsufficientFunds("balance too low"), errors.KindInsufficientFunds, http.StatusUnprocessableEntity},
		{"wrapped", fmt.Errorf("credit wallet: %w", errors.Conflict("payment exists")), errors.KindConflict, http.StatusConflict},
		{"foreign error", fmt.Errorf("connection refused"), errors.KindInternal, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedKind, errors.KindOf(tc.err))
			assert.Equal(t, tc.expectedCode, errors.HTTPStatus(tc.err))
			assert.True(t, errors.Is(tc.err, tc.expectedKind))
		})
	}

	assert.False(t, errors.Is(nil, errors.KindInternal))
}
