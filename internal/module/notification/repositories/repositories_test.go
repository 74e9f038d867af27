package repositories_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"marketplace-service/internal/module/notification/models/entity"
	"marketplace-service/internal/module/notification/repositories"
	"marketplace-service/internal/pkg/errors"
	log_internal "marketplace-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

var (
	mock sqlxmock.Sqlmock
	dbx  *sqlx.DB
	repo repositories.Repositories
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
	repo = repositories.New(dbx, log_internal.GetLogger())
}

func TestMarkRead(t *testing.T) {
	setup()
	defer dbx.Close()

	cols := []string{"id", "user_id", "title", "message", "type", "is_read", "created_at"}

	testCases := []struct {
		name          string
		userID        int64
		id            int64
		rows          *sqlxmock.Rows
		queryErr      error
		expectedError error
	}{
		{
			name:   "own notification",
			userID: 7,
			id:     1,
			rows:   sqlxmock.NewRows(cols).AddRow(1, 7, "New booking", "m", "booking", true, time.Now()),
		},
		{
			name:          "someone else's notification",
			userID:        8,
			id:            1,
			queryErr:      sql.ErrNoRows,
			expectedError: errors.NotFound("notification not found"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := mock.ExpectQuery(regexp.QuoteMeta(`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`)).
				WithArgs(tc.id, tc.userID)
			if tc.queryErr != nil {
				q.WillReturnError(tc.queryErr)
			} else {
				q.WillReturnRows(tc.rows)
			}

			n, err := repo.MarkRead(context.Background(), tc.userID, tc.id)
			assert.Equal(t, tc.expectedError, err)
			if err == nil {
				assert.True(t, n.IsRead)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInsertScheduled(t *testing.T) {
	setup()
	defer dbx.Close()

	s := entity.Scheduled{
		IdempotencyKey: "booking:1:reminder",
		UserID:         7,
		BookingID:      sql.NullInt64{Int64: 1, Valid: true},
		Title:          "Upcoming booking",
		Message:        "m",
		Type:           entity.TypeReminder,
		DueAt:          time.Date(2024, 5, 31, 10, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (idempotency_key) DO NOTHING`)).
		WithArgs(s.IdempotencyKey, s.UserID, sqlxmock.AnyArg(), s.Title, s.Message, s.Type, s.DueAt).
		WillReturnResult(sqlxmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (idempotency_key) DO NOTHING`)).
		WillReturnResult(sqlxmock.NewResult(0, 0))

	created, err := repo.InsertScheduled(context.Background(), s)
	assert.NoError(t, err)
	assert.True(t, created)

	created, err = repo.InsertScheduled(context.Background(), s)
	assert.NoError(t, err)
	assert.False(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaimDue(t *testing.T) {
	setup()
	defer dbx.Close()

	now := time.Now().UTC()
	cols := []string{"id", "idempotency_key", "user_id", "booking_id", "title", "message", "type", "due_at", "status", "attempts", "sent_at", "created_at"}

	mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE SKIP LOCKED`)).
		WithArgs(now, 100).
		WillReturnRows(sqlxmock.NewRows(cols).
			AddRow(1, "booking:1:reminder", 7, 1, "Upcoming booking", "m", "reminder", now.Add(-time.Minute), "pending", 0, nil, now))

	rows, err := repo.ClaimDue(context.Background(), now, 100)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, entity.ScheduledPending, rows[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkSentNotPending(t *testing.T) {
	setup()
	defer dbx.Close()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE scheduled_notifications SET status = 'sent'`)).
		WithArgs(sqlxmock.AnyArg(), int64(1)).
		WillReturnResult(sqlxmock.NewResult(0, 0))

	err := repo.MarkSent(context.Background(), 1, time.Now())
	assert.True(t, errors.Is(err, errors.KindConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}
