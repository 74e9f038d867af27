package repositories_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"marketplace-service/internal/module/user/models/entity"
	"marketplace-service/internal/module/user/repositories"
	"marketplace-service/internal/pkg/errors"
	log_internal "marketplace-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
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

var userCols = []string{"id", "name", "email", "phone", "password", "google_id", "is_google_account", "role", "status",
	"avatar", "reset_code_hash", "reset_code_expires_at", "created_at", "updated_at"}

func TestFindByEmail(t *testing.T) {
	testCases := []struct {
		name          string
		err           error
		expectedError error
	}{
		{"found", nil, nil},
		{"not found", sql.ErrNoRows, errors.NotFound("user not found")},
		{"connection error", sql.ErrConnDone, errors.InternalServerError("error find user")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setup()
			defer dbx.Close()

			exp := mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE email = $1`)).WithArgs("alice@mail.test")
			if tc.err != nil {
				exp.WillReturnError(tc.err)
			} else {
				exp.WillReturnRows(sqlxmock.NewRows(userCols).
					AddRow(1, "Alice", "alice@mail.test", nil, "$2a$10$hash", nil, false, "client", "active", nil, nil, nil, time.Now(), nil))
			}

			user, err := repo.FindByEmail(context.Background(), "alice@mail.test")

			assert.Equal(t, tc.expectedError, err)
			if tc.err == nil {
				assert.Equal(t, int64(1), user.ID)
				assert.True(t, user.Password.Valid)
				assert.False(t, user.Phone.Valid)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInsertUserDuplicate(t *testing.T) {
	setup()
	defer dbx.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	_, err := repo.InsertUser(context.Background(), entity.User{Name: "Alice", Email: "alice@mail.test", Role: entity.RoleClient})

	assert.Equal(t, errors.Conflict("email already in use"), err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsActive(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT status FROM users WHERE id = $1`)

	t.Run("active", func(t *testing.T) {
		setup()
		defer dbx.Close()

		mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnRows(sqlxmock.NewRows([]string{"status"}).AddRow("active"))

		ok, err := repo.IsActive(context.Background(), 1)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("suspended", func(t *testing.T) {
		setup()
		defer dbx.Close()

		mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnRows(sqlxmock.NewRows([]string{"status"}).AddRow("suspended"))

		ok, err := repo.IsActive(context.Background(), 1)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("deleted", func(t *testing.T) {
		setup()
		defer dbx.Close()

		mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnError(sql.ErrNoRows)

		ok, err := repo.IsActive(context.Background(), 1)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestUpdatePasswordClearsCode(t *testing.T) {
	setup()
	defer dbx.Close()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET password = $1, reset_code_hash = NULL, reset_code_expires_at = NULL`)).
		WithArgs("$2a$10$new", int64(1)).
		WillReturnResult(sqlxmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdatePassword(context.Background(), 1, "$2a$10$new"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
