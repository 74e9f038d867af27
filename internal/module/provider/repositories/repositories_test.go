package repositories_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"marketplace-service/internal/module/provider/models/entity"
	"marketplace-service/internal/module/provider/repositories"
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

var profileCols = []string{"user_id", "name", "email", "phone", "avatar", "status", "provider_id", "bio", "specialty",
	"address", "formatted_address", "latitude", "longitude", "verified"}

func TestFindProfile(t *testing.T) {
	query := regexp.QuoteMeta(`LEFT JOIN provider_profiles p ON p.user_id = u.id`)

	t.Run("without profile row", func(t *testing.T) {
		setup()
		defer dbx.Close()

		mock.ExpectQuery(query).WithArgs(int64(7)).WillReturnRows(sqlxmock.NewRows(profileCols).
			AddRow(7, "Bob", "bob@mail.test", nil, nil, "active", nil, nil, nil, nil, nil, nil, nil, nil))

		p, err := repo.FindProfile(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, "Bob", p.Name)
		assert.False(t, p.ProviderID.Valid)
		assert.False(t, p.Verified.Bool)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not a provider", func(t *testing.T) {
		setup()
		defer dbx.Close()

		mock.ExpectQuery(query).WithArgs(int64(7)).WillReturnError(sql.ErrNoRows)

		_, err := repo.FindProfile(context.Background(), 7)

		assert.Equal(t, errors.NotFound("provider not found"), err)
	})
}

func TestEnsureProviderID(t *testing.T) {
	setup()
	defer dbx.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO provider_profiles (user_id) VALUES ($1)`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlxmock.NewRows([]string{"id"}).AddRow(3))

	id, err := repo.EnsureProviderID(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertLocation(t *testing.T) {
	setup()
	defer dbx.Close()

	mock.ExpectExec(regexp.QuoteMeta(`ON CONFLICT (user_id) DO UPDATE SET`)).
		WithArgs(int64(7), 48.85, 2.35, sql.NullString{String: "1 rue de Rivoli", Valid: true}, sql.NullString{}).
		WillReturnResult(sqlxmock.NewResult(1, 1))

	err := repo.UpsertLocation(context.Background(), 7, entity.Location{
		Latitude:  48.85,
		Longitude: 2.35,
		Address:   sql.NullString{String: "1 rue de Rivoli", Valid: true},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertDocument(t *testing.T) {
	setup()
	defer dbx.Close()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO documents (provider_id, type, file_url, status)`)).
		WithArgs(int64(3), "id_card", "/uploads/documents/a.pdf", entity.DocumentPending).
		WillReturnRows(sqlxmock.NewRows([]string{"id", "provider_id", "type", "file_url", "status", "created_at"}).
			AddRow(11, 3, "id_card", "/uploads/documents/a.pdf", "pending", now))

	doc, err := repo.InsertDocument(context.Background(), entity.Document{
		ProviderID: 3, Type: "id_card", FileURL: "/uploads/documents/a.pdf", Status: entity.DocumentPending,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(11), doc.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteDocument(t *testing.T) {
	query := regexp.QuoteMeta(`DELETE FROM documents WHERE id = $1 AND provider_id = $2 RETURNING file_url`)

	testCases := []struct {
		name          string
		err           error
		expectedURL   string
		expectedError error
	}{
		{"deleted", nil, "/uploads/documents/a.pdf", nil},
		{"other provider's document", sql.ErrNoRows, "", errors.NotFound("document not found")},
		{"connection error", sql.ErrConnDone, "", errors.InternalServerError("error delete document")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setup()
			defer dbx.Close()

			exp := mock.ExpectQuery(query).WithArgs(int64(11), int64(3))
			if tc.err != nil {
				exp.WillReturnError(tc.err)
			} else {
				exp.WillReturnRows(sqlxmock.NewRows([]string{"file_url"}).AddRow(tc.expectedURL))
			}

			url, err := repo.DeleteDocument(context.Background(), 11, 3)

			assert.Equal(t, tc.expectedError, err)
			assert.Equal(t, tc.expectedURL, url)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
