package repositories_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"marketplace-service/internal/module/catalog/models/entity"
	"marketplace-service/internal/module/catalog/repositories"
	errors_internal "marketplace-service/internal/pkg/errors"
	log_internal "marketplace-service/internal/pkg/log"

	"github.com/go-redis/redismock/v9"
	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

var (
	mock      sqlxmock.Sqlmock
	redisMock redismock.ClientMock
	dbx       *sqlx.DB
	repo      repositories.Repositories
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
	redisClient, rm := redismock.NewClientMock()
	redisMock = rm
	repo = repositories.New(dbx, log_internal.GetLogger(), redisClient)
}

var categoryCols = []string{"id", "name", "slug", "description", "icon", "created_at", "updated_at"}

func TestFindCategory(t *testing.T) {
	testCases := []struct {
		name          string
		err           error
		expectedError error
	}{
		{"found", nil, nil},
		{"not found", sql.ErrNoRows, errors_internal.NotFound("category not found")},
		{"connection error", sql.ErrConnDone, errors_internal.InternalServerError("error find category")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setup()
			defer dbx.Close()

			exp := mock.ExpectQuery(regexp.QuoteMeta(`FROM categories WHERE id = $1`)).WithArgs(int64(4))
			if tc.err != nil {
				exp.WillReturnError(tc.err)
			} else {
				exp.WillReturnRows(sqlxmock.NewRows(categoryCols).AddRow(4, "Plumbing", "plumbing", nil, nil, time.Now(), nil))
			}

			c, err := repo.FindCategory(context.Background(), 4)

			assert.Equal(t, tc.expectedError, err)
			if tc.err == nil {
				assert.Equal(t, "plumbing", c.Slug)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestInsertCategoryDuplicate(t *testing.T) {
	setup()
	defer dbx.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO categories (name, slug, description, icon)`)).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "categories_name_key"})

	_, err := repo.InsertCategory(context.Background(), entity.Category{Name: "Plumbing", Slug: "plumbing"})

	assert.Equal(t, errors_internal.Conflict("category already exists"), err)
}

func TestDeleteCategoryInUse(t *testing.T) {
	setup()
	defer dbx.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM categories WHERE id = $1`)).
		WithArgs(int64(4)).
		WillReturnError(&pq.Error{Code: "23503"})

	assert.Equal(t, errors_internal.Conflict("category is used by services"), repo.DeleteCategory(context.Background(), 4))
}

func TestDeleteService(t *testing.T) {
	query := regexp.QuoteMeta(`DELETE FROM services WHERE id = $1 AND provider_id = $2`)

	t.Run("deleted", func(t *testing.T) {
		setup()
		defer dbx.Close()

		mock.ExpectExec(query).WithArgs(int64(9), int64(3)).WillReturnResult(sqlxmock.NewResult(0, 1))
		assert.NoError(t, repo.DeleteService(context.Background(), 9, 3))
	})

	t.Run("not owned", func(t *testing.T) {
		setup()
		defer dbx.Close()

		mock.ExpectExec(query).WithArgs(int64(9), int64(3)).WillReturnResult(sqlxmock.NewResult(0, 0))
		assert.Equal(t, errors_internal.NotFound("service not found"), repo.DeleteService(context.Background(), 9, 3))
	})

	t.Run("booking history", func(t *testing.T) {
		setup()
		defer dbx.Close()

		mock.ExpectExec(query).WithArgs(int64(9), int64(3)).WillReturnError(&pq.Error{Code: "23503"})
		assert.Equal(t, errors_internal.Conflict("service has booking history"), repo.DeleteService(context.Background(), 9, 3))
	})
}

func TestCountOpenBookings(t *testing.T) {
	setup()
	defer dbx.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`status IN ('pending', 'accepted')`)).
		WithArgs(int64(9)).
		WillReturnRows(sqlxmock.NewRows([]string{"count"}).AddRow(2))

	n, err := repo.CountOpenBookings(context.Background(), 9)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

var listingCols = []string{"id", "provider_id", "category_id", "title", "description", "price", "duration", "status",
	"created_at", "updated_at", "category_name", "category_icon", "provider_user_id", "provider_name",
	"provider_avatar", "provider_specialty", "provider_address", "provider_verified"}

func TestFindListings(t *testing.T) {
	t.Run("public filters", func(t *testing.T) {
		setup()
		defer dbx.Close()

		mock.ExpectQuery(regexp.QuoteMeta(`WHERE s.status = 'active' AND s.category_id = $1 AND (s.title ILIKE '%' || $2 || '%' OR s.description ILIKE '%' || $2 || '%') AND s.price >= $3 AND p.verified ORDER BY s.price ASC, s.id DESC LIMIT $4 OFFSET $5`)).
			WithArgs(int64(4), "leak", sqlxmock.AnyArg(), int64(10), int64(0)).
			WillReturnRows(sqlxmock.NewRows(listingCols).
				AddRow(9, 3, 4, "Fix a leak", nil, "45.00", 60, "active", time.Now(), nil, "Plumbing", nil, 7, "Bob", nil, "plumbing", nil, true))

		listings, err := repo.FindListings(context.Background(), entity.ServiceFilter{
			Query:        " leak ",
			CategoryID:   4,
			MinPrice:     decimal.NewNullDecimal(decimal.NewFromInt(20)),
			VerifiedOnly: true,
			Sort:         "price",
			Order:        "asc",
			Limit:        10,
		})

		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.True(t, decimal.RequireFromString("45").Equal(listings[0].Price))
		assert.Equal(t, "Bob", listings[0].ProviderName.String)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("provider's own services include inactive", func(t *testing.T) {
		setup()
		defer dbx.Close()

		mock.ExpectQuery(regexp.QuoteMeta(`WHERE s.provider_id = $1 ORDER BY s.created_at DESC, s.id DESC`)).
			WithArgs(int64(3)).
			WillReturnRows(sqlxmock.NewRows(listingCols))

		listings, err := repo.FindListings(context.Background(), entity.ServiceFilter{ProviderID: 3, Sort: "bogus"})

		require.NoError(t, err)
		assert.Empty(t, listings)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPopularCache(t *testing.T) {
	stats := []entity.CategoryStat{{ID: 4, Name: "Plumbing", Slug: "plumbing", ServicesCount: 3, ProvidersCount: 2}}
	data, err := json.Marshal(stats)
	require.NoError(t, err)

	t.Run("hit", func(t *testing.T) {
		setup()
		defer dbx.Close()

		redisMock.ExpectHGet("catalog:categories:popular", "6").SetVal(string(data))

		got, ok := repo.CachedPopular(context.Background(), 6)

		assert.True(t, ok)
		assert.Equal(t, stats, got)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("miss", func(t *testing.T) {
		setup()
		defer dbx.Close()

		redisMock.ExpectHGet("catalog:categories:popular", "6").RedisNil()

		_, ok := repo.CachedPopular(context.Background(), 6)
		assert.False(t, ok)
	})

	t.Run("redis down is a miss", func(t *testing.T) {
		setup()
		defer dbx.Close()

		redisMock.ExpectHGet("catalog:categories:popular", "6").SetErr(errors.New("connection refused"))

		_, ok := repo.CachedPopular(context.Background(), 6)
		assert.False(t, ok)
	})

	t.Run("store and invalidate", func(t *testing.T) {
		setup()
		defer dbx.Close()

		redisMock.ExpectHSet("catalog:categories:popular", "6", data).SetVal(1)
		redisMock.ExpectExpire("catalog:categories:popular", 5*time.Minute).SetVal(true)
		redisMock.ExpectDel("catalog:categories:popular").SetVal(1)

		repo.CachePopular(context.Background(), 6, stats, 5*time.Minute)
		repo.InvalidatePopular(context.Background())

		assert.NoError(t, redisMock.ExpectationsWereMet())
	})
}
