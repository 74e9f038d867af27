package usecases_test

import (
	"context"
	"database/sql"
	"mime/multipart"
	"testing"
	"time"

	"marketplace-service/internal/module/catalog/mocks"
	"marketplace-service/internal/module/catalog/models/entity"
	"marketplace-service/internal/module/catalog/models/request"
	"marketplace-service/internal/module/catalog/usecases"
	"marketplace-service/internal/pkg/errors"
	log_internal "marketplace-service/internal/pkg/log"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	store    *fakeStorage
)

func setup() {
	repoMock = new(mocks.Repositories)
	store = &fakeStorage{}
	uc = usecases.New(repoMock, memTx{}, store, log_internal.GetLogger(), usecases.Options{})
}

func teardown() {
	repoMock = nil
	store = nil
	uc = nil
}

func plumbing() entity.Category {
	return entity.Category{ID: 4, Name: "Plumbing", Slug: "plumbing", CreatedAt: time.Now()}
}

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()
	icon := &multipart.FileHeader{Filename: "pipe.svg"}

	t.Run("slugged with icon", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("CategoryNameTaken", mock.Anything, "Home Repair & Care", int64(0)).Return(false, nil).Once()
		repoMock.On("InsertCategory", mock.Anything, entity.Category{
			Name: "Home Repair & Care",
			Slug: "home-repair-and-care",
			Icon: sql.NullString{String: "/uploads/icons/pipe.svg", Valid: true},
		}).Return(entity.Category{ID: 5, Name: "Home Repair & Care", Slug: "home-repair-and-care"}, nil).Once()
		repoMock.On("InvalidatePopular", mock.Anything).Return().Once()

		resp, err := uc.CreateCategory(ctx, &request.CreateCategory{Name: "  Home Repair & Care "}, icon)

		require.NoError(t, err)
		assert.Equal(t, "home-repair-and-care", resp.Slug)
		repoMock.AssertExpectations(t)
	})

	t.Run("duplicate name stores nothing", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("CategoryNameTaken", mock.Anything, "Plumbing", int64(0)).Return(true, nil).Once()

		_, err := uc.CreateCategory(ctx, &request.CreateCategory{Name: "Plumbing"}, icon)

		assert.Equal(t, errors.Conflict("category already exists"), err)
		assert.Empty(t, store.stored)
	})

	t.Run("insert failure removes icon", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("CategoryNameTaken", mock.Anything, "Plumbing", int64(0)).Return(false, nil).Once()
		repoMock.On("InsertCategory", mock.Anything, mock.Anything).Return(entity.Category{}, errors.Conflict("category already exists")).Once()

		_, err := uc.CreateCategory(ctx, &request.CreateCategory{Name: "Plumbing"}, icon)

		assert.Equal(t, errors.Conflict("category already exists"), err)
		assert.Equal(t, []string{"/uploads/icons/pipe.svg"}, store.deleted)
	})
}

func TestUpdateCategory(t *testing.T) {
	setup()
	defer teardown()

	current := plumbing()
	current.Icon = sql.NullString{String: "/uploads/icons/old.svg", Valid: true}

	repoMock.On("FindCategory", mock.Anything, int64(4)).Return(current, nil).Once()
	repoMock.On("CategoryNameTaken", mock.Anything, "Plumbing Services", int64(4)).Return(false, nil).Once()
	repoMock.On("UpdateCategory", mock.Anything, mock.MatchedBy(func(c entity.Category) bool {
		return c.Slug == "plumbing-services" && c.Icon.String == "/uploads/icons/new.svg"
	})).Return(entity.Category{ID: 4, Name: "Plumbing Services", Slug: "plumbing-services"}, nil).Once()
	repoMock.On("InvalidatePopular", mock.Anything).Return().Once()

	resp, err := uc.UpdateCategory(context.Background(), 4, &request.UpdateCategory{Name: "Plumbing Services"},
		&multipart.FileHeader{Filename: "new.svg"})

	require.NoError(t, err)
	assert.Equal(t, "Plumbing Services", resp.Name)
	assert.Equal(t, []string{"/uploads/icons/old.svg"}, store.deleted)
}

func TestDeleteCategory(t *testing.T) {
	t.Run("in use", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindCategory", mock.Anything, int64(4)).Return(plumbing(), nil).Once()
		repoMock.On("CountServices", mock.Anything, int64(4), false).Return(int64(2), nil).Once()

		err := uc.DeleteCategory(context.Background(), 4)

		assert.True(t, errors.Is(err, errors.KindConflict))
		repoMock.AssertNotCalled(t, "DeleteCategory", mock.Anything, mock.Anything)
	})

	t.Run("deleted with icon", func(t *testing.T) {
		setup()
		defer teardown()

		c := plumbing()
		c.Icon = sql.NullString{String: "/uploads/icons/pipe.svg", Valid: true}
		repoMock.On("FindCategory", mock.Anything, int64(4)).Return(c, nil).Once()
		repoMock.On("CountServices", mock.Anything, int64(4), false).Return(int64(0), nil).Once()
		repoMock.On("DeleteCategory", mock.Anything, int64(4)).Return(nil).Once()
		repoMock.On("InvalidatePopular", mock.Anything).Return().Once()

		require.NoError(t, uc.DeleteCategory(context.Background(), 4))
		assert.Equal(t, []string{"/uploads/icons/pipe.svg"}, store.deleted)
	})
}

func TestGetCategory(t *testing.T) {
	setup()
	defer teardown()

	repoMock.On("FindCategory", mock.Anything, int64(4)).Return(plumbing(), nil).Once()
	repoMock.On("CountServices", mock.Anything, int64(4), true).Return(int64(3), nil).Once()

	resp, err := uc.GetCategory(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, int64(3), *resp.ServicesCount)
}

func TestPopularCategories(t *testing.T) {
	stats := []entity.CategoryStat{{ID: 4, Name: "Plumbing", ServicesCount: 3}}

	t.Run("cache hit", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("CachedPopular", mock.Anything, 6).Return(stats, true).Once()

		resp, err := uc.PopularCategories(context.Background(), 0)

		require.NoError(t, err)
		assert.Len(t, resp, 1)
		repoMock.AssertNotCalled(t, "PopularCategories", mock.Anything, mock.Anything)
	})

	t.Run("cache miss fills the cache", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("CachedPopular", mock.Anything, 3).Return(nil, false).Once()
		repoMock.On("PopularCategories", mock.Anything, 3).Return(stats, nil).Once()
		repoMock.On("CachePopular", mock.Anything, 3, stats, 5*time.Minute).Return().Once()

		resp, err := uc.PopularCategories(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, int64(3), resp[0].ServicesCount)
		repoMock.AssertExpectations(t)
	})
}

func TestTrendingCategories(t *testing.T) {
	setup()
	defer teardown()

	repoMock.On("TrendingCategories", mock.Anything, mock.MatchedBy(func(since time.Time) bool {
		age := time.Since(since)
		return age > 30*24*time.Hour-time.Minute && age < 30*24*time.Hour+time.Minute
	}), 6).Return([]entity.CategoryStat{}, nil).Once()

	resp, err := uc.TrendingCategories(context.Background(), 0)

	require.NoError(t, err)
	assert.Empty(t, resp)
	repoMock.AssertExpectations(t)
}

func TestAutocomplete(t *testing.T) {
	setup()
	defer teardown()

	resp, err := uc.Autocomplete(context.Background(), " p ")
	require.NoError(t, err)
	assert.Empty(t, resp)
	repoMock.AssertNotCalled(t, "AutocompleteCategories", mock.Anything, mock.Anything, mock.Anything)

	repoMock.On("AutocompleteCategories", mock.Anything, "pl", 10).Return([]entity.CategoryStat{{ID: 4, Name: "Plumbing"}}, nil).Once()
	resp, err = uc.Autocomplete(context.Background(), "pl")
	require.NoError(t, err)
	assert.Len(t, resp, 1)
}

func TestCreateService(t *testing.T) {
	ctx := context.Background()

	t.Run("active with default duration", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindProviderID", mock.Anything, int64(7)).Return(int64(3), nil).Once()
		repoMock.On("FindCategory", mock.Anything, int64(4)).Return(plumbing(), nil).Once()
		repoMock.On("InsertService", mock.Anything, mock.MatchedBy(func(s entity.Service) bool {
			return s.ProviderID == 3 && s.Duration == 60 && s.Status == entity.ServiceActive &&
				s.Price.Equal(decimal.RequireFromString("45.5"))
		})).Return(entity.Service{ID: 9}, nil).Once()
		repoMock.On("InvalidatePopular", mock.Anything).Return().Once()
		repoMock.On("FindListing", mock.Anything, int64(9)).Return(entity.Listing{
			Service:        entity.Service{ID: 9, ProviderID: 3, Title: "Fix a leak", Price: decimal.RequireFromString("45.50"), Duration: 60, Status: "active"},
			CategoryName:   sql.NullString{String: "Plumbing", Valid: true},
			ProviderUserID: sql.NullInt64{Int64: 7, Valid: true},
			ProviderName:   sql.NullString{String: "Bob", Valid: true},
		}, nil).Once()

		resp, err := uc.CreateService(ctx, 7, &request.CreateService{CategoryID: 4, Title: "Fix a leak", Price: price("45.50")})

		require.NoError(t, err)
		assert.Equal(t, "Plumbing", resp.CategoryName)
		assert.Equal(t, int64(7), resp.Provider.UserID)
	})

	t.Run("negative price", func(t *testing.T) {
		setup()
		defer teardown()

		_, err := uc.CreateService(ctx, 7, &request.CreateService{CategoryID: 4, Title: "x", Price: price("-1")})

		assert.True(t, errors.Is(err, errors.KindValidation))
	})

	t.Run("unknown category", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindProviderID", mock.Anything, int64(7)).Return(int64(3), nil).Once()
		repoMock.On("FindCategory", mock.Anything, int64(99)).Return(entity.Category{}, errors.NotFound("category not found")).Once()

		_, err := uc.CreateService(ctx, 7, &request.CreateService{CategoryID: 99, Title: "x", Price: price("10")})

		assert.Equal(t, errors.NotFound("category not found"), err)
	})
}

func TestUpdateService(t *testing.T) {
	setup()
	defer teardown()

	current := entity.Service{ID: 9, ProviderID: 3, CategoryID: 4, Title: "Fix a leak", Price: decimal.RequireFromString("45"), Duration: 60, Status: "active"}
	title := "Fix any leak"
	status := "pending"

	repoMock.On("FindProviderID", mock.Anything, int64(7)).Return(int64(3), nil).Once()
	repoMock.On("FindService", mock.Anything, int64(9), int64(3)).Return(current, nil).Once()
	repoMock.On("UpdateService", mock.Anything, mock.MatchedBy(func(s entity.Service) bool {
		return s.Title == title && s.Status == status && s.Duration == 60 && s.CategoryID == 4 &&
			s.Price.Equal(decimal.RequireFromString("45"))
	})).Return(nil).Once()
	repoMock.On("InvalidatePopular", mock.Anything).Return().Once()
	repoMock.On("FindListing", mock.Anything, int64(9)).Return(entity.Listing{Service: current}, nil).Once()

	_, err := uc.UpdateService(context.Background(), 7, 9, &request.UpdateService{Title: &title, Status: &status})

	require.NoError(t, err)
	repoMock.AssertExpectations(t)
}

func TestDeleteService(t *testing.T) {
	t.Run("open bookings", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindProviderID", mock.Anything, int64(7)).Return(int64(3), nil).Once()
		repoMock.On("FindService", mock.Anything, int64(9), int64(3)).Return(entity.Service{ID: 9}, nil).Once()
		repoMock.On("CountOpenBookings", mock.Anything, int64(9)).Return(int64(1), nil).Once()

		err := uc.DeleteService(context.Background(), 7, 9)

		assert.Equal(t, errors.Conflict("service has pending or accepted bookings"), err)
		repoMock.AssertNotCalled(t, "DeleteService", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("deleted", func(t *testing.T) {
		setup()
		defer teardown()

		repoMock.On("FindProviderID", mock.Anything, int64(7)).Return(int64(3), nil).Once()
		repoMock.On("FindService", mock.Anything, int64(9), int64(3)).Return(entity.Service{ID: 9}, nil).Once()
		repoMock.On("CountOpenBookings", mock.Anything, int64(9)).Return(int64(0), nil).Once()
		repoMock.On("DeleteService", mock.Anything, int64(9), int64(3)).Return(nil).Once()
		repoMock.On("InvalidatePopular", mock.Anything).Return().Once()

		require.NoError(t, uc.DeleteService(context.Background(), 7, 9))
		repoMock.AssertExpectations(t)
	})
}

func TestListServices(t *testing.T) {
	setup()
	defer teardown()

	repoMock.On("FindListings", mock.Anything, mock.MatchedBy(func(f entity.ServiceFilter) bool {
		return f.Limit == 50 && f.CategoryID == 4 && f.MinPrice.Valid && f.MinPrice.Decimal.Equal(decimal.NewFromInt(20)) && !f.MaxPrice.Valid
	})).Return([]entity.Listing{}, nil).Once()

	resp, err := uc.ListServices(context.Background(), &request.ListServices{CategoryID: 4, MinPrice: "20"})

	require.NoError(t, err)
	assert.NotNil(t, resp)
	repoMock.AssertExpectations(t)
}

func TestCategoryServices(t *testing.T) {
	setup()
	defer teardown()

	repoMock.On("FindCategory", mock.Anything, int64(4)).Return(plumbing(), nil).Once()
	repoMock.On("FindListings", mock.Anything, mock.MatchedBy(func(f entity.ServiceFilter) bool {
		return f.CategoryID == 4 && f.VerifiedOnly
	})).Return([]entity.Listing{{Service: entity.Service{ID: 9}}, {Service: entity.Service{ID: 10}}}, nil).Once()

	resp, err := uc.CategoryServices(context.Background(), 4, &request.ListServices{VerifiedOnly: true})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "plumbing", resp.Category.Slug)
}
