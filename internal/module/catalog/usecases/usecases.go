package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"marketplace-service/internal/module/catalog/models/entity"
	"marketplace-service/internal/module/catalog/models/request"
	"marketplace-service/internal/module/catalog/models/response"
	"marketplace-service/internal/module/catalog/repositories"
	"marketplace-service/internal/pkg/database"
	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/log"
	"marketplace-service/internal/pkg/storage"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"go.elastic.co/apm"
)

const (
	defaultCategoryLimit = 50
	defaultRankingLimit  = 6
	defaultServiceLimit  = 50
	autocompleteLimit    = 10
	autocompleteMinChars = 2
)

type Options struct {
	PopularTTL     time.Duration
	TrendingWindow time.Duration
}

type usecase struct {
	repo    repositories.Repositories
	tx      database.Transactor
	storage storage.Storage
	log     log.Logger
	opts    Options
	now     func() time.Time
}

type Usecase interface {
	// categories
	ListCategories(ctx context.Context, req *request.ListCategories) ([]response.Category, error)
	GetCategory(ctx context.Context, id int64) (response.Category, error)
	CreateCategory(ctx context.Context, req *request.CreateCategory, icon *multipart.FileHeader) (response.Category, error)
	UpdateCategory(ctx context.Context, id int64, req *request.UpdateCategory, icon *multipart.FileHeader) (response.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	CategoryStats(ctx context.Context) ([]response.CategoryStat, error)
	PopularCategories(ctx context.Context, limit int) ([]response.CategoryStat, error)
	TrendingCategories(ctx context.Context, limit int) ([]response.CategoryStat, error)
	Autocomplete(ctx context.Context, q string) ([]response.CategoryStat, error)
	CategoryServices(ctx context.Context, id int64, req *request.ListServices) (response.CategoryServices, error)
	// services
	CreateService(ctx context.Context, userID int64, req *request.CreateService) (response.Service, error)
	ListMyServices(ctx context.Context, userID int64) ([]response.Service, error)
	UpdateService(ctx context.Context, userID, id int64, req *request.UpdateService) (response.Service, error)
	DeleteService(ctx context.Context, userID, id int64) error
	ListServices(ctx context.Context, req *request.ListServices) ([]response.Service, error)
	ServicesByCategory(ctx context.Context, categoryID int64) ([]response.Service, error)
}

func New(repo repositories.Repositories, tx database.Transactor, store storage.Storage, log log.Logger, opts Options) Usecase {
	if opts.PopularTTL <= 0 {
		opts.PopularTTL = 5 * time.Minute
	}
	if opts.TrendingWindow <= 0 {
		opts.TrendingWindow = 30 * 24 * time.Hour
	}
	return &usecase{
		repo:    repo,
		tx:      tx,
		storage: store,
		log:     log,
		opts:    opts,
		now:     time.Now,
	}
}

func (u *usecase) ListCategories(ctx context.Context, req *request.ListCategories) ([]response.Category, error) {
	span, ctx := apm.StartSpan(ctx, "catalog.ListCategories", "usecase")
	defer span.End()

	limit := req.Limit
	if limit <= 0 {
		limit = defaultCategoryLimit
	}

	categories, err := u.repo.FindCategories(ctx, strings.TrimSpace(req.Q), limit, req.Offset)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Category, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, toCategory(c))
	}
	return resp, nil
}

func (u *usecase) GetCategory(ctx context.Context, id int64) (response.Category, error) {
	span, ctx := apm.StartSpan(ctx, "catalog.GetCategory", "usecase")
	defer span.End()

	c, err := u.repo.FindCategory(ctx, id)
	if err != nil {
		return response.Category{}, err
	}
	count, err := u.repo.CountServices(ctx, id, true)
	if err != nil {
		return response.Category{}, err
	}

	resp := toCategory(c)
	resp.ServicesCount = &count
	return resp, nil
}

func (u *usecase) CreateCategory(ctx context.Context, req *request.CreateCategory, icon *multipart.FileHeader) (response.Category, error) {
	span, ctx := apm.StartSpan(ctx, "catalog.CreateCategory", "usecase")
	defer span.End()

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return response.Category{}, errors.ValidationError("name: required")
	}

	taken, err := u.repo.CategoryNameTaken(ctx, name, 0)
	if err != nil {
		return response.Category{}, err
	}
	if taken {
		return response.Category{}, errors.Conflict("category already exists")
	}

	iconURL, err := u.storeIcon(ctx, icon)
	if err != nil {
		return response.Category{}, err
	}

	c, err := u.repo.InsertCategory(ctx, entity.Category{
		Name:        name,
		Slug:        slug.Make(name),
		Description: nullString(strings.TrimSpace(req.Description)),
		Icon:        nullString(iconURL),
	})
	if err != nil {
		u.removeFile(ctx, iconURL)
		return response.Category{}, err
	}

	u.repo.InvalidatePopular(ctx)
	return toCategory(c), nil
}

func (u *usecase) UpdateCategory(ctx context.Context, id int64, req *request.UpdateCategory, icon *multipart.FileHeader) (response.Category, error) {
	span, ctx := apm.StartSpan(ctx, "catalog.UpdateCategory", "usecase")
	defer span.End()

	c, err := u.repo.FindCategory(ctx, id)
	if err != nil {
		return response.Category{}, err
	}

	if name := strings.TrimSpace(req.Name); name != "" && name != c.Name {
		taken, err := u.repo.CategoryNameTaken(ctx, name, id)
		if err != nil {
			return response.Category{}, err
		}
		if taken {
			return response.Category{}, errors.Conflict("category already exists")
		}
		c.Name = name
		c.Slug = slug.Make(name)
	}
	if desc := strings.TrimSpace(req.Description); desc != "" {
		c.Description = nullString(desc)
	}

	oldIcon := c.Icon.String
	iconURL, err := u.storeIcon(ctx, icon)
	if err != nil {
		return response.Category{}, err
	}
	if iconURL != "" {
		c.Icon = nullString(iconURL)
	}

	updated, err := u.repo.UpdateCategory(ctx, c)
	if err != nil {
		u.removeFile(ctx, iconURL)
		return response.Category{}, err
	}
	if iconURL != "" && oldIcon != "" {
		u.removeFile(ctx, oldIcon)
	}

	u.repo.InvalidatePopular(ctx)
	return toCategory(updated), nil
}

// DeleteCategory refuses while any service, active or not, still references the category.
func (u *usecase) DeleteCategory(ctx context.Context, id int64) error {
	span, ctx := apm.StartSpan(ctx, "catalog.DeleteCategory", "usecase")
	defer span.End()

	c, err := u.repo.FindCategory(ctx, id)
	if err != nil {
		return err
	}

	count, err := u.repo.CountServices(ctx, id, false)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.Conflict(fmt.Sprintf("category is used by %d service(s)", count))
	}

	if err := u.repo.DeleteCategory(ctx, id); err != nil {
		return err
	}
	if c.Icon.Valid {
		u.removeFile(ctx, c.Icon.String)
	}

	u.repo.InvalidatePopular(ctx)
	return nil
}

func (u *usecase) CategoryStats(ctx context.Context) ([]response.CategoryStat, error) {
	span, ctx := apm.StartSpan(ctx, "catalog.CategoryStats", "usecase")
	defer span.End()

	stats, err := u.repo.CategoryStats(ctx)
	if err != nil {
		return nil, err
	}
	return toStats(stats), nil
}

// PopularCategories is served from redis when possible.
func (u *usecase) PopularCategories(ctx context.Context, limit int) ([]response.CategoryStat, error) {
	span, ctx := apm.StartSpan(ctx, "catalog.PopularCategories", "usecase")
	defer span.End()

	if limit <= 0 {
		limit = defaultRankingLimit
	}

	if cached, ok := u.repo.CachedPopular(ctx, limit); ok {
		return toStats(cached), nil
	}

	stats, err := u.repo.PopularCategories(ctx, limit)
	if err != nil {
		return nil, err
	}
	u.repo.CachePopular(ctx, limit, stats, u.opts.PopularTTL)
	return toStats(stats), nil
}

func (u *usecase) TrendingCategories(ctx context.Context, limit int) ([]response.CategoryStat, error) {
	span, ctx := apm.StartSpan(ctx, "catalog.TrendingCategories", "usecase")
	defer span.End()

	if limit <= 0 {
		limit = defaultRankingLimit
	}

	stats, err := u.repo.TrendingCategories(ctx, u.now().Add(-u.opts.TrendingWindow), limit)
	if err != nil {
		return nil, err
	}
	return toStats(stats), nil
}

func (u *usecase) Autocomplete(ctx context.Context, q string) ([]response.CategoryStat, error) {
	span, ctx := apm.StartSpan(ctx, "catalog.Autocomplete", "usecase")
	defer span.End()

	q = strings.TrimSpace(q)
	if len([]rune(q)) < autocompleteMinChars {
		return []response.CategoryStat{}, nil
	}

	stats, err := u.repo.AutocompleteCategories(ctx, q, autocompleteLimit)
	if err != nil {
		return nil, err
	}
	return toStats(stats), nil
}

func (u *usecase) CategoryServices(ctx context.Context, id int64, req *request.ListServices) (response.CategoryServices, error) {
	span, ctx := apm.StartSpan(ctx, "catalog.CategoryServices", "usecase")
	defer span.End()

	c, err := u.repo.FindCategory(ctx, id)
	if err != nil {
		return response.CategoryServices{}, err
	}

	filter, err := toFilter(req)
	if err != nil {
		return response.CategoryServices{}, err
	}
	filter.CategoryID = id

	listings, err := u.repo.FindListings(ctx, filter)
	if err != nil {
		return response.CategoryServices{}, err
	}

	services := toServices(listings)
	return response.CategoryServices{Category: toCategory(c), Services: services, Total: len(services)}, nil
}

func (u *usecase) CreateService(ctx context.Context, userID int64, req *request.CreateService) (response.Service, error) {
	span, ctx := apm.StartSpan(ctx, "catalog.CreateService", "usecase")
	defer span.End()

	if req.Price == nil || req.Price.IsNegative() {
		return response.Service{}, errors.ValidationError("price: must be zero or more")
	}

	providerID, err := u.repo.FindProviderID(ctx, userID)
	if err != nil {
		return response.Service{}, err
	}
	if _, err := u.repo.FindCategory(ctx, req.CategoryID); err != nil {
		return response.Service{}, err
	}

	duration := req.Duration
	if duration <= 0 {
		duration = entity.DefaultDuration
	}

	s, err := u.repo.InsertService(ctx, entity.Service{
		ProviderID:  providerID,
		CategoryID:  req.CategoryID,
		Title:       strings.TrimSpace(req.Title),
		Description: nullString(strings.TrimSpace(req.Description)),
		Price:       req.Price.Round(2),
		Duration:    duration,
		Status:      entity.ServiceActive,
	})
	if err != nil {
		return response.Service{}, err
	}

	u.repo.InvalidatePopular(ctx)
	return u.listing(ctx, s.ID)
}

func (u *usecase) ListMyServices(ctx context.Context, userID int64) ([]response.Service, error) {
	span, ctx := apm.StartSpan(ctx, "catalog.ListMyServices", "usecase")
	defer span.End()

	providerID, err := u.repo.FindProviderID(ctx, userID)
	if err != nil {
		return nil, err
	}

	listings, err := u.repo.FindListings(ctx, entity.ServiceFilter{ProviderID: providerID})
	if err != nil {
		return nil, err
	}
	return toServices(listings), nil
}

func (u *usecase) UpdateService(ctx context.Context, userID, id int64, req *request.UpdateService) (response.Service, error) {
	span, ctx := apm.StartSpan(ctx, "catalog.UpdateService", "usecase")
	defer span.End()

	if req.Price != nil && req.Price.IsNegative() {
		return response.Service{}, errors.ValidationError("price: must be zero or more")
	}

	providerID, err := u.repo.FindProviderID(ctx, userID)
	if err != nil {
		return response.Service{}, err
	}
	s, err := u.repo.FindService(ctx, id, providerID)
	if err != nil {
		return response.Service{}, err
	}

	if req.CategoryID != nil && *req.CategoryID != s.CategoryID {
		if _, err := u.repo.FindCategory(ctx, *req.CategoryID); err != nil {
			return response.Service{}, err
		}
		s.CategoryID = *req.CategoryID
	}
	if req.Title != nil {
		s.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		s.Description = nullString(strings.TrimSpace(*req.Description))
	}
	if req.Price != nil {
		s.Price = req.Price.Round(2)
	}
	if req.Duration != nil {
		s.Duration = *req.Duration
	}
	if req.Status != nil {
		s.Status = *req.Status
	}

	if err := u.repo.UpdateService(ctx, s); err != nil {
		return response.Service{}, err
	}

	u.repo.InvalidatePopular(ctx)
	return u.listing(ctx, s.ID)
}

// DeleteService refuses while the service has pending or accepted bookings.
func (u *usecase) DeleteService(ctx context.Context, userID, id int64) error {
	span, ctx := apm.StartSpan(ctx, "catalog.DeleteService", "usecase")
	defer span.End()

	providerID, err := u.repo.FindProviderID(ctx, userID)
	if err != nil {
		return err
	}

	err = u.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := u.repo.FindService(ctx, id, providerID); err != nil {
			return err
		}
		open, err := u.repo.CountOpenBookings(ctx, id)
		if err != nil {
			return err
		}
		if open > 0 {
			return errors.Conflict("service has pending or accepted bookings")
		}
		return u.repo.DeleteService(ctx, id, providerID)
	})
	if err != nil {
		return err
	}

	u.repo.InvalidatePopular(ctx)
	return nil
}

func (u *usecase) ListServices(ctx context.Context, req *request.ListServices) ([]response.Service, error) {
	span, ctx := apm.StartSpan(ctx, "catalog.ListServices", "usecase")
	defer span.End()

	filter, err := toFilter(req)
	if err != nil {
		return nil, err
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultServiceLimit
	}

	listings, err := u.repo.FindListings(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toServices(listings), nil
}

func (u *usecase) ServicesByCategory(ctx context.Context, categoryID int64) ([]response.Service, error) {
	span, ctx := apm.StartSpan(ctx, "catalog.ServicesByCategory", "usecase")
	defer span.End()

	listings, err := u.repo.FindListings(ctx, entity.ServiceFilter{CategoryID: categoryID})
	if err != nil {
		return nil, err
	}
	return toServices(listings), nil
}

func (u *usecase) listing(ctx context.Context, id int64) (response.Service, error) {
	l, err := u.repo.FindListing(ctx, id)
	if err != nil {
		return response.Service{}, err
	}
	return toService(l), nil
}

func (u *usecase) storeIcon(ctx context.Context, icon *multipart.FileHeader) (string, error) {
	if icon == nil {
		return "", nil
	}
	return u.storage.Store(ctx, storage.KindIcon, icon)
}

func (u *usecase) removeFile(ctx context.Context, url string) {
	if url == "" {
		return
	}
	if err := u.storage.Delete(ctx, url); err != nil {
		u.log.Warn(ctx, fmt.Sprintf("error remove file %s", url), err)
	}
}

func toFilter(req *request.ListServices) (entity.ServiceFilter, error) {
	f := entity.ServiceFilter{
		Query:        req.Q,
		CategoryID:   req.CategoryID,
		VerifiedOnly: req.VerifiedOnly,
		Sort:         req.Sort,
		Order:        req.Order,
		Limit:        req.Limit,
		Offset:       req.Offset,
	}
	if req.MinPrice != "" {
		v, err := decimal.NewFromString(req.MinPrice)
		if err != nil {
			return entity.ServiceFilter{}, errors.ValidationError("min_price: numeric")
		}
		f.MinPrice = decimal.NewNullDecimal(v)
	}
	if req.MaxPrice != "" {
		v, err := decimal.NewFromString(req.MaxPrice)
		if err != nil {
			return entity.ServiceFilter{}, errors.ValidationError("max_price: numeric")
		}
		f.MaxPrice = decimal.NewNullDecimal(v)
	}
	return f, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func toCategory(c entity.Category) response.Category {
	return response.Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description.String,
		Icon:        c.Icon.String,
		CreatedAt:   c.CreatedAt,
	}
}

func toStats(stats []entity.CategoryStat) []response.CategoryStat {
	resp := make([]response.CategoryStat, 0, len(stats))
	for _, s := range stats {
		resp = append(resp, response.CategoryStat{
			ID:             s.ID,
			Name:           s.Name,
			Slug:           s.Slug,
			Icon:           s.Icon.String,
			ServicesCount:  s.ServicesCount,
			ProvidersCount: s.ProvidersCount,
		})
	}
	return resp
}

func toService(l entity.Listing) response.Service {
	resp := response.Service{
		ID:           l.ID,
		ProviderID:   l.ProviderID,
		CategoryID:   l.CategoryID,
		CategoryName: l.CategoryName.String,
		CategoryIcon: l.CategoryIcon.String,
		Title:        l.Title,
		Description:  l.Description.String,
		Price:        l.Price,
		Duration:     l.Duration,
		Status:       l.Status,
		CreatedAt:    l.CreatedAt,
	}
	if l.ProviderUserID.Valid {
		resp.Provider = &response.Provider{
			ID:        l.ProviderID,
			UserID:    l.ProviderUserID.Int64,
			Name:      l.ProviderName.String,
			Avatar:    l.ProviderAvatar.String,
			Specialty: l.ProviderSpecialty.String,
			Address:   l.ProviderAddress.String,
			Verified:  l.ProviderVerified.Bool,
		}
	}
	return resp
}

func toServices(listings []entity.Listing) []response.Service {
	resp := make([]response.Service, 0, len(listings))
	for _, l := range listings {
		resp = append(resp, toService(l))
	}
	return resp
}
