package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marketplace-service/internal/module/catalog/models/entity"
	"marketplace-service/internal/pkg/database"
	"marketplace-service/internal/pkg/errors"
	"marketplace-service/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

const popularCacheKey = "catalog:categories:popular"

type repositories struct {
	db          *sqlx.DB
	log         log.Logger
	redisClient *redis.Client
}

type Repositories interface {
	// categories
	FindCategories(ctx context.Context, q string, limit, offset int) ([]entity.Category, error)
	FindCategory(ctx context.Context, id int64) (entity.Category, error)
	CategoryNameTaken(ctx context.Context, name string, exceptID int64) (bool, error)
	InsertCategory(ctx context.Context, category entity.Category) (entity.Category, error)
	UpdateCategory(ctx context.Context, category entity.Category) (entity.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	CountServices(ctx context.Context, categoryID int64, activeOnly bool) (int64, error)
	// category rankings
	CategoryStats(ctx context.Context) ([]entity.CategoryStat, error)
	PopularCategories(ctx context.Context, limit int) ([]entity.CategoryStat, error)
	TrendingCategories(ctx context.Context, since time.Time, limit int) ([]entity.CategoryStat, error)
	AutocompleteCategories(ctx context.Context, prefix string, limit int) ([]entity.CategoryStat, error)
	// redis
	CachedPopular(ctx context.Context, limit int) ([]entity.CategoryStat, bool)
	CachePopular(ctx context.Context, limit int, stats []entity.CategoryStat, ttl time.Duration)
	InvalidatePopular(ctx context.Context)
	// services
	FindProviderID(ctx context.Context, userID int64) (int64, error)
	InsertService(ctx context.Context, service entity.Service) (entity.Service, error)
	FindService(ctx context.Context, id, providerID int64) (entity.Service, error)
	UpdateService(ctx context.Context, service entity.Service) error
	DeleteService(ctx context.Context, id, providerID int64) error
	CountOpenBookings(ctx context.Context, serviceID int64) (int64, error)
	FindListing(ctx context.Context, id int64) (entity.Listing, error)
	FindListings(ctx context.Context, filter entity.ServiceFilter) ([]entity.Listing, error)
}

func New(db *sqlx.DB, log log.Logger, redisClient *redis.Client) Repositories {
	return &repositories{
		db:          db,
		log:         log,
		redisClient: redisClient,
	}
}

const categoryColumns = `id, name, slug, description, icon, created_at, updated_at`

func (r *repositories) FindCategories(ctx context.Context, q string, limit, offset int) ([]entity.Category, error) {
	categories := []entity.Category{}
	err := database.Conn(ctx, r.db).SelectContext(ctx, &categories,
		`SELECT `+categoryColumns+` FROM categories
		WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`, q, limit, offset)
	if err != nil {
		r.log.Error(ctx, "error find categories", err)
		return nil, errors.InternalServerError("error find categories")
	}
	return categories, nil
}

func (r *repositories) FindCategory(ctx context.Context, id int64) (entity.Category, error) {
	var c entity.Category
	err := database.Conn(ctx, r.db).GetContext(ctx, &c, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	if err != nil {
		return entity.Category{}, database.Translate(err, "category not found", "error find category")
	}
	return c, nil
}

func (r *repositories) CategoryNameTaken(ctx context.Context, name string, exceptID int64) (bool, error) {
	var taken bool
	err := database.Conn(ctx, r.db).GetContext(ctx, &taken,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE LOWER(name) = LOWER($1) AND id <> $2)`, name, exceptID)
	if err != nil {
		r.log.Error(ctx, "error check category name", err)
		return false, errors.InternalServerError("error check category name")
	}
	return taken, nil
}

func (r *repositories) InsertCategory(ctx context.Context, c entity.Category) (entity.Category, error) {
	var out entity.Category
	err := database.Conn(ctx, r.db).QueryRowxContext(ctx,
		`INSERT INTO categories (name, slug, description, icon) VALUES ($1, $2, $3, $4)
		RETURNING `+categoryColumns, c.Name, c.Slug, c.Description, c.Icon,
	).StructScan(&out)
	if err != nil {
		if _, ok := database.IsUniqueViolation(err); ok {
			return entity.Category{}, errors.Conflict("category already exists")
		}
		r.log.Error(ctx, "error insert category", err)
		return entity.Category{}, errors.InternalServerError("error insert category")
	}
	return out, nil
}

func (r *repositories) UpdateCategory(ctx context.Context, c entity.Category) (entity.Category, error) {
	var out entity.Category
	err := database.Conn(ctx, r.db).QueryRowxContext(ctx,
		`UPDATE categories SET name = $1, slug = $2, description = $3, icon = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING `+categoryColumns, c.Name, c.Slug, c.Description, c.Icon, c.ID,
	).StructScan(&out)
	if err != nil {
		if _, ok := database.IsUniqueViolation(err); ok {
			return entity.Category{}, errors.Conflict("category already exists")
		}
		return entity.Category{}, database.Translate(err, "category not found", "error update category")
	}
	return out, nil
}

func (r *repositories) DeleteCategory(ctx context.Context, id int64) error {
	_, err := database.Conn(ctx, r.db).ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.Conflict("category is used by services")
		}
		r.log.Error(ctx, "error delete category", err)
		return errors.InternalServerError("error delete category")
	}
	return nil
}

func (r *repositories) CountServices(ctx context.Context, categoryID int64, activeOnly bool) (int64, error) {
	var total int64
	err := database.Conn(ctx, r.db).GetContext(ctx, &total,
		`SELECT COUNT(*) FROM services WHERE category_id = $1 AND (NOT $2 OR status = 'active')`, categoryID, activeOnly)
	if err != nil {
		r.log.Error(ctx, "error count services", err)
		return 0, errors.InternalServerError("error count services")
	}
	return total, nil
}

const statSelect = `SELECT c.id, c.name, c.slug, c.icon,
		COUNT(DISTINCT s.id) AS services_count,
		COUNT(DISTINCT s.provider_id) AS providers_count
	FROM categories c`

func (r *repositories) selectStats(ctx context.Context, op string, query string, args ...interface{}) ([]entity.CategoryStat, error) {
	stats := []entity.CategoryStat{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &stats, query, args...); err != nil {
		r.log.Error(ctx, "error "+op, err)
		return nil, errors.InternalServerError("error " + op)
	}
	return stats, nil
}

func (r *repositories) CategoryStats(ctx context.Context) ([]entity.CategoryStat, error) {
	return r.selectStats(ctx, "category stats", statSelect+`
		LEFT JOIN services s ON s.category_id = c.id AND s.status = 'active'
		GROUP BY c.id
		ORDER BY services_count DESC, c.name ASC`)
}

func (r *repositories) PopularCategories(ctx context.Context, limit int) ([]entity.CategoryStat, error) {
	return r.selectStats(ctx, "popular categories", statSelect+`
		JOIN services s ON s.category_id = c.id AND s.status = 'active'
		GROUP BY c.id
		ORDER BY services_count DESC, providers_count DESC, c.name ASC
		LIMIT $1`, limit)
}

func (r *repositories) TrendingCategories(ctx context.Context, since time.Time, limit int) ([]entity.CategoryStat, error) {
	return r.selectStats(ctx, "trending categories", statSelect+`
		JOIN services s ON s.category_id = c.id AND s.status = 'active' AND s.created_at >= $1
		GROUP BY c.id
		ORDER BY services_count DESC, c.name ASC
		LIMIT $2`, since, limit)
}

func (r *repositories) AutocompleteCategories(ctx context.Context, prefix string, limit int) ([]entity.CategoryStat, error) {
	return r.selectStats(ctx, "autocomplete categories", statSelect+`
		LEFT JOIN services s ON s.category_id = c.id AND s.status = 'active'
		WHERE c.name ILIKE $1 || '%'
		GROUP BY c.id
		ORDER BY services_count DESC, c.name ASC
		LIMIT $2`, prefix, limit)
}

// CachedPopular reports a cache miss on any redis error.
func (r *repositories) CachedPopular(ctx context.Context, limit int) ([]entity.CategoryStat, bool) {
	data, err := r.redisClient.HGet(ctx, popularCacheKey, fmt.Sprintf("%d", limit)).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.log.Warn(ctx, "error read popular categories cache", err)
		}
		return nil, false
	}
	var stats []entity.CategoryStat
	if err := json.Unmarshal(data, &stats); err != nil {
		r.log.Warn(ctx, "error decode popular categories cache", err)
		return nil, false
	}
	return stats, true
}

func (r *repositories) CachePopular(ctx context.Context, limit int, stats []entity.CategoryStat, ttl time.Duration) {
	data, err := json.Marshal(stats)
	if err != nil {
		r.log.Warn(ctx, "error encode popular categories", err)
		return
	}
	if err := r.redisClient.HSet(ctx, popularCacheKey, fmt.Sprintf("%d", limit), data).Err(); err != nil {
		r.log.Warn(ctx, "error write popular categories cache", err)
		return
	}
	if err := r.redisClient.Expire(ctx, popularCacheKey, ttl).Err(); err != nil {
		r.log.Warn(ctx, "error expire popular categories cache", err)
	}
}

func (r *repositories) InvalidatePopular(ctx context.Context) {
	if err := r.redisClient.Del(ctx, popularCacheKey).Err(); err != nil {
		r.log.Warn(ctx, "error invalidate popular categories cache", err)
	}
}

func (r *repositories) FindProviderID(ctx context.Context, userID int64) (int64, error) {
	var id int64
	err := database.Conn(ctx, r.db).GetContext(ctx, &id, `SELECT id FROM provider_profiles WHERE user_id = $1`, userID)
	if err != nil {
		return 0, database.Translate(err, "provider profile not found", "error find provider profile")
	}
	return id, nil
}

const serviceColumns = `id, provider_id, category_id, title, description, price, duration, status, created_at, updated_at`

func (r *repositories) InsertService(ctx context.Context, s entity.Service) (entity.Service, error) {
	var out entity.Service
	err := database.Conn(ctx, r.db).QueryRowxContext(ctx,
		`INSERT INTO services (provider_id, category_id, title, description, price, duration, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+serviceColumns,
		s.ProviderID, s.CategoryID, s.Title, s.Description, s.Price, s.Duration, s.Status,
	).StructScan(&out)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return entity.Service{}, errors.NotFound("category not found")
		}
		r.log.Error(ctx, "error insert service", err)
		return entity.Service{}, errors.InternalServerError("error insert service")
	}
	return out, nil
}

func (r *repositories) FindService(ctx context.Context, id, providerID int64) (entity.Service, error) {
	var s entity.Service
	err := database.Conn(ctx, r.db).GetContext(ctx, &s,
		`SELECT `+serviceColumns+` FROM services WHERE id = $1 AND provider_id = $2`, id, providerID)
	if err != nil {
		return entity.Service{}, database.Translate(err, "service not found", "error find service")
	}
	return s, nil
}

func (r *repositories) UpdateService(ctx context.Context, s entity.Service) error {
	_, err := database.Conn(ctx, r.db).ExecContext(ctx,
		`UPDATE services SET category_id = $1, title = $2, description = $3, price = $4, duration = $5,
			status = $6, updated_at = NOW()
		WHERE id = $7 AND provider_id = $8`,
		s.CategoryID, s.Title, s.Description, s.Price, s.Duration, s.Status, s.ID, s.ProviderID)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.NotFound("category not found")
		}
		r.log.Error(ctx, "error update service", err)
		return errors.InternalServerError("error update service")
	}
	return nil
}

func (r *repositories) DeleteService(ctx context.Context, id, providerID int64) error {
	res, err := database.Conn(ctx, r.db).ExecContext(ctx,
		`DELETE FROM services WHERE id = $1 AND provider_id = $2`, id, providerID)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.Conflict("service has booking history")
		}
		r.log.Error(ctx, "error delete service", err)
		return errors.InternalServerError("error delete service")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.NotFound("service not found")
	}
	return nil
}

func (r *repositories) CountOpenBookings(ctx context.Context, serviceID int64) (int64, error) {
	var total int64
	err := database.Conn(ctx, r.db).GetContext(ctx, &total,
		`SELECT COUNT(*) FROM bookings WHERE service_id = $1 AND status IN ('pending', 'accepted')`, serviceID)
	if err != nil {
		r.log.Error(ctx, "error count open bookings", err)
		return 0, errors.InternalServerError("error count open bookings")
	}
	return total, nil
}

const listingSelect = `SELECT s.id, s.provider_id, s.category_id, s.title, s.description, s.price, s.duration,
		s.status, s.created_at, s.updated_at,
		c.name AS category_name, c.icon AS category_icon,
		u.id AS provider_user_id, u.name AS provider_name, u.avatar AS provider_avatar,
		p.specialty AS provider_specialty, p.address AS provider_address, p.verified AS provider_verified
	FROM services s
	LEFT JOIN categories c ON c.id = s.category_id
	LEFT JOIN provider_profiles p ON p.id = s.provider_id
	LEFT JOIN users u ON u.id = p.user_id`

func (r *repositories) FindListing(ctx context.Context, id int64) (entity.Listing, error) {
	var l entity.Listing
	if err := database.Conn(ctx, r.db).GetContext(ctx, &l, listingSelect+` WHERE s.id = $1`, id); err != nil {
		return entity.Listing{}, database.Translate(err, "service not found", "error find service")
	}
	return l, nil
}

var listingSorts = map[string]string{
	"created_at": "s.created_at",
	"price":      "s.price",
	"title":      "s.title",
	"duration":   "s.duration",
}

// FindListings lists services. A zero ProviderID restricts the result to active services.
func (r *repositories) FindListings(ctx context.Context, f entity.ServiceFilter) ([]entity.Listing, error) {
	query, args := listingQuery(f)
	listings := []entity.Listing{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &listings, query, args...); err != nil {
		r.log.Error(ctx, "error find services", err)
		return nil, errors.InternalServerError("error find services")
	}
	return listings, nil
}

func listingQuery(f entity.ServiceFilter) (string, []interface{}) {
	var (
		where []string
		args  []interface{}
	)
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if f.ProviderID > 0 {
		add("s.provider_id = $%d", f.ProviderID)
	} else {
		where = append(where, "s.status = 'active'")
	}
	if f.CategoryID > 0 {
		add("s.category_id = $%d", f.CategoryID)
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		args = append(args, q)
		where = append(where, fmt.Sprintf("(s.title ILIKE '%%' || $%d || '%%' OR s.description ILIKE '%%' || $%d || '%%')", len(args), len(args)))
	}
	if f.MinPrice.Valid {
		add("s.price >= $%d", f.MinPrice.Decimal)
	}
	if f.MaxPrice.Valid {
		add("s.price <= $%d", f.MaxPrice.Decimal)
	}
	if f.VerifiedOnly {
		where = append(where, "p.verified")
	}

	query := listingSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	sort, ok := listingSorts[f.Sort]
	if !ok {
		sort = listingSorts["created_at"]
	}
	order := "DESC"
	if strings.EqualFold(f.Order, "asc") {
		order = "ASC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s, s.id DESC", sort, order)

	if f.Limit > 0 {
		args = append(args, f.Limit, f.Offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}
	return query, args
}
