package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

const (
	ServiceActive   = "active"
	ServicePending  = "pending"
	ServiceRejected = "rejected"

	DefaultDuration = 60
)

type Category struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Slug        string         `db:"slug"`
	Description sql.NullString `db:"description"`
	Icon        sql.NullString `db:"icon"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   sql.NullTime   `db:"updated_at"`
}

// CategoryStat counts active services and distinct providers in a category.
type CategoryStat struct {
	ID             int64          `db:"id" json:"id"`
	Name           string         `db:"name" json:"name"`
	Slug           string         `db:"slug" json:"slug"`
	Icon           sql.NullString `db:"icon" json:"icon"`
	ServicesCount  int64          `db:"services_count" json:"services_count"`
	ProvidersCount int64          `db:"providers_count" json:"providers_count"`
}

type Service struct {
	ID          int64           `db:"id"`
	ProviderID  int64           `db:"provider_id"`
	CategoryID  int64           `db:"category_id"`
	Title       string          `db:"title"`
	Description sql.NullString  `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Duration    int             `db:"duration"`
	Status      string          `db:"status"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   sql.NullTime    `db:"updated_at"`
}

// Listing is a service joined with its category and provider.
type Listing struct {
	Service
	CategoryName      sql.NullString `db:"category_name"`
	CategoryIcon      sql.NullString `db:"category_icon"`
	ProviderUserID    sql.NullInt64  `db:"provider_user_id"`
	ProviderName      sql.NullString `db:"provider_name"`
	ProviderAvatar    sql.NullString `db:"provider_avatar"`
	ProviderSpecialty sql.NullString `db:"provider_specialty"`
	ProviderAddress   sql.NullString `db:"provider_address"`
	ProviderVerified  sql.NullBool   `db:"provider_verified"`
}

type ServiceFilter struct {
	Query        string
	CategoryID   int64
	ProviderID   int64
	MinPrice     decimal.NullDecimal
	MaxPrice     decimal.NullDecimal
	VerifiedOnly bool
	Sort         string
	Order        string
	Limit        int
	Offset       int
}
