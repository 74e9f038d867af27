package entity

import (
	"database/sql"
	"time"
)

const (
	DocumentPending  = "pending"
	DocumentApproved = "approved"
	DocumentRejected = "rejected"
)

// Profile is a provider account: the user row joined with its provider profile,
// which may not exist yet.
type Profile struct {
	UserID           int64           `db:"user_id"`
	Name             string          `db:"name"`
	Email            string          `db:"email"`
	Phone            sql.NullString  `db:"phone"`
	Avatar           sql.NullString  `db:"avatar"`
	Status           string          `db:"status"`
	ProviderID       sql.NullInt64   `db:"provider_id"`
	Bio              sql.NullString  `db:"bio"`
	Specialty        sql.NullString  `db:"specialty"`
	Address          sql.NullString  `db:"address"`
	FormattedAddress sql.NullString  `db:"formatted_address"`
	Latitude         sql.NullFloat64 `db:"latitude"`
	Longitude        sql.NullFloat64 `db:"longitude"`
	Verified         sql.NullBool    `db:"verified"`
}

type Details struct {
	Bio              sql.NullString
	Specialty        sql.NullString
	Address          sql.NullString
	FormattedAddress sql.NullString
}

type Location struct {
	Latitude         float64
	Longitude        float64
	Address          sql.NullString
	FormattedAddress sql.NullString
}

type Document struct {
	ID         int64     `db:"id"`
	ProviderID int64     `db:"provider_id"`
	Type       string    `db:"type"`
	FileURL    string    `db:"file_url"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}
