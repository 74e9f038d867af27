package entity

import (
	"database/sql"
	"time"
)

const (
	RoleClient   = "client"
	RoleProvider = "provider"
	RoleAdmin    = "admin"

	StatusActive    = "active"
	StatusSuspended = "suspended"
)

type User struct {
	ID                 int64          `db:"id"`
	Name               string         `db:"name"`
	Email              string         `db:"email"`
	Phone              sql.NullString `db:"phone"`
	Password           sql.NullString `db:"password"`
	GoogleID           sql.NullString `db:"google_id"`
	IsGoogleAccount    bool           `db:"is_google_account"`
	Role               string         `db:"role"`
	Status             string         `db:"status"`
	Avatar             sql.NullString `db:"avatar"`
	ResetCodeHash      sql.NullString `db:"reset_code_hash"`
	ResetCodeExpiresAt sql.NullTime   `db:"reset_code_expires_at"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          sql.NullTime   `db:"updated_at"`
}

// ResetCodeValid reports whether a stored reset code exists and has not expired at now.
func (u User) ResetCodeValid(now time.Time) bool {
	return u.ResetCodeHash.Valid && u.ResetCodeExpiresAt.Valid && now.Before(u.ResetCodeExpiresAt.Time)
}

// ProviderProfile is the part of a provider account returned on login.
type ProviderProfile struct {
	ID               int64           `db:"id"`
	UserID           int64           `db:"user_id"`
	Bio              sql.NullString  `db:"bio"`
	Specialty        sql.NullString  `db:"specialty"`
	Address          sql.NullString  `db:"address"`
	FormattedAddress sql.NullString  `db:"formatted_address"`
	Latitude         sql.NullFloat64 `db:"latitude"`
	Longitude        sql.NullFloat64 `db:"longitude"`
	Verified         bool            `db:"verified"`
}
