package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var validTransitions = map[Status][]Status{
	StatusPending:   {StatusAccepted, StatusCancelled},
	StatusAccepted:  {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func (s Status) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no edge leaves s. Unknown statuses count as terminal.
func (s Status) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

// Occupies reports whether a booking in s holds its provider slot.
func (s Status) Occupies() bool {
	return s == StatusPending || s == StatusAccepted
}

type Booking struct {
	ID         int64           `db:"id"`
	ClientID   int64           `db:"client_id"`
	ServiceID  int64           `db:"service_id"`
	ProviderID int64           `db:"provider_id"`
	Date       time.Time       `db:"date"`
	Time       string          `db:"time"`
	TotalPrice decimal.Decimal `db:"total_price"`
	Notes      string          `db:"notes"`
	Status     Status          `db:"status"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  sql.NullTime    `db:"updated_at"`
}

// StartsAt combines the booking date and time in loc.
func (b Booking) StartsAt(loc *time.Location) (time.Time, error) {
	clock, err := time.Parse("15:04:05", b.Time)
	if err != nil {
		clock, err = time.Parse("15:04", b.Time)
		if err != nil {
			return time.Time{}, err
		}
	}
	return time.Date(b.Date.Year(), b.Date.Month(), b.Date.Day(), clock.Hour(), clock.Minute(), 0, 0, loc), nil
}

// Detail is a booking joined with what transitions and listings need to show.
type Detail struct {
	Booking
	ProviderUserID int64          `db:"provider_user_id"`
	ServiceTitle   string         `db:"service_title"`
	Duration       int            `db:"duration"`
	ClientName     string         `db:"client_name"`
	ClientEmail    string         `db:"client_email"`
	ClientPhone    sql.NullString `db:"client_phone"`
	ClientAvatar   sql.NullString `db:"client_avatar"`
	ProviderName   string         `db:"provider_name"`
	ProviderPhone  sql.NullString `db:"provider_phone"`
	ProviderAvatar sql.NullString `db:"provider_avatar"`
	ProviderAddr   sql.NullString `db:"provider_address"`
}

// Service is the bookable side of a listing.
type Service struct {
	ID             int64           `db:"id"`
	ProviderID     int64           `db:"provider_id"`
	ProviderUserID int64           `db:"provider_user_id"`
	Title          string          `db:"title"`
	Price          decimal.Decimal `db:"price"`
	Duration       int             `db:"duration"`
	Status         string          `db:"status"`
}

type Stats struct {
	Total         int64           `db:"total"`
	Pending       int64           `db:"pending"`
	Accepted      int64           `db:"accepted"`
	Completed     int64           `db:"completed"`
	Cancelled     int64           `db:"cancelled"`
	TotalEarnings decimal.Decimal `db:"total_earnings"`
}
