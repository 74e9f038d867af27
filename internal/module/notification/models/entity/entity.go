package entity

import (
	"database/sql"
	"time"
)

const (
	TypeBooking  = "booking"
	TypeReminder = "reminder"
	TypeWallet   = "wallet"
)

type Notification struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Title     string    `db:"title"`
	Message   string    `db:"message"`
	Type      string    `db:"type"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}

type ScheduledStatus string

const (
	ScheduledPending   ScheduledStatus = "pending"
	ScheduledSent      ScheduledStatus = "sent"
	ScheduledCancelled ScheduledStatus = "cancelled"
)

// Scheduled is a notification held back until DueAt. IdempotencyKey is unique,
// so scheduling the same reminder twice keeps the first row.
type Scheduled struct {
	ID             int64           `db:"id"`
	IdempotencyKey string          `db:"idempotency_key"`
	UserID         int64           `db:"user_id"`
	BookingID      sql.NullInt64   `db:"booking_id"`
	Title          string          `db:"title"`
	Message        string          `db:"message"`
	Type           string          `db:"type"`
	DueAt          time.Time       `db:"due_at"`
	Status         ScheduledStatus `db:"status"`
	Attempts       int             `db:"attempts"`
	SentAt         sql.NullTime    `db:"sent_at"`
	CreatedAt      time.Time       `db:"created_at"`
}

func (s Scheduled) Notification() Notification {
	return Notification{
		UserID:  s.UserID,
		Title:   s.Title,
		Message: s.Message,
		Type:    s.Type,
	}
}
