package request

import "time"

type Emit struct {
	UserID  int64  `json:"user_id" validate:"required"`
	Title   string `json:"title" validate:"required,max=150"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type" validate:"required,max=50"`
}

// Schedule is built by the booking flow, never bound from a request body.
type Schedule struct {
	Key       string
	UserID    int64
	BookingID int64
	Title     string
	Message   string
	Type      string
	DueAt     time.Time
}

type List struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}
