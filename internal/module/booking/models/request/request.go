package request

type CreateBooking struct {
	ServiceID int64  `json:"service_id" validate:"required,gt=0"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required,datetime=15:04"`
	Notes     string `json:"notes" validate:"max=1000"`
}

type CancelBooking struct {
	Reason string `json:"reason" validate:"max=500"`
}

type ListBookings struct {
	Status string `query:"status" validate:"omitempty,oneof=pending accepted completed cancelled"`
}
