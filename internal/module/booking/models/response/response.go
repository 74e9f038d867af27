package response

import "github.com/shopspring/decimal"

type Booking struct {
	ID             int64           `json:"id"`
	ClientID       int64           `json:"client_id"`
	ServiceID      int64           `json:"service_id"`
	ProviderID     int64           `json:"provider_id"`
	Date           string          `json:"date"`
	Time           string          `json:"time"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	Notes          string          `json:"notes"`
	Status         string          `json:"status"`
	CreatedAt      string          `json:"created_at,omitempty"`
	ServiceTitle   string          `json:"service_title,omitempty"`
	Duration       int             `json:"duration,omitempty"`
	ClientName     string          `json:"client_name,omitempty"`
	ClientEmail    string          `json:"client_email,omitempty"`
	ClientPhone    string          `json:"client_phone,omitempty"`
	ClientAvatar   string          `json:"client_avatar,omitempty"`
	ProviderName   string          `json:"provider_name,omitempty"`
	ProviderPhone  string          `json:"provider_phone,omitempty"`
	ProviderAvatar string          `json:"provider_avatar,omitempty"`
	ProviderAddr   string          `json:"provider_address,omitempty"`
}

type Stats struct {
	Total         int64            `json:"total"`
	Pending       int64            `json:"pending"`
	Accepted      int64            `json:"accepted"`
	Completed     int64            `json:"completed"`
	Cancelled     int64            `json:"cancelled"`
	TotalEarnings *decimal.Decimal `json:"total_earnings,omitempty"`
}
