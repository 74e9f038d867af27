package response

import "time"

type Profile struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone,omitempty"`
	Avatar           string   `json:"avatar,omitempty"`
	Status           string   `json:"status"`
	ProviderID       *int64   `json:"provider_id,omitempty"`
	Bio              string   `json:"bio,omitempty"`
	Specialty        string   `json:"specialty,omitempty"`
	Address          string   `json:"address,omitempty"`
	FormattedAddress string   `json:"formatted_address,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	Verified         bool     `json:"verified"`
}

type Document struct {
	ID         int64     `json:"id"`
	ProviderID int64     `json:"provider_id"`
	Type       string    `json:"type"`
	FileURL    string    `json:"file_url"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type Verification struct {
	Verified bool `json:"verified"`
}
