package response

type User struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone,omitempty"`
	Avatar          string           `json:"avatar,omitempty"`
	Role            string           `json:"role"`
	Status          string           `json:"status"`
	IsGoogleAccount bool             `json:"is_google_account"`
	CreatedAt       string           `json:"created_at,omitempty"`
	ProviderProfile *ProviderProfile `json:"provider_profile,omitempty"`
}

type ProviderProfile struct {
	ID               int64    `json:"id"`
	Bio              string   `json:"bio,omitempty"`
	Specialty        string   `json:"specialty,omitempty"`
	Address          string   `json:"address,omitempty"`
	FormattedAddress string   `json:"formatted_address,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	Verified         bool     `json:"verified"`
}

type Auth struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Avatar struct {
	Avatar string `json:"avatar"`
}
