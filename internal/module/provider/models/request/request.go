package request

// UpdateProfile merges into the stored profile: a nil field keeps its value.
type UpdateProfile struct {
	Name             *string `json:"name" validate:"omitempty,min=1,max=150"`
	Phone            *string `json:"phone" validate:"omitempty,max=20"`
	Bio              *string `json:"bio" validate:"omitempty,max=2000"`
	Specialty        *string `json:"specialty" validate:"omitempty,max=150"`
	Address          *string `json:"address" validate:"omitempty,max=255"`
	FormattedAddress *string `json:"formatted_address" validate:"omitempty,max=255"`
}

type UpdateLocation struct {
	Latitude         *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude        *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Address          string   `json:"address" validate:"max=255"`
	FormattedAddress string   `json:"formatted_address" validate:"max=255"`
}

type UploadDocument struct {
	Type string `form:"type" validate:"omitempty,max=100"`
}
