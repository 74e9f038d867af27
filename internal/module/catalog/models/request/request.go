package request

import "github.com/shopspring/decimal"

type ListCategories struct {
	Q      string `query:"q" validate:"max=100"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int    `query:"offset" validate:"omitempty,min=0"`
}

// CreateCategory is bound from a multipart form; the icon travels as the "icon" file.
type CreateCategory struct {
	Name        string `form:"name" json:"name" validate:"required,max=100"`
	Description string `form:"description" json:"description" validate:"max=1000"`
}

type UpdateCategory struct {
	Name        string `form:"name" json:"name" validate:"omitempty,max=100"`
	Description string `form:"description" json:"description" validate:"max=1000"`
}

type CreateService struct {
	CategoryID  int64            `json:"category_id" validate:"required,min=1"`
	Title       string           `json:"title" validate:"required,max=150"`
	Description string           `json:"description" validate:"max=5000"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Duration    int              `json:"duration" validate:"omitempty,min=5,max=1440"`
}

type UpdateService struct {
	CategoryID  *int64           `json:"category_id" validate:"omitempty,min=1"`
	Title       *string          `json:"title" validate:"omitempty,min=1,max=150"`
	Description *string          `json:"description" validate:"omitempty,max=5000"`
	Price       *decimal.Decimal `json:"price"`
	Duration    *int             `json:"duration" validate:"omitempty,min=5,max=1440"`
	Status      *string          `json:"status" validate:"omitempty,oneof=active pending"`
}

type ListServices struct {
	Q            string `query:"q" validate:"max=100"`
	CategoryID   int64  `query:"category_id" validate:"omitempty,min=1"`
	MinPrice     string `query:"min_price" validate:"omitempty,numeric"`
	MaxPrice     string `query:"max_price" validate:"omitempty,numeric"`
	VerifiedOnly bool   `query:"verified_only"`
	Sort         string `query:"sort" validate:"omitempty,oneof=created_at price title duration"`
	Order        string `query:"order" validate:"omitempty,oneof=asc desc ASC DESC"`
	Limit        int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset       int    `query:"offset" validate:"omitempty,min=0"`
}
