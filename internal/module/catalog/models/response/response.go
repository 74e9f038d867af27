package response

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description,omitempty"`
	Icon          string    `json:"icon,omitempty"`
	ServicesCount *int64    `json:"services_count,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type CategoryStat struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Slug           string `json:"slug"`
	Icon           string `json:"icon,omitempty"`
	ServicesCount  int64  `json:"services_count"`
	ProvidersCount int64  `json:"providers_count"`
}

type Provider struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar,omitempty"`
	Specialty string `json:"specialty,omitempty"`
	Address   string `json:"address,omitempty"`
	Verified  bool   `json:"verified"`
}

type Service struct {
	ID           int64           `json:"id"`
	ProviderID   int64           `json:"provider_id"`
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category_name,omitempty"`
	CategoryIcon string          `json:"category_icon,omitempty"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Duration     int             `json:"duration"`
	Status       string          `json:"status"`
	Provider     *Provider       `json:"provider,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

type CategoryServices struct {
	Category Category  `json:"category"`
	Services []Service `json:"services"`
	Total    int       `json:"total"`
}
