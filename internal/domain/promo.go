package domain

import "time"

// Promo is a banner shown on the storefront while active.
type Promo struct {
	ID          int64     `json:"id,string" gorm:"primaryKey"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url" gorm:"size:1024"`
	LinkURL     string    `json:"link_url" gorm:"size:1024"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName Specify table name
func (Promo) TableName() string {
	return "promos"
}
