package domain

import "time"

// Category groups products. Slug is unique and used for URL routing
// and catalog filtering.
type Category struct {
	ID        int64     `json:"id,string" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"index"`
	Slug      string    `json:"slug" gorm:"size:191;uniqueIndex"`
	SortOrder int       `json:"sort_order"`
	ImageURL  string    `json:"image_url" gorm:"size:1024"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName Specify table name
func (Category) TableName() string {
	return "categories"
}
