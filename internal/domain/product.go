package domain

import (
	"database/sql/driver"
	"time"
)

// Product type discriminators. A standard product has a fixed unit
// price, a weighted product is priced per kilogram and bought in gram
// increments, a combo bundles other products at a fixed price.
const (
	ProductStandard = "standard"
	ProductWeighted = "weighted"
	ProductCombo    = "combo"
)

// ComboItem declares one constituent of a combo product.
type ComboItem struct {
	ProductID int64  `json:"product_id,string"`
	Name      string `json:"name,omitempty"`
	Quantity  int    `json:"quantity"`
	WeightG   int    `json:"weight_g,omitempty"`
}

type ComboItems []ComboItem

func (c ComboItems) Value() (driver.Value, error) { return valueJSON(c) }
func (c *ComboItems) Scan(v interface{}) error    { return scanJSON(c, v) }

type StringList []string

func (s StringList) Value() (driver.Value, error) { return valueJSON(s) }
func (s *StringList) Scan(v interface{}) error    { return scanJSON(s, v) }

// Product is a catalog entry. CategoryID is a weak reference: the
// category may be renamed or removed independently, so no FK
// constraint is created during migration.
type Product struct {
	ID          int64      `json:"id,string" gorm:"primaryKey"`
	CategoryID  int64      `json:"category_id,string" gorm:"index"`
	Name        string     `json:"name" gorm:"index"`
	Slug        string     `json:"slug" gorm:"size:191;uniqueIndex"`
	Description string     `json:"description"`
	ProductType string     `json:"product_type" gorm:"size:32"`
	Price       int64      `json:"price"`
	PricePerKg  int64      `json:"price_per_kg"`
	MinWeightG  int        `json:"min_weight_g"`
	StepWeightG int        `json:"step_weight_g"`
	OutOfStock  bool       `json:"out_of_stock"`
	IsFeatured  bool       `json:"is_featured"`
	Images      StringList `json:"images" gorm:"type:text"`
	ComboItems  ComboItems `json:"combo_items" gorm:"type:text"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "products"
}
