package domain

import (
	"database/sql/driver"
	"time"
)

// Order status values. Transitions are unconstrained: any state may be
// set from any other state by an admin.
const (
	OrderStatusNew       = "new"
	OrderStatusContacted = "contacted"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCanceled  = "canceled"
)

// Fulfillment type discriminators.
const (
	FulfillmentRetiro = "retiro"
	FulfillmentEnvio  = "envio"
)

// Customer holds the buyer identity submitted at checkout. All fields
// are required at order creation.
type Customer struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
}

func (c Customer) Value() (driver.Value, error) { return valueJSON(c) }
func (c *Customer) Scan(v interface{}) error    { return scanJSON(c, v) }

// Fulfillment describes how the order reaches the customer: pickup at
// a branch ("retiro") or delivery ("envio").
type Fulfillment struct {
	Type      string `json:"type"`
	Sucursal  string `json:"sucursal,omitempty"`
	Direccion string `json:"direccion,omitempty"`
	Zona      string `json:"zona,omitempty"`
}

func (f Fulfillment) Value() (driver.Value, error) { return valueJSON(f) }
func (f *Fulfillment) Scan(v interface{}) error    { return scanJSON(f, v) }

// OrderItemProduct is the snapshot of the product embedded in a line
// item. Only the name matters for the WhatsApp message; the rest is
// whatever the storefront sent.
type OrderItemProduct struct {
	ID   int64  `json:"id,string,omitempty"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// OrderItem is a single cart line. Price is the unit price in whole
// pesos as submitted by the client; it is not re-derived from the
// catalog at intake.
type OrderItem struct {
	ProductID int64            `json:"product_id,string,omitempty"`
	Product   OrderItemProduct `json:"product"`
	Quantity  int              `json:"quantity"`
	WeightG   int              `json:"weight_g,omitempty"`
	Price     int64            `json:"price"`
}

// LineTotal returns price x quantity for the item.
func (i OrderItem) LineTotal() int64 {
	return i.Price * int64(i.Quantity)
}

type OrderItems []OrderItem

func (o OrderItems) Value() (driver.Value, error) { return valueJSON(o) }
func (o *OrderItems) Scan(v interface{}) error    { return scanJSON(o, v) }

// Totals are derived at creation time and never settable directly.
// Invariant: Total == Subtotal - Discounts.
type Totals struct {
	Subtotal  int64 `json:"subtotal"`
	Discounts int64 `json:"discounts"`
	Total     int64 `json:"total"`
}

func (t Totals) Value() (driver.Value, error) { return valueJSON(t) }
func (t *Totals) Scan(v interface{}) error    { return scanJSON(t, v) }

// Order is created once by the intake flow; only Status, NotesInternal
// and WhatsappMessage mutate afterwards, exclusively via the admin
// status update.
type Order struct {
	ID              int64       `json:"id,string" gorm:"primaryKey"`
	OrderNumber     int64       `json:"order_number" gorm:"uniqueIndex"`
	Status          string      `json:"status" gorm:"size:32;index"`
	Customer        Customer    `json:"customer" gorm:"type:text"`
	Fulfillment     Fulfillment `json:"fulfillment" gorm:"type:text"`
	PaymentMethod   string      `json:"payment_method" gorm:"size:64"`
	Items           OrderItems  `json:"items" gorm:"type:text"`
	Totals          Totals      `json:"totals" gorm:"type:text"`
	NotesCustomer   string      `json:"notes_customer"`
	NotesInternal   string      `json:"notes_internal"`
	WhatsappMessage string      `json:"whatsapp_message"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// TableName Specify table name
func (Order) TableName() string {
	return "orders"
}
