package order

import (
	"context"
	"errors"
	"time"

	evbus "github.com/asaskevich/EventBus"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gefm2002/juancito-mercado-boutique/internal/domain"
	"github.com/gefm2002/juancito-mercado-boutique/pkg/common"
)

// Event bus topics published by the service.
const (
	TopicOrderCreated       = "order.created"
	TopicOrderStatusChanged = "order.status_changed"
)

// orderNumberAttempts bounds the insert retries when concurrent
// checkouts collide on the same order number.
const orderNumberAttempts = 3

// ErrNotFound is returned when an order id matches no row.
var ErrNotFound = errors.New("order not found")

// ValidationError rejects an intake payload. The message is surfaced
// to the caller as-is; nothing is written to the store.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func invalid(reason string) error { return &ValidationError{Reason: reason} }

// CreateRequest is the checkout payload.
type CreateRequest struct {
	Items         domain.OrderItems  `json:"items"`
	Customer      domain.Customer    `json:"customer"`
	Fulfillment   domain.Fulfillment `json:"fulfillment"`
	PaymentMethod string             `json:"payment_method"`
	NotesCustomer string             `json:"notes_customer"`
}

// CreateResult is returned to the storefront. WhatsappURL is nil when
// no site-wide WhatsApp phone is configured; the client then copies
// Message and opens the fallback link.
type CreateResult struct {
	OrderNumber int64   `json:"order_number"`
	WhatsappURL *string `json:"whatsapp_url"`
	Message     string  `json:"message"`
}

// Service owns order intake and the admin status update. It is
// stateless; the store serializes conflicting writes.
type Service struct {
	db  *gorm.DB
	bus evbus.Bus
}

func NewService(db *gorm.DB, bus evbus.Bus) *Service {
	return &Service{db: db, bus: bus}
}

func (s *Service) validate(req *CreateRequest) error {
	if len(req.Items) == 0 {
		return invalid("Items requeridos")
	}
	c := req.Customer
	if c.Nombre == "" || c.Apellido == "" || c.Email == "" || c.Telefono == "" {
		return invalid("Datos de cliente incompletos")
	}
	if req.Fulfillment.Type != domain.FulfillmentRetiro && req.Fulfillment.Type != domain.FulfillmentEnvio {
		return invalid("Tipo de entrega requerido")
	}
	if req.PaymentMethod == "" {
		return invalid("Método de pago requerido")
	}
	return nil
}

// Create validates the payload, persists the order with status "new",
// synthesizes the WhatsApp message and stores it in a second write.
// The two writes are deliberately not atomic: a crash in between
// leaves an order without a message, which any later status change
// repairs. Submitted prices are trusted; no re-pricing happens here.
func (s *Service) Create(ctx context.Context, req *CreateRequest, whatsappPhone string) (*CreateResult, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	var subtotal int64
	for _, item := range req.Items {
		subtotal += item.LineTotal()
	}
	var discounts int64 // no discount engine exists

	o := &domain.Order{
		ID:            common.UUIDint64(),
		Status:        domain.OrderStatusNew,
		Customer:      req.Customer,
		Fulfillment:   req.Fulfillment,
		PaymentMethod: req.PaymentMethod,
		Items:         req.Items,
		Totals: domain.Totals{
			Subtotal:  subtotal,
			Discounts: discounts,
			Total:     subtotal - discounts,
		},
		NotesCustomer: req.NotesCustomer,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	// Number assignment rides the insert transaction. Two concurrent
	// checkouts can still read the same MAX; the unique index rejects
	// the loser, which re-reads and retries with the next number.
	var err error
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var max int64
			if err := tx.Model(&domain.Order{}).Select("COALESCE(MAX(order_number), 0)").Scan(&max).Error; err != nil {
				return err
			}
			o.OrderNumber = max + 1
			return tx.Create(o).Error
		})
		if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			break
		}
		zap.L().Info("order number taken by a concurrent checkout, retrying",
			zap.Int64("order_number", o.OrderNumber))
	}
	if err != nil {
		return nil, err
	}

	msg := Synthesize(o, false)
	if err := s.db.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", o.ID).
		Update("whatsapp_message", msg).Error; err != nil {
		// Degraded but accepted: the order exists without its message.
		zap.L().Warn("order created without whatsapp message",
			zap.Int64("order_number", o.OrderNumber), zap.Error(err))
	}

	if s.bus != nil {
		s.bus.Publish(TopicOrderCreated, o)
	}

	result := &CreateResult{OrderNumber: o.OrderNumber, Message: msg}
	if u := WhatsAppURL(whatsappPhone, msg); u != "" {
		result.WhatsappURL = &u
	}
	return result, nil
}

// UpdateStatus applies an admin change to an order. A differing status
// triggers message resynthesis including internal notes; a note-only
// update persists the note without touching the message. Concurrent
// updates race last-write-wins.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string, notesInternal *string) (*domain.Order, error) {
	var o domain.Order
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&o).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if status != "" {
		updates["status"] = status
	}
	if notesInternal != nil {
		updates["notes_internal"] = *notesInternal
	}

	if status != "" && status != o.Status {
		regen := o
		regen.Status = status
		// Only a note supplied with this request makes it into the
		// regenerated message; a previously stored note does not.
		regen.NotesInternal = ""
		if notesInternal != nil {
			regen.NotesInternal = *notesInternal
		}
		updates["whatsapp_message"] = Synthesize(&regen, true)
	}

	if err := s.db.WithContext(ctx).Model(&domain.Order{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&o).Error; err != nil {
		return nil, err
	}

	if s.bus != nil {
		s.bus.Publish(TopicOrderStatusChanged, &o)
	}
	return &o, nil
}

// List returns the most recent orders, newest first.
func (s *Service) List(ctx context.Context, limit int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	var orders []domain.Order
	err := s.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&orders).Error
	return orders, err
}
