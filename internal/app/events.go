package app

import (
	"fmt"
	"time"

	evbus "github.com/asaskevich/EventBus"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gefm2002/juancito-mercado-boutique/internal/domain"
	"github.com/gefm2002/juancito-mercado-boutique/internal/order"
	"github.com/gefm2002/juancito-mercado-boutique/pkg/common"
)

// NewBus returns the in-process event bus order services publish on.
func NewBus() evbus.Bus {
	return evbus.New()
}

// RegisterAuditSubscribers writes an audit_log row for every order
// lifecycle event. Subscribers run synchronously on the publishing
// request; a failed audit write is logged and never fails the request.
func RegisterAuditSubscribers(bus evbus.Bus, db *gorm.DB) {
	err := bus.Subscribe(order.TopicOrderCreated, func(o *domain.Order) {
		writeAudit(db, "storefront", order.TopicOrderCreated,
			fmt.Sprintf("pedido #%d creado, total $%d", o.OrderNumber, o.Totals.Total))
	})
	if err != nil {
		zap.L().Error("failed to subscribe audit handler", zap.Error(err))
	}
	err = bus.Subscribe(order.TopicOrderStatusChanged, func(o *domain.Order) {
		writeAudit(db, "admin", order.TopicOrderStatusChanged,
			fmt.Sprintf("pedido #%d ahora %s", o.OrderNumber, o.Status))
	})
	if err != nil {
		zap.L().Error("failed to subscribe audit handler", zap.Error(err))
	}
}

func writeAudit(db *gorm.DB, actor, action, detail string) {
	row := domain.AuditLog{
		ID:        common.UUIDint64(),
		Actor:     actor,
		Action:    action,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
	if err := db.Create(&row).Error; err != nil {
		zap.L().Warn("failed to write audit log", zap.String("action", action), zap.Error(err))
	}
}
