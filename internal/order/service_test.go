package order

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gefm2002/juancito-mercado-boutique/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(domain.Tables...))
	return db
}

func sampleRequest() *CreateRequest {
	return &CreateRequest{
		Items: domain.OrderItems{
			{Product: domain.OrderItemProduct{Name: "Queso Brie"}, Quantity: 1, WeightG: 300, Price: 5400},
			{Product: domain.OrderItemProduct{Name: "Salame Tandilero"}, Quantity: 2, Price: 3600},
		},
		Customer: domain.Customer{
			Nombre:   "Juan",
			Apellido: "Pérez",
			Email:    "juan@example.com",
			Telefono: "1155551234",
		},
		Fulfillment:   domain.Fulfillment{Type: domain.FulfillmentRetiro, Sucursal: "Caballito La Plata"},
		PaymentMethod: "efectivo",
	}
}

func TestCreateTotalsAndMessage(t *testing.T) {
	svc := NewService(newTestDB(t), nil)

	res, err := svc.Create(context.Background(), sampleRequest(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.OrderNumber)
	assert.Nil(t, res.WhatsappURL)
	assert.Contains(t, res.Message, "*Total: $12.600*")

	var o domain.Order
	require.NoError(t, svc.db.Where("order_number = ?", res.OrderNumber).First(&o).Error)
	assert.Equal(t, domain.OrderStatusNew, o.Status)
	assert.Equal(t, int64(12600), o.Totals.Subtotal)
	assert.Equal(t, int64(0), o.Totals.Discounts)
	assert.Equal(t, int64(12600), o.Totals.Total)
	assert.Equal(t, res.Message, o.WhatsappMessage)
}

func TestCreateSequentialOrderNumbers(t *testing.T) {
	svc := NewService(newTestDB(t), nil)

	for want := int64(1); want <= 3; want++ {
		res, err := svc.Create(context.Background(), sampleRequest(), "")
		require.NoError(t, err)
		assert.Equal(t, want, res.OrderNumber)
	}
}

func TestCreateWhatsappURL(t *testing.T) {
	svc := NewService(newTestDB(t), nil)

	res, err := svc.Create(context.Background(), sampleRequest(), "5491155551234")
	require.NoError(t, err)
	require.NotNil(t, res.WhatsappURL)
	assert.Contains(t, *res.WhatsappURL, "https://wa.me/5491155551234?text=")
	assert.NotContains(t, *res.WhatsappURL, "+text")
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newTestDB(t), nil)
	ctx := context.Background()

	cases := []struct {
		mutate func(*CreateRequest)
		reason string
	}{
		{func(r *CreateRequest) { r.Items = nil }, "Items requeridos"},
		{func(r *CreateRequest) { r.Customer.Email = "" }, "Datos de cliente incompletos"},
		{func(r *CreateRequest) { r.Fulfillment.Type = "drone" }, "Tipo de entrega requerido"},
		{func(r *CreateRequest) { r.PaymentMethod = "" }, "Método de pago requerido"},
	}
	for _, tc := range cases {
		req := sampleRequest()
		tc.mutate(req)
		_, err := svc.Create(ctx, req, "")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, tc.reason, verr.Reason)
	}

	var count int64
	require.NoError(t, svc.db.Model(&domain.Order{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

// A rival checkout that claims the same order number between the MAX
// read and the insert must not fail the request. The rival is planted
// by a create callback that inserts a row with the colliding number
// inside the first attempt's transaction; the rollback removes it and
// the retry gets the number cleanly.
func TestCreateRetriesOnOrderNumberCollision(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, nil)

	fired := false
	err := db.Callback().Create().Before("gorm:create").Register("rival_checkout", func(tx *gorm.DB) {
		o, ok := tx.Statement.Dest.(*domain.Order)
		if !ok || fired {
			return
		}
		fired = true
		tx.AddError(tx.Exec(
			"INSERT INTO orders (id, order_number, status) VALUES (?, ?, ?)",
			o.ID+1, o.OrderNumber, domain.OrderStatusNew,
		).Error)
	})
	require.NoError(t, err)

	res, err := svc.Create(context.Background(), sampleRequest(), "")
	require.NoError(t, err)
	assert.True(t, fired)
	assert.Equal(t, int64(1), res.OrderNumber)

	var count int64
	require.NoError(t, db.Model(&domain.Order{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateStatusNotFound(t *testing.T) {
	svc := NewService(newTestDB(t), nil)
	_, err := svc.UpdateStatus(context.Background(), 12345, domain.OrderStatusConfirmed, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatusNoteOnlyKeepsMessage(t *testing.T) {
	svc := NewService(newTestDB(t), nil)
	ctx := context.Background()

	res, err := svc.Create(ctx, sampleRequest(), "")
	require.NoError(t, err)

	var before domain.Order
	require.NoError(t, svc.db.Where("order_number = ?", res.OrderNumber).First(&before).Error)

	note := "llamar antes de preparar"
	after, err := svc.UpdateStatus(ctx, before.ID, "", &note)
	require.NoError(t, err)
	assert.Equal(t, note, after.NotesInternal)
	assert.Equal(t, before.Status, after.Status)
	assert.Equal(t, before.WhatsappMessage, after.WhatsappMessage)
}

func TestUpdateStatusRegeneratesMessage(t *testing.T) {
	svc := NewService(newTestDB(t), nil)
	ctx := context.Background()

	res, err := svc.Create(ctx, sampleRequest(), "")
	require.NoError(t, err)

	var o domain.Order
	require.NoError(t, svc.db.Where("order_number = ?", res.OrderNumber).First(&o).Error)

	note := "cliente habitual"
	after, err := svc.UpdateStatus(ctx, o.ID, domain.OrderStatusConfirmed, &note)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusConfirmed, after.Status)
	assert.Contains(t, after.WhatsappMessage, "*Notas internas:* cliente habitual")

	// A later status change without a note drops the stored note from
	// the regenerated message even though the note stays persisted.
	after, err = svc.UpdateStatus(ctx, o.ID, domain.OrderStatusPreparing, nil)
	require.NoError(t, err)
	assert.Equal(t, "cliente habitual", after.NotesInternal)
	assert.NotContains(t, after.WhatsappMessage, "Notas internas")
}

func TestUpdateStatusSameStatusNoRegen(t *testing.T) {
	svc := NewService(newTestDB(t), nil)
	ctx := context.Background()

	res, err := svc.Create(ctx, sampleRequest(), "")
	require.NoError(t, err)

	var o domain.Order
	require.NoError(t, svc.db.Where("order_number = ?", res.OrderNumber).First(&o).Error)

	after, err := svc.UpdateStatus(ctx, o.ID, domain.OrderStatusNew, nil)
	require.NoError(t, err)
	assert.Equal(t, o.WhatsappMessage, after.WhatsappMessage)
}

func TestList(t *testing.T) {
	svc := NewService(newTestDB(t), nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, sampleRequest(), "")
		require.NoError(t, err)
	}

	orders, err := svc.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
