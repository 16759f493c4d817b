package order

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gefm2002/juancito-mercado-boutique/internal/domain"
)

func sampleRetiroOrder() *domain.Order {
	return &domain.Order{
		OrderNumber: 42,
		Status:      domain.OrderStatusNew,
		Customer: domain.Customer{
			Nombre:   "Juan",
			Apellido: "Pérez",
			Email:    "juan@example.com",
			Telefono: "1155551234",
		},
		Fulfillment: domain.Fulfillment{
			Type:     domain.FulfillmentRetiro,
			Sucursal: "Caballito La Plata",
		},
		PaymentMethod: "efectivo",
		Items: domain.OrderItems{
			{Product: domain.OrderItemProduct{Name: "Queso Brie"}, Quantity: 1, WeightG: 300, Price: 5400},
			{Product: domain.OrderItemProduct{Name: "Salame Tandilero"}, Quantity: 2, Price: 3600},
		},
		Totals: domain.Totals{Subtotal: 12600, Discounts: 0, Total: 12600},
	}
}

func TestSynthesizeRetiro(t *testing.T) {
	msg := Synthesize(sampleRetiroOrder(), false)

	assert.True(t, strings.HasPrefix(msg, "Hola! Quiero hacer un pedido. Te paso el detalle 👇\n\n"))
	assert.Contains(t, msg, "*Pedido #42*")
	assert.Contains(t, msg, "*Cliente:*\nJuan Pérez\nEmail: juan@example.com\nTel: 1155551234")
	assert.Contains(t, msg, "- Queso Brie (300g) x1 - $5.400\n")
	assert.Contains(t, msg, "- Salame Tandilero x2 - $7.200\n")
	assert.Contains(t, msg, "*Total: $12.600*")
	assert.Contains(t, msg, "Retiro en: Caballito La Plata")
	assert.Contains(t, msg, "*Pago:* efectivo")
	assert.NotContains(t, msg, "Envío a:")
	assert.NotContains(t, msg, "*Notas:*")
	assert.NotContains(t, msg, "*Notas internas:*")
}

func TestSynthesizeEnvio(t *testing.T) {
	o := sampleRetiroOrder()
	o.Fulfillment = domain.Fulfillment{
		Type:      domain.FulfillmentEnvio,
		Direccion: "Av. Rivadavia 5000",
		Zona:      "Caballito",
	}
	o.NotesCustomer = "Tocar timbre B"

	msg := Synthesize(o, false)
	assert.Contains(t, msg, "Envío a: Av. Rivadavia 5000, Caballito")
	assert.Contains(t, msg, "*Notas:* Tocar timbre B")
	assert.NotContains(t, msg, "Retiro en:")
}

func TestSynthesizeDeterministic(t *testing.T) {
	a := Synthesize(sampleRetiroOrder(), false)
	b := Synthesize(sampleRetiroOrder(), false)
	assert.Equal(t, a, b)
}

func TestSynthesizeInternalNotes(t *testing.T) {
	o := sampleRetiroOrder()
	o.NotesInternal = "cliente habitual"

	// Storefront path never exposes internal notes.
	assert.NotContains(t, Synthesize(o, false), "Notas internas")

	admin := Synthesize(o, true)
	assert.Contains(t, admin, "*Notas internas:* cliente habitual")

	o.NotesInternal = ""
	assert.NotContains(t, Synthesize(o, true), "Notas internas")
}

func TestSynthesizeWeightOnlyWhenPresent(t *testing.T) {
	o := sampleRetiroOrder()
	msg := Synthesize(o, false)
	assert.Contains(t, msg, "(300g)")
	assert.NotContains(t, msg, "Salame Tandilero (")
}

func TestFormatPesos(t *testing.T) {
	cases := map[int64]string{
		0:       "0",
		999:     "999",
		1000:    "1.000",
		12600:   "12.600",
		1000000: "1.000.000",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatPesos(in))
	}
}

func TestWhatsAppURL(t *testing.T) {
	u := WhatsAppURL("5491155551234", "hola mundo")
	assert.Equal(t, "https://wa.me/5491155551234?text=hola%20mundo", u)
	assert.NotContains(t, u, "+")

	assert.Equal(t, "", WhatsAppURL("", "hola"))
}
