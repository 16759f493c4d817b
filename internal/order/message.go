package order

import (
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gefm2002/juancito-mercado-boutique/internal/domain"
)

// pesos formats amounts with es-AR grouping: 12600 -> "12.600".
var pesos = message.NewPrinter(language.MustParse("es-AR"))

// FormatPesos renders a whole-peso amount with thousands separators.
func FormatPesos(n int64) string {
	return pesos.Sprintf("%d", n)
}

// Synthesize renders the WhatsApp order message. It is a pure function
// of the order fields: identical input yields byte-identical output.
// The internal-notes line is appended only on the admin path and only
// when a note exists.
func Synthesize(o *domain.Order, includeInternal bool) string {
	var b strings.Builder
	b.WriteString("Hola! Quiero hacer un pedido. Te paso el detalle 👇\n\n")
	b.WriteString("*Pedido #" + strconv.FormatInt(o.OrderNumber, 10) + "*\n\n")
	b.WriteString("*Cliente:*\n")
	b.WriteString(o.Customer.Nombre + " " + o.Customer.Apellido + "\n")
	b.WriteString("Email: " + o.Customer.Email + "\n")
	b.WriteString("Tel: " + o.Customer.Telefono + "\n\n")
	b.WriteString("*Productos:*\n")
	for _, item := range o.Items {
		b.WriteString("- " + item.Product.Name)
		if item.WeightG > 0 {
			b.WriteString(" (" + strconv.Itoa(item.WeightG) + "g)")
		}
		b.WriteString(" x" + strconv.Itoa(item.Quantity) + " - $" + FormatPesos(item.LineTotal()) + "\n")
	}
	b.WriteString("\n*Total: $" + FormatPesos(o.Totals.Total) + "*\n\n")
	b.WriteString("*Entrega:*\n")
	if o.Fulfillment.Type == domain.FulfillmentRetiro {
		b.WriteString("Retiro en: " + o.Fulfillment.Sucursal + "\n")
	} else {
		b.WriteString("Envío a: " + o.Fulfillment.Direccion + ", " + o.Fulfillment.Zona + "\n")
	}
	b.WriteString("\n*Pago:* " + o.PaymentMethod + "\n")
	if o.NotesCustomer != "" {
		b.WriteString("\n*Notas:* " + o.NotesCustomer + "\n")
	}
	if includeInternal && o.NotesInternal != "" {
		b.WriteString("\n*Notas internas:* " + o.NotesInternal + "\n")
	}
	return b.String()
}

// WhatsAppURL builds the wa.me deep link for a message. Returns ""
// when no phone is configured; the storefront then falls back to
// copying the message by hand.
func WhatsAppURL(phone, msg string) string {
	if phone == "" {
		return ""
	}
	// encodeURIComponent semantics: spaces as %20, not '+'.
	encoded := strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
	return "https://wa.me/" + phone + "?text=" + encoded
}
