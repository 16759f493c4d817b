package adminapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"

	"github.com/gefm2002/juancito-mercado-boutique/internal/domain"
	"github.com/gefm2002/juancito-mercado-boutique/internal/order"
	"github.com/gefm2002/juancito-mercado-boutique/internal/webserver"
)

func registerOrderRoutes() {
	webserver.ApiGET("/orders", listOrders)
	webserver.ApiPUT("/orders", updateOrder)
	webserver.ApiGET("/orders/export", exportOrders)
}

func orderService(c echo.Context) *order.Service {
	return order.NewService(GetDB(c), GetApp(c).Bus())
}

func listOrders(c echo.Context) error {
	orders, err := orderService(c).List(c.Request().Context(), 100)
	if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, orders)
}

type orderUpdatePayload struct {
	ID            int64   `json:"id,string"`
	Status        string  `json:"status"`
	NotesInternal *string `json:"notes_internal"`
}

func updateOrder(c echo.Context) error {
	var payload orderUpdatePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "ID requerido")
	}
	if payload.ID == 0 {
		return fail(c, http.StatusBadRequest, "ID requerido")
	}

	updated, err := orderService(c).UpdateStatus(c.Request().Context(), payload.ID, payload.Status, payload.NotesInternal)
	if errors.Is(err, order.ErrNotFound) {
		return fail(c, http.StatusNotFound, "Orden no encontrada")
	} else if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, updated)
}

type orderCSVRow struct {
	OrderNumber   int64  `csv:"order_number"`
	Status        string `csv:"status"`
	Cliente       string `csv:"cliente"`
	Email         string `csv:"email"`
	Telefono      string `csv:"telefono"`
	Entrega       string `csv:"entrega"`
	PaymentMethod string `csv:"pago"`
	Subtotal      int64  `csv:"subtotal"`
	Total         int64  `csv:"total"`
	CreatedAt     string `csv:"created_at"`
}

func exportOrders(c echo.Context) error {
	var orders []domain.Order
	if err := GetDB(c).Order("created_at DESC").Find(&orders).Error; err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}

	rows := make([]orderCSVRow, 0, len(orders))
	for _, o := range orders {
		entrega := o.Fulfillment.Sucursal
		if o.Fulfillment.Type == domain.FulfillmentEnvio {
			entrega = o.Fulfillment.Direccion + ", " + o.Fulfillment.Zona
		}
		rows = append(rows, orderCSVRow{
			OrderNumber:   o.OrderNumber,
			Status:        o.Status,
			Cliente:       o.Customer.Nombre + " " + o.Customer.Apellido,
			Email:         o.Customer.Email,
			Telefono:      o.Customer.Telefono,
			Entrega:       entrega,
			PaymentMethod: o.PaymentMethod,
			Subtotal:      o.Totals.Subtotal,
			Total:         o.Totals.Total,
			CreatedAt:     o.CreatedAt.Format(time.RFC3339),
		})
	}

	csvText, err := gocsv.MarshalString(&rows)
	if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="orders.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(csvText))
}
