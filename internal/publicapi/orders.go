package publicapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gefm2002/juancito-mercado-boutique/internal/order"
	"github.com/gefm2002/juancito-mercado-boutique/internal/webserver"
)

func registerOrderRoutes() {
	webserver.PubPOST("/orders", createOrder)
}

// createOrder is the storefront checkout endpoint. A valid submission
// always yields the synthesized WhatsApp message; the deep link is nil
// when no business phone is configured.
func createOrder(c echo.Context) error {
	var req order.CreateRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "Datos inválidos")
	}

	a := GetApp(c)
	svc := order.NewService(GetDB(c), a.Bus())
	phone := a.ConfigMgr().GetString("whatsapp_phone")

	result, err := svc.Create(c.Request().Context(), &req, phone)
	var verr *order.ValidationError
	if errors.As(err, &verr) {
		return fail(c, http.StatusBadRequest, verr.Reason)
	} else if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, result)
}
