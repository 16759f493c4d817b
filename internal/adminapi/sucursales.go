package adminapi

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gefm2002/juancito-mercado-boutique/internal/app"
	"github.com/gefm2002/juancito-mercado-boutique/internal/domain"
	"github.com/gefm2002/juancito-mercado-boutique/internal/webserver"
)

func registerSucursalRoutes() {
	webserver.ApiGET("/sucursales", listSucursales)
	webserver.ApiPUT("/sucursales", updateSucursales)
}

func listSucursales(c echo.Context) error {
	var sucursales []domain.Sucursal
	if !GetApp(c).ConfigMgr().GetJSON("sucursales", &sucursales) {
		sucursales = app.DefaultSucursales()
	}
	return ok(c, sucursales)
}

func updateSucursales(c echo.Context) error {
	var sucursales []domain.Sucursal
	if err := c.Bind(&sucursales); err != nil {
		return fail(c, http.StatusBadRequest, "Datos inválidos")
	}
	raw, err := json.Marshal(sucursales)
	if err != nil {
		return fail(c, http.StatusBadRequest, "Datos inválidos")
	}
	if err := GetApp(c).ConfigMgr().Set("sucursales", raw); err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, sucursales)
}
