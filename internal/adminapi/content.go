package adminapi

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gefm2002/juancito-mercado-boutique/internal/webserver"
)

func registerContentRoutes() {
	webserver.ApiGET("/content", getContent)
	webserver.ApiPUT("/content", updateContent)
}

func getContent(c echo.Context) error {
	return ok(c, GetApp(c).ConfigMgr().All())
}

// updateContent upserts each submitted key independently. A failure
// mid-way leaves earlier keys written; the caller retries the batch.
func updateContent(c echo.Context) error {
	var values map[string]json.RawMessage
	if err := c.Bind(&values); err != nil {
		return fail(c, http.StatusBadRequest, "Datos inválidos")
	}
	mgr := GetApp(c).ConfigMgr()
	for key, raw := range values {
		if err := mgr.Set(key, raw); err != nil {
			return fail(c, http.StatusInternalServerError, err.Error())
		}
	}
	return ok(c, mgr.All())
}
