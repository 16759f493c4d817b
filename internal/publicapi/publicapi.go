package publicapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/gefm2002/juancito-mercado-boutique/internal/app"
	"github.com/gefm2002/juancito-mercado-boutique/internal/webserver"
)

// Init registers the storefront routes. Call after webserver.Init.
func Init() {
	registerCatalogRoutes()
	registerConfigRoutes()
	registerOrderRoutes()
}

func GetApp(c echo.Context) app.AppContext {
	return c.Get(webserver.AppContextKey).(app.AppContext)
}

func GetDB(c echo.Context) *gorm.DB {
	return GetApp(c).DB()
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}
