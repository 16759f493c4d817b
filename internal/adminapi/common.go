package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/gefm2002/juancito-mercado-boutique/internal/app"
	"github.com/gefm2002/juancito-mercado-boutique/internal/storage"
	"github.com/gefm2002/juancito-mercado-boutique/internal/webserver"
)

// Init registers every admin route. Call after webserver.Init.
func Init() {
	registerAuthRoutes()
	registerOrderRoutes()
	registerProductRoutes()
	registerCategoryRoutes()
	registerPromoRoutes()
	registerSucursalRoutes()
	registerContentRoutes()
	registerImageRoutes()
}

// GetApp retrieves the application context placed in the request by
// the web server.
func GetApp(c echo.Context) app.AppContext {
	return c.Get(webserver.AppContextKey).(app.AppContext)
}

func GetDB(c echo.Context) *gorm.DB {
	return GetApp(c).DB()
}

func imageStore(c echo.Context) *storage.LocalStore {
	web := GetApp(c).Config().Web
	return storage.NewLocalStore(web.UploadDir, web.BaseURL, web.Secret)
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// fail mirrors the original API's error envelope: {"error": message}.
// Store failures pass the store's message through verbatim.
func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}
