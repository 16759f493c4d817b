package publicapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gefm2002/juancito-mercado-boutique/internal/domain"
	"github.com/gefm2002/juancito-mercado-boutique/internal/webserver"
)

func registerCatalogRoutes() {
	webserver.PubGET("/public/catalog", getCatalog)
	webserver.PubGET("/public/categories", getCategories)
}

// getCatalog returns the purchasable catalog: in-stock products with
// their category preloaded, featured items first.
func getCatalog(c echo.Context) error {
	var products []domain.Product
	err := GetDB(c).
		Preload("Category").
		Where("out_of_stock = ?", false).
		Order("is_featured DESC").
		Order("name").
		Find(&products).Error
	if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, products)
}

func getCategories(c echo.Context) error {
	var categories []domain.Category
	err := GetDB(c).
		Where("is_active = ?", true).
		Order("sort_order").
		Order("name").
		Find(&categories).Error
	if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, categories)
}
