package adminapi

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gefm2002/juancito-mercado-boutique/internal/domain"
	"github.com/gefm2002/juancito-mercado-boutique/internal/webserver"
	"github.com/gefm2002/juancito-mercado-boutique/pkg/common"
)

func registerProductRoutes() {
	webserver.ApiGET("/products", listProducts)
	webserver.ApiPOST("/products", createProduct)
	webserver.ApiPUT("/products", updateProduct)
	webserver.ApiDELETE("/products", deleteProduct)
}

func listProducts(c echo.Context) error {
	var products []domain.Product
	err := GetDB(c).Preload("Category").Order("name").Find(&products).Error
	if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, products)
}

type productPayload struct {
	ID          int64              `json:"id,string"`
	CategoryID  *int64             `json:"category_id,string"`
	Name        *string            `json:"name"`
	Slug        *string            `json:"slug"`
	Description *string            `json:"description"`
	ProductType *string            `json:"product_type"`
	Price       *int64             `json:"price"`
	PricePerKg  *int64             `json:"price_per_kg"`
	MinWeightG  *int               `json:"min_weight_g"`
	StepWeightG *int               `json:"step_weight_g"`
	OutOfStock  *bool              `json:"out_of_stock"`
	IsFeatured  *bool              `json:"is_featured"`
	Images      *domain.StringList `json:"images"`
	ComboItems  *domain.ComboItems `json:"combo_items"`
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// slugify lowercases, collapses non-alphanumerics to single dashes and
// trims the result. Accents are dropped rather than transliterated.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Datos inválidos")
	}
	if payload.Name == nil || strings.TrimSpace(*payload.Name) == "" {
		return fail(c, http.StatusBadRequest, "Nombre requerido")
	}

	product := domain.Product{
		ID:          common.UUIDint64(),
		Name:        strings.TrimSpace(*payload.Name),
		ProductType: domain.ProductStandard,
	}
	if payload.Slug != nil && *payload.Slug != "" {
		product.Slug = *payload.Slug
	} else {
		product.Slug = slugify(product.Name)
	}
	if payload.CategoryID != nil {
		product.CategoryID = *payload.CategoryID
	}
	if payload.Description != nil {
		product.Description = *payload.Description
	}
	if payload.ProductType != nil && *payload.ProductType != "" {
		product.ProductType = *payload.ProductType
	}
	if payload.Price != nil {
		product.Price = *payload.Price
	}
	if payload.PricePerKg != nil {
		product.PricePerKg = *payload.PricePerKg
	}
	if payload.MinWeightG != nil {
		product.MinWeightG = *payload.MinWeightG
	}
	if payload.StepWeightG != nil {
		product.StepWeightG = *payload.StepWeightG
	}
	if payload.OutOfStock != nil {
		product.OutOfStock = *payload.OutOfStock
	}
	if payload.IsFeatured != nil {
		product.IsFeatured = *payload.IsFeatured
	}
	if payload.Images != nil {
		product.Images = *payload.Images
	}
	if payload.ComboItems != nil {
		product.ComboItems = *payload.ComboItems
	}

	if err := GetDB(c).Create(&product).Error; err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, product)
}

func updateProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "ID requerido")
	}
	if payload.ID == 0 {
		return fail(c, http.StatusBadRequest, "ID requerido")
	}

	var product domain.Product
	if err := GetDB(c).First(&product, payload.ID).Error; err != nil {
		return fail(c, http.StatusNotFound, "Producto no encontrado")
	}

	values := map[string]interface{}{}
	if payload.CategoryID != nil {
		values["category_id"] = *payload.CategoryID
	}
	if payload.Name != nil {
		values["name"] = strings.TrimSpace(*payload.Name)
	}
	if payload.Slug != nil {
		values["slug"] = *payload.Slug
	}
	if payload.Description != nil {
		values["description"] = *payload.Description
	}
	if payload.ProductType != nil {
		values["product_type"] = *payload.ProductType
	}
	if payload.Price != nil {
		values["price"] = *payload.Price
	}
	if payload.PricePerKg != nil {
		values["price_per_kg"] = *payload.PricePerKg
	}
	if payload.MinWeightG != nil {
		values["min_weight_g"] = *payload.MinWeightG
	}
	if payload.StepWeightG != nil {
		values["step_weight_g"] = *payload.StepWeightG
	}
	if payload.OutOfStock != nil {
		values["out_of_stock"] = *payload.OutOfStock
	}
	if payload.IsFeatured != nil {
		values["is_featured"] = *payload.IsFeatured
	}
	if payload.Images != nil {
		values["images"] = *payload.Images
	}
	if payload.ComboItems != nil {
		values["combo_items"] = *payload.ComboItems
	}

	if len(values) > 0 {
		if err := GetDB(c).Model(&product).Updates(values).Error; err != nil {
			return fail(c, http.StatusInternalServerError, err.Error())
		}
	}
	if err := GetDB(c).Preload("Category").First(&product, product.ID).Error; err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, product)
}

type idPayload struct {
	ID int64 `json:"id,string"`
}

func deleteProduct(c echo.Context) error {
	var payload idPayload
	if err := c.Bind(&payload); err != nil || payload.ID == 0 {
		return fail(c, http.StatusBadRequest, "ID requerido")
	}
	if err := GetDB(c).Delete(&domain.Product{}, payload.ID).Error; err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, map[string]bool{"success": true})
}
