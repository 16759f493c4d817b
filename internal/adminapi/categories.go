package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gefm2002/juancito-mercado-boutique/internal/domain"
	"github.com/gefm2002/juancito-mercado-boutique/internal/webserver"
	"github.com/gefm2002/juancito-mercado-boutique/pkg/common"
)

func registerCategoryRoutes() {
	webserver.ApiGET("/categories", listCategories)
	webserver.ApiPOST("/categories", createCategory)
	webserver.ApiPUT("/categories", updateCategory)
	webserver.ApiDELETE("/categories", deleteCategory)
}

func listCategories(c echo.Context) error {
	var categories []domain.Category
	err := GetDB(c).Order("sort_order").Order("name").Find(&categories).Error
	if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, categories)
}

type categoryPayload struct {
	ID        int64   `json:"id,string"`
	Name      *string `json:"name"`
	Slug      *string `json:"slug"`
	SortOrder *int    `json:"sort_order"`
	ImageURL  *string `json:"image_url"`
	IsActive  *bool   `json:"is_active"`
}

func createCategory(c echo.Context) error {
	var payload categoryPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Datos inválidos")
	}
	if payload.Name == nil || strings.TrimSpace(*payload.Name) == "" {
		return fail(c, http.StatusBadRequest, "Nombre requerido")
	}

	category := domain.Category{
		ID:       common.UUIDint64(),
		Name:     strings.TrimSpace(*payload.Name),
		IsActive: true,
	}
	if payload.Slug != nil && *payload.Slug != "" {
		category.Slug = *payload.Slug
	} else {
		category.Slug = slugify(category.Name)
	}
	if payload.SortOrder != nil {
		category.SortOrder = *payload.SortOrder
	}
	if payload.ImageURL != nil {
		category.ImageURL = *payload.ImageURL
	}
	if payload.IsActive != nil {
		category.IsActive = *payload.IsActive
	}

	if err := GetDB(c).Create(&category).Error; err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, category)
}

func updateCategory(c echo.Context) error {
	var payload categoryPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "ID requerido")
	}
	if payload.ID == 0 {
		return fail(c, http.StatusBadRequest, "ID requerido")
	}

	var category domain.Category
	if err := GetDB(c).First(&category, payload.ID).Error; err != nil {
		return fail(c, http.StatusNotFound, "Categoría no encontrada")
	}

	values := map[string]interface{}{}
	if payload.Name != nil {
		values["name"] = strings.TrimSpace(*payload.Name)
	}
	if payload.Slug != nil {
		values["slug"] = *payload.Slug
	}
	if payload.SortOrder != nil {
		values["sort_order"] = *payload.SortOrder
	}
	if payload.ImageURL != nil {
		values["image_url"] = *payload.ImageURL
	}
	if payload.IsActive != nil {
		values["is_active"] = *payload.IsActive
	}

	if len(values) > 0 {
		if err := GetDB(c).Model(&category).Updates(values).Error; err != nil {
			return fail(c, http.StatusInternalServerError, err.Error())
		}
	}
	if err := GetDB(c).First(&category, category.ID).Error; err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, category)
}

func deleteCategory(c echo.Context) error {
	var payload idPayload
	if err := c.Bind(&payload); err != nil || payload.ID == 0 {
		return fail(c, http.StatusBadRequest, "ID requerido")
	}
	if err := GetDB(c).Delete(&domain.Category{}, payload.ID).Error; err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, map[string]bool{"success": true})
}
