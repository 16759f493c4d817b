package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gefm2002/juancito-mercado-boutique/internal/domain"
	"github.com/gefm2002/juancito-mercado-boutique/internal/webserver"
	"github.com/gefm2002/juancito-mercado-boutique/pkg/common"
)

func registerPromoRoutes() {
	webserver.ApiGET("/promos", listPromos)
	webserver.ApiPOST("/promos", createPromo)
	webserver.ApiPUT("/promos", updatePromo)
	webserver.ApiDELETE("/promos", deletePromo)
}

func listPromos(c echo.Context) error {
	var promos []domain.Promo
	err := GetDB(c).Order("sort_order").Order("created_at DESC").Find(&promos).Error
	if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, promos)
}

type promoPayload struct {
	ID          int64   `json:"id,string"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	LinkURL     *string `json:"link_url"`
	IsActive    *bool   `json:"is_active"`
	SortOrder   *int    `json:"sort_order"`
}

func createPromo(c echo.Context) error {
	var payload promoPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Datos inválidos")
	}
	if payload.Title == nil || strings.TrimSpace(*payload.Title) == "" {
		return fail(c, http.StatusBadRequest, "Título requerido")
	}

	promo := domain.Promo{
		ID:       common.UUIDint64(),
		Title:    strings.TrimSpace(*payload.Title),
		IsActive: true,
	}
	if payload.Description != nil {
		promo.Description = *payload.Description
	}
	if payload.ImageURL != nil {
		promo.ImageURL = *payload.ImageURL
	}
	if payload.LinkURL != nil {
		promo.LinkURL = *payload.LinkURL
	}
	if payload.IsActive != nil {
		promo.IsActive = *payload.IsActive
	}
	if payload.SortOrder != nil {
		promo.SortOrder = *payload.SortOrder
	}

	if err := GetDB(c).Create(&promo).Error; err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, promo)
}

func updatePromo(c echo.Context) error {
	var payload promoPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "ID requerido")
	}
	if payload.ID == 0 {
		return fail(c, http.StatusBadRequest, "ID requerido")
	}

	var promo domain.Promo
	if err := GetDB(c).First(&promo, payload.ID).Error; err != nil {
		return fail(c, http.StatusNotFound, "Promo no encontrada")
	}

	values := map[string]interface{}{}
	if payload.Title != nil {
		values["title"] = strings.TrimSpace(*payload.Title)
	}
	if payload.Description != nil {
		values["description"] = *payload.Description
	}
	if payload.ImageURL != nil {
		values["image_url"] = *payload.ImageURL
	}
	if payload.LinkURL != nil {
		values["link_url"] = *payload.LinkURL
	}
	if payload.IsActive != nil {
		values["is_active"] = *payload.IsActive
	}
	if payload.SortOrder != nil {
		values["sort_order"] = *payload.SortOrder
	}

	if len(values) > 0 {
		if err := GetDB(c).Model(&promo).Updates(values).Error; err != nil {
			return fail(c, http.StatusInternalServerError, err.Error())
		}
	}
	if err := GetDB(c).First(&promo, promo.ID).Error; err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, promo)
}

func deletePromo(c echo.Context) error {
	var payload idPayload
	if err := c.Bind(&payload); err != nil || payload.ID == 0 {
		return fail(c, http.StatusBadRequest, "ID requerido")
	}
	if err := GetDB(c).Delete(&domain.Promo{}, payload.ID).Error; err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	return ok(c, map[string]bool{"success": true})
}
