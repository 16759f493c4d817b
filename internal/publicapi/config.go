package publicapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gefm2002/juancito-mercado-boutique/internal/app"
	"github.com/gefm2002/juancito-mercado-boutique/internal/domain"
	"github.com/gefm2002/juancito-mercado-boutique/internal/webserver"
)

func registerConfigRoutes() {
	webserver.PubGET("/public/config", getPublicConfig)
}

type publicConfig struct {
	NombreComercial     string             `json:"nombre_comercial"`
	WhatsappPhone       string             `json:"whatsapp_phone"`
	WhatsappFallbackURL string             `json:"whatsapp_fallback_url"`
	MetodosPago         []string           `json:"metodos_pago"`
	EnvioRetiro         domain.EnvioRetiro `json:"envio_retiro"`
	Sucursales          []domain.Sucursal  `json:"sucursales"`
	Textos              map[string]string  `json:"textos"`
	FAQs                []domain.FAQ       `json:"faqs"`
	Horarios            map[string]string  `json:"horarios"`
	Promos              []domain.Promo     `json:"promos"`
}

// getPublicConfig aggregates everything the storefront needs on load:
// site configuration with hard-coded fallbacks plus the active promos.
func getPublicConfig(c echo.Context) error {
	mgr := GetApp(c).ConfigMgr()

	cfg := publicConfig{
		NombreComercial:     mgr.GetString("nombre_comercial"),
		WhatsappPhone:       mgr.GetString("whatsapp_phone"),
		WhatsappFallbackURL: mgr.GetString("whatsapp_fallback_url"),
		Textos:              map[string]string{},
		Horarios:            map[string]string{},
	}
	if cfg.NombreComercial == "" {
		cfg.NombreComercial = app.DefaultNombreComercial
	}
	if cfg.WhatsappFallbackURL == "" {
		cfg.WhatsappFallbackURL = app.DefaultWhatsappFallbackURL
	}
	if !mgr.GetJSON("metodos_pago", &cfg.MetodosPago) {
		cfg.MetodosPago = app.DefaultMetodosPago()
	}
	if !mgr.GetJSON("envio_retiro", &cfg.EnvioRetiro) {
		cfg.EnvioRetiro = app.DefaultEnvioRetiro()
	}
	if !mgr.GetJSON("sucursales", &cfg.Sucursales) {
		cfg.Sucursales = app.DefaultSucursales()
	}
	if !mgr.GetJSON("textos", &cfg.Textos) {
		cfg.Textos = app.DefaultTextos()
	}
	if !mgr.GetJSON("faqs", &cfg.FAQs) {
		cfg.FAQs = app.DefaultFAQs()
	}
	mgr.GetJSON("horarios", &cfg.Horarios)

	err := GetDB(c).
		Where("is_active = ?", true).
		Order("sort_order").
		Find(&cfg.Promos).Error
	if err != nil {
		return fail(c, http.StatusInternalServerError, err.Error())
	}
	if cfg.Promos == nil {
		cfg.Promos = []domain.Promo{}
	}
	return ok(c, cfg)
}
