package app

import "github.com/gefm2002/juancito-mercado-boutique/internal/domain"

// Hard-coded fallbacks used when the corresponding site_config row is
// missing. They match the values the deployed site shipped with.
const (
	DefaultNombreComercial     = "Juancito Mercado Boutique"
	DefaultWhatsappFallbackURL = "https://walink.co/d1b15d"
)

func DefaultSucursales() []domain.Sucursal {
	return []domain.Sucursal{
		{Nombre: "Caballito La Plata", Direccion: "Av. La Plata 152, Caballito, CABA"},
		{Nombre: "Caballito Rivadavia", Direccion: "Av. Rivadavia 4546, Caballito, CABA"},
	}
}

func DefaultMetodosPago() []string {
	return []string{"efectivo", "transferencia", "tarjeta", "mercado_pago"}
}

func DefaultEnvioRetiro() domain.EnvioRetiro {
	return domain.EnvioRetiro{
		RetiroEnSucursal: true,
		EnvioCaba:        true,
		ZonasEnvio:       []string{"Caballito", "Flores", "Almagro", "Villa Crespo"},
	}
}

func DefaultTextos() map[string]string {
	return map[string]string{
		"hero_headline":    "Tu mercado boutique en Caballito",
		"hero_subheadline": "Fiambres, quesos, carnes, vinos y deli. Todo para el almuerzo, la picada o quedar como un campeón.",
		"hero_cta_1":       "Ver productos",
		"hero_cta_2":       "Pedir por WhatsApp",
	}
}

func DefaultFAQs() []domain.FAQ {
	return []domain.FAQ{
		{Question: "¿Hacen envíos?", Answer: "Sí, hacemos envíos en CABA. Consultá las zonas disponibles en el checkout."},
		{Question: "¿Puedo pedir para retirar?", Answer: "Sí, podés retirar en cualquiera de nuestras dos sucursales."},
		{Question: "¿Cómo funcionan los productos por peso?", Answer: "Los productos por peso se calculan según la cantidad que elijas. El precio se muestra por kg y se calcula automáticamente."},
		{Question: "¿Con cuánto tiempo pido una tabla?", Answer: "Te recomendamos pedir con 24 horas de anticipación para tablas grandes."},
		{Question: "¿Medios de pago?", Answer: "Aceptamos efectivo, transferencia, tarjetas y Mercado Pago."},
	}
}
