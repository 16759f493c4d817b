package domain

var Tables = []interface{}{
	// System
	&Admin{},
	&SiteConfig{},
	&AuditLog{},
	// Catalog
	&Category{},
	&Product{},
	&Promo{},
	// Orders
	&Order{},
}
