package domain

import "time"

// Admin is a back-office account. The role field is carried in the
// issued token but never consulted for authorization: any valid token
// grants the single admin tier.
type Admin struct {
	ID           int64     `json:"id,string" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"size:191;uniqueIndex"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role" gorm:"size:32"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Admin) TableName() string {
	return "admins"
}

// SiteConfig stores site settings as loose key -> JSON value rows.
// Key is the upsert key; Value holds raw JSON text.
type SiteConfig struct {
	ID        int64     `json:"id,string" gorm:"primaryKey"`
	Key       string    `json:"key" gorm:"size:191;uniqueIndex"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (SiteConfig) TableName() string {
	return "site_config"
}

// Sucursal is a physical pickup branch, stored inside the "sucursales"
// site_config value.
type Sucursal struct {
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Horarios  string `json:"horarios,omitempty"`
	Telefono  string `json:"telefono,omitempty"`
}

// FAQ is a question/answer pair shown on the storefront, stored
// inside the "faqs" site_config value.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// EnvioRetiro holds the fulfillment options offered at checkout,
// stored inside the "envio_retiro" site_config value.
type EnvioRetiro struct {
	RetiroEnSucursal bool     `json:"retiro_en_sucursal"`
	EnvioCaba        bool     `json:"envio_caba"`
	ZonasEnvio       []string `json:"zonas_envio"`
}

// AuditLog records order lifecycle events published on the internal
// event bus.
type AuditLog struct {
	ID        int64     `json:"id,string" gorm:"primaryKey"`
	Actor     string    `json:"actor" gorm:"size:64"`
	Action    string    `json:"action" gorm:"size:64;index"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName Specify table name
func (AuditLog) TableName() string {
	return "audit_log"
}
