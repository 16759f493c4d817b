package app

import (
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gefm2002/juancito-mercado-boutique/internal/auth"
	"github.com/gefm2002/juancito-mercado-boutique/internal/domain"
	"github.com/gefm2002/juancito-mercado-boutique/pkg/common"
)

func (a *Application) checkDefaultAdmin() {
	defaultEmail := "admin@juancito.local"
	defaultPassword := "juancito"
	if v := os.Getenv("BOUTIQUE_ADMIN_EMAIL"); v != "" {
		// Login lowercases the submitted email before the lookup, so
		// the stored one must be lowercase too.
		defaultEmail = strings.ToLower(v)
	}
	if v := os.Getenv("BOUTIQUE_ADMIN_PASSWORD"); v != "" {
		defaultPassword = v
	}

	var count int64
	if err := a.gormDB.Model(&domain.Admin{}).Count(&count).Error; err != nil {
		zap.L().Error("failed to query admins", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	hash, err := auth.HashPassword(defaultPassword)
	if err != nil {
		zap.L().Error("failed to hash default admin password", zap.Error(err))
		return
	}
	admin := domain.Admin{
		ID:           common.UUIDint64(),
		Email:        defaultEmail,
		PasswordHash: hash,
		Role:         "admin",
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := a.gormDB.Create(&admin).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			zap.L().Error("failed to create default admin", zap.Error(err))
		}
		return
	}
	zap.L().Warn("initialized default admin account; change the password immediately",
		zap.String("email", defaultEmail))
}

// checkSettings seeds the site_config rows a fresh deployment needs.
// Existing keys are never overwritten.
func (a *Application) checkSettings() {
	defaults := []struct {
		key   string
		value interface{}
	}{
		{"nombre_comercial", DefaultNombreComercial},
		{"whatsapp_fallback_url", DefaultWhatsappFallbackURL},
		{"metodos_pago", DefaultMetodosPago()},
		{"envio_retiro", DefaultEnvioRetiro()},
		{"textos", DefaultTextos()},
		{"faqs", DefaultFAQs()},
		{"sucursales", DefaultSucursales()},
		{"horarios", map[string]string{}},
	}

	for _, d := range defaults {
		var count int64
		a.gormDB.Model(&domain.SiteConfig{}).Where("key = ?", d.key).Count(&count)
		if count > 0 {
			continue
		}
		raw, err := json.Marshal(d.value)
		if err != nil {
			zap.L().Error("failed to encode default config", zap.String("key", d.key), zap.Error(err))
			continue
		}
		if err := a.gormDB.Create(&domain.SiteConfig{
			ID:        common.UUIDint64(),
			Key:       d.key,
			Value:     string(raw),
			UpdatedAt: time.Now(),
		}).Error; err != nil {
			zap.L().Error("failed to create default config", zap.String("key", d.key), zap.Error(err))
			continue
		}
		zap.L().Info("initialized config", zap.String("key", d.key))
	}
}
