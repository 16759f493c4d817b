package app

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gefm2002/juancito-mercado-boutique/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(domain.Tables...))
	return db
}

func TestConfigManagerSetAndGet(t *testing.T) {
	mgr := NewConfigManager(newTestDB(t))

	require.NoError(t, mgr.SetString("nombre_comercial", "Juancito"))
	assert.Equal(t, "Juancito", mgr.GetString("nombre_comercial"))

	require.NoError(t, mgr.Set("envio_retiro", json.RawMessage(`{"retiro_en_sucursal":true,"envio_caba":false,"zonas_envio":["Caballito"]}`)))
	var er domain.EnvioRetiro
	require.True(t, mgr.GetJSON("envio_retiro", &er))
	assert.True(t, er.RetiroEnSucursal)
	assert.False(t, er.EnvioCaba)
	assert.Equal(t, []string{"Caballito"}, er.ZonasEnvio)

	assert.Equal(t, "", mgr.GetString("missing"))
	assert.False(t, mgr.GetJSON("missing", &er))
}

func TestConfigManagerSetOverwrites(t *testing.T) {
	db := newTestDB(t)
	mgr := NewConfigManager(db)

	require.NoError(t, mgr.SetString("whatsapp_phone", "549111"))
	require.NoError(t, mgr.SetString("whatsapp_phone", "549222"))
	assert.Equal(t, "549222", mgr.GetString("whatsapp_phone"))

	var count int64
	require.NoError(t, db.Model(&domain.SiteConfig{}).Where("key = ?", "whatsapp_phone").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestConfigManagerLoadPicksUpExternalWrites(t *testing.T) {
	db := newTestDB(t)
	mgr := NewConfigManager(db)

	require.NoError(t, db.Create(&domain.SiteConfig{
		ID:    1,
		Key:   "nombre_comercial",
		Value: `"Escrito por fuera"`,
	}).Error)

	assert.Equal(t, "", mgr.GetString("nombre_comercial"))
	mgr.Load()
	assert.Equal(t, "Escrito por fuera", mgr.GetString("nombre_comercial"))
}

func TestConfigManagerAll(t *testing.T) {
	mgr := NewConfigManager(newTestDB(t))
	require.NoError(t, mgr.SetString("a", "1"))
	require.NoError(t, mgr.Set("b", json.RawMessage(`[1,2]`)))

	all := mgr.All()
	assert.Len(t, all, 2)
	assert.JSONEq(t, `"1"`, string(all["a"]))
	assert.JSONEq(t, `[1,2]`, string(all["b"]))
}
