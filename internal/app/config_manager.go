package app

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/spf13/cast"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/gefm2002/juancito-mercado-boutique/internal/domain"
	"github.com/gefm2002/juancito-mercado-boutique/pkg/common"
)

// ConfigManager caches the site_config rows behind an RWMutex. Values
// are raw JSON text keyed by the row key; writers go through Set so
// the cache never serves a stale write from this process. A cron job
// refreshes the cache to pick up out-of-band database edits.
type ConfigManager struct {
	db     *gorm.DB
	mu     sync.RWMutex
	values map[string]string
}

func NewConfigManager(db *gorm.DB) *ConfigManager {
	return &ConfigManager{db: db, values: make(map[string]string)}
}

// Load replaces the cache with the current table contents.
func (m *ConfigManager) Load() {
	var rows []domain.SiteConfig
	if err := m.db.Find(&rows).Error; err != nil {
		zap.L().Error("failed to load site config", zap.Error(err))
		return
	}
	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}
	m.mu.Lock()
	m.values = values
	m.mu.Unlock()
}

// Raw returns the raw JSON text stored under key.
func (m *ConfigManager) Raw(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// All returns a snapshot of every key as raw JSON.
func (m *ConfigManager) All() map[string]json.RawMessage {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]json.RawMessage, len(m.values))
	for k, v := range m.values {
		out[k] = json.RawMessage(v)
	}
	return out
}

// GetString decodes the value under key as a string. JSON strings are
// unquoted; scalar values of other types are coerced.
func (m *ConfigManager) GetString(key string) string {
	raw, ok := m.Raw(key)
	if !ok {
		return ""
	}
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	if v == nil {
		return ""
	}
	return cast.ToString(v)
}

// GetBool decodes the value under key as a bool.
func (m *ConfigManager) GetBool(key string) bool {
	raw, ok := m.Raw(key)
	if !ok {
		return false
	}
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return false
	}
	return cast.ToBool(v)
}

// GetInt64 decodes the value under key as an int64.
func (m *ConfigManager) GetInt64(key string) int64 {
	raw, ok := m.Raw(key)
	if !ok {
		return 0
	}
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return 0
	}
	return cast.ToInt64(v)
}

// GetJSON decodes the value under key into dest, reporting whether the
// key existed and decoded cleanly.
func (m *ConfigManager) GetJSON(key string, dest interface{}) bool {
	raw, ok := m.Raw(key)
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(raw), dest) == nil
}

// Set upserts a raw JSON value by key and updates the cache.
func (m *ConfigManager) Set(key string, raw json.RawMessage) error {
	row := domain.SiteConfig{
		ID:        common.UUIDint64(),
		Key:       key,
		Value:     string(raw),
		UpdatedAt: time.Now(),
	}
	err := m.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.values[key] = string(raw)
	m.mu.Unlock()
	return nil
}

// SetString stores a plain string value under key.
func (m *ConfigManager) SetString(key, value string) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return m.Set(key, raw)
}
