package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// InsecureDefaultSecret is used when no web secret is configured. It
// matches the value the original deployment shipped with and must be
// flagged loudly at startup.
const InsecureDefaultSecret = "change-me-in-production"

type SysConfig struct {
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host      string `yaml:"host" json:"host"`
	Port      int    `yaml:"port" json:"port"`
	Secret    string `yaml:"secret" json:"secret"`
	UploadDir string `yaml:"upload_dir" json:"upload_dir"`
	BaseURL   string `yaml:"base_url" json:"base_url"`
}

type DBConfig struct {
	Type   string `yaml:"type" json:"type"`
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	Name   string `yaml:"name" json:"name"`
	User   string `yaml:"user" json:"user"`
	Passwd string `yaml:"passwd" json:"passwd"`
	Debug  bool   `yaml:"debug" json:"debug"`
}

type LoggerConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig    `yaml:"system" json:"system"`
	Web      WebConfig    `yaml:"web" json:"web"`
	Database DBConfig     `yaml:"database" json:"database"`
	Logger   LoggerConfig `yaml:"logger" json:"logger"`
}

func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		System: SysConfig{
			Location: "America/Argentina/Buenos_Aires",
			Workdir:  "/var/boutique",
		},
		Web: WebConfig{
			Host:      "0.0.0.0",
			Port:      1816,
			Secret:    InsecureDefaultSecret,
			UploadDir: "/var/boutique/images",
			BaseURL:   "http://127.0.0.1:1816",
		},
		Database: DBConfig{
			Type:   "postgres",
			Host:   "127.0.0.1",
			Port:   5432,
			Name:   "boutique",
			User:   "postgres",
			Passwd: "",
		},
		Logger: LoggerConfig{
			Mode:       "development",
			FileEnable: false,
			Filename:   "/var/boutique/boutique.log",
		},
	}
}

// LoadConfig reads the YAML file at path (when it exists) over the
// defaults, then applies BOUTIQUE_* environment overrides.
func LoadConfig(path string) *AppConfig {
	cfg := DefaultAppConfig()
	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			// Runs before the zap logger exists, so stderr it is.
			if err := yaml.Unmarshal(data, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "config: ignoring malformed %s: %v\n", path, err)
			}
		}
	}
	setEnvString(&cfg.System.Workdir, "BOUTIQUE_WORKDIR")
	setEnvString(&cfg.System.Location, "BOUTIQUE_LOCATION")
	setEnvString(&cfg.Web.Host, "BOUTIQUE_WEB_HOST")
	setEnvInt(&cfg.Web.Port, "BOUTIQUE_WEB_PORT")
	setEnvString(&cfg.Web.Secret, "BOUTIQUE_JWT_SECRET")
	setEnvString(&cfg.Web.UploadDir, "BOUTIQUE_UPLOAD_DIR")
	setEnvString(&cfg.Web.BaseURL, "BOUTIQUE_BASE_URL")
	setEnvString(&cfg.Database.Type, "BOUTIQUE_DB_TYPE")
	setEnvString(&cfg.Database.Host, "BOUTIQUE_DB_HOST")
	setEnvInt(&cfg.Database.Port, "BOUTIQUE_DB_PORT")
	setEnvString(&cfg.Database.Name, "BOUTIQUE_DB_NAME")
	setEnvString(&cfg.Database.User, "BOUTIQUE_DB_USER")
	setEnvString(&cfg.Database.Passwd, "BOUTIQUE_DB_PASSWD")
	return cfg
}

func setEnvString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setEnvInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
