// Package config carga la configuración del servicio desde env (y opcionalmente un archivo).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Port      string `mapstructure:"port" validate:"required,numeric"`
	AppName   string `mapstructure:"app_name"`
	LogLevel  string `mapstructure:"log_level" validate:"oneof=debug info warn warning error"`
	LogFormat string `mapstructure:"log_format" validate:"oneof=text json"`

	// Vacío => stores in-memory.
	DatabaseDSN       string        `mapstructure:"db_dsn"`
	AutoMigrate       bool          `mapstructure:"db_auto_migrate"`
	DBMaxOpenConns    int           `mapstructure:"db_max_open_conns" validate:"gte=0"`
	DBMaxIdleConns    int           `mapstructure:"db_max_idle_conns" validate:"gte=0"`
	DBConnMaxIdleTime time.Duration `mapstructure:"db_conn_max_idle_time" validate:"gte=0"`
	DBConnMaxLifetime time.Duration `mapstructure:"db_conn_max_lifetime" validate:"gte=0"`

	ReadTimeout     time.Duration `mapstructure:"http_read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"http_write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `mapstructure:"http_idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`

	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func (c Config) Addr() string { return ":" + c.Port }

func (c Config) UsesDatabase() bool { return strings.TrimSpace(c.DatabaseDSN) != "" }

// envKeys: clave => variables de entorno (la primera no vacía gana).
var envKeys = map[string][]string{
	"port":                  {"PORT"},
	"app_name":              {"APP_NAME"},
	"log_level":             {"LOG_LEVEL"},
	"log_format":            {"LOG_FORMAT"},
	"db_dsn":                {"DB_DSN", "DATABASE_URL"},
	"db_auto_migrate":       {"DB_AUTO_MIGRATE"},
	"db_max_open_conns":     {"DB_MAX_OPEN_CONNS"},
	"db_max_idle_conns":     {"DB_MAX_IDLE_CONNS"},
	"db_conn_max_idle_time": {"DB_CONN_MAX_IDLE_TIME"},
	"db_conn_max_lifetime":  {"DB_CONN_MAX_LIFETIME"},
	"http_read_timeout":     {"HTTP_READ_TIMEOUT"},
	"http_write_timeout":    {"HTTP_WRITE_TIMEOUT"},
	"http_idle_timeout":     {"HTTP_IDLE_TIMEOUT"},
	"shutdown_timeout":      {"SHUTDOWN_TIMEOUT"},
	"cors_allowed_origins":  {"CORS_ALLOWED_ORIGINS"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("app_name", "busca-pet")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("db_dsn", "")
	v.SetDefault("db_auto_migrate", true)
	v.SetDefault("db_max_open_conns", 10)
	v.SetDefault("db_max_idle_conns", 5)
	v.SetDefault("db_conn_max_idle_time", 5*time.Minute)
	v.SetDefault("db_conn_max_lifetime", 30*time.Minute)
	v.SetDefault("http_read_timeout", 5*time.Second)
	v.SetDefault("http_write_timeout", 10*time.Second)
	v.SetDefault("http_idle_timeout", 60*time.Second)
	v.SetDefault("shutdown_timeout", 10*time.Second)
	v.SetDefault("cors_allowed_origins", []string{"*"})
}

// Load: defaults < archivo (CONFIG_FILE) < env.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, envs := range envKeys {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	cfg.CORSAllowedOrigins = cleanList(cfg.CORSAllowedOrigins)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", describe(err))
	}
	return &cfg, nil
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// describe lista los campos inválidos en un solo error legible.
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
