package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers de almacenamiento soportados.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	DB       DBConfig
	HTTP     HTTPConfig
	Watchdog WatchdogConfig
	Device   DeviceConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	Version  string
	Build    string
	LogLevel string
}

// DBConfig configuración del almacén relacional.
// Con Driver=sqlite se usa Path (":memory:" = sin persistencia entre reinicios).
// Con Driver=postgres se usa DatabaseURL o, si está vacío, el DSN construido.
type DBConfig struct {
	Driver      string
	Path        string
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar según el driver.
func (c DBConfig) ConnectionString() string {
	if c.Driver != DriverPostgres {
		return c.Path
	}
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// HTTPConfig configuración del servidor HTTP embebido.
type HTTPConfig struct {
	Host        string
	Port        int
	BindTimeout time.Duration
	SwaggerFile string // vacío = sin /docs
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// WatchdogConfig controla los reintentos del host cuando falla el health check.
type WatchdogConfig struct {
	MaxRestarts   int
	Backoff       time.Duration
	MaxBackoff    time.Duration
	HealthTimeout time.Duration
}

// DeviceConfig datos del dispositivo cuando no hay un host nativo que los provea.
type DeviceConfig struct {
	Locale   string
	Platform string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_DRIVER, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "obra-offline"),
			Version:  getString(v, "APP_VERSION", "1.0.0"),
			Build:    getString(v, "APP_BUILD", "offline"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			Driver:      strings.ToLower(getString(v, "DB_DRIVER", DriverSQLite)),
			Path:        getString(v, "DB_PATH", ":memory:"),
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "obra_offline"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "localhost"),
			Port:        getInt(v, "HTTP_PORT", 3000),
			BindTimeout: getDuration(v, "HTTP_BIND_TIMEOUT", 5*time.Second),
			SwaggerFile: getString(v, "SWAGGER_FILE", ""),
		},
		Watchdog: WatchdogConfig{
			MaxRestarts:   getInt(v, "WATCHDOG_MAX_RESTARTS", 3),
			Backoff:       getDuration(v, "WATCHDOG_BACKOFF", 500*time.Millisecond),
			MaxBackoff:    getDuration(v, "WATCHDOG_MAX_BACKOFF", 8*time.Second),
			HealthTimeout: getDuration(v, "WATCHDOG_HEALTH_TIMEOUT", 2*time.Second),
		},
		Device: DeviceConfig{
			Locale:   getString(v, "DEVICE_LOCALE", "ar-SA"),
			Platform: getString(v, "DEVICE_PLATFORM", "desktop"),
		},
	}

	if cfg.DB.Driver != DriverSQLite && cfg.DB.Driver != DriverPostgres {
		return nil, fmt.Errorf("DB_DRIVER no soportado: %q", cfg.DB.Driver)
	}
	if cfg.HTTP.Port < 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("HTTP_PORT fuera de rango: %d", cfg.HTTP.Port)
	}
	if cfg.Watchdog.MaxRestarts < 1 {
		cfg.Watchdog.MaxRestarts = 1
	}
	return cfg, nil
}

// Default devuelve la configuración por defecto sin leer entorno ni archivos (útil en tests).
func Default() *Config {
	cfg, _ := fromViper(viper.New())
	return cfg
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

// getDuration acepta "2s", "500ms" o un entero en milisegundos.
func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if !v.IsSet(key) {
		return def
	}
	raw := strings.TrimSpace(v.GetString(key))
	if ms, err := strconv.Atoi(raw); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return d
}
