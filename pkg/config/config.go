package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Fuentes de datos soportadas para los historiales.
const (
	SourceREST     = "rest"
	SourcePostgres = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	Log       LogConfig
	HTTP      HTTPConfig
	JWT       JWTConfig
	Backend   BackendConfig
	DB        DBConfig
	Reconcile ReconcileConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel de log.
type LogConfig struct {
	Level string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT (tokens de servicio entrantes y salientes).
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// BackendConfig describe el backend REST de registro (/api/orders, /api/materials, /api/suppliers, ...).
type BackendConfig struct {
	BaseURL       string
	Timeout       time.Duration
	RatePerSecond float64 // 0 = sin límite
	Source        string  // rest | postgres
}

// DBConfig configuración de PostgreSQL (solo lectura).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
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

// ReconcileConfig parámetros de la capa de conciliación.
type ReconcileConfig struct {
	HistoryCap        int      // tope de elementos por historial (observado: 10)
	DeliveredLabel    string   // etiqueta exacta de "entregado" en itemStatus
	StatusPrecedence  []string // orden de fuentes: link, supplier, material
	StatusDefault     string   // estado cuando ninguna fuente aporta valor
	SupplierVeto      bool     // proveedor pasif anula el estado del vínculo
	BulkRatePerSecond float64  // unidades por segundo en operaciones masivas; 0 = sin límite
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, BACKEND_BASE_URL, HISTORY_CAP, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración desde una instancia de Viper ya preparada.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventario-conciliacion"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "inventario-conciliacion"),
		},
		Backend: BackendConfig{
			BaseURL:       strings.TrimRight(getString(v, "BACKEND_BASE_URL", "http://localhost:3000"), "/"),
			Timeout:       time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 15)) * time.Second,
			RatePerSecond: getFloat(v, "BACKEND_RATE_PER_SECOND", 0),
			Source:        strings.ToLower(getString(v, "SOURCE_KIND", SourceREST)),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "inventory"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Reconcile: ReconcileConfig{
			HistoryCap:        getInt(v, "HISTORY_CAP", 10),
			DeliveredLabel:    getString(v, "DELIVERED_LABEL", "Teslim Edildi"),
			StatusPrecedence:  splitList(getString(v, "STATUS_PRECEDENCE", "link,supplier,material")),
			StatusDefault:     getString(v, "STATUS_DEFAULT", "aktif"),
			SupplierVeto:      getBool(v, "STATUS_SUPPLIER_VETO", false),
			BulkRatePerSecond: getFloat(v, "BULK_RATE_PER_SECOND", 0),
		},
	}

	if cfg.Backend.Source != SourceREST && cfg.Backend.Source != SourcePostgres {
		return nil, fmt.Errorf("config: SOURCE_KIND %q no soportado", cfg.Backend.Source)
	}
	if cfg.Reconcile.HistoryCap <= 0 {
		return nil, fmt.Errorf("config: HISTORY_CAP debe ser positivo")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

// getInt tolera valores string provenientes de env o de archivos .env.
func getInt(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	n, err := cast.ToIntE(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return n
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if !v.IsSet(key) {
		return def
	}
	f, err := cast.ToFloat64E(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return f
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := cast.ToBoolE(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}
