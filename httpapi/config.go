package httpapi

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config carries the boundary-layer settings. Fields are populated from
// QUADVIEW_* environment variables by LoadConfig; zero values fall back to
// the tagged defaults.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `envconfig:"ADDR" default:":8080"`
	// ReadTimeout bounds how long a request body may trickle in.
	ReadTimeout time.Duration `envconfig:"READ_TIMEOUT" default:"10s"`
	// WriteTimeout bounds the whole handler execution, analysis included.
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"30s"`
	// CurvePoints is the dense-curve resolution of calculate responses.
	CurvePoints int `envconfig:"CURVE_POINTS" default:"200"`
	// CatalogFile optionally points at a YAML file of extra
	// expression-backed catalog entries merged into the builtins.
	CatalogFile string `envconfig:"CATALOG_FILE"`
	// ExprCacheTTL bounds the compiled-expression cache lifetime.
	ExprCacheTTL time.Duration `envconfig:"EXPR_CACHE_TTL" default:"10m"`
	// LogLevel is the slog level name (debug, info, warn, error).
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig reads Config from QUADVIEW_-prefixed environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("quadview", &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
