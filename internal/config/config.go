package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is read once at startup and handed to the components that need it.
type Config struct {
	Port            string        `env:"PORT"             envDefault:"5000"`
	Debug           bool          `env:"DEBUG"            envDefault:"false"`
	ServiceName     string        `env:"SERVICE_NAME"     envDefault:"Brand Bridge API"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS"  envDefault:"http://localhost:*,http://127.0.0.1:*,https://*.vercel.app,https://*.netlify.app" envSeparator:","`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Brevo Brevo

	// LegacyVars lists the old variable names this config was filled from.
	LegacyVars []string
}

// legacyNames maps current variables to the names earlier deployments used.
// The current name wins when both are set.
var legacyNames = []struct{ current, legacy string }{
	{"BREVO_LIST_ID", "LIST_ID_EVA_MAIN"},
	{"DEBUG", "FLASK_DEBUG"},
}

// Brevo holds the CRM credentials and target list.
type Brevo struct {
	APIKey  string        `env:"BREVO_API_KEY,notEmpty"`
	BaseURL string        `env:"BREVO_BASE_URL" envDefault:"https://api.brevo.com/v3"`
	ListID  int64         `env:"BREVO_LIST_ID"  envDefault:"2"`
	Timeout time.Duration `env:"CRM_TIMEOUT"    envDefault:"10s"`
}

// Load reads an optional .env file and parses the process environment.
// Variables already present in the environment win over the file.
func Load(files ...string) (Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load(files...)

	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (Config, error) {
	environ, legacy := environment()

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.LegacyVars = legacy
	if cfg.Brevo.ListID <= 0 {
		return Config{}, fmt.Errorf("BREVO_LIST_ID must be positive, got %d", cfg.Brevo.ListID)
	}
	if cfg.Brevo.Timeout <= 0 {
		return Config{}, fmt.Errorf("CRM_TIMEOUT must be positive, got %s", cfg.Brevo.Timeout)
	}
	return cfg, nil
}

func environment() (map[string]string, []string) {
	environ := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok {
			environ[key] = value
		}
	}

	var used []string
	for _, n := range legacyNames {
		if _, set := environ[n.current]; set {
			continue
		}
		if value, ok := environ[n.legacy]; ok {
			environ[n.current] = value
			used = append(used, n.legacy)
		}
	}
	return environ, used
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
