package app

import (
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete application configuration, loadable from
// environment variables (BOUTIQUE_ prefix), flags, or YAML config files.
type Config struct {
	Addr string `default:"0.0.0.0:8080" usage:"API server listen address"`

	// DatabaseURL may be empty: the catalog then comes from the products
	// file or built-in defaults, and admin writes answer 503.
	DatabaseURL  string `usage:"PostgreSQL connection URL (BOUTIQUE_DATABASE_URL or DATABASE_URL)" flag:"database-url"`
	ProductsFile string `default:"db/seed/products.json" usage:"Static catalog JSON used when the database is unavailable" flag:"products-file"`

	ReservationBaseURL string        `default:"reservation.html" usage:"Page the checkout hand-off links to" flag:"reservation-base-url"`
	RemoteTimeout      time.Duration `default:"5s" usage:"Timeout for the remote catalog source" flag:"remote-timeout"`
	SessionTTL         time.Duration `default:"30m" usage:"Idle TTL for visitor sessions" flag:"session-ttl"`

	AdminEmails    []string `usage:"Operator email allowlist" flag:"admin-emails"`
	AuthURL        string   `usage:"Auth backend base URL for operator sign-in" flag:"auth-url"`
	AuthAnonKey    string   `usage:"Publishable API key for the auth backend" flag:"auth-anon-key"`
	OperatorPepper string   `usage:"HMAC pepper for operator session tokens (BOUTIQUE_OPERATOR_PEPPER)" flag:"operator-pepper"`

	EmailJS   EmailJSConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Graceful  GracefulConfig
}

// EmailJSConfig identifies the transactional-email account used by the
// contact relay. The relay is disabled while ServiceID is empty.
type EmailJSConfig struct {
	Endpoint   string `default:"" usage:"Override for the EmailJS send endpoint" flag:"emailjs-endpoint"`
	ServiceID  string `usage:"EmailJS service id" flag:"emailjs-service"`
	TemplateID string `usage:"EmailJS template id" flag:"emailjs-template"`
	PublicKey  string `usage:"EmailJS public key" flag:"emailjs-public-key"`
}

// RateLimitConfig controls the per-client sliding window rate limiter.
type RateLimitConfig struct {
	Max    int           `default:"100" usage:"Max requests per window"`
	Window time.Duration `default:"1m"  usage:"Rate limit window duration"`
}

// CORSConfig controls Cross-Origin Resource Sharing headers.
type CORSConfig struct {
	Origins []string `default:"*" usage:"Allowed CORS origins"`
}

// GracefulConfig controls graceful shutdown timing.
type GracefulConfig struct {
	ReadinessDelay  time.Duration `default:"3s"  usage:"Delay after readiness=false before shutdown" flag:"readiness-delay"`
	ShutdownTimeout time.Duration `default:"15s" usage:"Maximum shutdown duration" flag:"shutdown-timeout"`
}

// LoadConfig loads configuration from environment variables, YAML config
// files, and applies platform-specific defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "BOUTIQUE",
		Files:     []string{"config.yaml", "/etc/boutique/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	if cfg.OperatorPepper == "" && (cfg.AuthURL != "" || len(cfg.AdminEmails) > 0) {
		return nil, errors.New("operator pepper is required when operator login is configured")
	}

	return &cfg, nil
}

// applyPlatformDefaults maps platform-provided environment variables
// (Railway, Render, etc.) that use standard names like DATABASE_URL and
// PORT to the application's BOUTIQUE_-prefixed configuration.
func (c *Config) applyPlatformDefaults() {
	if c.DatabaseURL == "" {
		if v := os.Getenv("DATABASE_URL"); v != "" {
			c.DatabaseURL = v
		}
	}
	if port := os.Getenv("PORT"); port != "" && c.Addr == "0.0.0.0:8080" {
		c.Addr = "0.0.0.0:" + port
	}
}
