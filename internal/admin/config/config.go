package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gorilla/securecookie"
)

const envPrefix = "DASHPRO_"

// Cookie and header defaults shared by the config tags and the HTTP stack.
const (
	DefaultCSRFCookie   = "dashpro_csrf"
	DefaultCSRFHeader   = "X-CSRF-Token"
	DefaultCSRFLifetime = 12 * time.Hour
)

// Config captures runtime settings for the admin console and its CLI.
type Config struct {
	Address     string `env:"HTTP_ADDR" envDefault:":8080"`
	BasePath    string `env:"BASE_PATH" envDefault:"/"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	Session  SessionConfig
	CSRF     CSRFConfig
	Pages    PagesConfig
	PrefsDir string `env:"PREFS_DIR" envDefault:".dashpro"`
}

// SessionConfig controls the preference cookie.
type SessionConfig struct {
	CookieName   string        `env:"SESSION_COOKIE" envDefault:"dashpro_session"`
	HashKey      string        `env:"SESSION_HASH_KEY"`
	BlockKey     string        `env:"SESSION_BLOCK_KEY"`
	CookieSecure bool          `env:"SESSION_COOKIE_SECURE" envDefault:"false"`
	IdleTimeout  time.Duration `env:"SESSION_IDLE_TIMEOUT" envDefault:"720h"`
}

// CSRFConfig controls double-submit cookie protection for event posts.
type CSRFConfig struct {
	CookieName string `env:"CSRF_COOKIE" envDefault:"dashpro_csrf"`
	HeaderName string `env:"CSRF_HEADER" envDefault:"X-CSRF-Token"`
}

// PagesConfig tunes live page sessions.
type PagesConfig struct {
	ToastDuration     time.Duration `env:"TOAST_DURATION" envDefault:"3s"`
	IdleTTL           time.Duration `env:"PAGE_IDLE_TTL" envDefault:"30m"`
	SidebarBreakpoint int           `env:"SIDEBAR_BREAKPOINT" envDefault:"992"`
}

// Option customises Load.
type Option func(*loaderOptions)

type loaderOptions struct {
	environment map[string]string
}

// WithEnvironment replaces the process environment with values. Keys carry
// the DASHPRO_ prefix, as they would in the real environment.
func WithEnvironment(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.environment = values
	}
}

// Load parses configuration from the environment and validates it.
func Load(opts ...Option) (Config, error) {
	var options loaderOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      envPrefix,
		Environment: options.environment,
	}); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.BasePath = NormalizeBasePath(cfg.BasePath)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every missing or invalid field at once.
func (c Config) Validate() error {
	var fields []string
	if strings.TrimSpace(c.Address) == "" {
		fields = append(fields, "HTTP_ADDR")
	}
	if strings.TrimSpace(c.Session.CookieName) == "" {
		fields = append(fields, "SESSION_COOKIE")
	}
	if n := len(c.Session.BlockKey); n != 0 && n != 16 && n != 24 && n != 32 {
		fields = append(fields, "SESSION_BLOCK_KEY")
	}
	if strings.TrimSpace(c.CSRF.HeaderName) == "" {
		fields = append(fields, "CSRF_HEADER")
	}
	if c.Pages.ToastDuration <= 0 {
		fields = append(fields, "TOAST_DURATION")
	}
	if c.Pages.IdleTTL <= 0 {
		fields = append(fields, "PAGE_IDLE_TTL")
	}
	if c.Pages.SidebarBreakpoint <= 0 {
		fields = append(fields, "SIDEBAR_BREAKPOINT")
	}
	if len(fields) > 0 {
		return &ValidationError{fields: fields}
	}
	return nil
}

// SessionKeys returns the cookie hash and block keys. A missing hash key is
// replaced with a random one, so cookies do not survive a restart.
func (c Config) SessionKeys() (hash, block []byte) {
	hash = []byte(c.Session.HashKey)
	if len(hash) == 0 {
		hash = securecookie.GenerateRandomKey(32)
	}
	if c.Session.BlockKey != "" {
		block = []byte(c.Session.BlockKey)
	}
	return hash, block
}

// ValidationError is returned when required configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// NormalizeBasePath returns a leading-slash path without a trailing slash, or "/".
func NormalizeBasePath(path string) string {
	p := strings.TrimSpace(path)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	p = strings.TrimRight(p, "/")
	if p == "" {
		return "/"
	}
	return p
}
