package config

import (
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort              = "1000"
	defaultAssetVersion      = "v1"
	defaultLogLevel          = "info"
	defaultReadHeaderTimeout = 10 * time.Second
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 15 * time.Second
	defaultIdleTimeout       = 60 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
)

var (
	assetVersionPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
	measurementPattern  = regexp.MustCompile(`^G-[A-Z0-9]+$`)
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig
	Site      SiteConfig
	Analytics Analytics
	Dev       bool
	LogLevel  string
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port              string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// SiteConfig controls what the site renders and where it reads it from.
type SiteConfig struct {
	// BaseURL overrides the canonical URL from the catalog when set.
	BaseURL string
	// CatalogPath points at a YAML business profile. Empty uses the built-in profile.
	CatalogPath string
	// TemplatesDir serves templates from disk instead of the embedded copies.
	TemplatesDir string
	AssetVersion string
	MinifyAssets bool
}

// Analytics holds client instrumentation configuration surfaced to templates.
type Analytics struct {
	GA4MeasurementID string // e.g. G-XXXXXXXXXX
}

// Addr returns the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Server.Port
}

// ValidationError is returned when configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises how configuration is loaded.
type Option func(*loaderOptions)

type loaderOptions struct {
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over the process environment.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv ignores the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load resolves configuration from the environment and validates it.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{useSystemEnv: true}
	for _, opt := range opts {
		opt(&options)
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		return "", false
	}

	port := stringWithDefault(lookup, "SALON_WEB_PORT", "")
	if port == "" {
		port = stringWithDefault(lookup, "PORT", defaultPort)
	}

	cfg := Config{
		Server: ServerConfig{
			Port:              strings.TrimSpace(port),
			ReadHeaderTimeout: durationWithDefault(lookup, "SALON_WEB_READ_HEADER_TIMEOUT", defaultReadHeaderTimeout),
			ReadTimeout:       durationWithDefault(lookup, "SALON_WEB_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:      durationWithDefault(lookup, "SALON_WEB_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:       durationWithDefault(lookup, "SALON_WEB_IDLE_TIMEOUT", defaultIdleTimeout),
			ShutdownTimeout:   durationWithDefault(lookup, "SALON_WEB_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		},
		Site: SiteConfig{
			BaseURL:      strings.TrimRight(strings.TrimSpace(stringWithDefault(lookup, "SALON_WEB_BASE_URL", "")), "/"),
			CatalogPath:  strings.TrimSpace(stringWithDefault(lookup, "SALON_WEB_CATALOG", "")),
			TemplatesDir: strings.TrimSpace(stringWithDefault(lookup, "SALON_WEB_TEMPLATES", "")),
			AssetVersion: strings.TrimSpace(stringWithDefault(lookup, "SALON_WEB_ASSET_VERSION", defaultAssetVersion)),
			MinifyAssets: boolWithDefault(lookup, "SALON_WEB_MINIFY_ASSETS", false),
		},
		Analytics: Analytics{
			GA4MeasurementID: strings.TrimSpace(stringWithDefault(lookup, "SALON_WEB_GA_MEASUREMENT_ID", "")),
		},
		Dev:      flagSet(lookup, "SALON_WEB_DEV") || flagSet(lookup, "DEV"),
		LogLevel: strings.ToLower(stringWithDefault(lookup, "LOG_LEVEL", defaultLogLevel)),
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validate(cfg Config) error {
	var invalid []string
	if n, err := strconv.Atoi(cfg.Server.Port); err != nil || n < 1 || n > 65535 {
		invalid = append(invalid, "SALON_WEB_PORT")
	}
	if cfg.Site.BaseURL != "" {
		u, err := url.Parse(cfg.Site.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			invalid = append(invalid, "SALON_WEB_BASE_URL")
		}
	}
	if !assetVersionPattern.MatchString(cfg.Site.AssetVersion) {
		invalid = append(invalid, "SALON_WEB_ASSET_VERSION")
	}
	if id := cfg.Analytics.GA4MeasurementID; id != "" && !measurementPattern.MatchString(id) {
		invalid = append(invalid, "SALON_WEB_GA_MEASUREMENT_ID")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		invalid = append(invalid, "LOG_LEVEL")
	}
	if len(invalid) > 0 {
		return &ValidationError{fields: invalid}
	}
	return nil
}

// flagSet treats any non-empty value as enabled unless it is an explicit false.
func flagSet(lookup func(string) (string, bool), key string) bool {
	value, ok := lookup(key)
	if !ok || strings.TrimSpace(value) == "" {
		return false
	}
	return boolWithDefault(lookup, key, true)
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}
