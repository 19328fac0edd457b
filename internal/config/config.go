// Package config loads the portal's settings from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// OTP modes.
const (
	OTPModeLocal  = "local"
	OTPModeRemote = "remote"
)

// Config aggregates application configuration values.
type Config struct {
	HTTP     HTTPConfig
	Metrics  MetricsConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	JWT      JWTConfig
	OTP      OTPConfig
	Redis    RedisConfig
}

// HTTPConfig governs the API server.
type HTTPConfig struct {
	Host              string
	Port              int
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	ShutdownTimeout   time.Duration
	AllowedOriginsCSV string
}

// Addr returns the listen address.
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// AllowedOrigins splits AllowedOriginsCSV. An empty list allows any origin.
func (c HTTPConfig) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOriginsCSV, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool
	Addr    string
}

// DatabaseConfig locates the member directory.
type DatabaseConfig struct {
	Path string
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string
	Format string // text|json
}

// JWTConfig configures session tokens.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

// OTPConfig selects and tunes the one-time code mechanism.
type OTPConfig struct {
	Mode           string
	BaseURL        string
	Timeout        time.Duration
	FixedCode      string
	TTL            time.Duration
	ResendCooldown time.Duration
	MaxAttempts    int
	FlowTTL        time.Duration

	// MockAddr is where cmd/otpmock listens.
	MockAddr string
}

// RedisConfig is optional; an empty URL keeps OTP challenges in memory.
type RedisConfig struct {
	URL string
}

const (
	defaultHost              = "0.0.0.0"
	defaultPort              = 8080
	defaultReadTimeout       = 10 * time.Second
	defaultWriteTimeout      = 15 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
	defaultMetricsAddr       = ":9090"
	defaultDBPath            = "./data/portal.db"
	defaultLoggingLevel      = "info"
	defaultLoggingFormat     = "text"
	defaultJWTSecret         = "dev-secret-change-me"
	defaultJWTTTL            = 24 * time.Hour
	defaultOTPTimeout        = 10 * time.Second
	defaultOTPTTL            = 5 * time.Minute
	defaultOTPResendCooldown = 30 * time.Second
	defaultOTPMaxAttempts    = 5
	defaultOTPFlowTTL        = 15 * time.Minute
	defaultOTPMockAddr       = ":8081"
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		HTTP: HTTPConfig{
			Host:              valueOrDefault("SERVER_HOST", defaultHost),
			AllowedOriginsCSV: os.Getenv("SERVER_ALLOWED_ORIGINS"),
		},
		Metrics: MetricsConfig{
			Enabled: parseBoolWithDefault("METRICS_ENABLED", true),
			Addr:    valueOrDefault("METRICS_ADDR", defaultMetricsAddr),
		},
		Database: DatabaseConfig{
			Path: valueOrDefault("DB_PATH", defaultDBPath),
		},
		Logging: LoggingConfig{
			Level:  valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format: valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
		},
		JWT: JWTConfig{
			Secret: valueOrDefault("JWT_SECRET", defaultJWTSecret),
		},
		OTP: OTPConfig{
			Mode:      strings.ToLower(valueOrDefault("OTP_MODE", OTPModeLocal)),
			BaseURL:   os.Getenv("OTP_BASE_URL"),
			FixedCode: os.Getenv("OTP_FIXED_CODE"),
			MockAddr:  valueOrDefault("OTP_MOCK_ADDR", defaultOTPMockAddr),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
	}

	port, err := parsePort("SERVER_PORT", defaultPort)
	if err != nil {
		return Config{}, err
	}
	cfg.HTTP.Port = port

	maxAttempts, err := parseIntWithDefault("OTP_MAX_ATTEMPTS", defaultOTPMaxAttempts)
	if err != nil {
		return Config{}, err
	}
	cfg.OTP.MaxAttempts = maxAttempts

	durations := []struct {
		key      string
		fallback time.Duration
		dst      *time.Duration
	}{
		{"SERVER_READ_TIMEOUT", defaultReadTimeout, &cfg.HTTP.ReadTimeout},
		{"SERVER_WRITE_TIMEOUT", defaultWriteTimeout, &cfg.HTTP.WriteTimeout},
		{"SERVER_SHUTDOWN_TIMEOUT", defaultShutdownTimeout, &cfg.HTTP.ShutdownTimeout},
		{"JWT_TTL", defaultJWTTTL, &cfg.JWT.TTL},
		{"OTP_TIMEOUT", defaultOTPTimeout, &cfg.OTP.Timeout},
		{"OTP_TTL", defaultOTPTTL, &cfg.OTP.TTL},
		{"OTP_RESEND_COOLDOWN", defaultOTPResendCooldown, &cfg.OTP.ResendCooldown},
		{"OTP_FLOW_TTL", defaultOTPFlowTTL, &cfg.OTP.FlowTTL},
	}
	for _, d := range durations {
		v, err := parseDuration(d.key, d.fallback)
		if err != nil {
			return Config{}, err
		}
		*d.dst = v
	}

	return cfg, nil
}

// Validate reports settings that can't work together.
func (c Config) Validate() error {
	var errs []error
	switch c.OTP.Mode {
	case OTPModeLocal:
		if c.OTP.FixedCode != "" && !isDigits(c.OTP.FixedCode, 6) {
			errs = append(errs, fmt.Errorf("OTP_FIXED_CODE must be 6 digits"))
		}
	case OTPModeRemote:
		if c.OTP.BaseURL == "" {
			errs = append(errs, fmt.Errorf("OTP_BASE_URL is required when OTP_MODE=%s", OTPModeRemote))
		}
	default:
		errs = append(errs, fmt.Errorf("OTP_MODE must be %q or %q, got %q", OTPModeLocal, OTPModeRemote, c.OTP.Mode))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, fmt.Errorf("JWT_SECRET must not be empty"))
	}
	if c.JWT.TTL <= 0 {
		errs = append(errs, fmt.Errorf("JWT_TTL must be positive"))
	}
	if c.OTP.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("OTP_MAX_ATTEMPTS must be at least 1"))
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseIntWithDefault(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		return val, nil
	}
	return fallback, nil
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", key, err)
		}
		return d, nil
	}
	return fallback, nil
}

func parsePort(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if port <= 0 || port > 65535 {
			return 0, fmt.Errorf("port %d is out of range", port)
		}
		return port, nil
	}
	return fallback, nil
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
