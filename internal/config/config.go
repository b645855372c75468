package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string   `mapstructure:"PORT"`
	Env            string   `mapstructure:"ENV"`
	AuthMode       string   `mapstructure:"AUTH_MODE"`
	StorageBackend string   `mapstructure:"STORAGE_BACKEND"`
	DatabaseURL    string   `mapstructure:"DATABASE_URL"`
	DBMaxConns     int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns     int32    `mapstructure:"DB_MIN_CONNS"`
	AuthIssuer     string   `mapstructure:"AUTH_ISSUER"`
	AuthJWKSURL    string   `mapstructure:"AUTH_JWKS_URL"`
	AuthAudience   string   `mapstructure:"AUTH_AUDIENCE"`
	JWTSigningKey  string   `mapstructure:"JWT_SIGNING_KEY"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS   float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int      `mapstructure:"RATE_LIMIT_BURST"`
	MaxUploadBytes int64    `mapstructure:"MAX_UPLOAD_SIZE"`
	SpeechProvider string   `mapstructure:"SPEECH_PROVIDER"`
	SpeechAPIKey   string   `mapstructure:"SPEECH_API_KEY"`
	RunnerBaseURL  string   `mapstructure:"RUNNER_BASE_URL"`
	RunnerAPIKey   string   `mapstructure:"RUNNER_API_KEY"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("AUTH_MODE", "") // auto-detect: "" -> inferred from ENV
	v.SetDefault("STORAGE_BACKEND", "memory")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 100)
	v.SetDefault("RATE_LIMIT_BURST", 200)
	v.SetDefault("MAX_UPLOAD_SIZE", 50*1024*1024)
	v.SetDefault("SPEECH_PROVIDER", "mock")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("AUTH_MODE")
	v.BindEnv("STORAGE_BACKEND")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("AUTH_ISSUER")
	v.BindEnv("AUTH_JWKS_URL")
	v.BindEnv("AUTH_AUDIENCE")
	v.BindEnv("JWT_SIGNING_KEY")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")
	v.BindEnv("MAX_UPLOAD_SIZE")
	v.BindEnv("SPEECH_PROVIDER")
	v.BindEnv("SPEECH_API_KEY")
	v.BindEnv("RUNNER_BASE_URL")
	v.BindEnv("RUNNER_API_KEY")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.IsDev() {
		log.Println("WARNING: Server is running in DEVELOPMENT mode (ENV=development).")
		log.Println("WARNING: DevAuthMiddleware is active — all requests get admin access.")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// ResolvedAuthMode returns the effective auth mode. If AUTH_MODE is explicitly
// set, it is returned. Otherwise, the mode is inferred:
//   - ENV=development → "development" (no auth, all requests get admin)
//   - AUTH_ISSUER set → "external" (Keycloak, Auth0, etc.)
//   - Otherwise       → "static" (JWT_SIGNING_KEY-based HMAC tokens)
func (c *Config) ResolvedAuthMode() string {
	if c.AuthMode != "" {
		return c.AuthMode
	}
	if c.IsDev() {
		return "development"
	}
	if c.AuthIssuer != "" {
		return "external"
	}
	return "static"
}

// Validate checks that the configuration is safe to run.
func (c *Config) Validate() error {
	mode := c.ResolvedAuthMode()
	switch mode {
	case "development", "external", "static":
	default:
		return fmt.Errorf("AUTH_MODE must be \"development\", \"static\", or \"external\", got %q", mode)
	}
	// The development mode grants every request admin access; a production
	// deployment must never run with it.
	if c.IsProduction() && mode == "development" {
		return fmt.Errorf("AUTH_MODE \"development\" is not allowed when ENV is \"production\"")
	}
	if mode == "static" && c.JWTSigningKey == "" {
		return fmt.Errorf("JWT_SIGNING_KEY is required when AUTH_MODE is \"static\"")
	}
	if mode == "external" && c.AuthJWKSURL == "" {
		return fmt.Errorf("AUTH_JWKS_URL is required when AUTH_MODE is \"external\"")
	}

	switch c.StorageBackend {
	case "memory":
	case "postgres":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORAGE_BACKEND is \"postgres\"")
		}
	default:
		return fmt.Errorf("STORAGE_BACKEND must be \"memory\" or \"postgres\", got %q", c.StorageBackend)
	}

	switch c.SpeechProvider {
	case "mock":
	case "openai":
		if c.SpeechAPIKey == "" {
			return fmt.Errorf("SPEECH_API_KEY is required when SPEECH_PROVIDER is \"openai\"")
		}
	default:
		return fmt.Errorf("SPEECH_PROVIDER must be \"mock\" or \"openai\", got %q", c.SpeechProvider)
	}

	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be positive, got %d", c.MaxUploadBytes)
	}

	return nil
}
