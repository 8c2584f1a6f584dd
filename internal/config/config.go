package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config is built once at startup and handed to every component that needs it.
type Config struct {
	DbHost     string `yaml:"db_host"`
	DbPort     string `yaml:"db_port"`
	DbUser     string `yaml:"db_user"`
	DbPassword string `yaml:"db_password"`
	DbName     string `yaml:"db_name"`
	DbSSLMode  string `yaml:"db_sslmode"`

	ServerPort string `yaml:"server_port"`
	GinMode    string `yaml:"gin_mode"`
	LogLevel   string `yaml:"log_level"`

	JwtSecret string        `yaml:"jwt_secret"`
	Issuer    string        `yaml:"jwt_issuer"`
	TokenTTL  time.Duration `yaml:"token_ttl"`

	CORSOrigins        []string `yaml:"cors_origins"`
	AuditRetentionDays int      `yaml:"audit_retention_days"`
}

func Default() *Config {
	return &Config{
		DbHost:             "localhost",
		DbPort:             "5432",
		DbUser:             "postgres",
		DbPassword:         "password",
		DbName:             "clientdesk",
		DbSSLMode:          "disable",
		ServerPort:         "8080",
		GinMode:            "release",
		LogLevel:           "info",
		JwtSecret:          "defaultsecret",
		Issuer:             "clientdesk",
		TokenTTL:           24 * time.Hour,
		CORSOrigins:        []string{"http://localhost:", "http://127.0.0.1:"},
		AuditRetentionDays: 30,
	}
}

// Load resolves configuration from defaults, an optional YAML file named by
// CONFIG_FILE, a .env file and finally the process environment.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadEnv() error {
	c.DbHost = getEnv("DB_HOST", c.DbHost)
	c.DbPort = getEnv("DB_PORT", c.DbPort)
	c.DbUser = getEnv("DB_USER", c.DbUser)
	c.DbPassword = getEnv("DB_PASSWORD", c.DbPassword)
	c.DbName = getEnv("DB_NAME", c.DbName)
	c.DbSSLMode = getEnv("DB_SSLMODE", c.DbSSLMode)
	c.ServerPort = getEnv("SERVER_PORT", c.ServerPort)
	c.GinMode = getEnv("GIN_MODE", c.GinMode)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.JwtSecret = getEnv("JWT_SECRET", c.JwtSecret)
	c.Issuer = getEnv("JWT_ISSUER", c.Issuer)

	if v, ok := os.LookupEnv("TOKEN_TTL"); ok {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid TOKEN_TTL %q: %w", v, err)
		}
		c.TokenTTL = ttl
	}
	if v, ok := os.LookupEnv("AUDIT_RETENTION_DAYS"); ok {
		days, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid AUDIT_RETENTION_DAYS %q: %w", v, err)
		}
		c.AuditRetentionDays = days
	}
	if v, ok := os.LookupEnv("CORS_ORIGINS"); ok {
		c.CORSOrigins = splitList(v)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.JwtSecret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	if c.AuditRetentionDays < 1 {
		return errors.New("AUDIT_RETENTION_DAYS must be at least 1")
	}
	return nil
}

// DatabaseURL returns a postgres:// connection string usable by both gorm and golang-migrate.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DbUser, c.DbPassword),
		Host:     c.DbHost + ":" + c.DbPort,
		Path:     "/" + c.DbName,
		RawQuery: url.Values{"sslmode": []string{c.DbSSLMode}}.Encode(),
	}
	return u.String()
}

// AllowsOrigin reports whether origin starts with one of the configured prefixes.
func (c *Config) AllowsOrigin(origin string) bool {
	for _, prefix := range c.CORSOrigins {
		if prefix == "*" || strings.HasPrefix(origin, prefix) {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
