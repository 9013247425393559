package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v4"
)

type Config struct {
	Port                 string `yaml:"port"`
	APIBaseURL           string `yaml:"api_base_url"`
	APITimeoutSeconds    int    `yaml:"api_timeout_seconds"`
	SessionSecret        string `yaml:"session_secret"`
	SessionIssuer        string `yaml:"session_issuer"`
	SessionTTLMinutes    int    `yaml:"session_ttl_minutes"`
	CookieSecure         bool   `yaml:"cookie_secure"`
	RedisURL             string `yaml:"redis_url"`
	DatabaseURL          string `yaml:"database_url"`
	SweepIntervalMinutes int    `yaml:"sweep_interval_minutes"`
}

// Defaults returns the configuration used when neither a file nor env overrides a key.
func Defaults() Config {
	return Config{
		Port:                 "8080",
		APIBaseURL:           "http://127.0.0.1:8000",
		APITimeoutSeconds:    30,
		SessionSecret:        "dev-secret-change",
		SessionIssuer:        "smarthire-admin",
		SessionTTLMinutes:    480,
		SweepIntervalMinutes: 5,
	}
}

// Load reads environment variables, optionally from a .env file if present.
// A YAML file named by CONFIG_FILE is applied first; env wins over it.
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.APIBaseURL = strings.TrimRight(getEnv("API_BASE_URL", cfg.APIBaseURL), "/")
	cfg.APITimeoutSeconds = getEnvInt("API_TIMEOUT_SECONDS", cfg.APITimeoutSeconds)
	cfg.SessionSecret = getEnv("SESSION_SECRET", cfg.SessionSecret)
	cfg.SessionIssuer = getEnv("SESSION_ISSUER", cfg.SessionIssuer)
	cfg.SessionTTLMinutes = getEnvInt("SESSION_TTL_MINUTES", cfg.SessionTTLMinutes)
	cfg.CookieSecure = getEnvBool("COOKIE_SECURE", cfg.CookieSecure)
	cfg.RedisURL = getEnv("REDIS_URL", cfg.RedisURL)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.SweepIntervalMinutes = getEnvInt("SWEEP_INTERVAL_MINUTES", cfg.SweepIntervalMinutes)
	return cfg, nil
}

// LoadFile overlays keys present in a YAML file onto cfg.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
