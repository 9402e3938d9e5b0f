package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultJWTSecret = "supersecretkey"

type Config struct {
	Addr          string        `yaml:"addr"`
	JWTSecret     string        `yaml:"jwt_secret"`
	APITimeout    time.Duration `yaml:"timeout"`
	DatabasePath  string        `yaml:"database_path"`
	TokenDuration time.Duration `yaml:"token_duration"`
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:          getEnv("CAREBOARD_ADDR", ":8080"),
		JWTSecret:     getEnv("CAREBOARD_JWT_SECRET", defaultJWTSecret),
		APITimeout:    15 * time.Second,
		DatabasePath:  getEnv("CAREBOARD_DATABASE_PATH", "careboard.db"),
		TokenDuration: 1 * time.Hour,
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate rejects configurations that must not reach a shared environment.
// The default JWT secret is only acceptable when CAREBOARD_ENV=development.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}
	if c.JWTSecret == defaultJWTSecret && os.Getenv("CAREBOARD_ENV") != "development" {
		return fmt.Errorf("refusing to run with the default jwt_secret outside development")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
