package config

import (
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v11"
)

// Config contains process configuration loaded from the environment.
type Config struct {
	Port     string   `env:"PORT" envDefault:"4000"`
	Database Database `envPrefix:"PG_"`
	Auth     Auth
	Redis    Redis `envPrefix:"REDIS_"`
}

// Database contains Postgres connection parameters.
type Database struct {
	Host     string `env:"HOST" envDefault:"db"`
	User     string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD" envDefault:"password"`
	Name     string `env:"DB" envDefault:"hyperion"`
	Port     int    `env:"PORT" envDefault:"5432"`
}

// Auth contains token signing parameters. Salt is kept for compatibility
// with older deployments; the bcrypt hasher embeds its own salt.
type Auth struct {
	SecretKey string `env:"SECRET_KEY" envDefault:"1234"`
	Algorithm string `env:"ALGORITHM" envDefault:"HS256"`
	Salt      string `env:"SALT" envDefault:"I SEE DEAD PEOPLE"`
}

// Redis contains task queue broker parameters.
type Redis struct {
	Host string `env:"HOST" envDefault:"redis"`
	Port int    `env:"PORT" envDefault:"6379"`
}

// DSN assembles a Postgres connection URL.
func (d Database) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		url.QueryEscape(d.User), url.QueryEscape(d.Password), d.Host, d.Port, d.Name)
}

// Addr returns the broker address in host:port form.
func (r Redis) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// New loads configuration from environment variables.
func New() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
