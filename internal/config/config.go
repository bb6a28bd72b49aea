package config

import (
	"github.com/caarlos0/env/v6"
)

type Config struct {
	Port             int      `env:"PORT" envDefault:"9090"`
	Secret           string   `env:"SECRET,required"`
	PostgresqlURL    string   `env:"POSTGRESQL_URL,required"`
	BcryptHasherCost int      `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	AllowedOrigins   []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
