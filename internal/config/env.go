package config

import (
	"github.com/caarlos0/env/v11"
)

// Server holds process configuration for the HTTP entry point, loaded
// from the environment.
type Server struct {
	Addr        string `env:"ADDR" envDefault:":8420"`
	DataDir     string `env:"DATA_DIR" envDefault:"data"`
	BalancePath string `env:"BALANCE_PATH"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
}

// ServerFromEnv parses server configuration from environment variables.
func ServerFromEnv() (Server, error) {
	var s Server
	if err := env.Parse(&s); err != nil {
		return Server{}, err
	}
	return s, nil
}
