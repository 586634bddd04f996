package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server  Server
	Sleeper SleeperAPI
}

type Server struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type SleeperAPI struct {
	BaseURL string        `envconfig:"SLEEPER_BASE_URL" default:"https://api.sleeper.app/v1"`
	Timeout time.Duration `envconfig:"SLEEPER_TIMEOUT" default:"10s"`
	// PlayerRefresh enables the background player-directory snapshot when
	// set above zero. At zero the directory is downloaded per request.
	PlayerRefresh time.Duration `envconfig:"PLAYER_REFRESH_INTERVAL" default:"0"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
