package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/matst80/slask-card/pkg/card"
	"github.com/matst80/slask-card/pkg/common"
)

type Config struct {
	Server ServerConfig `envPrefix:"SERVER_"`
	Card   CardConfig   `envPrefix:"CARD_"`
}

type ServerConfig struct {
	Addr              string        `env:"ADDR" envDefault:":8080"`
	MaxBodyBytes      int64         `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	ReadTimeout       time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout      time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout       time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	HookTimeout       time.Duration `env:"HOOK_TIMEOUT" envDefault:"5s"`
}

type CardConfig struct {
	MediaPrefix string `env:"MEDIA_PREFIX" envDefault:"/media/jpg/catalog/product"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c ServerConfig) Timeouts() common.TimeoutConfig {
	return common.TimeoutConfig{
		ReadHeader: c.ReadHeaderTimeout,
		Read:       c.ReadTimeout,
		Write:      c.WriteTimeout,
		Idle:       c.IdleTimeout,
		Shutdown:   c.ShutdownTimeout,
		Hook:       c.HookTimeout,
	}
}

// CardOptions are the defaults every card request starts from.
func (c CardConfig) CardOptions() card.Options {
	opts := card.DefaultOptions()
	if c.MediaPrefix != "" {
		opts.MediaPrefix = c.MediaPrefix
	}
	return opts
}
