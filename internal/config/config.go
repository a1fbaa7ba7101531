package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v2"
)

type Config struct {
	LogPath          string        `yaml:"log_path" default:"/config/activity.log"`
	ApiPort          string        `yaml:"api_port" default:"8081"`
	DBPath           string        `yaml:"db_path" default:"/config/poolkeeper.db"`
	Debug            bool          `yaml:"debug" default:"false"`
	FailureRetention time.Duration `yaml:"failure_retention" default:"168h"`
	Pool             Pool          `yaml:"pool"`
	Dialer           Dialer        `yaml:"dialer"`
	Targets          []Target      `yaml:"targets"`
}

type Pool struct {
	InitialSize      int           `yaml:"initial_size" default:"0"`
	PreferredSize    int           `yaml:"preferred_size" default:"0"`
	MaximumSize      int           `yaml:"maximum_size" default:"10"`
	AcquireTimeout   time.Duration `yaml:"acquire_timeout" default:"30s"`
	IdleTimeout      time.Duration `yaml:"idle_timeout" default:"5m"`
	SweepInterval    time.Duration `yaml:"sweep_interval" default:"30s"`
	MaxPools         int           `yaml:"max_pools" default:"1024"`
	UnlockedCreation bool          `yaml:"unlocked_creation" default:"false"`
}

type Dialer struct {
	Timeout         time.Duration `yaml:"timeout" default:"5s"`
	MaxRetries      uint          `yaml:"max_retries" default:"3"`
	RetryDelay      time.Duration `yaml:"retry_delay" default:"100ms"`
	FakeConnections bool          `yaml:"fake_connections" default:"false"`
}

type Target struct {
	Id             string `yaml:"id" default:""`
	Name           string `yaml:"name"`
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	ProxyURL       string `yaml:"proxy_url"`
	MaxConnections int    `yaml:"max_connections"`
	Warm           bool   `yaml:"warm" default:"false"`
}

func FromFile(path string) (*Config, error) {
	configData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(configData)
}

func Parse(configData []byte) (*Config, error) {
	var config Config
	err := defaults.Set(&config)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(configData, &config)
	if err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	p := c.Pool
	if p.InitialSize < 0 || p.PreferredSize < 0 || p.MaximumSize < 0 {
		return fmt.Errorf("pool sizes must not be negative")
	}

	if p.MaximumSize > 0 && (p.InitialSize > p.MaximumSize || p.PreferredSize > p.MaximumSize) {
		return fmt.Errorf("initial_size and preferred_size must not exceed maximum_size")
	}

	if p.MaxPools <= 0 {
		return fmt.Errorf("max_pools must be greater than 0")
	}

	if p.SweepInterval <= 0 {
		return fmt.Errorf("sweep_interval must be greater than 0")
	}

	if len(c.Targets) == 0 {
		return fmt.Errorf("at least one target is required")
	}

	for i, t := range c.Targets {
		if t.Host == "" || t.Port <= 0 {
			return fmt.Errorf("target %d: host and port are required", i)
		}

		if t.MaxConnections < 0 {
			return fmt.Errorf("target %d: max_connections must not be negative", i)
		}

		if t.MaxConnections > 0 && (p.InitialSize > t.MaxConnections || p.PreferredSize > t.MaxConnections) {
			return fmt.Errorf("target %d: max_connections is below the pool initial or preferred size", i)
		}
	}

	return nil
}
