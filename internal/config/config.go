// File: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	Dev bool
}

type BotConfig struct {
	Token string `yaml:"token"`
	Mode  string `yaml:"mode"` // only "polling" is supported
}

type CanteenConfig struct {
	BaseURL string        `yaml:"base_url"`
	Area    string        `yaml:"area"`
	Timeout time.Duration `yaml:"timeout"`
}

type LogConfig struct {
	Level    string `yaml:"level"`    // trace|debug|info|warn|error
	Format   string `yaml:"format"`   // json|console
	Sampling bool   `yaml:"sampling"` // enable sampling in prod
}

type AdminConfig struct {
	Port int `yaml:"port"` // ops endpoint: /healthz and /metrics
}

type Config struct {
	Bot     BotConfig     `yaml:"bot"`
	Canteen CanteenConfig `yaml:"canteen"`
	Log     LogConfig     `yaml:"log"`
	Admin   AdminConfig   `yaml:"admin"`

	Runtime RuntimeConfig `yaml:"-"`
}

// LoadConfig reads the YAML config, applies .env / environment overrides and
// fills in defaults. The API_TOKEN env var takes precedence over bot.token so
// the token never has to live in the config file.
func LoadConfig(path string, dev bool) (*Config, error) {
	// Best effort: a missing .env is fine.
	_ = godotenv.Load()

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if tok := os.Getenv("API_TOKEN"); tok != "" {
		cfg.Bot.Token = tok
	}

	// defaults
	if cfg.Bot.Mode == "" {
		cfg.Bot.Mode = "polling"
	}
	if cfg.Canteen.BaseURL == "" {
		cfg.Canteen.BaseURL = "https://kitchen.kanttiinit.fi"
	}
	if cfg.Canteen.Area == "" {
		cfg.Canteen.Area = "Otaniemi"
	}
	if cfg.Canteen.Timeout <= 0 {
		cfg.Canteen.Timeout = 15 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if cfg.Admin.Port == 0 {
		cfg.Admin.Port = 9090
	}

	// Minimal validation
	if cfg.Bot.Token == "" {
		return nil, errors.New("bot.token is required (or set API_TOKEN)")
	}
	if cfg.Bot.Mode != "polling" {
		return nil, fmt.Errorf("unsupported bot.mode %q", cfg.Bot.Mode)
	}

	cfg.Runtime.Dev = dev
	return &cfg, nil
}
