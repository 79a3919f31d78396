// Package config loads runtime settings from defaults, an optional YAML file and FLOORSIM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/floorsim/parameter"
)

var ErrInvalid = errors.New("config: invalid value")

type SimConfig struct {
	Speed            float64 `mapstructure:"speed"`
	ArrivalTolerance float64 `mapstructure:"arrivalTolerance"`
	TickRate         int     `mapstructure:"tickRate"`
}

type SceneConfig struct {
	// Path is a YAML scene file, empty selects the built-in factory floor
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Dir   string `mapstructure:"dir"`
}

type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type UIConfig struct {
	PanelWidth int `mapstructure:"panelWidth"`

	// Keys rebinds keys to action names, "none" unbinds
	// Viper lowercases map keys, so only lowercase runes and key names can be bound
	Keys map[string]string `mapstructure:"keys"`
}

// Config is the complete runtime configuration
type Config struct {
	Sim   SimConfig   `mapstructure:"sim"`
	Scene SceneConfig `mapstructure:"scene"`
	Log   LogConfig   `mapstructure:"log"`
	Audio AudioConfig `mapstructure:"audio"`
	UI    UIConfig    `mapstructure:"ui"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sim.speed", parameter.AgentSpeed)
	v.SetDefault("sim.arrivalTolerance", parameter.ArrivalTolerance)
	v.SetDefault("sim.tickRate", parameter.DefaultTickRate)

	v.SetDefault("scene.path", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "./logs")

	v.SetDefault("audio.enabled", true)

	v.SetDefault("ui.panelWidth", parameter.DefaultPanelWidth)
}

// Load reads configuration; path may be empty to use defaults and environment only
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("FLOORSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the simulation cannot run with
func (c *Config) Validate() error {
	if c.Sim.Speed <= 0 {
		return fmt.Errorf("%w: sim.speed %v", ErrInvalid, c.Sim.Speed)
	}
	if c.Sim.ArrivalTolerance <= 0 {
		return fmt.Errorf("%w: sim.arrivalTolerance %v", ErrInvalid, c.Sim.ArrivalTolerance)
	}
	if c.Sim.TickRate <= 0 {
		return fmt.Errorf("%w: sim.tickRate %d", ErrInvalid, c.Sim.TickRate)
	}
	if c.UI.PanelWidth < parameter.PanelMinWidth {
		c.UI.PanelWidth = parameter.PanelMinWidth
	}
	return nil
}
