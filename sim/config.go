// Package sim is the frame-stepped layer on top of the ECS: it owns the
// world, the map and the planner, registers the movement systems, and
// leaves the loop to the caller.
package sim

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the simulation configuration, loaded from TOML.
type Config struct {
	World   WorldConfig   `toml:"world"`
	Bots    BotsConfig    `toml:"bots"`
	Logging LoggingConfig `toml:"logging"`
}

// WorldConfig selects the map and tick cadence.
type WorldConfig struct {
	TickRate time.Duration `toml:"tick_rate"`
	// Layout is an optional ASCII map; empty means the default station.
	Layout []string `toml:"layout"`
}

// BotsConfig tunes the patrol bots.
type BotsConfig struct {
	Count     int     `toml:"count"`
	MoveSpeed float32 `toml:"move_speed"`
	TurnSpeed float32 `toml:"turn_speed"`
}

// LoggingConfig selects logger verbosity and output format.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			TickRate: 16 * time.Millisecond,
		},
		Bots: BotsConfig{
			Count:     2,
			MoveSpeed: 2.0,
			TurnSpeed: 3.0,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig reads a TOML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c Config) Validate() error {
	if c.World.TickRate <= 0 {
		return fmt.Errorf("world.tick_rate must be positive, got %s", c.World.TickRate)
	}
	if c.Bots.Count < 0 {
		return fmt.Errorf("bots.count must not be negative, got %d", c.Bots.Count)
	}
	if c.Bots.MoveSpeed <= 0 {
		return fmt.Errorf("bots.move_speed must be positive, got %g", c.Bots.MoveSpeed)
	}
	if c.Bots.TurnSpeed <= 0 {
		return fmt.Errorf("bots.turn_speed must be positive, got %g", c.Bots.TurnSpeed)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
