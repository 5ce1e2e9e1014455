package config

import (
	"fmt"
	"time"
)

// Config is the full multiplexer configuration.
type Config struct {
	Input   InputConfig   `toml:"input"`
	Log     LogConfig     `toml:"log"`
	Battery BatteryConfig `toml:"battery"`
	Power   PowerConfig   `toml:"power"`
}

// InputConfig covers keyboards and key handling.
type InputConfig struct {
	// DeviceDir is the directory watched for keyboard nodes.
	DeviceDir string `toml:"device_dir"`

	// KeyRepeat enables held-key repeat synthesis.
	KeyRepeat bool `toml:"key_repeat"`

	// RepeatDelayMS is the wait before the first synthesized repeat.
	RepeatDelayMS int `toml:"repeat_delay_ms"`

	// RepeatFloorMS is the shortest interval acceleration reaches.
	RepeatFloorMS int `toml:"repeat_floor_ms"`

	// KeymapPath is an optional YAML keymap overriding the built-in
	// QWERTY layout. Empty means built-in.
	KeymapPath string `toml:"keymap"`
}

// LogConfig covers both the structured log and the platform log feed.
type LogConfig struct {
	// Level is the minimum structured log level.
	Level string `toml:"level"`

	// Device is the platform log node mirrored onto the log console.
	// Empty disables the feed.
	Device string `toml:"device"`
}

// BatteryConfig covers the status-line battery readout.
type BatteryConfig struct {
	// Device is the battery state node. Empty disables polling.
	Device string `toml:"device"`

	// PollIntervalMS is the pause between polls.
	PollIntervalMS int `toml:"poll_interval_ms"`
}

// PowerConfig covers the reboot gateway.
type PowerConfig struct {
	// ControlNode receives plain-text power commands.
	ControlNode string `toml:"control_node"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input: InputConfig{
			DeviceDir:     "/dev/class/input",
			KeyRepeat:     true,
			RepeatDelayMS: 250,
			RepeatFloorMS: 50,
		},
		Log: LogConfig{
			Level: "info",
		},
		Battery: BatteryConfig{
			PollIntervalMS: 1000,
		},
		Power: PowerConfig{
			ControlNode: "/dev/misc/dmctl",
		},
	}
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.Input.RepeatDelayMS < 0 || c.Input.RepeatFloorMS < 0 {
		return fmt.Errorf("%w: negative interval", ErrBadTiming)
	}
	if c.Input.RepeatFloorMS > c.Input.RepeatDelayMS && c.Input.RepeatDelayMS != 0 {
		return fmt.Errorf("%w: floor %dms above delay %dms",
			ErrBadTiming, c.Input.RepeatFloorMS, c.Input.RepeatDelayMS)
	}
	return nil
}

// RepeatDelay returns the repeat delay as a duration.
func (c *Config) RepeatDelay() time.Duration {
	return time.Duration(c.Input.RepeatDelayMS) * time.Millisecond
}

// RepeatFloor returns the repeat floor as a duration.
func (c *Config) RepeatFloor() time.Duration {
	return time.Duration(c.Input.RepeatFloorMS) * time.Millisecond
}

// BatteryInterval returns the battery poll interval as a duration.
func (c *Config) BatteryInterval() time.Duration {
	return time.Duration(c.Battery.PollIntervalMS) * time.Millisecond
}
