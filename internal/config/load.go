package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the environment override namespace.
const EnvPrefix = "VCMUX_"

// Load reads the config file at path, overlays environment overrides,
// and validates the result. A missing file yields the defaults; a
// present but malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Defaults stand.
		case err != nil:
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overlays the VCMUX_* variables onto cfg.
// Empty string values are treated as valid values, not as unset.
func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvPrefix + "DEVICE_DIR"); ok {
		cfg.Input.DeviceDir = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "KEYMAP"); ok {
		cfg.Input.KeymapPath = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_DEVICE"); ok {
		cfg.Log.Device = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "BATTERY_DEVICE"); ok {
		cfg.Battery.Device = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "POWER_NODE"); ok {
		cfg.Power.ControlNode = v
	}

	if err := envBool(EnvPrefix+"KEYREPEAT", &cfg.Input.KeyRepeat); err != nil {
		return err
	}
	if err := envInt(EnvPrefix+"REPEAT_DELAY_MS", &cfg.Input.RepeatDelayMS); err != nil {
		return err
	}
	if err := envInt(EnvPrefix+"REPEAT_FLOOR_MS", &cfg.Input.RepeatFloorMS); err != nil {
		return err
	}
	return envInt(EnvPrefix+"BATTERY_POLL_MS", &cfg.Battery.PollIntervalMS)
}

func envBool(name string, dst *bool) error {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q", ErrBadValue, name, v)
	}
	*dst = b
	return nil
}

func envInt(name string, dst *int) error {
	v, ok := os.LookupEnv(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q", ErrBadValue, name, v)
	}
	*dst = n
	return nil
}
