package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vcmux.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if cfg != want {
		t.Errorf("Load on missing file = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[input]
device_dir = "/dev/test/input"
key_repeat = false
repeat_delay_ms = 300
repeat_floor_ms = 60

[battery]
device = "/dev/test/power"
poll_interval_ms = 500
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Input.DeviceDir != "/dev/test/input" {
		t.Errorf("DeviceDir = %q, want /dev/test/input", cfg.Input.DeviceDir)
	}
	if cfg.Input.KeyRepeat {
		t.Error("KeyRepeat = true, want false")
	}
	if got := cfg.RepeatDelay(); got != 300*time.Millisecond {
		t.Errorf("RepeatDelay = %v, want 300ms", got)
	}
	if got := cfg.BatteryInterval(); got != 500*time.Millisecond {
		t.Errorf("BatteryInterval = %v, want 500ms", got)
	}
	// Sections absent from the file keep their defaults.
	if cfg.Power.ControlNode != Default().Power.ControlNode {
		t.Errorf("ControlNode = %q, want default", cfg.Power.ControlNode)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "[input\nbroken")
	if _, err := Load(path); err == nil {
		t.Error("Load on malformed TOML succeeded")
	}
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[input]
key_repeat = true
repeat_delay_ms = 300
`)
	t.Setenv("VCMUX_KEYREPEAT", "0")
	t.Setenv("VCMUX_REPEAT_DELAY_MS", "200")
	t.Setenv("VCMUX_DEVICE_DIR", "/dev/env/input")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Input.KeyRepeat {
		t.Error("KeyRepeat = true, want false via VCMUX_KEYREPEAT=0")
	}
	if cfg.Input.RepeatDelayMS != 200 {
		t.Errorf("RepeatDelayMS = %d, want 200", cfg.Input.RepeatDelayMS)
	}
	if cfg.Input.DeviceDir != "/dev/env/input" {
		t.Errorf("DeviceDir = %q, want /dev/env/input", cfg.Input.DeviceDir)
	}
}

func TestEnvBadValue(t *testing.T) {
	t.Setenv("VCMUX_REPEAT_DELAY_MS", "fast")
	_, err := Load("")
	if !errors.Is(err, ErrBadValue) {
		t.Errorf("Load = %v, want ErrBadValue", err)
	}
}

func TestValidateTiming(t *testing.T) {
	tests := []struct {
		name    string
		delay   int
		floor   int
		wantErr bool
	}{
		{name: "defaults", delay: 250, floor: 50},
		{name: "floor above delay", delay: 100, floor: 200, wantErr: true},
		{name: "negative delay", delay: -1, floor: 50, wantErr: true},
		{name: "equal is fine", delay: 100, floor: 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Input.RepeatDelayMS = tt.delay
			cfg.Input.RepeatFloorMS = tt.floor
			err := cfg.Validate()
			if tt.wantErr && !errors.Is(err, ErrBadTiming) {
				t.Errorf("Validate = %v, want ErrBadTiming", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate = %v, want nil", err)
			}
		})
	}
}

func TestWatchReload(t *testing.T) {
	path := writeConfig(t, `
[input]
repeat_delay_ms = 300
`)

	got := make(chan Config, 4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c Config) { got <- c }, nil)
	}()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("[input]\nrepeat_delay_ms = 150\n"), 0o644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}

	select {
	case cfg := <-got:
		if cfg.Input.RepeatDelayMS != 150 {
			t.Errorf("reloaded RepeatDelayMS = %d, want 150", cfg.Input.RepeatDelayMS)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload delivered")
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Watch returned %v, want context.Canceled", err)
	}
}

func TestWatchRejectsBadReload(t *testing.T) {
	path := writeConfig(t, "[input]\nrepeat_delay_ms = 300\n")

	got := make(chan Config, 4)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = Watch(ctx, path, func(c Config) { got <- c }, nil)
	}()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("[input\nbroken"), 0o644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}

	select {
	case cfg := <-got:
		t.Errorf("bad reload delivered: %+v", cfg)
	case <-time.After(300 * time.Millisecond):
	}
}
