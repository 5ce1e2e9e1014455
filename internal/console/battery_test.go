package console

import "testing"

func TestParseBattery(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want BatteryInfo
	}{
		{"error state", "e", BatteryInfo{State: BatteryError, Pct: -1}},
		{"charging", "c87", BatteryInfo{State: BatteryCharging, Pct: 87}},
		{"charging full", "c100", BatteryInfo{State: BatteryCharging, Pct: 100}},
		{"discharging", "55", BatteryInfo{State: BatteryNotCharging, Pct: 55}},
		{"trailing newline", "55\n", BatteryInfo{State: BatteryNotCharging, Pct: 55}},
		{"charging trailing junk", "c9 mWh", BatteryInfo{State: BatteryCharging, Pct: 9}},
		{"empty", "", BatteryInfo{State: BatteryUnavailable, Pct: -1}},
	}

	for _, tt := range tests {
		if got := ParseBattery(tt.raw); got != tt.want {
			t.Errorf("%s: ParseBattery(%q) = %+v, want %+v", tt.name, tt.raw, got, tt.want)
		}
	}
}

func TestBatteryStateString(t *testing.T) {
	tests := []struct {
		state BatteryState
		want  string
	}{
		{BatteryUnavailable, "unavailable"},
		{BatteryNotCharging, "not-charging"},
		{BatteryCharging, "charging"},
		{BatteryError, "error"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.state, got, tt.want)
		}
	}
}
