// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 the flameconnect authors

package flameconnect

import (
	"strings"
	"testing"
)

// ============================================================
// Formatter Tests
// ============================================================

func TestFormatParameterID(t *testing.T) {
	tests := []struct {
		id       ParameterID
		expected string
	}{
		{ParamTemperatureUnit, "TEMPERATURE_UNIT"},
		{ParamMode, "MODE"},
		{ParamFlameEffect, "FLAME_EFFECT"},
		{ParamHeatSettings, "HEAT_SETTINGS"},
		{ParamHeatMode, "HEAT_MODE"},
		{ParamTimer, "TIMER"},
		{ParamSoftwareVersion, "SOFTWARE_VERSION"},
		{ParamError, "ERROR"},
		{ParamSound, "SOUND"},
		{ParamLogEffect, "LOG_EFFECT"},
		{ParameterID(9999), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := FormatParameterID(tt.id); got != tt.expected {
				t.Errorf("FormatParameterID(%d) = %q, want %q", tt.id, got, tt.expected)
			}
		})
	}
}

// The brightness display names deliberately do not follow the ordinal
// order of the wire values. These assertions pin the swapped table.
func TestFormatBrightness_SwappedTable(t *testing.T) {
	tests := []struct {
		brightness Brightness
		expected   string
	}{
		{BrightnessLow, "Low"},
		{BrightnessMedium, "High"},
		{BrightnessHigh, "Medium"},
	}

	for _, tt := range tests {
		if got := FormatBrightness(tt.brightness); got != tt.expected {
			t.Errorf("FormatBrightness(%d) = %q, want %q", tt.brightness, got, tt.expected)
		}
	}
}

func TestFormatParameter_Mode(t *testing.T) {
	out := FormatParameter(Mode{Mode: ModeManual, Temperature: 22.5})

	if !strings.Contains(out, "MODE (321)") {
		t.Errorf("output missing header: %q", out)
	}
	if !strings.Contains(out, "Manual") {
		t.Errorf("output missing mode name: %q", out)
	}
	if !strings.Contains(out, "22.5") {
		t.Errorf("output missing temperature: %q", out)
	}
}

func TestFormatParameter_SoftwareVersion(t *testing.T) {
	out := FormatParameter(SoftwareVersion{
		Control: VersionInfo{Major: 1, Minor: 2, Test: 3},
		Display: VersionInfo{Major: 4, Minor: 5, Test: 6},
		Wifi:    VersionInfo{Major: 7, Minor: 8, Test: 9},
	})

	for _, want := range []string{"1.2.3", "4.5.6", "7.8.9"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing version %q: %q", want, out)
		}
	}
}

// ============================================================
// Validator Tests
// ============================================================

func TestValidateParameter_Clean(t *testing.T) {
	params := []Parameter{
		Mode{Mode: ModeThermostat, Temperature: 21.0},
		Sound{Volume: 100, File: 1},
		FlameEffect{Effect: EffectOn, Speed: 3},
	}

	for _, p := range params {
		if findings := ValidateParameter(p); len(findings) != 0 {
			t.Errorf("%s: unexpected findings: %v", FormatParameterID(p.ID()), findings)
		}
	}
}

func TestValidateParameter_Findings(t *testing.T) {
	tests := []struct {
		name     string
		param    Parameter
		expected AnomalyType
	}{
		{
			name:     "flame speed above range",
			param:    FlameEffect{Effect: EffectOn, Speed: 9},
			expected: AnomalyInvalidSpeed,
		},
		{
			name:     "volume above range",
			param:    Sound{Volume: 150},
			expected: AnomalyInvalidVolume,
		},
		{
			name:     "target temperature above range",
			param:    Mode{Mode: ModeThermostat, Temperature: 90.0},
			expected: AnomalyInvalidTemp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := ValidateParameter(tt.param)
			if len(findings) == 0 {
				t.Fatal("expected at least one finding")
			}
			found := false
			for _, f := range findings {
				if f.Type == tt.expected {
					found = true
				}
			}
			if !found {
				t.Errorf("expected anomaly type %d in findings: %v", tt.expected, findings)
			}
		})
	}
}
