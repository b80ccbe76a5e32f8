// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 the flameconnect authors

package flameconnect

import "fmt"

// FormatParameterID returns the human-readable name for a parameter kind
func FormatParameterID(id ParameterID) string {
	switch id {
	case ParamTemperatureUnit:
		return "TEMPERATURE_UNIT"
	case ParamMode:
		return "MODE"
	case ParamFlameEffect:
		return "FLAME_EFFECT"
	case ParamHeatSettings:
		return "HEAT_SETTINGS"
	case ParamHeatMode:
		return "HEAT_MODE"
	case ParamTimer:
		return "TIMER"
	case ParamSoftwareVersion:
		return "SOFTWARE_VERSION"
	case ParamError:
		return "ERROR"
	case ParamSound:
		return "SOUND"
	case ParamLogEffect:
		return "LOG_EFFECT"
	default:
		return "UNKNOWN"
	}
}

// brightnessNames is the display-name lookup maintained against the vendor
// app's rendering. Its ordering does not agree with the Brightness ordinal
// constants; the app output is what has been verified against real units,
// so do not reorder either side to match the other.
var brightnessNames = map[Brightness]string{
	BrightnessLow:    "Low",
	BrightnessMedium: "High",
	BrightnessHigh:   "Medium",
}

// FormatBrightness returns the display name for a brightness level
func FormatBrightness(b Brightness) string {
	if name, ok := brightnessNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Brightness(%d)", uint8(b))
}

// FormatParameter formats a decoded parameter into a human-readable string
func FormatParameter(p Parameter) string {
	header := fmt.Sprintf("%s (%d)\n", FormatParameterID(p.ID()), p.ID())

	switch v := p.(type) {
	case TemperatureUnit:
		return header + fmt.Sprintf("  Unit: %s\n", formatUnit(v.Unit))

	case Mode:
		return header + fmt.Sprintf("  Mode: %s, Target: %.1f°\n", formatFireMode(v.Mode), v.Temperature)

	case FlameEffect:
		result := header
		result += fmt.Sprintf("  Effect: %s, Speed: %d, Brightness: %s, Theme: %s\n",
			formatEffect(v.Effect), v.Speed, FormatBrightness(v.Brightness), formatTheme(v.Theme))
		result += fmt.Sprintf("  Light 1: %s %s\n", formatOnOff(v.Light1On), formatColor(v.Light1Color))
		result += fmt.Sprintf("  Light 2: %s %s\n", formatOnOff(v.Light2On), formatColor(v.Light2Color))
		result += fmt.Sprintf("  Preset: %d, Proximity: %s, Light sensor: %s\n",
			v.ColorPreset, formatOnOff(v.ProximitySensor), formatOnOff(v.LightSensor))
		return result

	case HeatSettings:
		return header + fmt.Sprintf("  Heater: %s, Mode: %s, Target: %.1f°, Boost: %d min\n",
			formatHeatStatus(v.Status), formatHeatingMode(v.Mode), v.Temperature, v.BoostDuration)

	case HeatMode:
		return header + fmt.Sprintf("  Heat control: %s\n", formatHeatControl(v.Control))

	case Timer:
		if v.Status == TimerOn {
			return header + fmt.Sprintf("  Timer: on, %d min remaining\n", v.Duration)
		}
		return header + "  Timer: off\n"

	case SoftwareVersion:
		return header + fmt.Sprintf("  Control: %s, Display: %s, Wifi: %s\n",
			formatVersion(v.Control), formatVersion(v.Display), formatVersion(v.Wifi))

	case ErrorState:
		return header + fmt.Sprintf("  Fault flags: %02X %02X %02X %02X\n",
			v.Flags[0], v.Flags[1], v.Flags[2], v.Flags[3])

	case Sound:
		return header + fmt.Sprintf("  Volume: %d, File: %d\n", v.Volume, v.File)

	case LogEffect:
		return header + fmt.Sprintf("  Effect: %s, Color: %s, Pattern: %d\n",
			formatEffect(v.Effect), formatColor(v.Color), v.Pattern)

	default:
		return header
	}
}

func formatUnit(u Unit) string {
	switch u {
	case UnitFahrenheit:
		return "Fahrenheit"
	case UnitCelsius:
		return "Celsius"
	default:
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
}

func formatFireMode(m FireMode) string {
	switch m {
	case ModeOff:
		return "Off"
	case ModeManual:
		return "Manual"
	case ModeThermostat:
		return "Thermostat"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

func formatEffect(e Effect) string {
	switch e {
	case EffectOff:
		return "Off"
	case EffectOn:
		return "On"
	default:
		return fmt.Sprintf("Effect(%d)", uint8(e))
	}
}

func formatTheme(th Theme) string {
	switch th {
	case ThemeCustom:
		return "Custom"
	case ThemeAmber:
		return "Amber"
	case ThemeTwilight:
		return "Twilight"
	case ThemeForest:
		return "Forest"
	case ThemeOcean:
		return "Ocean"
	default:
		return fmt.Sprintf("Theme(%d)", uint8(th))
	}
}

func formatHeatStatus(s HeatStatus) string {
	switch s {
	case HeatOff:
		return "Off"
	case HeatOn:
		return "On"
	case HeatBoost:
		return "Boost"
	default:
		return fmt.Sprintf("HeatStatus(%d)", uint8(s))
	}
}

func formatHeatingMode(m HeatingMode) string {
	switch m {
	case HeatingNormal:
		return "Normal"
	case HeatingEco:
		return "Eco"
	default:
		return fmt.Sprintf("HeatingMode(%d)", uint8(m))
	}
}

func formatHeatControl(c HeatControl) string {
	switch c {
	case HeatControlAvailable:
		return "available"
	case HeatControlUnavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("HeatControl(%d)", uint8(c))
	}
}

func formatVersion(v VersionInfo) string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Test)
}

func formatColor(c RGBWColor) string {
	return fmt.Sprintf("R=%d G=%d B=%d W=%d", c.Red, c.Green, c.Blue, c.White)
}

func formatOnOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
