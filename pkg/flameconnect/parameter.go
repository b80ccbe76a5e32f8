// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 the flameconnect authors

package flameconnect

// Parameter is the closed union of fireplace parameter records. Exactly one
// variant exists per ParameterID; the set is fixed by the wire protocol.
// Variants are immutable value types and are safe to copy and compare.
type Parameter interface {
	// ID returns the wire identifier for this parameter kind.
	ID() ParameterID

	isParameter()
}

// RGBWColor is a four-channel light color. Channels are independent 0-255
// intensities; no clamping is performed anywhere in this package.
//
// On the wire the channels are stored in Red, Blue, Green, White order. The
// codec reorders between wire order and this struct.
type RGBWColor struct {
	Red   uint8
	Green uint8
	Blue  uint8
	White uint8
}

// VersionInfo is one subsystem's firmware version triple.
type VersionInfo struct {
	Major uint8
	Minor uint8
	Test  uint8
}

// TemperatureUnit selects Celsius or Fahrenheit display.
type TemperatureUnit struct {
	Unit Unit
}

// Mode carries the operating mode and the target temperature.
//
// Temperature is degrees with one decimal digit of precision (e.g. 22.5).
// Values outside [0, 255.9] overflow the wire encoding; callers validate.
type Mode struct {
	Mode        FireMode
	Temperature float64
}

// FlameEffect is the full flame lighting record: effect state, speed,
// brightness, theme, and the two flame bed lights with their colors.
//
// Speed is 1-indexed (1-5); the wire stores it 0-indexed.
type FlameEffect struct {
	Effect     Effect
	Speed      uint8
	Brightness Brightness
	Theme      Theme

	Light1On    bool
	Light2On    bool
	Light1Color RGBWColor
	Light2Color RGBWColor

	ColorPreset uint8

	ProximitySensor bool
	LightSensor     bool
}

// HeatSettings carries the heater state, regulation mode, target temperature
// and boost duration (minutes).
type HeatSettings struct {
	Status        HeatStatus
	Mode          HeatingMode
	Temperature   float64
	BoostDuration uint16
}

// HeatMode reports whether heater control is available to the user.
type HeatMode struct {
	Control HeatControl
}

// Timer is the sleep timer: status plus remaining duration in minutes.
type Timer struct {
	Status   TimerStatus
	Duration uint16
}

// SoftwareVersion reports firmware versions for the three subsystems.
// Read-only: the appliance reports it but never accepts it.
type SoftwareVersion struct {
	Control VersionInfo
	Display VersionInfo
	Wifi    VersionInfo
}

// ErrorState carries the appliance fault flags as four opaque bitmask bytes.
// The meaning of individual bits is not documented; they are forwarded as-is.
// Read-only: the appliance reports it but never accepts it.
type ErrorState struct {
	Flags [4]uint8
}

// Sound selects the speaker volume and the active sound file.
type Sound struct {
	Volume uint8
	File   uint8
}

// LogEffect is the log-bed lighting record: effect state, color and pattern.
type LogEffect struct {
	Effect  Effect
	Color   RGBWColor
	Pattern uint8
}

// ID implementations pin each variant to its wire identifier.

func (TemperatureUnit) ID() ParameterID { return ParamTemperatureUnit }
func (Mode) ID() ParameterID            { return ParamMode }
func (FlameEffect) ID() ParameterID     { return ParamFlameEffect }
func (HeatSettings) ID() ParameterID    { return ParamHeatSettings }
func (HeatMode) ID() ParameterID        { return ParamHeatMode }
func (Timer) ID() ParameterID           { return ParamTimer }
func (SoftwareVersion) ID() ParameterID { return ParamSoftwareVersion }
func (ErrorState) ID() ParameterID      { return ParamError }
func (Sound) ID() ParameterID           { return ParamSound }
func (LogEffect) ID() ParameterID       { return ParamLogEffect }

func (TemperatureUnit) isParameter() {}
func (Mode) isParameter()            {}
func (FlameEffect) isParameter()     {}
func (HeatSettings) isParameter()    {}
func (HeatMode) isParameter()        {}
func (Timer) isParameter()           {}
func (SoftwareVersion) isParameter() {}
func (ErrorState) isParameter()      {}
func (Sound) isParameter()           {}
func (LogEffect) isParameter()       {}
