// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 the flameconnect authors

// Package flameconnect implements the FlameConnect fireplace parameter protocol.
//
// A fireplace reports and accepts its operating parameters as small binary
// records relayed through the FlameConnect cloud. This package provides the
// typed parameter model and the encode/decode engine that converts between
// raw wire frames and structured values. Transport concerns (HTTP, base64,
// JSON envelopes) live in the callers; this package is byte-in/byte-out.
package flameconnect

// ParameterID identifies a parameter kind on the wire (unsigned 16-bit).
type ParameterID uint16

// Parameter wire identifiers
const (
	ParamTemperatureUnit ParameterID = 236
	ParamMode            ParameterID = 321
	ParamFlameEffect     ParameterID = 322
	ParamHeatSettings    ParameterID = 323
	ParamHeatMode        ParameterID = 325
	ParamTimer           ParameterID = 326
	ParamSoftwareVersion ParameterID = 327
	ParamError           ParameterID = 329
	ParamSound           ParameterID = 369
	ParamLogEffect       ParameterID = 370
)

// Frame layout
const (
	// HeaderSize is the fixed frame header: parameter id (u16 little-endian)
	// followed by the payload length (u8, excluding the header itself).
	HeaderSize = 3
)

// Unit represents the temperature display unit.
type Unit uint8

// Temperature unit values
const (
	UnitFahrenheit Unit = 0
	UnitCelsius    Unit = 1
)

// FireMode represents the overall operating mode of the fire.
type FireMode uint8

// Operating mode values
const (
	ModeOff        FireMode = 0
	ModeManual     FireMode = 1
	ModeThermostat FireMode = 2
)

// Effect represents the flame or log effect state.
type Effect uint8

// Effect values
const (
	EffectOff Effect = 0
	EffectOn  Effect = 1
)

// Brightness represents the flame brightness level.
//
// Note: the display names rendered by the vendor app do not follow this
// ordinal order; see the lookup table in formatter.go.
type Brightness uint8

// Brightness levels
const (
	BrightnessLow    Brightness = 0
	BrightnessMedium Brightness = 1
	BrightnessHigh   Brightness = 2
)

// Theme represents a factory color theme for the flame bed lighting.
type Theme uint8

// Theme values
const (
	ThemeCustom   Theme = 0
	ThemeAmber    Theme = 1
	ThemeTwilight Theme = 2
	ThemeForest   Theme = 3
	ThemeOcean    Theme = 4
)

// HeatStatus represents the heater output state.
type HeatStatus uint8

// Heater status values
const (
	HeatOff   HeatStatus = 0
	HeatOn    HeatStatus = 1
	HeatBoost HeatStatus = 2
)

// HeatingMode represents the heater regulation mode.
type HeatingMode uint8

// Heater regulation modes
const (
	HeatingNormal HeatingMode = 0
	HeatingEco    HeatingMode = 1
)

// HeatControl represents heater control availability as reported by the
// appliance (HeatMode parameter).
type HeatControl uint8

// Heat control availability values
const (
	HeatControlAvailable   HeatControl = 0
	HeatControlUnavailable HeatControl = 1
)

// TimerStatus represents the sleep timer state.
type TimerStatus uint8

// Timer status values
const (
	TimerOff TimerStatus = 0
	TimerOn  TimerStatus = 1
)

// Flame speed bounds (1-indexed in the model, 0-indexed on the wire).
const (
	MinFlameSpeed = 1
	MaxFlameSpeed = 5
)

// Volume bounds for the Sound parameter.
const (
	MinVolume = 0
	MaxVolume = 100
)
