// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 the flameconnect authors

package flameconnect

import "encoding/binary"

// decodeFunc reads one full frame (header included) into a Parameter.
type decodeFunc func(raw []byte) (Parameter, error)

// decoders is the total dispatch table from wire id to frame reader.
// Adding a parameter kind means adding exactly one entry here and one in
// frameLengths; DecodeParameter has no other per-kind knowledge.
var decoders = map[ParameterID]decodeFunc{
	ParamTemperatureUnit: decodeTemperatureUnit,
	ParamMode:            decodeMode,
	ParamFlameEffect:     decodeFlameEffect,
	ParamHeatSettings:    decodeHeatSettings,
	ParamHeatMode:        decodeHeatMode,
	ParamTimer:           decodeTimer,
	ParamSoftwareVersion: decodeSoftwareVersion,
	ParamError:           decodeErrorState,
	ParamSound:           decodeSound,
	ParamLogEffect:       decodeLogEffect,
}

// DecodeParameter decodes one full wire frame (header included) into the
// matching Parameter variant. The id comes from the transport envelope; the
// frame's own header bytes are not consulted for dispatch.
//
// Out-of-domain enum bytes are forwarded as-is rather than rejected, so that
// unknown appliance states reach the caller instead of failing the batch.
// Errors are returned as values (never panics) so batch callers can skip a
// bad entry and continue.
func DecodeParameter(id ParameterID, raw []byte) (Parameter, error) {
	decode, ok := decoders[id]
	if !ok {
		return nil, &UnknownParameterError{Kind: id}
	}
	if err := ensureLength(id, raw); err != nil {
		return nil, err
	}
	return decode(raw)
}

func decodeTemperatureUnit(raw []byte) (Parameter, error) {
	return TemperatureUnit{Unit: Unit(raw[3])}, nil
}

func decodeMode(raw []byte) (Parameter, error) {
	return Mode{
		Mode:        FireMode(raw[3]),
		Temperature: readTemperature(raw, 4),
	}, nil
}

func decodeFlameEffect(raw []byte) (Parameter, error) {
	// Bytes 20-22 are padding and intentionally not read.
	return FlameEffect{
		Effect:          Effect(raw[3]),
		Speed:           raw[4] + 1, // wire is 0-indexed
		Brightness:      Brightness(raw[5]),
		Theme:           Theme(raw[6]),
		Light1On:        raw[7] != 0,
		Light2On:        raw[8] != 0,
		Light1Color:     readColor(raw, 9),
		Light2Color:     readColor(raw, 13),
		ColorPreset:     raw[17],
		ProximitySensor: raw[18] != 0,
		LightSensor:     raw[19] != 0,
	}, nil
}

func decodeHeatSettings(raw []byte) (Parameter, error) {
	// Byte 9 is reserved and intentionally not read.
	return HeatSettings{
		Status:        HeatStatus(raw[3]),
		Mode:          HeatingMode(raw[4]),
		Temperature:   readTemperature(raw, 5),
		BoostDuration: binary.LittleEndian.Uint16(raw[7:9]),
	}, nil
}

func decodeHeatMode(raw []byte) (Parameter, error) {
	return HeatMode{Control: HeatControl(raw[3])}, nil
}

func decodeTimer(raw []byte) (Parameter, error) {
	return Timer{
		Status:   TimerStatus(raw[3]),
		Duration: binary.LittleEndian.Uint16(raw[4:6]),
	}, nil
}

func decodeSoftwareVersion(raw []byte) (Parameter, error) {
	return SoftwareVersion{
		Control: VersionInfo{Major: raw[3], Minor: raw[4], Test: raw[5]},
		Display: VersionInfo{Major: raw[6], Minor: raw[7], Test: raw[8]},
		Wifi:    VersionInfo{Major: raw[9], Minor: raw[10], Test: raw[11]},
	}, nil
}

func decodeErrorState(raw []byte) (Parameter, error) {
	// Opaque fault bitmask; not decoded further.
	return ErrorState{Flags: [4]uint8{raw[3], raw[4], raw[5], raw[6]}}, nil
}

func decodeSound(raw []byte) (Parameter, error) {
	return Sound{Volume: raw[3], File: raw[4]}, nil
}

func decodeLogEffect(raw []byte) (Parameter, error) {
	// Byte 4 is an unused theme byte and byte 10 is padding; neither is read.
	return LogEffect{
		Effect:  Effect(raw[3]),
		Color:   readColor(raw, 5),
		Pattern: raw[9],
	}, nil
}
