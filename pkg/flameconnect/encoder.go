// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 the flameconnect authors

package flameconnect

import "encoding/binary"

// EncodeParameter encodes a Parameter into its full wire frame (header
// included). The output always has the kind's fixed total frame length.
//
// SoftwareVersion and ErrorState are report-only and always fail with
// ReadOnlyError. Dispatch is a type switch over the closed union; the
// default arm is unreachable for values constructed from this package.
func EncodeParameter(p Parameter) ([]byte, error) {
	switch v := p.(type) {
	case TemperatureUnit:
		return encodeTemperatureUnit(v), nil
	case Mode:
		return encodeMode(v), nil
	case FlameEffect:
		return encodeFlameEffect(v), nil
	case HeatSettings:
		return encodeHeatSettings(v), nil
	case HeatMode:
		return encodeHeatMode(v), nil
	case Timer:
		return encodeTimer(v), nil
	case Sound:
		return encodeSound(v), nil
	case LogEffect:
		return encodeLogEffect(v), nil
	case SoftwareVersion:
		return nil, &ReadOnlyError{Kind: ParamSoftwareVersion}
	case ErrorState:
		return nil, &ReadOnlyError{Kind: ParamError}
	default:
		return nil, &UnknownParameterError{Kind: p.ID()}
	}
}

func encodeTemperatureUnit(v TemperatureUnit) []byte {
	frame := newFrame(ParamTemperatureUnit)
	frame[3] = uint8(v.Unit)
	return frame
}

func encodeMode(v Mode) []byte {
	frame := newFrame(ParamMode)
	frame[3] = uint8(v.Mode)
	writeTemperature(frame, 4, v.Temperature)
	return frame
}

func encodeFlameEffect(v FlameEffect) []byte {
	frame := newFrame(ParamFlameEffect)
	frame[3] = uint8(v.Effect)
	frame[4] = wireSpeed(v.Speed)
	frame[5] = uint8(v.Brightness)
	frame[6] = uint8(v.Theme)
	frame[7] = boolByte(v.Light1On)
	frame[8] = boolByte(v.Light2On)
	writeColor(frame, 9, v.Light1Color)
	writeColor(frame, 13, v.Light2Color)
	frame[17] = v.ColorPreset
	frame[18] = boolByte(v.ProximitySensor)
	frame[19] = boolByte(v.LightSensor)
	// Bytes 20-22 stay zero (padding).
	return frame
}

func encodeHeatSettings(v HeatSettings) []byte {
	frame := newFrame(ParamHeatSettings)
	frame[3] = uint8(v.Status)
	frame[4] = uint8(v.Mode)
	writeTemperature(frame, 5, v.Temperature)
	binary.LittleEndian.PutUint16(frame[7:9], v.BoostDuration)
	// Byte 9 stays zero (reserved).
	return frame
}

func encodeHeatMode(v HeatMode) []byte {
	frame := newFrame(ParamHeatMode)
	frame[3] = uint8(v.Control)
	return frame
}

func encodeTimer(v Timer) []byte {
	frame := newFrame(ParamTimer)
	frame[3] = uint8(v.Status)
	binary.LittleEndian.PutUint16(frame[4:6], v.Duration)
	return frame
}

func encodeSound(v Sound) []byte {
	frame := newFrame(ParamSound)
	frame[3] = v.Volume
	frame[4] = v.File
	return frame
}

func encodeLogEffect(v LogEffect) []byte {
	frame := newFrame(ParamLogEffect)
	frame[3] = uint8(v.Effect)
	// Byte 4 is an unused theme byte; stays zero.
	writeColor(frame, 5, v.Color)
	frame[9] = v.Pattern
	// Byte 10 stays zero (padding).
	return frame
}

// wireSpeed converts the 1-indexed model speed to the 0-indexed wire byte,
// floored at 0 so an invalid model speed of 0 cannot underflow to 255.
func wireSpeed(speed uint8) uint8 {
	if speed == 0 {
		return 0
	}
	return speed - 1
}
