// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 the flameconnect authors

package flameconnect

import (
	"encoding/binary"
	"math"
)

// frameLengths maps each parameter kind to its fixed total frame length
// (header + payload). Every kind has exactly one valid length.
var frameLengths = map[ParameterID]int{
	ParamTemperatureUnit: 4,
	ParamMode:            6,
	ParamFlameEffect:     23,
	ParamHeatSettings:    10,
	ParamHeatMode:        4,
	ParamTimer:           6,
	ParamSoftwareVersion: 12,
	ParamError:           7,
	ParamSound:           5,
	ParamLogEffect:       11,
}

// TotalFrameLength returns the fixed total frame length for a parameter kind.
// The second return value is false for unknown kinds.
func TotalFrameLength(id ParameterID) (int, bool) {
	n, ok := frameLengths[id]
	return n, ok
}

// ensureLength validates that raw holds at least the full fixed frame for id.
func ensureLength(id ParameterID, raw []byte) error {
	want := frameLengths[id]
	if len(raw) < want {
		return &InsufficientDataError{Kind: id, Expected: want, Actual: len(raw)}
	}
	return nil
}

// newFrame allocates a zeroed frame for a parameter kind with the 3-byte
// header filled in: id as u16 little-endian, then the payload length.
// Padding offsets stay zero unless a writer fills them.
func newFrame(id ParameterID) []byte {
	total := frameLengths[id]
	frame := make([]byte, total)
	binary.LittleEndian.PutUint16(frame[0:2], uint16(id))
	frame[2] = uint8(total - HeaderSize)
	return frame
}

// readTemperature reads the two-byte fixed-point temperature at offset:
// integer degrees, then the tenths digit.
func readTemperature(raw []byte, offset int) float64 {
	return float64(raw[offset]) + float64(raw[offset+1])/10.0
}

// writeTemperature writes the two-byte fixed-point temperature at offset.
// The integer part is truncated into one byte; values outside [0, 255.9]
// overflow silently. Callers are responsible for range validation.
func writeTemperature(frame []byte, offset int, value float64) {
	frame[offset] = uint8(math.Floor(value))
	frame[offset+1] = uint8(math.Round(math.Mod(value, 1) * 10))
}

// readColor reads four color channels stored in wire order (Red, Blue,
// Green, White) into RGBW model order.
func readColor(raw []byte, offset int) RGBWColor {
	return RGBWColor{
		Red:   raw[offset],
		Blue:  raw[offset+1],
		Green: raw[offset+2],
		White: raw[offset+3],
	}
}

// writeColor writes four color channels in wire order (Red, Blue, Green,
// White). Inverse of readColor.
func writeColor(frame []byte, offset int, c RGBWColor) {
	frame[offset] = c.Red
	frame[offset+1] = c.Blue
	frame[offset+2] = c.Green
	frame[offset+3] = c.White
}

// boolByte converts a flag to its wire byte.
func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
