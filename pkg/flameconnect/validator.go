// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 the flameconnect authors

package flameconnect

import "fmt"

// AnomalyType represents different types of parameter anomalies
type AnomalyType int

const (
	AnomalyInvalidSpeed AnomalyType = iota
	AnomalyInvalidVolume
	AnomalyInvalidTemp
	AnomalyInvalidValue
)

// ValidationError represents an advisory range finding on a decoded
// parameter. These are warnings for presentation; the codec itself never
// rejects out-of-domain values (documented ranges are not gates).
type ValidationError struct {
	Type    AnomalyType
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (v *ValidationError) Error() string {
	return v.Message
}

// Documented appliance ranges. The wire encoding can carry more; these are
// the ranges the vendor documents as meaningful.
const (
	minTargetTemp = 0.0
	maxTargetTemp = 35.0
)

// ValidateParameter checks a decoded parameter against documented ranges
// Returns a slice of validation errors (empty if nothing is out of range)
func ValidateParameter(p Parameter) []ValidationError {
	switch v := p.(type) {
	case Mode:
		return validateTargetTemp(v.Temperature)
	case HeatSettings:
		return validateTargetTemp(v.Temperature)
	case FlameEffect:
		return validateFlameEffect(v)
	case Sound:
		return validateSound(v)
	}
	return nil
}

func validateTargetTemp(temp float64) []ValidationError {
	if temp < minTargetTemp || temp > maxTargetTemp {
		return []ValidationError{{
			Type:    AnomalyInvalidTemp,
			Message: fmt.Sprintf("Target temperature out of range (%.1f°, valid: %.0f-%.0f°)", temp, minTargetTemp, maxTargetTemp),
			Details: map[string]interface{}{"value": temp, "min": minTargetTemp, "max": maxTargetTemp},
		}}
	}
	return nil
}

func validateFlameEffect(v FlameEffect) []ValidationError {
	errors := []ValidationError{}

	if v.Speed < MinFlameSpeed || v.Speed > MaxFlameSpeed {
		errors = append(errors, ValidationError{
			Type:    AnomalyInvalidSpeed,
			Message: fmt.Sprintf("Invalid flame speed=%d (valid %d-%d)", v.Speed, MinFlameSpeed, MaxFlameSpeed),
			Details: map[string]interface{}{"speed": v.Speed, "min": MinFlameSpeed, "max": MaxFlameSpeed},
		})
	}

	if v.Brightness > BrightnessHigh {
		errors = append(errors, ValidationError{
			Type:    AnomalyInvalidValue,
			Message: fmt.Sprintf("Unknown brightness value=%d (max %d)", v.Brightness, BrightnessHigh),
			Details: map[string]interface{}{"brightness": uint8(v.Brightness), "max": uint8(BrightnessHigh)},
		})
	}

	return errors
}

func validateSound(v Sound) []ValidationError {
	if v.Volume > MaxVolume {
		return []ValidationError{{
			Type:    AnomalyInvalidVolume,
			Message: fmt.Sprintf("Invalid volume=%d (max %d)", v.Volume, MaxVolume),
			Details: map[string]interface{}{"volume": v.Volume, "max": MaxVolume},
		}}
	}
	return nil
}
