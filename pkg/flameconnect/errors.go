// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 the flameconnect authors

package flameconnect

import "fmt"

// InsufficientDataError reports a frame shorter than the fixed total length
// for its parameter kind. Decode aborts for that frame only; batch callers
// skip the entry and continue.
type InsufficientDataError struct {
	Kind     ParameterID
	Expected int
	Actual   int
}

// Error implements the error interface
func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("parameter %d: frame too short: need %d bytes, have %d", e.Kind, e.Expected, e.Actual)
}

// UnknownParameterError reports a parameter id the codec does not recognize.
type UnknownParameterError struct {
	Kind ParameterID
}

// Error implements the error interface
func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown parameter id %d", e.Kind)
}

// ReadOnlyError reports an attempt to encode a report-only parameter
// (SoftwareVersion, ErrorState). This is a permanent restriction of the
// protocol, not a transient validation failure.
type ReadOnlyError struct {
	Kind ParameterID
}

// Error implements the error interface
func (e *ReadOnlyError) Error() string {
	return fmt.Sprintf("parameter %d (%s) is read-only and cannot be written", e.Kind, FormatParameterID(e.Kind))
}
