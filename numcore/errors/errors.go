/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package errors provides reusable error types for dxnum value types.
//
// This package defines the common error types used across the dxnum
// packages (such as angle, bounded, interval, rational) when parsing,
// converting, marshaling and unmarshaling strongly typed numeric values.
// By centralizing these types, the package eliminates code duplication and
// provides a consistent error handling story across the entire dxnum
// surface.
//
// The errors in this package are intentionally simple value carriers with
// stable message formats. They are designed to be:
//
//   - easy to construct from parsing / conversion / bounding code,
//   - easy to recognize via type assertions or errors.As,
//   - and easy for users to understand when surfaced in logs or diagnostics.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing a string into a numeric value type fails.
//     Use this when implementing ParseXxx helpers that accept textual input
//     (for example, "3/4" for a rational or "clip" for a bounding severity).
//
//   - MarshalError
//     Returned when marshaling an invalid enum-like value fails.
//     Use this in MarshalJSON / MarshalText implementations to reject values
//     that do not correspond to known constants.
//
//   - UnmarshalError
//     Returned when unmarshaling data into a value type fails due to
//     invalid input, parse errors or constraint violations.
//
//   - ValidationError
//     Returned when validation of a value type fails.
//     Use this in Validate() methods to report constraint violations,
//     such as a zero denominator or an inverted interval.
//
//   - OutOfRangeError
//     Returned by the strict bounding policy when a candidate value lies
//     outside its interval. Carries the offending value and both bounds.
//
//   - ConversionError
//     Returned by checked numeric conversions when the requested
//     conversion would silently lose precision, range or sign.
//
// # Usage
//
// Each package that defines numeric value types can use these error types
// directly or create type aliases for better API clarity:
//
//	import "dirpx.dev/dxnum/numcore/errors"
//
//	func ParseSeverity(s string) (Severity, error) {
//	    switch s {
//	    case "clip":
//	        return SeverityClip, nil
//	    default:
//	        return 0, &errors.ParseError{Type: "Severity", Value: s}
//	    }
//	}
package errors

import (
	"fmt"
	"strconv"
)

// ParseError is returned when parsing a string into a strongly typed
// numeric or enum-like value fails.
//
// Type identifies the logical type being parsed (for example, "Rational",
// "Severity"), and Value contains the exact string that could not be
// interpreted. This struct is intended for use in error messages and
// diagnostics; callers MAY pattern-match on Type to provide type-specific
// guidance to users or to translate errors into friendlier messages.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example,
	// "Rational").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxnum: invalid {Type} value: {Value}"
//
// The format is intentionally stable so that callers can rely on it for
// diagnostics, while still preferring type assertions where possible.
func (e *ParseError) Error() string {
	return "dxnum: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails due to it
// being outside the set of valid constants.
//
// Type identifies the logical type being marshaled (for example,
// "Severity"), and Value contains the underlying numeric value that was
// deemed invalid.
//
// This error is primarily used as a guardrail: it prevents invalid
// enum-like values from being silently emitted into JSON, YAML or other
// serialized forms. In most cases a MarshalError indicates a programming
// error (for example, a raw integer cast that was never validated).
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxnum: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
func (e *MarshalError) Error() string {
	return "dxnum: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value
// fails.
//
// Type identifies the logical type being populated (for example,
// "Rational"), Data contains the original raw payload (typically a JSON
// fragment), and Reason provides a human-readable description of what went
// wrong (for example, parse errors, invalid numeric value or empty input).
//
// This struct is intended to be surfaced directly in diagnostics or logs
// so that users can understand why their configuration or payload could
// not be interpreted. Callers MAY wrap UnmarshalError with additional
// context when propagating it further up the stack.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	//
	// Callers MAY choose to log or redact this field depending on privacy
	// and size considerations.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	//
	// Reason SHOULD describe what went wrong (for example, "empty data" or
	// "unknown value 'foo'") rather than repeating the type name; the type
	// name is already available in the Type field and reflected in Error().
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxnum: cannot unmarshal {Type}: {Reason}"
//
// The Data field is intentionally not included in the formatted message to
// avoid excessively verbose or sensitive logs; callers can log it
// separately when appropriate.
func (e *UnmarshalError) Error() string {
	return "dxnum: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a value type fails.
//
// Type identifies the logical name of the type being validated (for
// example, "Interval", "Rational"), Field optionally identifies which
// field failed validation, Reason provides a human-readable explanation of
// the validation failure, and Value optionally contains the problematic
// value that failed validation.
//
// This error is used by Validate() methods in value types to report
// constraint violations, such as a zero denominator, a non-finite
// component, or an interval whose bounds are inverted.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation
	// failed.
	Reason string

	// Value optionally contains the invalid value.
	// May be nil if not applicable or if the value should not be logged.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxnum: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxnum: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxnum: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxnum: invalid " + e.Type + ": " + e.Reason
}

// OutOfRangeError is returned when a candidate value lies outside the
// bounds of its interval and the governing bounding policy refuses to
// modify it.
//
// Value is the offending candidate, and Min/Max are the interval bounds in
// effect when the violation was detected. The receiver of the failed
// operation retains its prior, valid value; an OutOfRangeError never
// accompanies a silent correction.
//
// All three fields are carried as any so that a single error type serves
// every storage type the library supports. Callers that need the numeric
// values programmatically can type-assert them back to the storage type
// they used.
type OutOfRangeError struct {
	// Value is the candidate that violated the bounds.
	Value any

	// Min is the lower bound of the interval.
	Min any

	// Max is the upper bound of the interval.
	Max any
}

// Error implements the error interface for OutOfRangeError.
//
// The error message format is:
//
//	"dxnum: {Value} out of range [{Min},{Max}]"
//
// mirroring the "<value> below/above [min,max]" diagnostics emitted by the
// reporting clip policy, but in a single stable form.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("dxnum: %v out of range [%v,%v]", e.Value, e.Min, e.Max)
}

// ConversionError is returned by checked numeric conversions when the
// requested conversion would silently lose precision, range or sign.
//
// From and To name the source and destination types (for example, "float64"
// and "int32"), and Value carries the source value that could not be
// represented exactly in the destination type.
//
// A ConversionError always means the conversion was refused; no partial or
// truncated result is ever produced alongside it.
type ConversionError struct {
	// From is the name of the source type.
	From string

	// To is the name of the destination type.
	To string

	// Value is the source value that is not representable in the
	// destination type.
	Value any
}

// Error implements the error interface for ConversionError.
//
// The error message format is:
//
//	"dxnum: cannot convert {From} value {Value} to {To} without loss"
func (e *ConversionError) Error() string {
	return fmt.Sprintf("dxnum: cannot convert %s value %v to %s without loss", e.From, e.Value, e.To)
}
