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

// Package model defines the core contracts that dxnum value types
// implement to ensure consistency, type safety, and proper behavior
// across the library.
//
// Serializable value types (such as Rational and Interval) SHOULD
// implement the Model interface or its constituent parts (Validatable,
// Serializable, Loggable, Identifiable, ZeroCheckable). These interfaces
// establish a common contract for validation, serialization, logging and
// identity that enables the generic helpers in this package and
// guarantees safety at compile time.
//
// The contracts prioritize data integrity and debuggability. Validation
// ensures that invalid states (a zero denominator, an inverted interval,
// a non-finite component) cannot be persisted or transmitted.
// Serialization provides round-trip guarantees for configuration files
// and API payloads. The remaining contracts support structured logging
// and optional-field detection.
//
// All dxnum value types are immutable or value-semantic, making them
// naturally safe for concurrent read access. Callers MUST synchronize any
// concurrent writes to mutable instances.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts for
// dxnum value types. Any type implementing Model gains automatic support
// for the generic helper functions in this package: ValidateAll,
// FilterZero, MustValidate, ToJSON, ToYAML, FromJSON, FromYAML, Clone and
// Equal.
//
// Implementations MUST satisfy all embedded interfaces: Validatable
// ensures data integrity by checking invariants; Serializable provides
// round-trip JSON and YAML encoding; Loggable offers both safe (redacted)
// and full string representations; Identifiable supplies a canonical type
// name; and ZeroCheckable detects empty or uninitialized instances.
//
// Model instances are treated as immutable value types. Methods defined
// on Model MUST NOT mutate the receiver unless explicitly documented.
//
// Example compile-time check:
//
//	var _ model.Model = (*Rational[int])(nil)
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own
// state.
//
// The Validate method MUST check all invariants the type promises (for
// example, a rational's denominator being non-zero, or an interval's min
// not exceeding its max) and return nil if and only if the instance is
// fully valid. When validation fails, the returned error MUST describe
// what is invalid in a way that helps callers diagnose the problem;
// prefer "Rational.Den must not be zero" over "validation failed".
//
// Validate MUST be fast, deterministic and idempotent. It MUST NOT mutate
// the receiver, MUST NOT have side effects, and MUST NOT depend on
// external mutable state.
//
// Callers SHOULD invoke Validate at boundaries: immediately after
// unmarshaling external data, after constructing instances from user
// input, and before emitting values into user-facing output.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants and is
	// ready for use. It returns nil if the instance is valid, or a
	// descriptive error explaining what is wrong if validation fails.
	Validate() error
}

// Serializable defines the contract for types that can be serialized to
// and deserialized from JSON and YAML.
//
// Implementations MUST call Validate before marshaling so that only valid
// instances are serialized, and after unmarshaling so that external input
// failing the type's invariants is rejected at the boundary. A value
// serialized to JSON and then deserialized MUST equal the original value,
// and the same MUST hold for YAML.
//
// Marshal methods are safe for concurrent use on immutable receivers.
// Unmarshal methods mutate the receiver and require exclusive access.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide string
// representations for logging and debugging.
//
// Numeric value types rarely carry sensitive data, so for most dxnum
// types Redacted simply returns the same text as String. The two methods
// are still kept distinct so that a value type embedding user-supplied
// context (labels, source file names) can mask it in production logs.
type Loggable interface {
	// Redacted returns a string representation that is safe for
	// production logging. It MUST NOT mutate the receiver and MUST be
	// safe to call concurrently.
	Redacted() string

	// String returns a human-readable representation of the instance.
	// It MUST NOT mutate the receiver and MUST be safe to call
	// concurrently.
	String() string
}

// Identifiable defines the contract for types that can identify
// themselves by a canonical type name.
//
// The name returned by TypeName MUST be constant for a given type, unique
// within dxnum, in CamelCase (for example, "Rational", "Interval"), and
// without a package prefix. Type names appear in structured logs, error
// messages and batch-validation diagnostics.
//
// TypeName MUST be fast, MUST NOT allocate, and SHOULD return a string
// constant.
type Identifiable interface {
	// TypeName returns the canonical name of this value type.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether
// they are in a zero or empty state.
//
// IsZero MUST return true if and only if the instance is semantically
// empty: all fields at their zero value and no meaningful data present.
// Note that zero does not imply invalid or vice versa: a zero Angle is a
// perfectly usable angle, while a freshly declared Rational is zero yet
// fails validation until constructed properly. IsZero reports emptiness,
// not validity.
//
// IsZero MUST be fast, deterministic, idempotent and free of side
// effects.
type ZeroCheckable interface {
	// IsZero reports whether the instance holds only zero values.
	IsZero() bool
}
