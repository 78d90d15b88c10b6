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

package model

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns all validation
// errors encountered, rather than stopping at the first failure.
//
// Each model's Validate method is invoked in order. When a model fails
// validation, the error is wrapped with the model's position in the slice
// (zero-indexed) and its type name from TypeName, so callers can identify
// exactly which values failed and why. All failures are aggregated into a
// single combined error using rxmerr.Collector.
//
// Empty slices are considered valid and return nil. ValidateAll never
// panics and always processes the entire slice even when early elements
// fail, ensuring complete error reporting.
//
// The value types in this library implement their unmarshalers on the
// pointer receiver, so Model is satisfied by *Rational, *Angle and
// friends rather than the bare value types; instantiate the helpers
// with pointer element types.
//
// Example usage for batch validation of deserialized values:
//
//	ratios := []*Rational[int]{a, b, c}
//	if err := model.ValidateAll(ratios); err != nil {
//	    return err
//	}
func ValidateAll[T Model](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice containing only non-zero models, as
// reported by each model's IsZero method.
//
// The returned slice is always a new allocation and never shares backing
// storage with the input. If all models are zero, or the input is empty
// or nil, FilterZero returns an empty non-nil slice.
//
// Callers SHOULD use FilterZero before serializing collections to avoid
// emitting empty placeholder values.
func FilterZero[T Model](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate validates a model and panics if validation fails.
//
// If validation succeeds, MustValidate returns the model unchanged,
// allowing inline initialization patterns. If validation fails, it panics
// with a message naming the model's type and the validation error.
//
// Callers MUST only use MustValidate where panic is acceptable control
// flow: test setup, package initialization with hardcoded values, or
// command-line tools where fatal errors should terminate execution.
// Callers MUST NOT use MustValidate in server or library code paths that
// process external input.
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns a string representation of a model that is safe for
// logging by default but can optionally include full details when
// explicitly requested.
//
// When unsafe is false (the recommended value for production logging),
// SafeString returns the model's Redacted representation. When unsafe is
// true, it returns the model's String representation, which MAY include
// sensitive context. The single call site makes the choice between safe
// and unsafe representations explicit and auditable.
func SafeString[T Model](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON converts a model to JSON bytes after validating it.
//
// If validation fails, ToJSON returns an error wrapping the validation
// failure with the model's type name, and no marshaling is attempted.
// This guarantees that invalid values never reach the JSON encoder.
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML converts a model to YAML bytes after validating it.
//
// If validation fails, ToYAML returns an error wrapping the validation
// failure with the model's type name, and no marshaling is attempted.
// This guarantees that invalid values never reach the YAML encoder.
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON parses JSON bytes into a model and validates the result.
//
// T is a pointer instantiation (for example *Rational[int]) and m the
// destination to decode into. Unmarshal failures (malformed JSON, type
// mismatches) are returned directly. If unmarshaling succeeds but the
// resulting value fails validation, an error is returned and the
// destination's state MUST NOT be used. This rejects malformed external
// data at the boundary rather than letting it cause downstream
// arithmetic errors.
func FromJSON[T Model](data []byte, m T) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML parses YAML bytes into a model and validates the result.
//
// Unmarshal failures are returned directly. If unmarshaling succeeds but
// the resulting value fails validation, an error is returned and the
// destination's state MUST NOT be used.
func FromYAML[T Model](data []byte, m T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// Clone creates a deep copy of a model via a JSON round trip.
//
// With a pointer instantiation the returned model points at freshly
// allocated storage, never at the original's.
//
// The JSON round trip guarantees a fully independent copy without
// type-specific copy logic, at the cost of encoding overhead. For the
// small value types in this library the overhead is negligible; types on
// hot paths can provide their own copy logic instead.
//
// Callers MUST check the returned error before using the clone; on error
// the returned model is a zero value that MUST NOT be used.
func Clone[T Model](m T) (T, error) {
	var zero T

	data, err := json.Marshal(m)
	if err != nil {
		return zero, fmt.Errorf("clone marshal failed: %w", err)
	}

	var clone T
	if err := json.Unmarshal(data, &clone); err != nil {
		return zero, fmt.Errorf("clone unmarshal failed: %w", err)
	}

	return clone, nil
}

// Equal compares two models for equality by comparing their JSON
// representations byte-for-byte.
//
// If either marshaling operation fails, Equal returns false without
// attempting to compare partial results, so comparison errors are never
// mistaken for equality. Two models are equal if and only if their JSON
// forms are identical; this respects custom MarshalJSON implementations
// and ignores unexported fields.
func Equal[T Model](a, b T) bool {
	dataA, errA := json.Marshal(a)
	dataB, errB := json.Marshal(b)

	if errA != nil || errB != nil {
		return false
	}

	return string(dataA) == string(dataB)
}
