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

// Package interval describes closed numeric ranges [min, max] used as
// constraints for bounded values.
//
// The package separates "the shape of the constraint" (an interval) from
// "what happens on violation" (a bounding policy, see package bounded)
// and from "the value being constrained" (the bounded wrapper itself).
// This lets the same interval be reused with different enforcement
// strategies: a [0°,360°) range serves both as a wrap target for compass
// bearings and as a clip target for a UI dial limit.
//
// Two kinds of interval exist:
//
//   - Of, a dynamic interval storing two runtime bounds, and
//   - zero-size static intervals (Unit, SymUnit, or any user-defined
//     empty struct implementing Interval) whose bounds are baked into
//     their method bodies and which occupy no storage when embedded in a
//     bounded value.
package interval

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"dirpx.dev/dxnum/numcore/errors"
	"dirpx.dev/dxnum/numcore/numeric"
)

// Interval describes a closed numeric range [Min, Max].
//
// Implementations MUST maintain Min() <= Max() as an invariant; consumers
// such as the bounded wrapper rely on it and do not re-check. The zero
// value of an implementation SHOULD be a usable interval (Of's zero value
// is the degenerate [0,0]; Unit's is [0,1]).
type Interval[T numeric.Number] interface {
	// Min returns the inclusive lower bound.
	Min() T

	// Max returns the inclusive upper bound.
	Max() T
}

// Of is a dynamic interval: both bounds are runtime values.
//
// Construct it with New or Upto, which normalize the bound order. An Of
// constructed directly as a struct literal is not normalized; the zero
// value is the degenerate interval [0,0].
type Of[T numeric.Number] struct {
	lo, hi T
}

// New returns the interval [a, b]. If the bounds are given in the wrong
// order they are swapped, so New(5, 2) equals New(2, 5).
func New[T numeric.Number](a, b T) Of[T] {
	if b < a {
		a, b = b, a
	}
	return Of[T]{lo: a, hi: b}
}

// Upto returns the single-bound interval [0, max]. A negative max yields
// [max, 0], keeping the min <= max invariant.
func Upto[T numeric.Number](max T) Of[T] {
	return New(T(0), max)
}

// Min returns the inclusive lower bound.
func (i Of[T]) Min() T { return i.lo }

// Max returns the inclusive upper bound.
func (i Of[T]) Max() T { return i.hi }

// Width returns Max − Min.
func (i Of[T]) Width() T { return i.hi - i.lo }

// Contains reports whether v lies in [Min, Max].
func (i Of[T]) Contains(v T) bool {
	return v >= i.lo && v <= i.hi
}

// ContainsInterval reports whether o lies entirely within i.
func (i Of[T]) ContainsInterval(o Interval[T]) bool {
	return o.Min() >= i.lo && o.Max() <= i.hi
}

// Clamp returns v limited to [Min, Max].
func (i Of[T]) Clamp(v T) T {
	return numeric.Clamp(v, i.lo, i.hi)
}

// Union returns the smallest dynamic interval containing both a and b:
// [min(a.Min(), b.Min()), max(a.Max(), b.Max())].
//
// This is the widening rule used when arithmetic combines two bounded
// values with different intervals: the result keeps every value either
// operand could represent, rather than intersecting down to the overlap.
func Union[T numeric.Number](a, b Interval[T]) Of[T] {
	lo := a.Min()
	if b.Min() < lo {
		lo = b.Min()
	}
	hi := a.Max()
	if b.Max() > hi {
		hi = b.Max()
	}
	return Of[T]{lo: lo, hi: hi}
}

// TypeName returns "Interval", the name of the type for logging and
// diagnostics.
func (i Of[T]) TypeName() string { return "Interval" }

// IsZero reports whether the interval is the degenerate zero value [0,0].
func (i Of[T]) IsZero() bool {
	return i.lo == T(0) && i.hi == T(0)
}

// Validate checks that the bounds are ordered. Intervals built with New
// or Upto always pass; Validate exists to catch inverted bounds smuggled
// in through struct literals or deserialization.
func (i Of[T]) Validate() error {
	if i.hi < i.lo {
		return &errors.ValidationError{
			Type:   "Interval",
			Reason: "min must not exceed max",
			Value:  i.String(),
		}
	}
	return nil
}

// String returns the textual form "[min,max]".
func (i Of[T]) String() string {
	return fmt.Sprintf("[%v,%v]", i.lo, i.hi)
}

// Redacted returns the same text as String; intervals carry no sensitive
// data.
func (i Of[T]) Redacted() string { return i.String() }

// intervalJSON is the wire form of a dynamic interval.
type intervalJSON[T numeric.Number] struct {
	Min T `json:"min" yaml:"min"`
	Max T `json:"max" yaml:"max"`
}

// MarshalJSON implements json.Marshaler for Of.
//
// The interval is serialized as an object {"min": ..., "max": ...}.
// Validation is performed before encoding; an inverted interval is
// rejected rather than serialized.
func (i Of[T]) MarshalJSON() ([]byte, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(intervalJSON[T]{Min: i.lo, Max: i.hi})
}

// UnmarshalJSON implements json.Unmarshaler for Of.
//
// Bounds given in the wrong order are rejected, not swapped: on the wire,
// an inverted interval is treated as malformed input rather than a
// convenience.
func (i *Of[T]) UnmarshalJSON(data []byte) error {
	var w intervalJSON[T]
	if err := json.Unmarshal(data, &w); err != nil {
		return &errors.UnmarshalError{
			Type:   "Interval",
			Data:   data,
			Reason: err.Error(),
		}
	}
	if w.Max < w.Min {
		return &errors.UnmarshalError{
			Type:   "Interval",
			Data:   data,
			Reason: "min must not exceed max",
		}
	}
	i.lo, i.hi = w.Min, w.Max
	return nil
}

// MarshalYAML implements yaml.Marshaler for Of, mirroring the JSON form.
func (i Of[T]) MarshalYAML() (interface{}, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	return intervalJSON[T]{Min: i.lo, Max: i.hi}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Of, mirroring the JSON
// form and its rejection of inverted bounds.
func (i *Of[T]) UnmarshalYAML(node *yaml.Node) error {
	var w intervalJSON[T]
	if err := node.Decode(&w); err != nil {
		return &errors.UnmarshalError{
			Type:   "Interval",
			Reason: err.Error(),
		}
	}
	if w.Max < w.Min {
		return &errors.UnmarshalError{
			Type:   "Interval",
			Reason: "min must not exceed max",
		}
	}
	i.lo, i.hi = w.Min, w.Max
	return nil
}
