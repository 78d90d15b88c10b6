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

// Package angle provides strongly typed angular values with unit-aware
// conversion and arithmetic.
//
// An Angle couples a raw numeric value with a measurement unit carried
// in its type, so a value in degrees and a value in radians are distinct
// Go types that cannot be mixed by accident. Same-unit arithmetic is
// direct; cross-unit arithmetic and comparison go through the explicit
// AddOf, SubOf, Compare, Equal and Less functions, which convert the
// right operand into the left operand's unit first. All conversion math
// is performed in float64 regardless of the storage type, as the ratio
// between two units' full turns is generally not representable in an
// integer type.
//
// Seven units are supported: degrees, arcminutes, arcseconds, radians,
// gons, centesimal minutes and centesimal seconds. The trigonometric
// functions in this package accept any of them and convert to radians
// internally.
package angle

import (
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"dirpx.dev/dxnum/numcore/errors"
	"dirpx.dev/dxnum/numcore/model"
	"dirpx.dev/dxnum/numcore/numeric"
)

// Angle is an angular value of storage type T measured in unit U.
//
// The zero value is a zero angle and is immediately usable. Angle is a
// value type: the arithmetic methods return new angles and never modify
// the receiver, except for Wrap, Inc and Dec, which use pointer
// receivers and mutate in place.
type Angle[T numeric.Number, U Unit] struct {
	v T
}

// New returns an Angle of v in unit U. The type parameters are usually
// supplied through the unit-specific constructors (Deg, Rad, Gon and
// friends) rather than spelled out at call sites.
func New[T numeric.Number, U Unit](v T) Angle[T, U] {
	return Angle[T, U]{v: v}
}

// Value returns the raw numeric value in the angle's own unit.
func (a Angle[T, U]) Value() T { return a.v }

// FullTurn returns one complete revolution expressed in the angle's
// unit.
func (a Angle[T, U]) FullTurn() float64 {
	var u U
	return u.FullTurn()
}

// Turns returns the angle as a fraction of a full revolution. Turns is
// the unit-independent form used for cross-unit comparison.
func (a Angle[T, U]) Turns() float64 {
	var u U
	return float64(a.v) / u.FullTurn()
}

// Add returns the sum of two angles in the same unit.
func (a Angle[T, U]) Add(b Angle[T, U]) Angle[T, U] {
	return Angle[T, U]{v: a.v + b.v}
}

// Sub returns the difference of two angles in the same unit.
func (a Angle[T, U]) Sub(b Angle[T, U]) Angle[T, U] {
	return Angle[T, U]{v: a.v - b.v}
}

// Mul returns the angle scaled by k.
func (a Angle[T, U]) Mul(k T) Angle[T, U] {
	return Angle[T, U]{v: a.v * k}
}

// Div returns the angle divided by k. Dividing by zero is rejected with
// a ValidationError and the zero angle.
func (a Angle[T, U]) Div(k T) (Angle[T, U], error) {
	if k == T(0) {
		return Angle[T, U]{}, &errors.ValidationError{Type: "Angle", Field: "divisor", Reason: "division by zero"}
	}
	return Angle[T, U]{v: a.v / k}, nil
}

// Pow returns the angle's value raised to exp, still interpreted in the
// angle's unit. The computation runs in float64 and truncates back to
// integer storage types.
func (a Angle[T, U]) Pow(exp float64) Angle[T, U] {
	return Angle[T, U]{v: T(math.Pow(float64(a.v), exp))}
}

// Inc increments the raw value by one unit.
func (a *Angle[T, U]) Inc() { a.v++ }

// Dec decrements the raw value by one unit.
func (a *Angle[T, U]) Dec() { a.v-- }

// Neg returns the negation of a. It is a free function rather than a
// method so that it exists only for signed storage types; negating an
// unsigned angle has no meaningful result.
func Neg[T numeric.SignedNumber, U Unit](a Angle[T, U]) Angle[T, U] {
	return Angle[T, U]{v: -a.v}
}

// Wrapped returns the angle reduced to at most one full turn. A
// negative value has its sign discarded before reduction, so -90°
// becomes 90°, not 270°; wrapping answers "how far from zero" rather
// than placing the angle on an oriented circle. The range is closed:
// exactly one full turn is already in range and stays put, while any
// value beyond it reduces modulo the turn. Use a wrapping bounded
// value (see NewBearing) when oriented placement in [0, turn) is
// needed.
func (a Angle[T, U]) Wrapped() Angle[T, U] {
	var u U
	t := u.FullTurn()
	v := float64(a.v)
	if v < 0 {
		v = -v
	}
	if v > t {
		v = math.Mod(v, t)
	}
	return Angle[T, U]{v: T(v)}
}

// Wrap reduces the angle in place; see Wrapped.
func (a *Angle[T, U]) Wrap() { *a = a.Wrapped() }

// TurnRemainder returns the wrapped distance left to complete a full
// turn: wrapped(turn - wrapped(a)). A right angle in degrees has a
// remainder of 270°; a zero angle has a whole turn left, and a full
// turn has remainder zero.
func (a Angle[T, U]) TurnRemainder() Angle[T, U] {
	var u U
	w := a.Wrapped()
	rem := Angle[T, U]{v: T(u.FullTurn()) - w.v}
	return rem.Wrapped()
}

// TypeName returns "Angle".
func (a Angle[T, U]) TypeName() string { return "Angle" }

// IsZero reports whether the angle is exactly zero.
func (a Angle[T, U]) IsZero() bool { return a.v == T(0) }

// Validate checks that the value is finite. Integer storage types always
// validate; float storage rejects NaN and infinities, which would poison
// every conversion and comparison downstream.
func (a Angle[T, U]) Validate() error {
	v := float64(a.v)
	if math.IsNaN(v) {
		return &errors.ValidationError{Type: "Angle", Reason: "value is NaN"}
	}
	if math.IsInf(v, 0) {
		return &errors.ValidationError{Type: "Angle", Reason: "value is infinite", Value: a.v}
	}
	return nil
}

// String renders the raw value without the unit symbol, matching the
// number the angle serializes as. Use Sprint for human-facing output
// with the symbol attached.
func (a Angle[T, U]) String() string {
	return fmt.Sprintf("%v", a.v)
}

// Redacted returns the same representation as String. Angles carry no
// sensitive payload.
func (a Angle[T, U]) Redacted() string { return a.String() }

// Sprint renders the value followed by its unit symbol, for example
// "90°" or "1.5 rad".
func Sprint[T numeric.Number, U Unit](a Angle[T, U]) string {
	var u U
	return fmt.Sprintf("%v%s", a.v, u.Symbol())
}

// MarshalJSON encodes the raw value as a bare JSON number. The unit is
// part of the Go type and is re-established by the declaration of the
// value being unmarshaled into.
func (a Angle[T, U]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.v)
}

// UnmarshalJSON decodes a bare JSON number into the angle's raw value.
// A decoded value failing Validate (non-finite float storage) is
// rejected and the receiver is left unchanged.
func (a *Angle[T, U]) UnmarshalJSON(data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return &errors.UnmarshalError{Type: "Angle", Data: data, Reason: err.Error()}
	}
	got := Angle[T, U]{v: v}
	if err := got.Validate(); err != nil {
		return err
	}
	*a = got
	return nil
}

// MarshalYAML encodes the raw value, mirroring MarshalJSON.
func (a Angle[T, U]) MarshalYAML() (interface{}, error) {
	return a.v, nil
}

// UnmarshalYAML decodes a bare YAML number into the angle's raw value,
// rejecting values that fail Validate (YAML can spell .nan and .inf).
func (a *Angle[T, U]) UnmarshalYAML(node *yaml.Node) error {
	var v T
	if err := node.Decode(&v); err != nil {
		return &errors.UnmarshalError{Type: "Angle", Data: []byte(node.Value), Reason: err.Error()}
	}
	got := Angle[T, U]{v: v}
	if err := got.Validate(); err != nil {
		return err
	}
	*a = got
	return nil
}

// Angle implements the Model interface.
var _ model.Model = (*Angle[float64, DegreesUnit])(nil)
