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

// Package rational provides exact fractions over signed integer storage
// types.
//
// A Rational is kept in canonical form at all times: the numerator and
// denominator share no common factor, the denominator is positive, and
// zero is represented as 0/1. Canonical form makes equality a plain
// field comparison and keeps the intermediate values of repeated
// arithmetic as small as the mathematics allows. Arithmetic is exact
// within the storage type; it does not detect overflow, so callers
// working near the limits of a narrow storage type SHOULD widen first.
//
// The textual form is "n/d" with an optional whole-number shorthand
// ("3" parses as 3/1), and it round-trips through Parse, String and the
// JSON, YAML and text marshalers.
package rational

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"dirpx.dev/dxnum/numcore/errors"
	"dirpx.dev/dxnum/numcore/model"
	"dirpx.dev/dxnum/numcore/numeric"
)

// Rational is an exact fraction of two integers of type T.
//
// The zero value is 0/0 and is invalid; construct through New or Parse.
// All operations on canonical rationals return canonical rationals.
type Rational[T numeric.Signed] struct {
	num T
	den T
}

// gcd returns the greatest common divisor of two non-negative values.
func gcd[T numeric.Signed](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// abs returns the absolute value.
func abs[T numeric.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// normalize reduces num/den to canonical form. den MUST be nonzero.
func normalize[T numeric.Signed](num, den T) (T, T) {
	if num == 0 {
		return 0, 1
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	return num / g, den / g
}

// New returns the canonical rational num/den. A zero denominator is
// rejected with a ValidationError.
func New[T numeric.Signed](num, den T) (Rational[T], error) {
	if den == 0 {
		return Rational[T]{}, &errors.ValidationError{Type: "Rational", Field: "den", Reason: "denominator is zero"}
	}
	n, d := normalize(num, den)
	return Rational[T]{num: n, den: d}, nil
}

// Must returns r if err is nil and panics otherwise.
func Must[T numeric.Signed](r Rational[T], err error) Rational[T] {
	if err != nil {
		panic(err)
	}
	return r
}

// FromInt returns the rational v/1.
func FromInt[T numeric.Signed](v T) Rational[T] {
	return Rational[T]{num: v, den: 1}
}

// Parse converts the textual form "n/d" into a Rational. A bare integer
// is accepted as shorthand for n/1. Whitespace around the numbers and
// the slash is tolerated. A component that does not fit the storage
// type is rejected with a ConversionError rather than silently wrapped.
func Parse[T numeric.Signed](s string) (Rational[T], error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Rational[T]{}, &errors.ParseError{Type: "Rational", Value: s}
	}

	numStr, denStr, found := strings.Cut(trimmed, "/")
	num64, err := strconv.ParseInt(strings.TrimSpace(numStr), 10, 64)
	if err != nil {
		return Rational[T]{}, &errors.ParseError{Type: "Rational", Value: s}
	}
	num, err := numeric.Convert[T](num64)
	if err != nil {
		return Rational[T]{}, err
	}
	if !found {
		return FromInt(num), nil
	}

	den64, err := strconv.ParseInt(strings.TrimSpace(denStr), 10, 64)
	if err != nil {
		return Rational[T]{}, &errors.ParseError{Type: "Rational", Value: s}
	}
	if den64 == 0 {
		return Rational[T]{}, &errors.ParseError{Type: "Rational", Value: s}
	}
	den, err := numeric.Convert[T](den64)
	if err != nil {
		return Rational[T]{}, err
	}
	n, d := normalize(num, den)
	return Rational[T]{num: n, den: d}, nil
}

// Num returns the canonical numerator, which carries the sign.
func (r Rational[T]) Num() T { return r.num }

// Den returns the canonical denominator, always positive for a valid
// rational.
func (r Rational[T]) Den() T { return r.den }

// Float64 returns the closest float64 to the exact fraction.
func (r Rational[T]) Float64() float64 {
	return float64(r.num) / float64(r.den)
}

// Add returns the exact sum r + o in canonical form.
func (r Rational[T]) Add(o Rational[T]) Rational[T] {
	n, d := normalize(r.num*o.den+o.num*r.den, r.den*o.den)
	return Rational[T]{num: n, den: d}
}

// Sub returns the exact difference r - o in canonical form.
func (r Rational[T]) Sub(o Rational[T]) Rational[T] {
	n, d := normalize(r.num*o.den-o.num*r.den, r.den*o.den)
	return Rational[T]{num: n, den: d}
}

// Mul returns the exact product r * o in canonical form.
func (r Rational[T]) Mul(o Rational[T]) Rational[T] {
	n, d := normalize(r.num*o.num, r.den*o.den)
	return Rational[T]{num: n, den: d}
}

// Div returns the exact quotient r / o in canonical form. Dividing by a
// zero rational is rejected with a ValidationError.
func (r Rational[T]) Div(o Rational[T]) (Rational[T], error) {
	if o.num == 0 {
		return Rational[T]{}, &errors.ValidationError{Type: "Rational", Field: "divisor", Reason: "division by zero"}
	}
	n, d := normalize(r.num*o.den, r.den*o.num)
	return Rational[T]{num: n, den: d}, nil
}

// Neg returns the negation of r.
func (r Rational[T]) Neg() Rational[T] {
	return Rational[T]{num: -r.num, den: r.den}
}

// Inv returns the reciprocal of r. Inverting zero is rejected with a
// ValidationError.
func (r Rational[T]) Inv() (Rational[T], error) {
	if r.num == 0 {
		return Rational[T]{}, &errors.ValidationError{Type: "Rational", Reason: "zero has no reciprocal"}
	}
	n, d := normalize(r.den, r.num)
	return Rational[T]{num: n, den: d}, nil
}

// Compare orders two rationals exactly by cross multiplication,
// returning -1, 0 or +1. The cross products are computed in the storage
// type and can overflow for values near its limits.
func (r Rational[T]) Compare(o Rational[T]) int {
	lhs := r.num * o.den
	rhs := o.num * r.den
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// Equal reports whether two canonical rationals denote the same
// fraction.
func (r Rational[T]) Equal(o Rational[T]) bool {
	return r.num == o.num && r.den == o.den
}

// Less reports whether r is strictly smaller than o.
func (r Rational[T]) Less(o Rational[T]) bool {
	return r.Compare(o) < 0
}

// TypeName returns "Rational".
func (r Rational[T]) TypeName() string { return "Rational" }

// IsZero reports whether the fraction equals zero. It also holds for
// the uninitialized zero value 0/0.
func (r Rational[T]) IsZero() bool { return r.num == 0 }

// Validate checks canonical form: nonzero positive denominator and no
// common factor between the fields. A Rational built through the
// package constructors always validates.
func (r Rational[T]) Validate() error {
	if r.den == 0 {
		return &errors.ValidationError{Type: "Rational", Field: "den", Reason: "denominator is zero"}
	}
	if r.den < 0 {
		return &errors.ValidationError{Type: "Rational", Field: "den", Reason: "denominator is negative", Value: r.den}
	}
	if r.num != 0 && gcd(abs(r.num), r.den) != 1 {
		return &errors.ValidationError{Type: "Rational", Reason: "fraction is not reduced", Value: r.String()}
	}
	return nil
}

// String renders the canonical form "n/d", for example "3/4" or "-1/2".
func (r Rational[T]) String() string {
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

// Redacted returns the same representation as String.
func (r Rational[T]) Redacted() string { return r.String() }

// MarshalJSON encodes the rational as the JSON string "n/d". An invalid
// rational (zero denominator) is rejected with a MarshalError rather
// than emitted.
func (r Rational[T]) MarshalJSON() ([]byte, error) {
	if r.den == 0 {
		return nil, &errors.MarshalError{Type: "Rational", Value: int(r.num)}
	}
	return json.Marshal(r.String())
}

// UnmarshalJSON accepts either the string form "n/d" or a bare JSON
// integer, which is read as n/1.
func (r *Rational[T]) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Rational", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Rational", Data: data, Reason: err.Error()}
		}
		parsed, err := Parse[T](s)
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return &errors.UnmarshalError{Type: "Rational", Data: data, Reason: err.Error()}
	}
	v, err := numeric.Convert[T](n)
	if err != nil {
		return &errors.UnmarshalError{Type: "Rational", Data: data, Reason: err.Error()}
	}
	*r = FromInt(v)
	return nil
}

// MarshalYAML encodes the string form "n/d".
func (r Rational[T]) MarshalYAML() (interface{}, error) {
	if r.den == 0 {
		return nil, &errors.MarshalError{Type: "Rational", Value: int(r.num)}
	}
	return r.String(), nil
}

// UnmarshalYAML accepts the string form "n/d" or a bare integer.
func (r *Rational[T]) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		var n int64
		if err := node.Decode(&n); err != nil {
			return &errors.UnmarshalError{Type: "Rational", Data: []byte(node.Value), Reason: err.Error()}
		}
		v, err := numeric.Convert[T](n)
		if err != nil {
			return &errors.UnmarshalError{Type: "Rational", Data: []byte(node.Value), Reason: err.Error()}
		}
		*r = FromInt(v)
		return nil
	}
	parsed, err := Parse[T](s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MarshalText encodes the string form "n/d" for use as a map key or in
// text-based formats.
func (r Rational[T]) MarshalText() ([]byte, error) {
	if r.den == 0 {
		return nil, &errors.MarshalError{Type: "Rational", Value: int(r.num)}
	}
	return []byte(r.String()), nil
}

// UnmarshalText parses the string form "n/d".
func (r *Rational[T]) UnmarshalText(text []byte) error {
	parsed, err := Parse[T](string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Rational implements the Model interface.
var _ model.Model = (*Rational[int])(nil)
