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

// Package scomplex provides split-complex numbers, also known as
// hyperbolic numbers.
//
// A split-complex number has the form a + b·j where the unit j squares
// to +1 rather than -1. The algebra therefore differs from the ordinary
// complex numbers in one important way: it has zero divisors. Every
// number of the form x ± x·j has a vanishing quadratic form, and
// division by such a number is undefined. Div reports this case as an
// error instead of producing infinities.
//
// The quadratic form a² - b² plays the role the squared magnitude plays
// for complex numbers, except that it can be negative or zero. It is
// exposed as Norm.
package scomplex

import (
	"encoding/json"
	"fmt"
	"math"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"dirpx.dev/dxnum/numcore/errors"
	"dirpx.dev/dxnum/numcore/model"
	"dirpx.dev/dxnum/numcore/numeric"
)

// SComplex is a split-complex number with components of float type T.
//
// The zero value is the number 0 + 0j and is immediately usable.
type SComplex[T numeric.Float] struct {
	re T
	jm T
}

// New returns the split-complex number re + jm·j.
func New[T numeric.Float](re, jm T) SComplex[T] {
	return SComplex[T]{re: re, jm: jm}
}

// Re returns the real component.
func (s SComplex[T]) Re() T { return s.re }

// Jm returns the coefficient of the hyperbolic unit j.
func (s SComplex[T]) Jm() T { return s.jm }

// Add returns the componentwise sum s + o.
func (s SComplex[T]) Add(o SComplex[T]) SComplex[T] {
	return SComplex[T]{re: s.re + o.re, jm: s.jm + o.jm}
}

// Sub returns the componentwise difference s - o.
func (s SComplex[T]) Sub(o SComplex[T]) SComplex[T] {
	return SComplex[T]{re: s.re - o.re, jm: s.jm - o.jm}
}

// Mul returns the product s · o under j² = +1:
//
//	(a + b·j)(c + d·j) = (ac + bd) + (ad + bc)·j
func (s SComplex[T]) Mul(o SComplex[T]) SComplex[T] {
	return SComplex[T]{
		re: s.re*o.re + s.jm*o.jm,
		jm: s.re*o.jm + s.jm*o.re,
	}
}

// Scale returns the number with both components multiplied by k.
func (s SComplex[T]) Scale(k T) SComplex[T] {
	return SComplex[T]{re: s.re * k, jm: s.jm * k}
}

// Neg returns the negation of s.
func (s SComplex[T]) Neg() SComplex[T] {
	return SComplex[T]{re: -s.re, jm: -s.jm}
}

// Conj returns the hyperbolic conjugate a - b·j. Multiplying a number
// by its conjugate yields its quadratic form as a real number.
func (s SComplex[T]) Conj() SComplex[T] {
	return SComplex[T]{re: s.re, jm: -s.jm}
}

// MulConj returns s * conj(o).
func (s SComplex[T]) MulConj(o SComplex[T]) SComplex[T] {
	return s.Mul(o.Conj())
}

// ConjMul returns conj(s) * o.
func (s SComplex[T]) ConjMul(o SComplex[T]) SComplex[T] {
	return s.Conj().Mul(o)
}

// Norm returns the quadratic form a² - b². Unlike a complex squared
// magnitude it can be negative, and it is zero exactly on the zero
// divisors of the algebra.
func (s SComplex[T]) Norm() T {
	return s.re*s.re - s.jm*s.jm
}

// IsZeroDivisor reports whether s lies on one of the null lines b = ±a,
// where the quadratic form vanishes and division is undefined. The test
// uses the float tolerance, so numbers merely close to a null line are
// also flagged.
func (s SComplex[T]) IsZeroDivisor() bool {
	return numeric.Approx0(s.Norm())
}

// Div returns the quotient s / o, computed as s · Conj(o) / Norm(o). A
// divisor on a null line has no inverse; it is rejected with a
// ValidationError.
func (s SComplex[T]) Div(o SComplex[T]) (SComplex[T], error) {
	n := o.Norm()
	if numeric.Approx0(n) {
		return SComplex[T]{}, &errors.ValidationError{
			Type:   "SComplex",
			Field:  "divisor",
			Reason: "divisor is a zero divisor of the algebra",
			Value:  o.String(),
		}
	}
	return s.Mul(o.Conj()).Scale(T(1) / n), nil
}

// Inv returns the multiplicative inverse of s, when it exists.
func (s SComplex[T]) Inv() (SComplex[T], error) {
	return New[T](1, 0).Div(s)
}

// Exp returns the hyperbolic exponential of s,
//
//	exp(a + b·j) = e^a (cosh b + j·sinh b)
//
// the split-complex analogue of Euler's formula.
func Exp[T numeric.Float](s SComplex[T]) SComplex[T] {
	ea := math.Exp(float64(s.re))
	return SComplex[T]{
		re: T(ea * math.Cosh(float64(s.jm))),
		jm: T(ea * math.Sinh(float64(s.jm))),
	}
}

// TypeName returns "SComplex".
func (s SComplex[T]) TypeName() string { return "SComplex" }

// IsZero reports whether both components are exactly zero.
func (s SComplex[T]) IsZero() bool { return s.re == T(0) && s.jm == T(0) }

// Validate checks that both components are finite, accumulating one
// error per offending component.
func (s SComplex[T]) Validate() error {
	var err error
	err = multierr.Append(err, validateComponent("re", float64(s.re)))
	err = multierr.Append(err, validateComponent("jm", float64(s.jm)))
	return err
}

func validateComponent(field string, v float64) error {
	if math.IsNaN(v) {
		return &errors.ValidationError{Type: "SComplex", Field: field, Reason: "component is NaN"}
	}
	if math.IsInf(v, 0) {
		return &errors.ValidationError{Type: "SComplex", Field: field, Reason: "component is infinite", Value: v}
	}
	return nil
}

// String renders the number as "a+bj" or "a-bj", for example "1.5+2j".
func (s SComplex[T]) String() string {
	if s.jm < 0 {
		return fmt.Sprintf("%v%vj", s.re, s.jm)
	}
	return fmt.Sprintf("%v+%vj", s.re, s.jm)
}

// Redacted returns the same representation as String.
func (s SComplex[T]) Redacted() string { return s.String() }

// scomplexJSON is the serialized shape of a split-complex number.
type scomplexJSON[T numeric.Float] struct {
	Re T `json:"re" yaml:"re"`
	Jm T `json:"jm" yaml:"jm"`
}

// MarshalJSON encodes the number as {"re": a, "jm": b}.
func (s SComplex[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(scomplexJSON[T]{Re: s.re, Jm: s.jm})
}

// UnmarshalJSON decodes {"re": a, "jm": b} and validates the result.
func (s *SComplex[T]) UnmarshalJSON(data []byte) error {
	var raw scomplexJSON[T]
	if err := json.Unmarshal(data, &raw); err != nil {
		return &errors.UnmarshalError{Type: "SComplex", Data: data, Reason: err.Error()}
	}
	out := SComplex[T]{re: raw.Re, jm: raw.Jm}
	if err := out.Validate(); err != nil {
		return &errors.UnmarshalError{Type: "SComplex", Data: data, Reason: err.Error()}
	}
	*s = out
	return nil
}

// MarshalYAML encodes the same shape as MarshalJSON.
func (s SComplex[T]) MarshalYAML() (interface{}, error) {
	return scomplexJSON[T]{Re: s.re, Jm: s.jm}, nil
}

// UnmarshalYAML decodes the same shape as UnmarshalJSON.
func (s *SComplex[T]) UnmarshalYAML(node *yaml.Node) error {
	var raw scomplexJSON[T]
	if err := node.Decode(&raw); err != nil {
		return &errors.UnmarshalError{Type: "SComplex", Data: []byte(node.Value), Reason: err.Error()}
	}
	out := SComplex[T]{re: raw.Re, jm: raw.Jm}
	if err := out.Validate(); err != nil {
		return &errors.UnmarshalError{Type: "SComplex", Data: []byte(node.Value), Reason: err.Error()}
	}
	*s = out
	return nil
}

// SComplex implements the Model interface.
var _ model.Model = (*SComplex[float64])(nil)
