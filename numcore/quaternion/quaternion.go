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

// Package quaternion provides Hamilton quaternions over float storage
// types.
//
// A quaternion w + x·i + y·j + z·k extends the complex numbers with
// three anticommuting imaginary units. Multiplication follows Hamilton's
// rules (i² = j² = k² = ijk = -1) and is therefore not commutative;
// Mul(a, b) and Mul(b, a) generally differ. Unit quaternions represent
// three-dimensional rotations, and the package includes the axis-angle
// constructor and vector rotation built on the angle package.
package quaternion

import (
	"encoding/json"
	"fmt"
	"math"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"dirpx.dev/dxnum/numcore/angle"
	"dirpx.dev/dxnum/numcore/errors"
	"dirpx.dev/dxnum/numcore/model"
	"dirpx.dev/dxnum/numcore/numeric"
)

// Quaternion is a Hamilton quaternion with components of float type T.
//
// The zero value is the zero quaternion. Note that the zero quaternion
// has no inverse and does not represent a rotation; the multiplicative
// identity is New(1, 0, 0, 0).
type Quaternion[T numeric.Float] struct {
	w T
	x T
	y T
	z T
}

// New returns the quaternion w + x·i + y·j + z·k.
func New[T numeric.Float](w, x, y, z T) Quaternion[T] {
	return Quaternion[T]{w: w, x: x, y: y, z: z}
}

// Identity returns the multiplicative identity 1 + 0i + 0j + 0k.
func Identity[T numeric.Float]() Quaternion[T] {
	return Quaternion[T]{w: 1}
}

// W returns the scalar component.
func (q Quaternion[T]) W() T { return q.w }

// X returns the coefficient of i.
func (q Quaternion[T]) X() T { return q.x }

// Y returns the coefficient of j.
func (q Quaternion[T]) Y() T { return q.y }

// Z returns the coefficient of k.
func (q Quaternion[T]) Z() T { return q.z }

// Add returns the componentwise sum q + o.
func (q Quaternion[T]) Add(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{w: q.w + o.w, x: q.x + o.x, y: q.y + o.y, z: q.z + o.z}
}

// Sub returns the componentwise difference q - o.
func (q Quaternion[T]) Sub(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{w: q.w - o.w, x: q.x - o.x, y: q.y - o.y, z: q.z - o.z}
}

// Mul returns the Hamilton product q · o. Multiplication is not
// commutative.
func (q Quaternion[T]) Mul(o Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{
		w: q.w*o.w - q.x*o.x - q.y*o.y - q.z*o.z,
		x: q.w*o.x + q.x*o.w + q.y*o.z - q.z*o.y,
		y: q.w*o.y - q.x*o.z + q.y*o.w + q.z*o.x,
		z: q.w*o.z + q.x*o.y - q.y*o.x + q.z*o.w,
	}
}

// Scale returns the quaternion with every component multiplied by k.
func (q Quaternion[T]) Scale(k T) Quaternion[T] {
	return Quaternion[T]{w: q.w * k, x: q.x * k, y: q.y * k, z: q.z * k}
}

// Neg returns the negation of q.
func (q Quaternion[T]) Neg() Quaternion[T] {
	return Quaternion[T]{w: -q.w, x: -q.x, y: -q.y, z: -q.z}
}

// Conj returns the conjugate w - x·i - y·j - z·k.
func (q Quaternion[T]) Conj() Quaternion[T] {
	return Quaternion[T]{w: q.w, x: -q.x, y: -q.y, z: -q.z}
}

// MulConj returns q · conj(o), the relative rotation from o to q when
// both are unit quaternions.
func (q Quaternion[T]) MulConj(o Quaternion[T]) Quaternion[T] {
	return q.Mul(o.Conj())
}

// ConjMul returns conj(q) · o.
func (q Quaternion[T]) ConjMul(o Quaternion[T]) Quaternion[T] {
	return q.Conj().Mul(o)
}

// Dot returns the four-dimensional dot product of q and o.
func (q Quaternion[T]) Dot(o Quaternion[T]) T {
	return q.w*o.w + q.x*o.x + q.y*o.y + q.z*o.z
}

// NormSq returns the squared magnitude w² + x² + y² + z².
func (q Quaternion[T]) NormSq() T {
	return q.Dot(q)
}

// Norm returns the magnitude of q.
func (q Quaternion[T]) Norm() T {
	return T(math.Sqrt(float64(q.NormSq())))
}

// Normalize returns q scaled to unit magnitude. The zero quaternion
// cannot be normalized and is rejected with a ValidationError.
func (q Quaternion[T]) Normalize() (Quaternion[T], error) {
	n := q.Norm()
	if numeric.Approx0(n) {
		return Quaternion[T]{}, &errors.ValidationError{Type: "Quaternion", Reason: "cannot normalize the zero quaternion"}
	}
	return q.Scale(T(1) / n), nil
}

// Inverse returns the multiplicative inverse conj(q) / |q|². The zero
// quaternion has no inverse and is rejected with a ValidationError.
func (q Quaternion[T]) Inverse() (Quaternion[T], error) {
	n := q.NormSq()
	if numeric.Approx0(n) {
		return Quaternion[T]{}, &errors.ValidationError{Type: "Quaternion", Reason: "zero quaternion has no inverse"}
	}
	return q.Conj().Scale(T(1) / n), nil
}

// IsUnit reports whether q has approximately unit magnitude.
func (q Quaternion[T]) IsUnit() bool {
	return numeric.Approx1(q.NormSq())
}

// FromAxisAngle returns the unit quaternion representing a rotation of
// theta around the axis (x, y, z). The axis is normalized internally; a
// zero axis is rejected with a ValidationError. Theta may be measured in
// any angular unit.
func FromAxisAngle[T numeric.Float, U angle.Unit](x, y, z T, theta angle.Angle[T, U]) (Quaternion[T], error) {
	n := math.Sqrt(float64(x*x + y*y + z*z))
	if numeric.Approx0(n) {
		return Quaternion[T]{}, &errors.ValidationError{Type: "Quaternion", Field: "axis", Reason: "axis is the zero vector"}
	}

	// Half the rotation in radians: turns * 2π / 2.
	half := theta.Turns() * math.Pi
	sin, cos := math.Sincos(half)
	k := sin / n
	return Quaternion[T]{
		w: T(cos),
		x: T(float64(x) * k),
		y: T(float64(y) * k),
		z: T(float64(z) * k),
	}, nil
}

// Rotate applies the rotation represented by q to the vector (x, y, z)
// by conjugation, q · v · q⁻¹. The receiver SHOULD be a unit
// quaternion; a non-unit quaternion additionally scales the vector by
// its squared magnitude.
func (q Quaternion[T]) Rotate(x, y, z T) (T, T, T) {
	v := Quaternion[T]{x: x, y: y, z: z}
	r := q.Mul(v).Mul(q.Conj())
	return r.x, r.y, r.z
}

// TypeName returns "Quaternion".
func (q Quaternion[T]) TypeName() string { return "Quaternion" }

// IsZero reports whether all four components are exactly zero.
func (q Quaternion[T]) IsZero() bool {
	return q.w == T(0) && q.x == T(0) && q.y == T(0) && q.z == T(0)
}

// Validate checks that all four components are finite, accumulating one
// error per offending component.
func (q Quaternion[T]) Validate() error {
	var err error
	err = multierr.Append(err, validateComponent("w", float64(q.w)))
	err = multierr.Append(err, validateComponent("x", float64(q.x)))
	err = multierr.Append(err, validateComponent("y", float64(q.y)))
	err = multierr.Append(err, validateComponent("z", float64(q.z)))
	return err
}

func validateComponent(field string, v float64) error {
	if math.IsNaN(v) {
		return &errors.ValidationError{Type: "Quaternion", Field: field, Reason: "component is NaN"}
	}
	if math.IsInf(v, 0) {
		return &errors.ValidationError{Type: "Quaternion", Field: field, Reason: "component is infinite", Value: v}
	}
	return nil
}

// String renders the quaternion in the form "w+xi+yj+zk" with explicit
// signs, for example "1-2i+0.5j+3k".
func (q Quaternion[T]) String() string {
	return fmt.Sprintf("%v%si%sj%sk", q.w, signed(q.x), signed(q.y), signed(q.z))
}

func signed[T numeric.Float](v T) string {
	if v < 0 {
		return fmt.Sprintf("%v", v)
	}
	return fmt.Sprintf("+%v", v)
}

// Redacted returns the same representation as String.
func (q Quaternion[T]) Redacted() string { return q.String() }

// quaternionJSON is the serialized shape of a quaternion.
type quaternionJSON[T numeric.Float] struct {
	W T `json:"w" yaml:"w"`
	X T `json:"x" yaml:"x"`
	Y T `json:"y" yaml:"y"`
	Z T `json:"z" yaml:"z"`
}

// MarshalJSON encodes the quaternion as {"w":..,"x":..,"y":..,"z":..}.
func (q Quaternion[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(quaternionJSON[T]{W: q.w, X: q.x, Y: q.y, Z: q.z})
}

// UnmarshalJSON decodes the four-component object form and validates
// the result.
func (q *Quaternion[T]) UnmarshalJSON(data []byte) error {
	var raw quaternionJSON[T]
	if err := json.Unmarshal(data, &raw); err != nil {
		return &errors.UnmarshalError{Type: "Quaternion", Data: data, Reason: err.Error()}
	}
	out := Quaternion[T]{w: raw.W, x: raw.X, y: raw.Y, z: raw.Z}
	if err := out.Validate(); err != nil {
		return &errors.UnmarshalError{Type: "Quaternion", Data: data, Reason: err.Error()}
	}
	*q = out
	return nil
}

// MarshalYAML encodes the same shape as MarshalJSON.
func (q Quaternion[T]) MarshalYAML() (interface{}, error) {
	return quaternionJSON[T]{W: q.w, X: q.x, Y: q.y, Z: q.z}, nil
}

// UnmarshalYAML decodes the same shape as UnmarshalJSON.
func (q *Quaternion[T]) UnmarshalYAML(node *yaml.Node) error {
	var raw quaternionJSON[T]
	if err := node.Decode(&raw); err != nil {
		return &errors.UnmarshalError{Type: "Quaternion", Data: []byte(node.Value), Reason: err.Error()}
	}
	out := Quaternion[T]{w: raw.W, x: raw.X, y: raw.Y, z: raw.Z}
	if err := out.Validate(); err != nil {
		return &errors.UnmarshalError{Type: "Quaternion", Data: []byte(node.Value), Reason: err.Error()}
	}
	*q = out
	return nil
}

// Quaternion implements the Model interface.
var _ model.Model = (*Quaternion[float64])(nil)
