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

// Package bounded provides numeric values that can never leave their
// interval.
//
// A Bounded value couples a raw number with an interval and a bounding
// policy. Every write path, from construction through arithmetic to
// unmarshaling, routes the candidate value through the policy before it
// is stored, so a Bounded value held by a caller is in range at all
// times. The policy decides what an out-of-range candidate becomes:
//
//   - Clip saturates to the violated bound, silently.
//   - Wrap folds the candidate back into the interval, treating it as
//     circular.
//   - ClipReport saturates like Clip and emits one diagnostic line per
//     correction.
//   - Strict rejects the candidate with an error and leaves the stored
//     value untouched.
//
// The interval and the policy are type parameters, so a Bounded value
// with a zero-size static interval and a zero-size policy is exactly one
// machine word wide. Arithmetic between values of different
// instantiations is supported through the package-level Merge, AddOf,
// SubOf, MulOf and DivOf functions, which widen the interval to the
// union of both operands' intervals and adopt the stricter of the two
// policies.
package bounded

import (
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"dirpx.dev/dxnum/numcore/errors"
	"dirpx.dev/dxnum/numcore/interval"
	"dirpx.dev/dxnum/numcore/model"
	"dirpx.dev/dxnum/numcore/numeric"
)

// Bounded is a numeric value confined to an interval by a bounding
// policy.
//
// T is the storage type, I the interval providing the bounds, and P the
// policy applied to every candidate value. The zero value of a Bounded
// instantiated with a static interval (such as interval.Unit) and a
// concrete policy is immediately usable; instantiations with
// interval.Of need a constructor call to receive their bounds.
//
// All mutating methods use pointer receivers and report policy
// rejections as errors. When a mutation fails, the previously stored
// value is retained unchanged.
type Bounded[T numeric.Number, I interval.Interval[T], P Policy[T]] struct {
	iv I
	p  P
	v  T
}

// Dynamic is a Bounded whose policy is chosen at run time. It is the
// result type of the cross-instantiation operations (Merge, AddOf and
// friends), which must carry whichever of the two operand policies is
// stricter.
type Dynamic[T numeric.Number] = Bounded[T, interval.Of[T], Policy[T]]

// Clipped is a silently clamping Bounded over a run-time interval.
type Clipped[T numeric.Number] = Bounded[T, interval.Of[T], Clip[T]]

// Wrapped is a circularly wrapping Bounded over a run-time interval.
type Wrapped[T numeric.Number] = Bounded[T, interval.Of[T], Wrap[T]]

// Reported is a clamping Bounded over a run-time interval that emits a
// diagnostic line for every correction.
type Reported[T numeric.Number] = Bounded[T, interval.Of[T], ClipReport[T]]

// Checked is a Bounded over a run-time interval that rejects
// out-of-range candidates with an error.
type Checked[T numeric.Number] = Bounded[T, interval.Of[T], Strict[T]]

// UnitClipped is a value clamped to [0, 1].
type UnitClipped[T numeric.Number] = Bounded[T, interval.Unit[T], Clip[T]]

// UnitWrapped is a value wrapped into [0, 1].
type UnitWrapped[T numeric.Number] = Bounded[T, interval.Unit[T], Wrap[T]]

// SymUnitClipped is a value clamped to [-1, 1].
type SymUnitClipped[T numeric.SignedNumber] = Bounded[T, interval.SymUnit[T], Clip[T]]

// SymUnitWrapped is a value wrapped into [-1, 1].
type SymUnitWrapped[T numeric.SignedNumber] = Bounded[T, interval.SymUnit[T], Wrap[T]]

// New returns a Bounded holding v reconciled with iv by p. The error is
// non-nil only when the policy rejects v (Strict with an out-of-range
// candidate); corrective policies always succeed.
func New[T numeric.Number, I interval.Interval[T], P Policy[T]](iv I, p P, v T) (Bounded[T, I, P], error) {
	b := Bounded[T, I, P]{iv: iv, p: p}
	if err := b.Set(v); err != nil {
		return b, err
	}
	return b, nil
}

// NewIn returns a Bounded holding v, with the interval and policy taken
// as the zero values of I and P. It is intended for instantiations
// whose interval and policy are zero-size types carrying their
// configuration in the type itself, for example:
//
//	frac, err := bounded.NewIn[float64, interval.Unit[float64], bounded.Clip[float64]](0.75)
//
// NewIn MUST NOT be used when I is an interface type, as the zero value
// of an interface interval is nil.
func NewIn[T numeric.Number, I interval.Interval[T], P Policy[T]](v T) (Bounded[T, I, P], error) {
	var b Bounded[T, I, P]
	if err := b.Set(v); err != nil {
		return b, err
	}
	return b, nil
}

// Must returns b if err is nil and panics otherwise. It converts the
// two-value constructors into expression form for values known to be in
// range:
//
//	ratio := bounded.Must(bounded.New(interval.Upto(100), bounded.Clip[int]{}, 42))
func Must[T numeric.Number, I interval.Interval[T], P Policy[T]](b Bounded[T, I, P], err error) Bounded[T, I, P] {
	if err != nil {
		panic(err)
	}
	return b
}

// Value returns the stored value. It is always within [Min(), Max()]
// provided the Bounded was built through a constructor or had Set called
// at least once.
func (b Bounded[T, I, P]) Value() T { return b.v }

// Min returns the lower bound of the governing interval.
func (b Bounded[T, I, P]) Min() T { return b.iv.Min() }

// Max returns the upper bound of the governing interval.
func (b Bounded[T, I, P]) Max() T { return b.iv.Max() }

// Tolerance returns the comparison tolerance for the storage type,
// completing the numeric.Limited protocol.
func (b Bounded[T, I, P]) Tolerance() T { return numeric.Tolerance[T]() }

// Interval returns the governing interval.
func (b Bounded[T, I, P]) Interval() I { return b.iv }

// Severity returns the rank of the governing policy.
func (b Bounded[T, I, P]) Severity() Severity { return b.p.Severity() }

// Set routes x through the policy and stores the result. On policy
// rejection the prior value is retained and the policy's error is
// returned.
func (b *Bounded[T, I, P]) Set(x T) error {
	v, err := b.p.Bound(x, b.iv.Min(), b.iv.Max())
	if err != nil {
		return err
	}
	b.v = v
	return nil
}

// Add adds x to the stored value, routing the sum through the policy.
func (b *Bounded[T, I, P]) Add(x T) error { return b.Set(b.v + x) }

// Sub subtracts x from the stored value, routing the difference through
// the policy.
func (b *Bounded[T, I, P]) Sub(x T) error { return b.Set(b.v - x) }

// Mul multiplies the stored value by x, routing the product through the
// policy.
func (b *Bounded[T, I, P]) Mul(x T) error { return b.Set(b.v * x) }

// Div divides the stored value by x, routing the quotient through the
// policy. A zero divisor is rejected with a ValidationError before any
// division takes place; the stored value is retained.
func (b *Bounded[T, I, P]) Div(x T) error {
	if x == T(0) {
		return &errors.ValidationError{Type: "Bounded", Field: "divisor", Reason: "division by zero"}
	}
	return b.Set(b.v / x)
}

// Mod replaces the stored value with its remainder modulo x, routing the
// result through the policy. The remainder is computed in float64 via
// math.Mod, so it carries fmod semantics for every storage type: the
// result has the sign of the dividend. A zero modulus is rejected with a
// ValidationError.
func (b *Bounded[T, I, P]) Mod(x T) error {
	if x == T(0) {
		return &errors.ValidationError{Type: "Bounded", Field: "modulus", Reason: "modulo by zero"}
	}
	return b.Set(T(math.Mod(float64(b.v), float64(x))))
}

// Inc increments the stored value by one, routing through the policy.
func (b *Bounded[T, I, P]) Inc() error { return b.Add(T(1)) }

// Dec decrements the stored value by one, routing through the policy.
func (b *Bounded[T, I, P]) Dec() error { return b.Sub(T(1)) }

// TypeName returns "Bounded".
func (b Bounded[T, I, P]) TypeName() string { return "Bounded" }

// IsZero reports whether the stored value is the zero of the storage
// type. The interval and policy are type-level configuration and do not
// participate.
func (b Bounded[T, I, P]) IsZero() bool { return b.v == T(0) }

// Validate checks that the interval is well formed and that the stored
// value lies within it. A freshly declared Bounded over a run-time
// interval has the degenerate bounds [0, 0] and validates as long as the
// stored value is also zero.
func (b Bounded[T, I, P]) Validate() error {
	lo, hi := b.iv.Min(), b.iv.Max()
	if hi < lo {
		return &errors.ValidationError{
			Type:   "Bounded",
			Field:  "interval",
			Reason: "bounds are inverted",
			Value:  fmt.Sprintf("[%v,%v]", lo, hi),
		}
	}
	if b.v < lo || b.v > hi {
		return &errors.OutOfRangeError{Value: b.v, Min: lo, Max: hi}
	}
	return nil
}

// String renders the value followed by its bounds, for example
// "42 in [0,100]".
func (b Bounded[T, I, P]) String() string {
	return fmt.Sprintf("%v in [%v,%v]", b.v, b.iv.Min(), b.iv.Max())
}

// Redacted returns the same representation as String. Bounded values
// carry no sensitive payload.
func (b Bounded[T, I, P]) Redacted() string { return b.String() }

// MarshalJSON encodes only the stored value, as a bare JSON number. The
// interval and policy are part of the Go type and are expected to be
// re-established by the declaration of the value being unmarshaled into.
func (b Bounded[T, I, P]) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.v)
}

// UnmarshalJSON decodes a bare JSON number and routes it through the
// receiver's policy, exactly as Set does. The receiver's interval and
// policy MUST already be configured; unmarshaling into a zero-value
// Bounded over a run-time interval confines the decoded value to [0, 0].
func (b *Bounded[T, I, P]) UnmarshalJSON(data []byte) error {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return &errors.UnmarshalError{Type: "Bounded", Data: data, Reason: err.Error()}
	}
	if err := b.Set(v); err != nil {
		return &errors.UnmarshalError{Type: "Bounded", Data: data, Reason: err.Error()}
	}
	return nil
}

// MarshalYAML encodes only the stored value, mirroring MarshalJSON.
func (b Bounded[T, I, P]) MarshalYAML() (interface{}, error) {
	return b.v, nil
}

// UnmarshalYAML decodes a bare YAML number and routes it through the
// receiver's policy. The same receiver configuration caveat as
// UnmarshalJSON applies.
func (b *Bounded[T, I, P]) UnmarshalYAML(node *yaml.Node) error {
	var v T
	if err := node.Decode(&v); err != nil {
		return &errors.UnmarshalError{Type: "Bounded", Data: []byte(node.Value), Reason: err.Error()}
	}
	if err := b.Set(v); err != nil {
		return &errors.UnmarshalError{Type: "Bounded", Data: []byte(node.Value), Reason: err.Error()}
	}
	return nil
}

// Bounded implements the Model interface.
var _ model.Model = (*Clipped[int])(nil)

// combine builds the Dynamic result of a cross-instantiation operation:
// the interval is the union of both operand intervals and the policy is
// the stricter of the two. The candidate v is routed through the chosen
// policy against the widened bounds.
func combine[T numeric.Number, I1 interval.Interval[T], P1 Policy[T], I2 interval.Interval[T], P2 Policy[T]](
	a Bounded[T, I1, P1], b Bounded[T, I2, P2], v T,
) (Dynamic[T], error) {
	iv := interval.Union[T](a.iv, b.iv)
	p := Stricter[T](a.p, b.p)
	out := Dynamic[T]{iv: iv, p: p}
	if err := out.Set(v); err != nil {
		return out, err
	}
	return out, nil
}

// Merge rebinds a's value into the union of both operands' intervals
// under the stricter of the two policies, without combining the values
// arithmetically. Since the union contains a's interval, Merge cannot
// fail by range; the error return exists for signature symmetry with the
// arithmetic combinators.
func Merge[T numeric.Number, I1 interval.Interval[T], P1 Policy[T], I2 interval.Interval[T], P2 Policy[T]](
	a Bounded[T, I1, P1], b Bounded[T, I2, P2],
) (Dynamic[T], error) {
	return combine(a, b, a.v)
}

// AddOf returns a Dynamic holding the sum of both stored values, bounded
// by the union interval under the stricter policy.
func AddOf[T numeric.Number, I1 interval.Interval[T], P1 Policy[T], I2 interval.Interval[T], P2 Policy[T]](
	a Bounded[T, I1, P1], b Bounded[T, I2, P2],
) (Dynamic[T], error) {
	return combine(a, b, a.v+b.v)
}

// SubOf returns a Dynamic holding the difference of both stored values,
// bounded by the union interval under the stricter policy.
func SubOf[T numeric.Number, I1 interval.Interval[T], P1 Policy[T], I2 interval.Interval[T], P2 Policy[T]](
	a Bounded[T, I1, P1], b Bounded[T, I2, P2],
) (Dynamic[T], error) {
	return combine(a, b, a.v-b.v)
}

// MulOf returns a Dynamic holding the product of both stored values,
// bounded by the union interval under the stricter policy.
func MulOf[T numeric.Number, I1 interval.Interval[T], P1 Policy[T], I2 interval.Interval[T], P2 Policy[T]](
	a Bounded[T, I1, P1], b Bounded[T, I2, P2],
) (Dynamic[T], error) {
	return combine(a, b, a.v*b.v)
}

// DivOf returns a Dynamic holding the quotient of both stored values,
// bounded by the union interval under the stricter policy. A zero
// divisor is rejected with a ValidationError.
func DivOf[T numeric.Number, I1 interval.Interval[T], P1 Policy[T], I2 interval.Interval[T], P2 Policy[T]](
	a Bounded[T, I1, P1], b Bounded[T, I2, P2],
) (Dynamic[T], error) {
	if b.v == T(0) {
		return Dynamic[T]{}, &errors.ValidationError{Type: "Bounded", Field: "divisor", Reason: "division by zero"}
	}
	return combine(a, b, a.v/b.v)
}
