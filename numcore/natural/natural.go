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

// Package natural provides non-negative saturating integers with an
// infinity sentinel.
//
// A Natural never underflows and never wraps: subtraction stops at
// zero, and addition or multiplication that would exceed the storage
// type saturates to infinity rather than overflowing. Infinity is
// absorbing for addition and multiplication by a nonzero factor, and
// greater than every finite value in comparisons. Multiplying infinity
// by zero yields zero, keeping zero an annihilator for the whole type.
//
// Counters and sizes are the intended use: a Natural can be decremented
// freely without guarding against underflow, and a saturated counter
// reads as "too many to count" instead of a small wrapped number.
package natural

import (
	"encoding/json"
	"strconv"
	"strings"
	"unsafe"

	"gopkg.in/yaml.v3"

	"dirpx.dev/dxnum/numcore/errors"
	"dirpx.dev/dxnum/numcore/model"
	"dirpx.dev/dxnum/numcore/numeric"
)

// infString is the textual form of the infinity sentinel.
const infString = "inf"

// Natural is a non-negative saturating integer over signed storage type
// T. The signed storage keeps mixed arithmetic with ordinary Go
// integers convenient; negative inputs are clamped to zero at the
// boundary.
//
// The zero value is the number zero and is immediately usable.
type Natural[T numeric.Signed] struct {
	v   T
	inf bool
}

// maxOf returns the largest value representable in T.
func maxOf[T numeric.Signed]() T {
	bits := uint(unsafe.Sizeof(T(0))) * 8
	return T(1)<<(bits-1) - 1
}

// New returns the natural number v, clamping negative input to zero.
func New[T numeric.Signed](v T) Natural[T] {
	if v < 0 {
		v = 0
	}
	return Natural[T]{v: v}
}

// Inf returns the infinity sentinel.
func Inf[T numeric.Signed]() Natural[T] {
	return Natural[T]{inf: true}
}

// Parse converts the textual form produced by String back into a
// Natural: "inf" for infinity, decimal digits otherwise. Negative
// numbers are rejected rather than clamped, as text input is assumed to
// be deliberate.
func Parse[T numeric.Signed](s string) (Natural[T], error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == infString {
		return Inf[T](), nil
	}
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || n < 0 {
		return Natural[T]{}, &errors.ParseError{Type: "Natural", Value: s}
	}
	if n > int64(maxOf[T]()) {
		return Inf[T](), nil
	}
	return Natural[T]{v: T(n)}, nil
}

// Value returns the finite value and true, or zero and false for
// infinity.
func (n Natural[T]) Value() (T, bool) {
	if n.inf {
		return 0, false
	}
	return n.v, true
}

// IsInf reports whether n is the infinity sentinel.
func (n Natural[T]) IsInf() bool { return n.inf }

// Add returns the saturating sum n + o: infinite if either operand is
// infinite or the finite sum would overflow T.
func (n Natural[T]) Add(o Natural[T]) Natural[T] {
	if n.inf || o.inf {
		return Inf[T]()
	}
	if n.v > maxOf[T]()-o.v {
		return Inf[T]()
	}
	return Natural[T]{v: n.v + o.v}
}

// Sub returns the difference n - o saturated at zero. Subtracting
// anything from infinity leaves infinity; subtracting infinity from a
// finite value yields zero.
func (n Natural[T]) Sub(o Natural[T]) Natural[T] {
	if n.inf {
		return Inf[T]()
	}
	if o.inf || o.v >= n.v {
		return Natural[T]{}
	}
	return Natural[T]{v: n.v - o.v}
}

// Mul returns the saturating product n · o. Zero annihilates even
// infinity; otherwise an infinite operand or a finite overflow yields
// infinity.
func (n Natural[T]) Mul(o Natural[T]) Natural[T] {
	if (!n.inf && n.v == 0) || (!o.inf && o.v == 0) {
		return Natural[T]{}
	}
	if n.inf || o.inf {
		return Inf[T]()
	}
	p := n.v * o.v
	if p/n.v != o.v {
		return Inf[T]()
	}
	return Natural[T]{v: p}
}

// Inc returns n + 1, saturating to infinity at the top of T.
func (n Natural[T]) Inc() Natural[T] {
	return n.Add(Natural[T]{v: 1})
}

// Dec returns n - 1, saturating at zero. Decrementing infinity leaves
// infinity.
func (n Natural[T]) Dec() Natural[T] {
	return n.Sub(Natural[T]{v: 1})
}

// Compare orders two naturals, returning -1, 0 or +1. Infinity compares
// greater than every finite value and equal to itself.
func (n Natural[T]) Compare(o Natural[T]) int {
	switch {
	case n.inf && o.inf:
		return 0
	case n.inf:
		return 1
	case o.inf:
		return -1
	case n.v < o.v:
		return -1
	case n.v > o.v:
		return 1
	default:
		return 0
	}
}

// Equal reports whether two naturals denote the same value.
func (n Natural[T]) Equal(o Natural[T]) bool { return n.Compare(o) == 0 }

// Less reports whether n is strictly smaller than o.
func (n Natural[T]) Less(o Natural[T]) bool { return n.Compare(o) < 0 }

// TypeName returns "Natural".
func (n Natural[T]) TypeName() string { return "Natural" }

// IsZero reports whether n is the finite number zero.
func (n Natural[T]) IsZero() bool { return !n.inf && n.v == 0 }

// Validate checks the non-negativity invariant. A Natural built through
// the package constructors always validates; a negative value can only
// arrive through memory corruption or a hand-rolled literal.
func (n Natural[T]) Validate() error {
	if !n.inf && n.v < 0 {
		return &errors.ValidationError{Type: "Natural", Reason: "value is negative", Value: n.v}
	}
	return nil
}

// String renders decimal digits, or "inf" for the sentinel.
func (n Natural[T]) String() string {
	if n.inf {
		return infString
	}
	return strconv.FormatInt(int64(n.v), 10)
}

// Redacted returns the same representation as String.
func (n Natural[T]) Redacted() string { return n.String() }

// MarshalJSON encodes a finite Natural as a bare JSON number and
// infinity as the string "inf", which JSON numbers cannot express.
func (n Natural[T]) MarshalJSON() ([]byte, error) {
	if n.inf {
		return json.Marshal(infString)
	}
	return json.Marshal(n.v)
}

// UnmarshalJSON accepts a non-negative JSON number or the string "inf".
func (n *Natural[T]) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Natural", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Natural", Data: data, Reason: err.Error()}
		}
		parsed, err := Parse[T](s)
		if err != nil {
			return err
		}
		*n = parsed
		return nil
	}

	var v int64
	if err := json.Unmarshal(data, &v); err != nil {
		return &errors.UnmarshalError{Type: "Natural", Data: data, Reason: err.Error()}
	}
	if v < 0 {
		return &errors.UnmarshalError{Type: "Natural", Data: data, Reason: "value is negative"}
	}
	if v > int64(maxOf[T]()) {
		*n = Inf[T]()
		return nil
	}
	*n = Natural[T]{v: T(v)}
	return nil
}

// MarshalYAML mirrors MarshalJSON: a number, or "inf".
func (n Natural[T]) MarshalYAML() (interface{}, error) {
	if n.inf {
		return infString, nil
	}
	return n.v, nil
}

// UnmarshalYAML accepts a non-negative YAML number or the string "inf".
func (n *Natural[T]) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err == nil {
		parsed, perr := Parse[T](s)
		if perr != nil {
			return perr
		}
		*n = parsed
		return nil
	}

	var v int64
	if err := node.Decode(&v); err != nil {
		return &errors.UnmarshalError{Type: "Natural", Data: []byte(node.Value), Reason: err.Error()}
	}
	if v < 0 {
		return &errors.UnmarshalError{Type: "Natural", Data: []byte(node.Value), Reason: "value is negative"}
	}
	if v > int64(maxOf[T]()) {
		*n = Inf[T]()
		return nil
	}
	*n = Natural[T]{v: T(v)}
	return nil
}

// Natural implements the Model interface.
var _ model.Model = (*Natural[int])(nil)
