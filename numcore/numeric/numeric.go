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

// Package numeric provides the capability layer that the dxnum value types
// are built on: type-set constraints answering "is T a number", comparison
// tolerances, approximate equality, clamping, and checked (loss-free)
// conversions between numeric storage types.
//
// Every other dxnum package constrains its type parameters with the
// type sets defined here. The constraints are thin aliases over
// golang.org/x/exp/constraints so that user-defined types (for example,
// `type Celsius float64`) satisfy them through their underlying type.
//
// The checked conversion functions are the runtime counterpart of
// narrowing checks: Go never converts numeric types implicitly, so a
// conversion between storage types is always a visible call site, and
// Convert makes that call site loss-free or failing.
package numeric

import (
	"golang.org/x/exp/constraints"
)

// Signed is the set of signed integer types.
type Signed = constraints.Signed

// Unsigned is the set of unsigned integer types.
type Unsigned = constraints.Unsigned

// Integer is the set of all integer types.
type Integer = constraints.Integer

// Float is the set of floating-point types.
type Float = constraints.Float

// Number is the set of all types the dxnum value types can store: every
// integer and floating-point type, including named types defined over
// them. This is the Go rendition of the library's "is a number"
// capability query: a type in this set supports addition, subtraction,
// multiplication, division and ordering.
type Number interface {
	constraints.Integer | constraints.Float
}

// SignedNumber is the subset of Number closed under negation. Operations
// that are undefined on unsigned domains (unary minus, sign-flipping
// reflection) constrain their type parameters with SignedNumber instead
// of Number, which turns "negating an unsigned angle" into a compile
// error rather than a runtime surprise.
type SignedNumber interface {
	constraints.Signed | constraints.Float
}

// defaultTolerance is the comparison tolerance for floating-point
// storage. It is held in a float64 variable (not a constant) so it can be
// value-converted to any storage type parameter.
var defaultTolerance = 1e-6

// half is used to probe whether a storage type is integral: converting
// 0.5 to an integer type truncates to zero.
var half = 0.5

// Tolerance returns the comparison tolerance for the storage type T: zero
// for integer storage (integer comparisons are exact) and a small epsilon
// for floating-point storage.
//
// Tolerance is the default used by ApproxEqual, Approx0 and Approx1, and
// is exposed through the Limited interface so that bounded values can
// report it alongside their interval bounds.
func Tolerance[T Number]() T {
	if T(half) == T(0) {
		return T(0)
	}
	return T(defaultTolerance)
}

// ApproxEqual reports whether a and b are equal within the default
// tolerance for T. For integer storage this is exact equality.
func ApproxEqual[T Number](a, b T) bool {
	return ApproxEqualTol(a, b, Tolerance[T]())
}

// ApproxEqualTol reports whether a and b are equal within tol.
//
// The comparison is symmetric and tolerant on both sides:
// |a − b| < tol, evaluated without taking an absolute value so that it
// also behaves sensibly for unsigned storage.
func ApproxEqualTol[T Number](a, b, tol T) bool {
	if a > b {
		return a-b <= tol
	}
	return b-a <= tol
}

// Approx0 reports whether x is zero within the default tolerance for T.
func Approx0[T Number](x T) bool {
	return ApproxEqual(x, T(0))
}

// Approx1 reports whether x is one within the default tolerance for T.
func Approx1[T Number](x T) bool {
	return ApproxEqual(x, T(1))
}

// Clamp returns x limited to the range [lo, hi]. Callers MUST ensure
// lo <= hi; Clamp does not reorder its bounds.
func Clamp[T Number](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
