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

package angle

import (
	"math"

	"dirpx.dev/dxnum/numcore/numeric"
)

// radians returns the angle's value converted to float64 radians, the
// common currency of the trigonometric functions.
func radians[T numeric.Number, U Unit](a Angle[T, U]) float64 {
	var u U
	return float64(a.v) * radiansTurn / u.FullTurn()
}

// Sin returns the sine of an angle in any unit.
func Sin[T numeric.Number, U Unit](a Angle[T, U]) float64 { return math.Sin(radians(a)) }

// Cos returns the cosine of an angle in any unit.
func Cos[T numeric.Number, U Unit](a Angle[T, U]) float64 { return math.Cos(radians(a)) }

// Tan returns the tangent of an angle in any unit.
func Tan[T numeric.Number, U Unit](a Angle[T, U]) float64 { return math.Tan(radians(a)) }

// Sinh returns the hyperbolic sine of an angle in any unit.
func Sinh[T numeric.Number, U Unit](a Angle[T, U]) float64 { return math.Sinh(radians(a)) }

// Cosh returns the hyperbolic cosine of an angle in any unit.
func Cosh[T numeric.Number, U Unit](a Angle[T, U]) float64 { return math.Cosh(radians(a)) }

// Tanh returns the hyperbolic tangent of an angle in any unit.
func Tanh[T numeric.Number, U Unit](a Angle[T, U]) float64 { return math.Tanh(radians(a)) }

// Asin returns the arc sine of x as a radian angle in [-π/2, π/2].
func Asin(x float64) Radians[float64] { return Rad(math.Asin(x)) }

// Acos returns the arc cosine of x as a radian angle in [0, π].
func Acos(x float64) Radians[float64] { return Rad(math.Acos(x)) }

// Atan returns the arc tangent of x as a radian angle in [-π/2, π/2].
func Atan(x float64) Radians[float64] { return Rad(math.Atan(x)) }

// Atan2 returns the quadrant-aware arc tangent of y/x as a radian angle
// in [-π, π].
func Atan2(y, x float64) Radians[float64] { return Rad(math.Atan2(y, x)) }

// Asinh returns the inverse hyperbolic sine of x as a radian angle.
func Asinh(x float64) Radians[float64] { return Rad(math.Asinh(x)) }

// Acosh returns the inverse hyperbolic cosine of x as a radian angle.
func Acosh(x float64) Radians[float64] { return Rad(math.Acosh(x)) }

// Atanh returns the inverse hyperbolic tangent of x as a radian angle.
func Atanh(x float64) Radians[float64] { return Rad(math.Atanh(x)) }
