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

import "dirpx.dev/dxnum/numcore/numeric"

// As converts an angle to a different storage type and unit. The
// conversion factor is the ratio of the two units' full turns, applied
// in float64 and then converted to the destination storage type, which
// truncates for integer destinations. The destination type parameters
// must be spelled at the call site:
//
//	r := angle.As[float64, angle.RadiansUnit](angle.Deg(90.0))
//
// For same-storage-type conversions the To* helpers infer everything
// from the argument and read better.
func As[T2 numeric.Number, U2 Unit, T1 numeric.Number, U1 Unit](a Angle[T1, U1]) Angle[T2, U2] {
	var u1 U1
	var u2 U2
	return Angle[T2, U2]{v: T2(float64(a.v) * u2.FullTurn() / u1.FullTurn())}
}

// ToDeg converts an angle to degrees, keeping the storage type.
func ToDeg[T numeric.Number, U Unit](a Angle[T, U]) Degrees[T] {
	return As[T, DegreesUnit](a)
}

// ToArcmin converts an angle to arcminutes, keeping the storage type.
func ToArcmin[T numeric.Number, U Unit](a Angle[T, U]) Arcmins[T] {
	return As[T, ArcminsUnit](a)
}

// ToArcsec converts an angle to arcseconds, keeping the storage type.
func ToArcsec[T numeric.Number, U Unit](a Angle[T, U]) Arcsecs[T] {
	return As[T, ArcsecsUnit](a)
}

// ToRad converts an angle to radians, keeping the storage type. Radian
// values are almost never whole, so integer storage loses the fraction;
// convert with As to float64 storage when that matters.
func ToRad[T numeric.Number, U Unit](a Angle[T, U]) Radians[T] {
	return As[T, RadiansUnit](a)
}

// ToGon converts an angle to gons, keeping the storage type.
func ToGon[T numeric.Number, U Unit](a Angle[T, U]) Gons[T] {
	return As[T, GonsUnit](a)
}

// ToCmin converts an angle to centesimal minutes, keeping the storage
// type.
func ToCmin[T numeric.Number, U Unit](a Angle[T, U]) CentesimalMinutes[T] {
	return As[T, CentesimalMinutesUnit](a)
}

// ToCsec converts an angle to centesimal seconds, keeping the storage
// type.
func ToCsec[T numeric.Number, U Unit](a Angle[T, U]) CentesimalSeconds[T] {
	return As[T, CentesimalSecondsUnit](a)
}

// AddOf returns the sum of two angles measured in different units,
// expressed in the left operand's unit and storage type. The right
// operand is converted first, so the operation is not symmetric for
// integer storage: the conversion truncates in the left operand's unit.
func AddOf[T numeric.Number, U1 Unit, T2 numeric.Number, U2 Unit](a Angle[T, U1], b Angle[T2, U2]) Angle[T, U1] {
	return a.Add(As[T, U1](b))
}

// SubOf returns the difference of two angles measured in different
// units, expressed in the left operand's unit and storage type.
func SubOf[T numeric.Number, U1 Unit, T2 numeric.Number, U2 Unit](a Angle[T, U1], b Angle[T2, U2]) Angle[T, U1] {
	return a.Sub(As[T, U1](b))
}

// Compare orders two angles measured in arbitrary units by their
// fraction of a full turn, returning -1, 0 or +1. The comparison is an
// exact floating comparison: two angles are equal only when their turn
// fractions coincide bit for bit. Conversion chains through irrational
// unit ratios can leave two angles arbitrarily close without comparing
// equal; when that sharpness is unwanted, use ApproxEqual.
func Compare[T1 numeric.Number, U1 Unit, T2 numeric.Number, U2 Unit](a Angle[T1, U1], b Angle[T2, U2]) int {
	switch ta, tb := a.Turns(), b.Turns(); {
	case ta < tb:
		return -1
	case ta > tb:
		return 1
	default:
		return 0
	}
}

// Equal reports whether two angles measured in arbitrary units denote
// exactly the same fraction of a full turn. See Compare for the sharp
// edge of exact floating comparison.
func Equal[T1 numeric.Number, U1 Unit, T2 numeric.Number, U2 Unit](a Angle[T1, U1], b Angle[T2, U2]) bool {
	return Compare(a, b) == 0
}

// Less reports whether a denotes a strictly smaller rotation than b.
func Less[T1 numeric.Number, U1 Unit, T2 numeric.Number, U2 Unit](a Angle[T1, U1], b Angle[T2, U2]) bool {
	return Compare(a, b) < 0
}

// ApproxEqual reports whether two angles denote nearly the same
// rotation, comparing turn fractions within the shared float
// tolerance. It is the opt-in forgiving counterpart of Equal.
func ApproxEqual[T1 numeric.Number, U1 Unit, T2 numeric.Number, U2 Unit](a Angle[T1, U1], b Angle[T2, U2]) bool {
	return numeric.ApproxEqual(a.Turns(), b.Turns())
}

// Cast converts an angle and returns the bare numeric value in the
// destination unit and storage type, without wrapping it back into an
// Angle. Like As, the destination type parameters are spelled at the
// call site.
func Cast[T2 numeric.Number, U2 Unit, T1 numeric.Number, U1 Unit](a Angle[T1, U1]) T2 {
	return As[T2, U2](a).Value()
}

// DegCast returns the angle's value in degrees as a bare number,
// keeping the storage type.
func DegCast[T numeric.Number, U Unit](a Angle[T, U]) T { return ToDeg(a).Value() }

// ArcminCast returns the angle's value in arcminutes as a bare number.
func ArcminCast[T numeric.Number, U Unit](a Angle[T, U]) T { return ToArcmin(a).Value() }

// ArcsecCast returns the angle's value in arcseconds as a bare number.
func ArcsecCast[T numeric.Number, U Unit](a Angle[T, U]) T { return ToArcsec(a).Value() }

// RadCast returns the angle's value in radians as a bare number. As
// with ToRad, integer storage truncates the fraction.
func RadCast[T numeric.Number, U Unit](a Angle[T, U]) T { return ToRad(a).Value() }

// GonCast returns the angle's value in gons as a bare number.
func GonCast[T numeric.Number, U Unit](a Angle[T, U]) T { return ToGon(a).Value() }

// CminCast returns the angle's value in centesimal minutes as a bare
// number.
func CminCast[T numeric.Number, U Unit](a Angle[T, U]) T { return ToCmin(a).Value() }

// CsecCast returns the angle's value in centesimal seconds as a bare
// number.
func CsecCast[T numeric.Number, U Unit](a Angle[T, U]) T { return ToCsec(a).Value() }
