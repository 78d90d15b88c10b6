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

// Aliases for the seven unit instantiations. These are the names the
// rest of the API is written in terms of; Angle itself rarely appears
// in user code.
type (
	// Degrees is an angle measured in degrees.
	Degrees[T numeric.Number] = Angle[T, DegreesUnit]

	// Arcmins is an angle measured in arcminutes.
	Arcmins[T numeric.Number] = Angle[T, ArcminsUnit]

	// Arcsecs is an angle measured in arcseconds.
	Arcsecs[T numeric.Number] = Angle[T, ArcsecsUnit]

	// Radians is an angle measured in radians.
	Radians[T numeric.Number] = Angle[T, RadiansUnit]

	// Gons is an angle measured in gons.
	Gons[T numeric.Number] = Angle[T, GonsUnit]

	// CentesimalMinutes is an angle measured in hundredths of a gon.
	CentesimalMinutes[T numeric.Number] = Angle[T, CentesimalMinutesUnit]

	// CentesimalSeconds is an angle measured in ten-thousandths of a
	// gon.
	CentesimalSeconds[T numeric.Number] = Angle[T, CentesimalSecondsUnit]
)

// Deg returns an angle of v degrees.
func Deg[T numeric.Number](v T) Degrees[T] { return Degrees[T]{v: v} }

// Arcmin returns an angle of v arcminutes.
func Arcmin[T numeric.Number](v T) Arcmins[T] { return Arcmins[T]{v: v} }

// Arcsec returns an angle of v arcseconds.
func Arcsec[T numeric.Number](v T) Arcsecs[T] { return Arcsecs[T]{v: v} }

// Rad returns an angle of v radians.
func Rad[T numeric.Number](v T) Radians[T] { return Radians[T]{v: v} }

// PiRad returns an angle of mult multiples of π radians, so PiRad(0.5)
// is a right angle.
func PiRad(mult float64) Radians[float64] { return Radians[float64]{v: mult * math.Pi} }

// Gon returns an angle of v gons.
func Gon[T numeric.Number](v T) Gons[T] { return Gons[T]{v: v} }

// Cmin returns an angle of v centesimal minutes.
func Cmin[T numeric.Number](v T) CentesimalMinutes[T] { return CentesimalMinutes[T]{v: v} }

// Csec returns an angle of v centesimal seconds.
func Csec[T numeric.Number](v T) CentesimalSeconds[T] { return CentesimalSeconds[T]{v: v} }
