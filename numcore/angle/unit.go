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

import "math"

// Unit identifies an angular measurement unit. A unit is fully described
// by how many of it make one full turn; every conversion between units
// is the ratio of their full-turn counts.
//
// Implementations MUST be zero-size stateless types: the unit of an
// Angle is carried in its type parameter and instantiated on demand, so
// a Unit with fields would lose them. Symbol is the suffix used when an
// angle is rendered for humans.
type Unit interface {
	// FullTurn returns how many of this unit make one complete
	// revolution.
	FullTurn() float64

	// Symbol returns the suffix appended to a rendered value, including
	// any leading space the notation calls for.
	Symbol() string
}

// Full-turn counts for the supported units. Radians is the only
// irrational one; everything else divides the turn into a whole number
// of parts.
var (
	degreesTurn = 360.0
	arcminsTurn = 21600.0
	arcsecsTurn = 1296000.0
	radiansTurn = 2 * math.Pi
	gonsTurn    = 400.0
	cminsTurn   = 40000.0
	csecsTurn   = 4000000.0
)

// DegreesUnit divides the turn into 360 parts.
type DegreesUnit struct{}

// FullTurn returns 360.
func (DegreesUnit) FullTurn() float64 { return degreesTurn }

// Symbol returns the degree sign.
func (DegreesUnit) Symbol() string { return "°" }

// ArcminsUnit divides the turn into 21600 parts, sixty per degree.
type ArcminsUnit struct{}

// FullTurn returns 21600.
func (ArcminsUnit) FullTurn() float64 { return arcminsTurn }

// Symbol returns the prime sign.
func (ArcminsUnit) Symbol() string { return "′" }

// ArcsecsUnit divides the turn into 1296000 parts, sixty per arcminute.
type ArcsecsUnit struct{}

// FullTurn returns 1296000.
func (ArcsecsUnit) FullTurn() float64 { return arcsecsTurn }

// Symbol returns the double prime sign.
func (ArcsecsUnit) Symbol() string { return "″" }

// RadiansUnit divides the turn into 2π parts.
type RadiansUnit struct{}

// FullTurn returns 2π.
func (RadiansUnit) FullTurn() float64 { return radiansTurn }

// Symbol returns " rad".
func (RadiansUnit) Symbol() string { return " rad" }

// GonsUnit divides the turn into 400 parts, the gradian system.
type GonsUnit struct{}

// FullTurn returns 400.
func (GonsUnit) FullTurn() float64 { return gonsTurn }

// Symbol returns " gon".
func (GonsUnit) Symbol() string { return " gon" }

// CentesimalMinutesUnit divides the turn into 40000 parts, one hundred
// per gon.
type CentesimalMinutesUnit struct{}

// FullTurn returns 40000.
func (CentesimalMinutesUnit) FullTurn() float64 { return cminsTurn }

// Symbol returns " c".
func (CentesimalMinutesUnit) Symbol() string { return " c" }

// CentesimalSecondsUnit divides the turn into 4000000 parts, one
// hundred per centesimal minute.
type CentesimalSecondsUnit struct{}

// FullTurn returns 4000000.
func (CentesimalSecondsUnit) FullTurn() float64 { return csecsTurn }

// Symbol returns " cc".
func (CentesimalSecondsUnit) Symbol() string { return " cc" }
