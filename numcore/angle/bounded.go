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
	"dirpx.dev/dxnum/numcore/bounded"
	"dirpx.dev/dxnum/numcore/interval"
)

// Inclination is a degree value clipped to [-90, 90], the vertical
// angle above or below the horizon.
type Inclination = bounded.Clipped[float64]

// Bearing is a degree value wrapped into [0, 360], the horizontal
// compass direction. The wrap policy keeps the remainder's sign, so a
// bearing built from a negative heading should be normalized by the
// caller first (for example by adding a full turn).
type Bearing = bounded.Wrapped[float64]

// Degree interval vars shared by the bounded constructors.
var (
	inclinationRange = interval.New(-90.0, 90.0)
	bearingRange     = interval.New(0.0, 360.0)
)

// NewInclination returns deg clipped to the inclination range. It never
// fails; out-of-range input saturates at the horizon-to-zenith bounds.
func NewInclination(deg float64) Inclination {
	return bounded.Must(bounded.New(inclinationRange, bounded.Clip[float64]{}, deg))
}

// NewBearing returns deg wrapped into the compass range, so 370 becomes
// 10 and 725 becomes 5.
func NewBearing(deg float64) Bearing {
	return bounded.Must(bounded.New(bearingRange, bounded.Wrap[float64]{}, deg))
}
