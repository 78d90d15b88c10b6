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

package numeric

// Limited is the numeric-limits introspection protocol for range-aware
// value types. A type implementing Limited exposes the smallest and
// largest value it can currently hold and the comparison tolerance of its
// underlying storage type.
//
// Unlike the storage type's own representational limits, Min and Max
// reflect the type's *semantic* range: a bounded value constrained to
// [0, 10] reports 0 and 10 here, not the int range. Generic algorithms
// that need limits introspection SHOULD accept a Limited rather than
// assuming full-range storage.
type Limited[T Number] interface {
	// Min returns the smallest value the type can currently hold.
	Min() T

	// Max returns the largest value the type can currently hold.
	Max() T

	// Tolerance returns the comparison tolerance of the underlying
	// storage type, as reported by Tolerance.
	Tolerance() T
}
