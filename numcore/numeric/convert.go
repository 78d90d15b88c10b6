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

import (
	"fmt"

	"dirpx.dev/dxnum/numcore/errors"
)

// Convert performs a checked conversion of v from storage type From to
// storage type To.
//
// The conversion succeeds only when the destination type can represent
// the source value exactly:
//
//   - the value must survive a round trip To -> From unchanged,
//   - the sign must survive (a negative value never becomes a large
//     unsigned one),
//   - a NaN input is accepted only when the destination type can itself
//     hold a NaN.
//
// On violation, Convert returns the zero value of To and a
// *errors.ConversionError carrying both type names and the offending
// value. Callers MUST check the error before using the result.
//
// Convert is the runtime counterpart of a compile-time narrowing check:
// Go already forbids implicit numeric conversions, so every storage-type
// change is an explicit call site, and this function makes that call site
// loss-free or failing. Widening conversions (for example int32 ->
// int64, float32 -> float64) always succeed.
func Convert[To Number, From Number](v From) (To, error) {
	out := To(v)

	if v != v { // NaN input
		if out != out {
			return out, nil
		}
		var zero To
		return zero, conversionError[To](v)
	}

	if From(out) != v || (v < From(0)) != (out < To(0)) {
		var zero To
		return zero, conversionError[To](v)
	}

	return out, nil
}

// MustConvert is like Convert but panics on conversion failure.
//
// Callers MUST only use MustConvert in contexts where panic is an
// acceptable control flow mechanism, such as test setup or package
// initialization with hardcoded values. Production code paths SHOULD use
// Convert and handle the error.
func MustConvert[To Number, From Number](v From) To {
	out, err := Convert[To](v)
	if err != nil {
		panic(err)
	}
	return out
}

// conversionError builds the typed error for a failed conversion,
// capturing both type names via the values themselves.
func conversionError[To Number, From Number](v From) *errors.ConversionError {
	var zero To
	return &errors.ConversionError{
		From:  fmt.Sprintf("%T", v),
		To:    fmt.Sprintf("%T", zero),
		Value: v,
	}
}
