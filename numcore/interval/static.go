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

package interval

import "dirpx.dev/dxnum/numcore/numeric"

// Unit is the static unit interval [0, 1].
//
// It is a zero-size type: the bounds live in the method bodies, so a
// bounded value parameterized with Unit stores nothing beyond its value.
// Static intervals like this one are the Go counterpart of baking bounds
// into a type as compile-time constants; to define a custom static
// interval, declare an empty struct whose Min and Max return the desired
// bounds.
type Unit[T numeric.Number] struct{}

// Min returns 0.
func (Unit[T]) Min() T { return T(0) }

// Max returns 1.
func (Unit[T]) Max() T { return T(1) }

// SymUnit is the static symmetric unit interval [−1, 1].
//
// The storage type must be signed; an unsigned SymUnit would be a
// contradiction and is rejected at compile time.
type SymUnit[T numeric.SignedNumber] struct{}

// Min returns −1.
func (SymUnit[T]) Min() T { return T(-1) }

// Max returns 1.
func (SymUnit[T]) Max() T { return T(1) }
