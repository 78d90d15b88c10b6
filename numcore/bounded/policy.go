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

package bounded

import (
	"fmt"
	"io"
	"math"
	"os"
	"sync"

	"dirpx.dev/dxnum/numcore/errors"
	"dirpx.dev/dxnum/numcore/numeric"
)

// Policy decides how an out-of-range candidate value is reconciled with
// an interval.
//
// Bound receives the candidate and the interval bounds and returns the
// value to store, or an error when the policy refuses to correct (only
// Strict does). Implementations MUST be pure functions of their three
// inputs: no mutable state, so a zero-size policy embedded in a bounded
// value costs nothing and two bounded values never interact through
// their policies. The ClipReport diagnostic is the one sanctioned side
// effect, and it goes through the shared report writer.
//
// Severity ranks the policy for dispatch when two differently-policied
// values are combined; see Stricter.
type Policy[T numeric.Number] interface {
	// Bound reconciles candidate x with the bounds [lo, hi] and returns
	// the value to store. An error means the candidate was rejected and
	// nothing should be stored.
	Bound(x, lo, hi T) (T, error)

	// Severity returns the policy's rank in the defensiveness order.
	Severity() Severity
}

// reportMu serializes access to the shared diagnostic writer. Distinct
// bounded values share this one stream, so it is the only cross-instance
// state in the package.
var (
	reportMu     sync.Mutex
	reportWriter io.Writer = os.Stderr
)

// SetReportWriter redirects the diagnostic output of the ClipReport
// policy and returns the previous writer. Passing nil restores the
// default, os.Stderr.
//
// The writer is shared by every ClipReport instance in the process.
// Writes to it are serialized by this package; the writer itself only
// needs to tolerate sequential use.
func SetReportWriter(w io.Writer) io.Writer {
	if w == nil {
		w = os.Stderr
	}
	reportMu.Lock()
	defer reportMu.Unlock()
	prev := reportWriter
	reportWriter = w
	return prev
}

// report emits one diagnostic line for a clipped candidate.
func report(x, lo, hi, kind any) {
	reportMu.Lock()
	defer reportMu.Unlock()
	fmt.Fprintf(reportWriter, "%v %s [%v,%v]\n", x, kind, lo, hi)
}

// Clip saturates an out-of-range candidate to the nearest bound,
// silently. It never fails and never reports.
type Clip[T numeric.Number] struct{}

// Bound returns x clamped to [lo, hi].
func (Clip[T]) Bound(x, lo, hi T) (T, error) {
	return numeric.Clamp(x, lo, hi), nil
}

// Severity returns SeverityClip.
func (Clip[T]) Severity() Severity { return SeverityClip }

// ClipReport saturates like Clip but additionally emits one diagnostic
// line per correction on the shared report writer (os.Stderr unless
// redirected with SetReportWriter). It never fails.
type ClipReport[T numeric.Number] struct{}

// Bound returns x clamped to [lo, hi], reporting if clamping occurred.
func (ClipReport[T]) Bound(x, lo, hi T) (T, error) {
	if x < lo {
		report(x, lo, hi, "below")
		return lo, nil
	}
	if x > hi {
		report(x, lo, hi, "above")
		return hi, nil
	}
	return x, nil
}

// Severity returns SeverityReport.
func (ClipReport[T]) Severity() Severity { return SeverityReport }

// Wrap treats the interval as circular: an out-of-range candidate is
// folded back via floating-point remainder,
//
//	fmod(x − lo, hi − lo) + lo
//
// so that repeatedly advancing past hi re-enters at lo. Wrap requires
// hi > lo strictly; a degenerate interval (hi == lo) is a precondition
// violation, not a handled case. The remainder keeps the sign of
// x − lo, matching fmod; candidates far below lo therefore fold toward
// lo from beneath rather than reflecting.
type Wrap[T numeric.Number] struct{}

// Bound returns x folded into the circular range [lo, hi).
func (Wrap[T]) Bound(x, lo, hi T) (T, error) {
	if x < lo || x > hi {
		w := float64(hi) - float64(lo)
		return T(math.Mod(float64(x)-float64(lo), w) + float64(lo)), nil
	}
	return x, nil
}

// Severity returns SeverityWrap.
func (Wrap[T]) Severity() Severity { return SeverityWrap }

// Strict refuses to modify an out-of-range candidate: Bound returns a
// *errors.OutOfRangeError carrying the candidate and both bounds, and
// the caller keeps its prior valid value. An in-range candidate passes
// through unchanged.
type Strict[T numeric.Number] struct{}

// Bound returns x unchanged if it lies in [lo, hi], or an
// *errors.OutOfRangeError otherwise.
func (Strict[T]) Bound(x, lo, hi T) (T, error) {
	if x < lo || x > hi {
		return x, &errors.OutOfRangeError{Value: x, Min: lo, Max: hi}
	}
	return x, nil
}

// Severity returns SeverityStrict.
func (Strict[T]) Severity() Severity { return SeverityStrict }

// Stricter returns the more defensive of two policies, as ranked by
// Severity: Strict beats ClipReport beats Wrap beats Clip. When the
// ranks are equal, p is returned.
//
// This is the dispatch rule applied when arithmetic combines bounded
// values governed by different policies: the combined result must not be
// less safe than either operand.
func Stricter[T numeric.Number](p, q Policy[T]) Policy[T] {
	if q.Severity() > p.Severity() {
		return q
	}
	return p
}
