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

package quaternion_test

import (
	"encoding/json"
	"math"
	"testing"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"dirpx.dev/dxnum/numcore/angle"
	"dirpx.dev/dxnum/numcore/quaternion"
)

func approx(a, b float64) bool { return math.Abs(a-b) <= 1e-9 }

func approxQ(q quaternion.Quaternion[float64], w, x, y, z float64) bool {
	return approx(q.W(), w) && approx(q.X(), x) && approx(q.Y(), y) && approx(q.Z(), z)
}

func TestNewAndAccessors(t *testing.T) {
	q := quaternion.New(1.0, 2.0, 3.0, 4.0)
	if q.W() != 1 || q.X() != 2 || q.Y() != 3 || q.Z() != 4 {
		t.Errorf("components = (%v, %v, %v, %v)", q.W(), q.X(), q.Y(), q.Z())
	}
}

func TestIdentity(t *testing.T) {
	id := quaternion.Identity[float64]()
	q := quaternion.New(1.0, 2.0, 3.0, 4.0)
	if got := q.Mul(id); got != q {
		t.Errorf("q * 1 = %v, want %v", got, q)
	}
	if got := id.Mul(q); got != q {
		t.Errorf("1 * q = %v, want %v", got, q)
	}
	if !id.IsUnit() {
		t.Error("identity should be a unit quaternion")
	}
}

func TestQuaternion_AddSub(t *testing.T) {
	a := quaternion.New(1.0, 2.0, 3.0, 4.0)
	b := quaternion.New(0.5, -1.0, 1.0, -2.0)

	sum := a.Add(b)
	if !approxQ(sum, 1.5, 1, 4, 2) {
		t.Errorf("sum = %v", sum)
	}

	diff := a.Sub(b)
	if !approxQ(diff, 0.5, 3, 2, 6) {
		t.Errorf("diff = %v", diff)
	}
}

func TestQuaternion_MulUnits(t *testing.T) {
	i := quaternion.New(0.0, 1.0, 0.0, 0.0)
	j := quaternion.New(0.0, 0.0, 1.0, 0.0)
	k := quaternion.New(0.0, 0.0, 0.0, 1.0)

	if got := i.Mul(i); !approxQ(got, -1, 0, 0, 0) {
		t.Errorf("i^2 = %v, want -1", got)
	}
	if got := j.Mul(j); !approxQ(got, -1, 0, 0, 0) {
		t.Errorf("j^2 = %v, want -1", got)
	}
	if got := k.Mul(k); !approxQ(got, -1, 0, 0, 0) {
		t.Errorf("k^2 = %v, want -1", got)
	}
	if got := i.Mul(j); !approxQ(got, 0, 0, 0, 1) {
		t.Errorf("ij = %v, want k", got)
	}
	if got := j.Mul(i); !approxQ(got, 0, 0, 0, -1) {
		t.Errorf("ji = %v, want -k", got)
	}
	if got := j.Mul(k); !approxQ(got, 0, 1, 0, 0) {
		t.Errorf("jk = %v, want i", got)
	}
	if got := k.Mul(i); !approxQ(got, 0, 0, 1, 0) {
		t.Errorf("ki = %v, want j", got)
	}
}

func TestQuaternion_MulNotCommutative(t *testing.T) {
	a := quaternion.New(1.0, 2.0, 3.0, 4.0)
	b := quaternion.New(4.0, 3.0, 2.0, 1.0)
	if a.Mul(b) == b.Mul(a) {
		t.Error("expected a*b != b*a for generic quaternions")
	}
}

func TestQuaternion_ConjNorm(t *testing.T) {
	q := quaternion.New(1.0, 2.0, 3.0, 4.0)

	c := q.Conj()
	if !approxQ(c, 1, -2, -3, -4) {
		t.Errorf("Conj = %v", c)
	}

	if got := q.NormSq(); got != 30 {
		t.Errorf("NormSq = %v, want 30", got)
	}
	if got := q.Norm(); !approx(got, math.Sqrt(30)) {
		t.Errorf("Norm = %v, want sqrt(30)", got)
	}

	// q * conj(q) is real and equal to |q|^2.
	p := q.Mul(q.Conj())
	if !approxQ(p, 30, 0, 0, 0) {
		t.Errorf("q * conj(q) = %v, want 30", p)
	}
}

func TestQuaternion_MulConj(t *testing.T) {
	q, _ := quaternion.FromAxisAngle(0.0, 0.0, 1.0, angle.Deg(90.0))

	// The relative rotation from q to itself is the identity.
	rel := q.MulConj(q)
	if !approxQ(rel, 1, 0, 0, 0) {
		t.Errorf("q * conj(q) = %v, want identity", rel)
	}
	rel = q.ConjMul(q)
	if !approxQ(rel, 1, 0, 0, 0) {
		t.Errorf("conj(q) * q = %v, want identity", rel)
	}
}

func TestQuaternion_Normalize(t *testing.T) {
	q := quaternion.New(0.0, 3.0, 0.0, 4.0)
	u, err := q.Normalize()
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if !u.IsUnit() {
		t.Errorf("normalized quaternion has |q|^2 = %v", u.NormSq())
	}
	if !approxQ(u, 0, 0.6, 0, 0.8) {
		t.Errorf("Normalize = %v", u)
	}

	if _, err := quaternion.New(0.0, 0.0, 0.0, 0.0).Normalize(); err == nil {
		t.Error("normalizing the zero quaternion should fail")
	}
}

func TestQuaternion_Inverse(t *testing.T) {
	q := quaternion.New(1.0, 2.0, 3.0, 4.0)
	inv, err := q.Inverse()
	if err != nil {
		t.Fatalf("Inverse error: %v", err)
	}
	p := q.Mul(inv)
	if !approxQ(p, 1, 0, 0, 0) {
		t.Errorf("q * q^-1 = %v, want identity", p)
	}

	if _, err := quaternion.New(0.0, 0.0, 0.0, 0.0).Inverse(); err == nil {
		t.Error("inverting the zero quaternion should fail")
	}
}

func TestFromAxisAngle(t *testing.T) {
	// 90 degrees around z.
	q, err := quaternion.FromAxisAngle(0.0, 0.0, 1.0, angle.Deg(90.0))
	if err != nil {
		t.Fatalf("FromAxisAngle error: %v", err)
	}
	s := math.Sqrt2 / 2
	if !approxQ(q, s, 0, 0, s) {
		t.Errorf("FromAxisAngle = %v", q)
	}
	if !q.IsUnit() {
		t.Error("axis-angle quaternion should be unit")
	}

	// Unnormalized axis gives the same rotation.
	q2, err := quaternion.FromAxisAngle(0.0, 0.0, 5.0, angle.Deg(90.0))
	if err != nil {
		t.Fatalf("FromAxisAngle error: %v", err)
	}
	if !approxQ(q2, q.W(), q.X(), q.Y(), q.Z()) {
		t.Errorf("unnormalized axis gave %v, want %v", q2, q)
	}

	// The angle may be in any unit.
	q3, err := quaternion.FromAxisAngle(0.0, 0.0, 1.0, angle.Gon(100.0))
	if err != nil {
		t.Fatalf("FromAxisAngle error: %v", err)
	}
	if !approxQ(q3, q.W(), q.X(), q.Y(), q.Z()) {
		t.Errorf("100 gon gave %v, want %v", q3, q)
	}

	if _, err := quaternion.FromAxisAngle(0.0, 0.0, 0.0, angle.Deg(90.0)); err == nil {
		t.Error("zero axis should fail")
	}
}

func TestQuaternion_Rotate(t *testing.T) {
	q, err := quaternion.FromAxisAngle(0.0, 0.0, 1.0, angle.Deg(90.0))
	if err != nil {
		t.Fatalf("FromAxisAngle error: %v", err)
	}

	// Rotating the x axis 90 degrees around z yields the y axis.
	x, y, z := q.Rotate(1.0, 0.0, 0.0)
	if !approx(x, 0) || !approx(y, 1) || !approx(z, 0) {
		t.Errorf("Rotate(1,0,0) = (%v, %v, %v), want (0, 1, 0)", x, y, z)
	}
}

func TestQuaternion_String(t *testing.T) {
	if got := quaternion.New(1.0, -2.0, 0.5, 3.0).String(); got != "1-2i+0.5j+3k" {
		t.Errorf("String() = %q", got)
	}
	if got := quaternion.New(0.0, 0.0, 0.0, 0.0).String(); got != "0+0i+0j+0k" {
		t.Errorf("String() = %q", got)
	}
}

func TestQuaternion_Validate(t *testing.T) {
	if err := quaternion.New(1.0, 2.0, 3.0, 4.0).Validate(); err != nil {
		t.Errorf("Validate = %v", err)
	}

	err := quaternion.New(math.NaN(), 0.0, math.Inf(-1), 0.0).Validate()
	if err == nil {
		t.Fatal("Validate with NaN and Inf components should fail")
	}
	if got := len(multierr.Errors(err)); got != 2 {
		t.Errorf("expected 2 accumulated errors, got %d: %v", got, err)
	}
}

func TestQuaternion_ModelSurface(t *testing.T) {
	q := quaternion.New(1.0, 2.0, 3.0, 4.0)
	if q.TypeName() != "Quaternion" {
		t.Errorf("TypeName() = %q", q.TypeName())
	}
	if q.Redacted() != q.String() {
		t.Error("Redacted() should match String()")
	}
	if !quaternion.New(0.0, 0.0, 0.0, 0.0).IsZero() {
		t.Error("zero quaternion should report IsZero")
	}
	if q.IsZero() {
		t.Error("nonzero quaternion should not report IsZero")
	}
}

func TestQuaternion_JSONRoundTrip(t *testing.T) {
	q := quaternion.New(1.0, -2.5, 3.0, 0.25)
	data, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `{"w":1,"x":-2.5,"y":3,"z":0.25}` {
		t.Errorf("Marshal = %s", data)
	}

	var got quaternion.Quaternion[float64]
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if got != q {
		t.Errorf("round trip = %v, want %v", got, q)
	}
}

func TestQuaternion_YAMLRoundTrip(t *testing.T) {
	q := quaternion.New(0.5, 0.5, 0.5, 0.5)
	data, err := yaml.Marshal(q)
	if err != nil {
		t.Fatalf("yaml.Marshal error: %v", err)
	}

	var got quaternion.Quaternion[float64]
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("yaml.Unmarshal error: %v", err)
	}
	if got != q {
		t.Errorf("YAML round trip = %v, want %v", got, q)
	}
}
