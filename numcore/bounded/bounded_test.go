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
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"gopkg.in/yaml.v3"

	"dirpx.dev/dxnum/numcore/interval"
)

func TestNew_ClipCorrectsOutOfRange(t *testing.T) {
	b, err := New(interval.New(0, 100), Clip[int]{}, 150)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if b.Value() != 100 {
		t.Errorf("Value() = %d, want 100", b.Value())
	}
	if b.Min() != 0 || b.Max() != 100 {
		t.Errorf("bounds = [%d,%d], want [0,100]", b.Min(), b.Max())
	}
}

func TestNew_StrictRejectsOutOfRange(t *testing.T) {
	_, err := New(interval.New(0, 100), Strict[int]{}, 150)
	if err == nil {
		t.Fatal("New with strict policy should reject 150")
	}
}

func TestNewIn_StaticInterval(t *testing.T) {
	b, err := NewIn[float64, interval.Unit[float64], Clip[float64]](1.5)
	if err != nil {
		t.Fatalf("NewIn error: %v", err)
	}
	if b.Value() != 1 {
		t.Errorf("Value() = %v, want 1 (clipped to unit interval)", b.Value())
	}
	if b.Min() != 0 || b.Max() != 1 {
		t.Errorf("bounds = [%v,%v], want [0,1]", b.Min(), b.Max())
	}
}

func TestMust_PanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must should panic on a strict rejection")
		}
	}()
	Must(New(interval.New(0, 10), Strict[int]{}, 50))
}

func TestBounded_SetRetainsPriorOnRejection(t *testing.T) {
	b := Must(New(interval.New(0, 10), Strict[int]{}, 5))
	if err := b.Set(50); err == nil {
		t.Fatal("Set(50) should fail under strict policy")
	}
	if b.Value() != 5 {
		t.Errorf("Value() after rejected Set = %d, want 5", b.Value())
	}
}

func TestBounded_Arithmetic(t *testing.T) {
	b := Must(New(interval.New(0, 100), Clip[int]{}, 10))

	steps := []struct {
		name string
		op   func() error
		want int
	}{
		{"add", func() error { return b.Add(15) }, 25},
		{"sub", func() error { return b.Sub(5) }, 20},
		{"mul", func() error { return b.Mul(3) }, 60},
		{"div", func() error { return b.Div(4) }, 15},
		{"mod", func() error { return b.Mod(7) }, 1},
		{"inc", func() error { return b.Inc() }, 2},
		{"dec", func() error { return b.Dec() }, 1},
		{"add clips at max", func() error { return b.Add(1000) }, 100},
		{"sub clips at min", func() error { return b.Sub(1000) }, 0},
	}

	for _, s := range steps {
		if err := s.op(); err != nil {
			t.Fatalf("%s: %v", s.name, err)
		}
		if b.Value() != s.want {
			t.Fatalf("%s: Value() = %d, want %d", s.name, b.Value(), s.want)
		}
	}
}

func TestBounded_DivByZero(t *testing.T) {
	b := Must(New(interval.New(0, 10), Clip[int]{}, 5))
	if err := b.Div(0); err == nil {
		t.Fatal("Div(0) should fail")
	}
	if b.Value() != 5 {
		t.Errorf("Value() after failed Div = %d, want 5", b.Value())
	}
	if err := b.Mod(0); err == nil {
		t.Fatal("Mod(0) should fail")
	}
}

func TestBounded_WrapReentersAtMin(t *testing.T) {
	b := Must(New(interval.New(0.0, 360.0), Wrap[float64]{}, 350))
	if err := b.Add(20); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if got := b.Value(); math.Abs(got-10) > 1e-9 {
		t.Errorf("Value() after wrap = %v, want 10", got)
	}
}

func TestBounded_WrapIdempotentInRange(t *testing.T) {
	b := Must(New(interval.New(0.0, 360.0), Wrap[float64]{}, 123.5))
	if err := b.Set(b.Value()); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if b.Value() != 123.5 {
		t.Errorf("re-setting an in-range value changed it to %v", b.Value())
	}
}

func TestBounded_Limited(t *testing.T) {
	b := Must(New(interval.New(-1.0, 1.0), Clip[float64]{}, 0.5))
	if b.Min() != -1 || b.Max() != 1 {
		t.Errorf("limits = [%v,%v], want [-1,1]", b.Min(), b.Max())
	}
	if b.Tolerance() != 1e-6 {
		t.Errorf("Tolerance() = %v, want 1e-6", b.Tolerance())
	}

	bi := Must(New(interval.New(0, 10), Clip[int]{}, 3))
	if bi.Tolerance() != 0 {
		t.Errorf("integer Tolerance() = %v, want 0", bi.Tolerance())
	}
}

func TestBounded_String(t *testing.T) {
	b := Must(New(interval.New(0, 100), Clip[int]{}, 42))
	if got, want := b.String(), "42 in [0,100]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if b.Redacted() != b.String() {
		t.Error("Redacted() should match String()")
	}
	if b.TypeName() != "Bounded" {
		t.Errorf("TypeName() = %q", b.TypeName())
	}
}

func TestBounded_Validate(t *testing.T) {
	b := Must(New(interval.New(0, 100), Clip[int]{}, 42))
	if err := b.Validate(); err != nil {
		t.Errorf("Validate() on in-range value returned %v", err)
	}

	var zero Clipped[int]
	if err := zero.Validate(); err != nil {
		t.Errorf("Validate() on zero value returned %v", err)
	}
}

func TestBounded_IsZero(t *testing.T) {
	var zero Clipped[int]
	if !zero.IsZero() {
		t.Error("zero value should report IsZero")
	}
	b := Must(New(interval.New(0, 100), Clip[int]{}, 42))
	if b.IsZero() {
		t.Error("42 should not report IsZero")
	}
}

func TestBounded_JSONRoundTrip(t *testing.T) {
	b := Must(New(interval.New(0, 100), Clip[int]{}, 42))
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != "42" {
		t.Errorf("Marshal = %s, want bare 42", data)
	}

	got := Must(New(interval.New(0, 100), Clip[int]{}, 0))
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if got.Value() != 42 {
		t.Errorf("round trip value = %d, want 42", got.Value())
	}
}

func TestBounded_UnmarshalJSON_RoutesThroughPolicy(t *testing.T) {
	b := Must(New(interval.New(0, 100), Clip[int]{}, 0))
	if err := json.Unmarshal([]byte("250"), &b); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if b.Value() != 100 {
		t.Errorf("decoded value = %d, want 100 (clipped)", b.Value())
	}

	s := Must(New(interval.New(0, 100), Strict[int]{}, 7))
	if err := json.Unmarshal([]byte("250"), &s); err == nil {
		t.Fatal("strict unmarshal of 250 should fail")
	}
	if s.Value() != 7 {
		t.Errorf("value after rejected unmarshal = %d, want 7", s.Value())
	}
}

func TestBounded_YAMLRoundTrip(t *testing.T) {
	b := Must(New(interval.New(0.0, 1.0), Clip[float64]{}, 0.25))
	data, err := yaml.Marshal(b)
	if err != nil {
		t.Fatalf("yaml.Marshal error: %v", err)
	}

	got := Must(New(interval.New(0.0, 1.0), Clip[float64]{}, 0))
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatalf("yaml.Unmarshal error: %v", err)
	}
	if got.Value() != 0.25 {
		t.Errorf("round trip value = %v, want 0.25", got.Value())
	}
}

func TestMerge_WidensAndHardens(t *testing.T) {
	a := Must(New(interval.New(0, 10), Clip[int]{}, 7))
	b := Must(New(interval.New(5, 50), Strict[int]{}, 20))

	m, err := Merge(a, b)
	if err != nil {
		t.Fatalf("Merge error: %v", err)
	}
	if m.Min() != 0 || m.Max() != 50 {
		t.Errorf("merged bounds = [%d,%d], want [0,50]", m.Min(), m.Max())
	}
	if m.Severity() != SeverityStrict {
		t.Errorf("merged severity = %v, want %v", m.Severity(), SeverityStrict)
	}
	if m.Value() != 7 {
		t.Errorf("merged value = %d, want 7", m.Value())
	}
}

func TestAddOf_CrossInstantiation(t *testing.T) {
	a := Must(New(interval.New(0, 10), Clip[int]{}, 8))
	b := Must(New(interval.New(0, 100), Clip[int]{}, 30))

	sum, err := AddOf(a, b)
	if err != nil {
		t.Fatalf("AddOf error: %v", err)
	}
	if sum.Value() != 38 {
		t.Errorf("sum = %d, want 38", sum.Value())
	}
	if sum.Min() != 0 || sum.Max() != 100 {
		t.Errorf("sum bounds = [%d,%d], want [0,100]", sum.Min(), sum.Max())
	}
}

func TestAddOf_StricterOperandRejects(t *testing.T) {
	a := Must(New(interval.New(0, 10), Strict[int]{}, 9))
	b := Must(New(interval.New(0, 20), Clip[int]{}, 15))

	if _, err := AddOf(a, b); err == nil {
		t.Fatal("AddOf producing 24 over union [0,20] should fail under strict")
	}
}

func TestSubOf_ClipsIntoUnion(t *testing.T) {
	a := Must(New(interval.New(0, 10), Clip[int]{}, 3))
	b := Must(New(interval.New(0, 20), Clip[int]{}, 15))

	d, err := SubOf(a, b)
	if err != nil {
		t.Fatalf("SubOf error: %v", err)
	}
	if d.Value() != 0 {
		t.Errorf("difference = %d, want 0 (clipped at union min)", d.Value())
	}
}

func TestMulOf(t *testing.T) {
	a := Must(New(interval.New(0, 10), Clip[int]{}, 4))
	b := Must(New(interval.New(0, 100), Clip[int]{}, 6))

	p, err := MulOf(a, b)
	if err != nil {
		t.Fatalf("MulOf error: %v", err)
	}
	if p.Value() != 24 {
		t.Errorf("product = %d, want 24", p.Value())
	}
}

func TestDivOf(t *testing.T) {
	a := Must(New(interval.New(0, 100), Clip[int]{}, 36))
	b := Must(New(interval.New(0, 10), Clip[int]{}, 6))

	q, err := DivOf(a, b)
	if err != nil {
		t.Fatalf("DivOf error: %v", err)
	}
	if q.Value() != 6 {
		t.Errorf("quotient = %d, want 6", q.Value())
	}

	z := Must(New(interval.New(0, 10), Clip[int]{}, 0))
	if _, err := DivOf(a, z); err == nil {
		t.Fatal("DivOf by zero-valued operand should fail")
	}
}

func TestDynamic_MutatesUnderCombinedPolicy(t *testing.T) {
	var buf bytes.Buffer
	prev := SetReportWriter(&buf)
	defer SetReportWriter(prev)

	a := Must(New(interval.New(0, 10), Clip[int]{}, 7))
	b := Must(New(interval.New(0, 50), ClipReport[int]{}, 20))

	m, err := Merge(a, b)
	if err != nil {
		t.Fatalf("Merge error: %v", err)
	}
	if m.Severity() != SeverityReport {
		t.Fatalf("combined severity = %v, want %v", m.Severity(), SeverityReport)
	}
	if err := m.Add(100); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if m.Value() != 50 {
		t.Errorf("Value() = %d, want 50", m.Value())
	}
}
